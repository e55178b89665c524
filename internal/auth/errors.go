package auth

import "errors"

var (
	ErrMissingToken    = errors.New("no authentication provided")
	ErrInvalidToken    = errors.New("invalid token")
	ErrNoWalletClaim   = errors.New("token carries no wallet address")
	ErrInvalidSubject  = errors.New("invalid subject claim")
	ErrInvalidAdminKey = errors.New("invalid admin key")
)
