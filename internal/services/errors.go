package services

import "errors"

var (
	// ErrNonceRetrieval is returned when the ledger nonce could not be read to seed a cursor
	ErrNonceRetrieval = errors.New("failed to retrieve nonce from chain")
	// ErrServiceUnavailable is returned when no signing key is configured
	ErrServiceUnavailable = errors.New("faucet service unavailable")
	// ErrRateLimited is returned when the wallet already claimed inside the window
	ErrRateLimited = errors.New("faucet claim rate limited")
	// ErrDisbursementFailed is returned when a drip transfer could not be dispatched
	ErrDisbursementFailed = errors.New("disbursement failed")
	// ErrInvalidWalletAddress is returned for malformed wallet addresses
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
)
