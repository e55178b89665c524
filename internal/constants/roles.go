package constants

// Auth types
const (
	AuthTypeAdminKey = "admin_key"
	AuthTypeJWT      = "jwt"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID        = "userID"
	ContextKeyWalletAddress = "walletAddress"
	ContextKeyAuthType      = "authType"
)

// Header names
const (
	HeaderAdminKey = "X-Admin-Key"
)
