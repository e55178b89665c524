package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cyphera/cyphera-circles/internal/constants"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthClient verifies Web3Auth ID tokens against the provider's JWKS.
type AuthClient struct {
	issuer   string
	audience string
	keyfunc  jwt.Keyfunc
	jwks     *keyfunc.JWKS
	logger   *zap.Logger
}

// NewAuthClient fetches the JWKS from jwksURL and keeps it refreshed in the background.
func NewAuthClient(jwksURL, issuer, audience string) (*AuthClient, error) {
	if jwksURL == "" {
		return nil, fmt.Errorf("WEB3AUTH_JWKS_ENDPOINT not set")
	}

	log := logger.ForComponent(logger.ComponentAPI)
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   10 * time.Second,
		RefreshErrorHandler: func(err error) {
			log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS: %w", err)
	}

	client := newAuthClient(jwks.Keyfunc, issuer, audience)
	client.jwks = jwks
	log.Info("Web3Auth JWKS initialized", zap.String("jwks_url", jwksURL), zap.String("issuer", issuer))
	return client, nil
}

func newAuthClient(kf jwt.Keyfunc, issuer, audience string) *AuthClient {
	return &AuthClient{
		issuer:   issuer,
		audience: audience,
		keyfunc:  kf,
		logger:   logger.ForComponent(logger.ComponentAPI),
	}
}

// Close stops the background JWKS refresh.
func (ac *AuthClient) Close() {
	if ac.jwks != nil {
		ac.jwks.EndBackground()
	}
}

// ParseToken verifies the signature, expiry, issuer and audience of tokenString.
func (ac *AuthClient) ParseToken(tokenString string) (*Web3AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if ac.issuer != "" {
		opts = append(opts, jwt.WithIssuer(ac.issuer))
	}
	if ac.audience != "" {
		opts = append(opts, jwt.WithAudience(ac.audience))
	}

	claims := &Web3AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ac.keyfunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RequireWallet authenticates the caller from the Bearer token and stores the user id and
// wallet address on the context.
func (ac *AuthClient) RequireWallet() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, ErrMissingToken)
			return
		}

		claims, err := ac.ParseToken(tokenString)
		if err != nil {
			ac.logger.Info("JWT token validation failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
			abortUnauthorized(c, ErrInvalidToken)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		wallet, err := claims.WalletAddress()
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyWalletAddress, wallet)
		c.Set(constants.ContextKeyAuthType, constants.AuthTypeJWT)
		c.Next()
	}
}

// RequireAdminKey admits requests whose X-Admin-Key header matches the bcrypt hash. An empty
// hash rejects everything.
func RequireAdminKey(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(constants.HeaderAdminKey)
		if hash == "" || key == "" {
			abortUnauthorized(c, ErrInvalidAdminKey)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			logger.Warn("Admin key rejected", zap.String("path", c.Request.URL.Path), zap.String("client_ip", c.ClientIP()))
			abortUnauthorized(c, ErrInvalidAdminKey)
			return
		}
		c.Set(constants.ContextKeyAuthType, constants.AuthTypeAdminKey)
		c.Next()
	}
}

// HashAdminKey returns the bcrypt hash stored in ADMIN_API_KEY_HASH for key.
func HashAdminKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin key: %w", err)
	}
	return string(hashed), nil
}

// GetUserID returns the authenticated user id set by RequireWallet.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetWalletAddress returns the authenticated wallet address set by RequireWallet.
func GetWalletAddress(c *gin.Context) (string, bool) {
	wallet := c.GetString(constants.ContextKeyWalletAddress)
	return wallet, wallet != ""
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	// Web3Auth sessions without an ID token send this placeholder.
	return token, token != "" && token != "no_jwt_token_available"
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
