package server

import (
	"context"
	"net/http"

	"github.com/cyphera/cyphera-circles/internal/app"
	"github.com/cyphera/cyphera-circles/internal/auth"
	"github.com/cyphera/cyphera-circles/internal/config"
	"github.com/cyphera/cyphera-circles/internal/handlers"
	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/metrics"
	"github.com/cyphera/cyphera-circles/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by InitializeRoutes.
type Handlers struct {
	Health     *handlers.HealthHandler
	Faucet     *handlers.FaucetHandler
	CircleSync *handlers.CircleSyncHandler
	Nonce      *handlers.NonceHandler
}

// Options carries the non-handler pieces the router needs.
type Options struct {
	Stage string
	Port  string

	// UserAuth authenticates end users. Nil rejects every faucet request.
	UserAuth     gin.HandlerFunc
	AdminKeyHash string
	RateLimiter  *middleware.RateLimiter
	CORS         config.CORSConfig
}

// Instances says whether more than one copy of the API process can serve traffic at once.
type Instances int

const (
	// SingleInstance is a long-running process that owns the signer's nonce cursor.
	SingleInstance Instances = iota
	// ScaledInstances may run concurrently, like Lambda containers. The signer is only loaded
	// when SIGNER_SINGLE_INSTANCE is set.
	ScaledInstances
)

// InitializeHandlers loads configuration and builds the application and its handlers. The
// returned cleanup releases the database pool, the ledger connection and the JWKS refresher.
func InitializeHandlers(ctx context.Context, instances Instances) (*Handlers, Options, func(), error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, Options{}, nil, err
	}
	if instances == ScaledInstances {
		cfg.RestrictSignerToSingleInstance()
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, Options{}, nil, err
	}

	opts := Options{
		Stage:        cfg.Stage,
		Port:         cfg.Port,
		AdminKeyHash: cfg.AdminKeyHash,
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		CORS:         cfg.CORS,
	}

	var authClient *auth.AuthClient
	if cfg.Web3Auth.JWKSEndpoint != "" {
		authClient, err = auth.NewAuthClient(cfg.Web3Auth.JWKSEndpoint, cfg.Web3Auth.Issuer, cfg.Web3Auth.Audience)
		if err != nil {
			logger.Error("Failed to initialize Web3Auth client, faucet endpoints will reject requests", zap.Error(err))
		} else {
			opts.UserAuth = authClient.RequireWallet()
		}
	} else {
		logger.Warn("WEB3AUTH_JWKS_ENDPOINT not set, faucet endpoints will reject requests")
	}

	h := NewHandlers(a)
	cleanup := func() {
		if authClient != nil {
			authClient.Close()
		}
		a.Close()
	}
	return h, opts, cleanup, nil
}

// NewHandlers builds the HTTP handlers over an initialized application.
func NewHandlers(a *app.Application) *Handlers {
	var pinger handlers.Pinger
	if a.Pool != nil {
		pinger = a.Pool
	}
	return &Handlers{
		Health:     handlers.NewHealthHandler(pinger),
		Faucet:     handlers.NewFaucetHandler(a.Faucet),
		CircleSync: handlers.NewCircleSyncHandler(a.Sync, a.SyncQueue),
		Nonce:      handlers.NewNonceHandler(a.Nonces, a.Dispatcher),
	}
}

// InitializeRoutes mounts middleware and routes on router.
func InitializeRoutes(router *gin.Engine, h *Handlers, opts Options) {
	router.Use(configureCORS(opts.CORS))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.Health.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")

	userAuth := opts.UserAuth
	if userAuth == nil {
		userAuth = rejectUnauthenticated
	}
	faucet := v1.Group("/faucet", userAuth)
	{
		faucet.POST("/claim", h.Faucet.Claim)
		faucet.GET("/status", h.Faucet.Status)
	}

	admin := v1.Group("/admin", auth.RequireAdminKey(opts.AdminKeyHash))
	{
		admin.POST("/circles/sync", h.CircleSync.SyncAll)
		admin.POST("/circles/:circle_id/sync", h.CircleSync.SyncCircle)
		admin.POST("/circles/:circle_id/sync/enqueue", h.CircleSync.EnqueueSync)
		admin.GET("/nonce", h.Nonce.GetNonce)
		admin.POST("/nonce/reset", h.Nonce.ResetNonce)
	}
}

// NewRouter returns a gin engine in the mode matching stage.
func NewRouter(stage string) *gin.Engine {
	if stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	return router
}

func rejectUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.ErrorResponse{
		Error:         "Authentication is not configured",
		CorrelationID: middleware.GetCorrelationID(c),
	})
}

func configureCORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = cfg.AllowedMethods
	corsConfig.AllowHeaders = cfg.AllowedHeaders
	corsConfig.ExposeHeaders = cfg.ExposedHeaders
	corsConfig.AllowCredentials = true
	return cors.New(corsConfig)
}
