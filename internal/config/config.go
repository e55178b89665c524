package config

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	awsclient "github.com/cyphera/cyphera-circles/internal/client/aws"
	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/cyphera/cyphera-circles/internal/constants"
	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// SecretSource resolves secrets by ARN env var with a plain env var fallback.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error
}

// PoolSettings tunes the pgx connection pool for one process.
type PoolSettings struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Web3AuthConfig holds the JWT verification settings for end-user requests.
type Web3AuthConfig struct {
	JWKSEndpoint string
	Issuer       string
	Audience     string
}

// AlertConfig holds the Resend settings used for operator alerts.
type AlertConfig struct {
	ResendAPIKey string
	FromEmail    string
	FromName     string
	To           []string
}

// CORSConfig lists the allowed cross-origin settings.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
}

// Config is the full runtime configuration of a circles process.
type Config struct {
	Stage           string
	DatabaseURL     string
	Pool            PoolSettings
	Chain           chain.Config
	GasDripWei      *big.Int
	TokenDripAmount *big.Int
	SyncConcurrency int
	SyncQueueURL    string
	AdminKeyHash    string
	Web3Auth        Web3AuthConfig
	Alerts          AlertConfig
	CORS            CORSConfig
	RateLimitRPS    int
	RateLimitBurst  int
	Port            string

	// SignerSingleInstance asserts that at most one process of a scaled deployment runs at a
	// time, e.g. a Lambda with reserved concurrency 1.
	SignerSingleInstance bool
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// InitStage loads .env, validates STAGE and initializes the global logger. It returns the stage.
func InitStage() (string, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		return "", fmt.Errorf("invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	return stage, nil
}

// Load initializes the stage and logger, then reads the rest of the configuration. Secrets are
// resolved through AWS Secrets Manager with env var fallback.
func Load(ctx context.Context) (*Config, error) {
	stage, err := InitStage()
	if err != nil {
		return nil, err
	}

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		if isDeployed(stage) {
			return nil, fmt.Errorf("failed to initialize AWS Secrets Manager client: %w", err)
		}
		logger.Warn("AWS Secrets Manager unavailable, reading secrets from env only", zap.Error(err))
		return LoadFrom(ctx, stage, nil)
	}

	return LoadFrom(ctx, stage, secretsClient)
}

// LoadFrom reads configuration for stage using secrets for sensitive values.
func LoadFrom(ctx context.Context, stage string, secrets SecretSource) (*Config, error) {
	log := logger.ForComponent(logger.ComponentAPI)
	log.Info("Loading configuration", zap.String("stage", stage))

	cfg := &Config{
		Stage: stage,
		Pool: PoolSettings{
			MaxConns:        int32(envInt("DB_MAX_CONNS", 20)),
			MinConns:        int32(envInt("DB_MIN_CONNS", 5)),
			MaxConnLifetime: envDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: envDuration("DB_MAX_CONN_IDLE_TIME", 15*time.Minute),
		},
		SyncConcurrency: envInt("SYNC_CONCURRENCY", constants.DefaultSyncConcurrency),
		SyncQueueURL:    os.Getenv("SYNC_QUEUE_URL"),
		RateLimitRPS:    envInt("RATE_LIMIT_RPS", 100),
		RateLimitBurst:  envInt("RATE_LIMIT_BURST", 200),
		Port:            envString("PORT", "8000"),
		CORS:            loadCORS(),
	}

	dsn, err := resolveDSN(ctx, stage, secrets)
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = dsn

	chainID, err := strconv.ParseInt(envString("CHAIN_ID", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAIN_ID: %w", err)
	}
	cfg.Chain = chain.Config{
		RPCURL:               os.Getenv("RPC_URL"),
		ChainID:              chainID,
		SavingsCircleAddress: os.Getenv("SAVINGS_CIRCLE_ADDRESS"),
		TokenAddress:         os.Getenv("TOKEN_ADDRESS"),
		ReadTimeout:          envDuration("CHAIN_READ_TIMEOUT", constants.DefaultChainReadTimeout),
		SubmitTimeout:        envDuration("CHAIN_SUBMIT_TIMEOUT", constants.DefaultChainSubmitTimeout),
	}

	// The signing key is optional. Without it the faucet reports itself unavailable.
	signerKey, err := getSecret(ctx, secrets, "SIGNER_PRIVATE_KEY_ARN", "SIGNER_PRIVATE_KEY")
	if err != nil {
		log.Warn("No signer private key configured, faucet disbursements will be unavailable")
	} else {
		if !helpers.IsPrivateKeyValid(signerKey) {
			return nil, fmt.Errorf("SIGNER_PRIVATE_KEY is not a valid private key")
		}
		cfg.Chain.SignerPrivateKey = signerKey
	}

	if cfg.SignerSingleInstance, err = envBool("SIGNER_SINGLE_INSTANCE", false); err != nil {
		return nil, err
	}

	if cfg.GasDripWei, err = envBigInt("GAS_DRIP_WEI", "10000000000000000"); err != nil {
		return nil, err
	}
	if cfg.TokenDripAmount, err = envBigInt("TOKEN_DRIP_AMOUNT", "1000000000"); err != nil {
		return nil, err
	}

	adminHash, err := getSecret(ctx, secrets, "ADMIN_API_KEY_HASH_ARN", "ADMIN_API_KEY_HASH")
	if err != nil {
		log.Warn("ADMIN_API_KEY_HASH not set, admin endpoints will reject every request")
	}
	cfg.AdminKeyHash = adminHash

	cfg.Web3Auth = Web3AuthConfig{
		JWKSEndpoint: os.Getenv("WEB3AUTH_JWKS_ENDPOINT"),
		Issuer:       os.Getenv("WEB3AUTH_ISSUER"),
		Audience:     os.Getenv("WEB3AUTH_AUDIENCE"),
	}

	resendKey, err := getSecret(ctx, secrets, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendKey == "" {
		log.Warn("Failed to get Resend API Key. Nonce gap alerts will only be logged.", zap.Error(err))
		resendKey = ""
	}
	cfg.Alerts = AlertConfig{
		ResendAPIKey: resendKey,
		FromEmail:    envString("EMAIL_FROM_ADDRESS", "alerts@cyphera.com"),
		FromName:     envString("EMAIL_FROM_NAME", "Cyphera Circles"),
		To:           splitList(os.Getenv("ALERT_EMAIL_TO")),
	}

	return cfg, nil
}

// AlertsEnabled reports whether nonce gap alerts can be emailed.
func (c *Config) AlertsEnabled() bool {
	return c.Alerts.ResendAPIKey != "" && len(c.Alerts.To) > 0
}

// RestrictSignerToSingleInstance clears the signing key unless SignerSingleInstance is set.
// Scaled entrypoints call it because nonce cursors are per process. It reports whether the key
// was dropped.
func (c *Config) RestrictSignerToSingleInstance() bool {
	if c.Chain.SignerPrivateKey == "" || c.SignerSingleInstance {
		return false
	}
	c.Chain.SignerPrivateKey = ""
	logger.Warn("Signer disabled on a scaled deployment, set SIGNER_SINGLE_INSTANCE=true only with reserved concurrency 1")
	return true
}

// NewPool parses dsn and opens a tuned connection pool.
func NewPool(ctx context.Context, dsn string, settings PoolSettings) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	poolConfig.MaxConns = settings.MaxConns
	poolConfig.MinConns = settings.MinConns
	poolConfig.MaxConnLifetime = settings.MaxConnLifetime
	poolConfig.MaxConnIdleTime = settings.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}

func isDeployed(stage string) bool {
	return stage == helpers.StageProd || stage == helpers.StageDev
}

func resolveDSN(ctx context.Context, stage string, secrets SecretSource) (string, error) {
	if !isDeployed(stage) {
		dsn, err := getSecret(ctx, secrets, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL is required for local development: %w", err)
		}
		return dsn, nil
	}

	dbEndpoint := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	dbSSLMode := envString("DB_SSLMODE", "require")
	if dbEndpoint == "" || dbName == "" {
		return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
	}
	if secrets == nil {
		return "", fmt.Errorf("secrets client required to read RDS_SECRET_ARN")
	}

	var secret rdsSecret
	if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", fmt.Errorf("failed to retrieve or parse RDS secret: %w", err)
	}
	if secret.Username == "" || secret.Password == "" {
		return "", fmt.Errorf("username or password not found in RDS secret data")
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		dbEndpoint, dbName, dbSSLMode), nil
}

func getSecret(ctx context.Context, secrets SecretSource, arnEnv, fallbackEnv string) (string, error) {
	if secrets == nil {
		if value := os.Getenv(fallbackEnv); value != "" {
			return value, nil
		}
		return "", fmt.Errorf("secret not found in env var '%s'", fallbackEnv)
	}
	return secrets.GetSecretString(ctx, arnEnv, fallbackEnv)
}

func loadCORS() CORSConfig {
	cfg := CORSConfig{
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AllowedMethods: splitList(os.Getenv("CORS_ALLOWED_METHODS")),
		AllowedHeaders: splitList(os.Getenv("CORS_ALLOWED_HEADERS")),
		ExposedHeaders: splitList(os.Getenv("CORS_EXPOSED_HEADERS")),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", constants.HeaderAdminKey, "X-Correlation-ID"}
	}
	if len(cfg.ExposedHeaders) == 0 {
		cfg.ExposedHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", "X-Correlation-ID"}
	}
	return cfg
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logger.Warn("Invalid integer env var, using default", zap.String("key", key), zap.String("value", v))
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logger.Warn("Invalid duration env var, using default", zap.String("key", key), zap.String("value", v))
		return def
	}
	return d
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, v)
	}
	return b, nil
}

func envBigInt(key, def string) (*big.Int, error) {
	v := envString(key, def)
	n, ok := new(big.Int).SetString(v, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid %s: %s", key, v)
	}
	return n, nil
}
