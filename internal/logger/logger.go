package logger

import (
	"os"
	"strings"

	"github.com/cyphera/cyphera-circles/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Use L() when it may not be initialized yet.
var Log *zap.Logger

// Component names attached to child loggers
const (
	ComponentAPI       = "api"
	ComponentSync      = "circle_sync"
	ComponentNonce     = "nonce"
	ComponentDispatch  = "dispatch"
	ComponentFaucet    = "faucet"
	ComponentChain     = "chain"
	ComponentProcessor = "processor"
)

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level string `json:"level"`
	Stage string `json:"stage"`
	// JSON selects the structured encoder; prod always uses it.
	JSON bool `json:"json"`
}

// InitLogger configures Log for stage. LOG_LEVEL overrides the default info level.
func InitLogger(stage string) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	InitLoggerWithConfig(LoggerConfig{
		Level: level,
		Stage: stage,
		JSON:  stage == constants.ProdEnvironment,
	})
}

// InitLoggerWithConfig replaces Log. It panics if zap rejects the configuration.
func InitLoggerWithConfig(cfg LoggerConfig) {
	level := parseLevel(cfg.Level)
	structured := cfg.JSON || cfg.Stage == constants.ProdEnvironment

	var zc zap.Config
	if structured {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig = jsonEncoderConfig()
		zc.InitialFields = map[string]interface{}{
			"service": constants.ServiceName,
			"stage":   cfg.Stage,
		}
		// stack traces only when debugging prod
		zc.DisableStacktrace = level > zapcore.DebugLevel
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig = consoleEncoderConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	built, err := zc.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = built
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return ec
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	return ec
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// L returns the global logger, or a no-op logger when InitLogger has not run.
func L() *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}
	return Log
}

// ForComponent returns a child logger tagged with the component name.
func ForComponent(component string) *zap.Logger {
	return L().With(zap.String("component", component))
}

func Info(msg string, fields ...zapcore.Field) { L().Info(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { L().Error(msg, fields...) }
func Debug(msg string, fields ...zapcore.Field) { L().Debug(msg, fields...) }
func Warn(msg string, fields ...zapcore.Field) { L().Warn(msg, fields...) }

// Fatal logs at FatalLevel and then calls os.Exit(1)
func Fatal(msg string, fields ...zapcore.Field) { L().Fatal(msg, fields...) }

// With creates a child logger and adds structured context to it
func With(fields ...zapcore.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return L().Sync()
}
