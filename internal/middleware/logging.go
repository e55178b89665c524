package middleware

import (
	"strconv"
	"time"

	"github.com/cyphera/cyphera-circles/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLoggingMiddleware logs one line per completed request and records the HTTP metrics.
// Routes are labelled by their registered pattern so path parameters do not explode cardinality.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(duration.Seconds())

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}

		log := LoggerFromContext(c.Request.Context())
		switch {
		case len(c.Errors) > 0:
			for _, err := range c.Errors {
				log.Error("Request error", zap.Error(err.Err))
			}
			log.Warn("Request completed with errors", fields...)
		case status >= 500:
			log.Error("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}
