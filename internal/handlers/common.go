package handlers

import (
	"errors"
	"net/http"

	"github.com/cyphera/cyphera-circles/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// sendError logs err with the request's correlation id and writes a JSON error response.
// 5xx responses log at error level, everything else at info.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LoggerFromContext(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Info(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message, CorrelationID: middleware.GetCorrelationID(c)})
}

// handleDBError maps store errors to HTTP status codes
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// parseUUIDParam reads a uuid path parameter, writing a 400 when it is malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+name+" format", err)
		return uuid.Nil, false
	}
	return id, true
}

func unixOrNil(ts pgtype.Timestamptz) *int64 {
	if !ts.Valid {
		return nil
	}
	v := ts.Time.Unix()
	return &v
}
