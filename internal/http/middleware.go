package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader is the HTTP header used to carry the request correlation ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the Gin context key holding the request ID.
	RequestIDKey = "request_id"

	// LoggerKey is the Gin context key holding the request-scoped *zerolog.Logger.
	LoggerKey = "logger"
)

// RequestID reuses an incoming X-Request-ID or generates a UUID, stores it
// in the Gin context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID, or "" if RequestID did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// RequestLogger emits one structured line per request, with severity
// derived from the response status.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := base.With().Str("request_id", GetRequestID(c)).Logger()
		c.Set(LoggerKey, &reqLog)

		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			e = reqLog.Error()
		case status >= http.StatusBadRequest:
			e = reqLog.Warn()
		default:
			e = reqLog.Info()
		}

		e = e.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("size", c.Writer.Size()).
			Str("client_ip", c.ClientIP())
		if len(c.Errors) > 0 {
			e = e.Str("errors", c.Errors.String())
		}
		e.Msg("API")
	}
}

// Recovery turns panics into a logged 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		loggerFrom(c).Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  CodeInternal,
		})
	})
}

// loggerFrom returns the request-scoped logger, or a no-op logger.
func loggerFrom(c *gin.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey); ok {
		if l, ok := logger.(*zerolog.Logger); ok {
			return l
		}
	}
	nop := zerolog.Nop()
	return &nop
}
