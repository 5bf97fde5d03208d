package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokescout/internal/pokeapi"
	"github.com/mrlokans/pokescout/internal/services"
)

// Machine-readable error codes returned in ErrorResponse.Code.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeInvalidName         = "INVALID_NAME"
	CodeUpstreamNotFound    = "UPSTREAM_NOT_FOUND"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamMalformed   = "UPSTREAM_MALFORMED"
	CodeInternal            = "INTERNAL"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context
}

// --- Error Response Helpers ---

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	loggerFrom(c).Error().Err(err).Str("context", context).Msg("internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternal})
}

// respondServiceError translates a service or upstream error into a status code.
// Unrecognised errors become a 500.
func respondServiceError(c *gin.Context, err error, context string) {
	status, code := classifyError(err)
	if status == http.StatusInternalServerError {
		respondInternalError(c, err, context)
		return
	}
	if status >= http.StatusInternalServerError {
		loggerFrom(c).Warn().Err(err).Str("context", context).Msg("upstream failure")
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// classifyError maps an error to a status code and response code.
// An upstream 404 stays a 404 (UPSTREAM_NOT_FOUND) since the name simply does
// not exist; other upstream failures are 502.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidName):
		return http.StatusBadRequest, CodeInvalidName
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, CodeAlreadyExists
	case errors.Is(err, pokeapi.ErrUpstreamNotFound):
		return http.StatusNotFound, CodeUpstreamNotFound
	case errors.Is(err, pokeapi.ErrUpstreamMalformedResponse):
		return http.StatusBadGateway, CodeUpstreamMalformed
	case errors.Is(err, pokeapi.ErrUpstreamUnavailable):
		return http.StatusBadGateway, CodeUpstreamUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
