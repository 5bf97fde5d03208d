package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/pokescout/internal/config"
)

// HeaderAPIKey is the alternative to a bearer Authorization header.
const HeaderAPIKey = "X-API-Key"

// Middleware rejects unauthenticated requests when an API key hash is configured.
type Middleware struct {
	hash string
}

// NewMiddleware creates the API key middleware. A blank hash disables it.
func NewMiddleware(cfg config.Auth) *Middleware {
	return &Middleware{hash: strings.TrimSpace(cfg.APIKeyHash)}
}

// Enabled reports whether requests must carry a key.
func (m *Middleware) Enabled() bool {
	return m.hash != ""
}

// RequireKey returns a Gin handler that aborts with 401 unless the request
// presents the configured key.
func (m *Middleware) RequireKey() gin.HandlerFunc {
	if !m.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := extractKey(c)
		if key == "" || CheckKey(key, m.hash) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "valid API key required",
				"code":  "UNAUTHORIZED",
			})
			return
		}
		c.Next()
	}
}

// ValidateHash checks that a configured value is a usable bcrypt hash.
func ValidateHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return err
	}
	return nil
}

func extractKey(c *gin.Context) string {
	if key := c.GetHeader(HeaderAPIKey); key != "" {
		return key
	}

	// Extract token from "Bearer <token>"
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
