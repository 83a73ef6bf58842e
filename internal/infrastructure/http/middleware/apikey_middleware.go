package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/lifelogkit/lifelog-exporter/errors"
)

// apiKeyContextKey is the echo context key the resolved lifelog API key is
// stored under.
const apiKeyContextKey = "lifelog_api_key"

// APIKeyMiddleware resolves the upstream lifelog API key for each request.
// The key is passed through to the fetch collaborator, never stored.
type APIKeyMiddleware struct {
	fallbackKey string
}

// NewAPIKeyMiddleware creates the middleware. fallbackKey is the optional
// server-wide key used when a request carries none.
func NewAPIKeyMiddleware(fallbackKey string) *APIKeyMiddleware {
	return &APIKeyMiddleware{fallbackKey: fallbackKey}
}

// Require extracts the API key from X-API-Key or a bearer Authorization
// header, falling back to the configured server key. Requests without any
// key get 401.
func (m *APIKeyMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := extractAPIKey(c.Request())
		if key == "" {
			key = m.fallbackKey
		}
		if key == "" {
			appErr := apperrors.ErrUnauthenticated()
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": appErr.Message,
				"code":  appErr.Code.String(),
			})
		}

		c.Set(apiKeyContextKey, key)
		return next(c)
	}
}

// APIKeyFromContext returns the key resolved by Require, or "".
func APIKeyFromContext(c echo.Context) string {
	key, _ := c.Get(apiKeyContextKey).(string)
	return key
}

// extractAPIKey checks the X-API-Key header first, then a bearer token.
func extractAPIKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return strings.TrimSpace(key)
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}
