package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mardika/inventory-service/internal/auth"
	"github.com/mardika/inventory-service/internal/httputil"
)

// ClientIDKey is the gin context key carrying the authenticated client
// identifier (the token subject).
const ClientIDKey = "client_id"

// RequireAuth verifies the bearer token on every request behind the gate.
// Requests without a valid token never reach an entity handler.
func RequireAuth(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.AbortError(c, http.StatusUnauthorized, auth.ErrMissingToken.Error())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.AbortError(c, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			httputil.AbortError(c, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			return
		}

		c.Set(ClientIDKey, claims.Subject)
		c.Next()
	}
}

// ClientID returns the authenticated client identifier, or "" on public
// routes.
func ClientID(c *gin.Context) string {
	id, _ := c.Get(ClientIDKey)
	s, _ := id.(string)
	return s
}
