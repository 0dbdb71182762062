package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key holding the authenticated *users.User.
const ContextUserKey = "auth.user"

const bearerPrefix = "Bearer "

// RequireAuth is the auth gate: it extracts the bearer token from the
// Authorization header, resolves it, and looks the claimed user up in the
// directory. Every rejection returns the identical 401 body so callers
// cannot tell which stage failed.
func (s *HTTPServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			rejectUnauthenticated(c)
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			rejectUnauthenticated(c)
			return
		}

		user, err := s.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "unauthorized",
	})
}
