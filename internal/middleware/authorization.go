package middleware

import (
	"net/http"
	"strings"

	"affiliate_portal/internal/model"
	"affiliate_portal/pkg/auth"
	"affiliate_portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

type Authorization struct {
	sessions *auth.SessionManager
}

func NewAuthorization(sessions *auth.SessionManager) *Authorization {
	return &Authorization{
		sessions: sessions,
	}
}

// RequireSession validates the Bearer session token and stores the
// principal in the request context.
func (a *Authorization) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Info("missing authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Info("invalid authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := a.sessions.Verify(token)
		if err != nil {
			log.Info("invalid session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// AdminOnly rejects principals that are not the administrative identity.
func (a *Authorization) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		principal, ok := PrincipalFromContext(c)
		if !ok {
			log.Error("principal not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !principal.Admin {
			log.Info("unauthorized access attempt to admin endpoint")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}

// PrincipalFromContext returns the principal stored by RequireSession.
func PrincipalFromContext(c *gin.Context) (*model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}

	principal, ok := value.(*model.Principal)
	if !ok {
		return nil, false
	}
	return principal, true
}
