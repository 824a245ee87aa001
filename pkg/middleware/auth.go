package middleware

import (
	"net/http"
	"strings"

	"snapboard/pkg/jwt"
	"snapboard/pkg/session"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and binds the acting user to the
// request context. Handlers read "user_id" and pass it explicitly into use cases.
func AuthMiddleware(jwtService *jwt.Service, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if sessions != nil {
			revoked, err := sessions.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Session check failed"})
				c.Abort()
				return
			}
			if revoked {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("nickname", claims.Nickname)
		c.Set("token_id", claims.ID)
		c.Set("token_expires_at", claims.ExpiresAt.Time)
		c.Next()
	}
}
