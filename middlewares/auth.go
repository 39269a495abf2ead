package middlewares

import (
	"net/http"
	"strings"

	"github.com/jculp24/thrsty/services"
	"github.com/jculp24/thrsty/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token, rejects revoked sessions and
// (if given) enforces a role.
func AuthMiddleware(secret string, blacklist *services.TokenBlacklist, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}
		if blacklist != nil && blacklist.IsRevoked(claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "session revoked"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("tokenId", claims.ID)
		c.Set("claims", claims)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
