package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"wanderplan/pkg/utils"
)

// IdentityMiddleware resolves the caller's user id for the itinerary routes.
// A valid bearer token wins; the X-User-ID header is kept as a fallback for
// clients that have not adopted tokens yet. Anonymous callers are allowed
// through with an empty user id and the service assigns them one.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Next()
				return
			}
		}

		c.Set("user_id", c.GetHeader("X-User-ID"))
		c.Next()
	}
}
