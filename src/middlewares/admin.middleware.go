package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ealert.io/src/utils"
)

// AdminAuth guards the admin listing endpoints. It expects the bearer token
// issued by the admin login and rejects anything else with a 401.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseAdminToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("admin", claims.Subject)
		c.Next()
	}
}
