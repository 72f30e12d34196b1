package middleware

import (
	"net/http"
	"strings"

	"pagecraft/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthEditorMiddleware guards mutating editor endpoints. The host
// application issues the tokens; this service only verifies them.
func JWTAuthEditorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		editorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("editorID", editorID)
		c.Next()
	}
}
