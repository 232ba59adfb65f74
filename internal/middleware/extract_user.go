package middleware

import (
	"net/http"

	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ExtractUserID re-publishes the authenticated user_id as a checked string
// under user_id_validated for the middlewares that follow.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated", nil)
			c.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_USER_ID", "Malformed user_id", nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userIDStr)
		c.Next()
	}
}
