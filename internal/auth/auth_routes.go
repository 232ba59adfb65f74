package auth

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authenticate gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", authenticate, middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
