package employee

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes expects r to be behind authentication already. rdb may be
// nil, which disables idempotent replay of POST requests.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		employees.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		employees.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		employees.PUT("/:id", middleware.RateLimitByUser(0.5, 3), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByUser(0.2, 2), handler.Delete)
	}
}
