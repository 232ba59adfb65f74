package attendance

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to be behind authentication already.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("/daily", middleware.RateLimitByUser(5, 20), h.GetDaily)
		attendances.PUT("", middleware.RateLimitByUser(5, 20), h.Mark)
	}

	r.GET("/employees/:id/attendances", middleware.RateLimitByUser(3, 10), h.GetEmployeeAttendance)
}
