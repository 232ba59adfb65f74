package report

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to be behind authentication already.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports/salary")
	{
		reports.GET("", middleware.RateLimitByUser(3, 10), h.Generate)
		reports.GET("/pdf", middleware.RateLimitByUser(0.5, 3), h.DownloadPDF)
		reports.POST("/exports", middleware.RateLimitByUser(0.2, 2), h.RequestExport)
	}
}
