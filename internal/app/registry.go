package app

import (
	"go-ems/internal/attendance"
	"go-ems/internal/auth"
	"go-ems/internal/bootstrap"
	"go-ems/internal/employee"
	"go-ems/internal/middleware"
	"go-ems/internal/report"
	"go-ems/internal/salary"
	"go-ems/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type modules struct {
	cfg       Config
	store     store.Store
	rdb       *redis.Client
	publisher report.EventPublisher
	admin     auth.Admin
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, m modules) {
	// --- Services ---
	authService := auth.NewService(auth.NewStaticRepository(m.admin), auth.TokenConfig{
		Secret: m.cfg.JWTSecret,
		TTL:    m.cfg.SessionTTL,
	}, m.logger)
	aggregator := attendance.NewAggregator(m.store, m.cfg.MissingDayPolicy, m.logger)
	attendanceService := attendance.NewService(m.store, aggregator, m.logger)
	calculator := salary.NewCalculator(aggregator, m.logger)
	reportService := report.NewService(m.store, calculator, m.publisher, m.logger)
	employeeService := employee.NewService(m.store, bootstrap.NewZapAuditLogger(m.logger), m.logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, m.cfg.IsProduction(), m.logger)
	attendanceHandler := attendance.NewHandler(attendanceService, m.logger)
	employeeHandler := employee.NewHandler(employeeService, m.logger)
	reportHandler := report.NewHandler(reportService, m.logger)

	// --- Routes ---
	authenticate := middleware.AuthMiddleware(m.cfg.JWTSecret)

	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, authHandler, authenticate)

	protected := api.Group("",
		authenticate,
		middleware.ExtractUserID(),
		middleware.ContextLogger(m.logger),
		middleware.RoleMiddleware(auth.RoleAdmin),
	)
	{
		employee.RegisterRoutes(protected, employeeHandler, m.rdb, m.logger)
		attendance.RegisterRoutes(protected, attendanceHandler)
		report.RegisterRoutes(protected, reportHandler)
	}
}
