package app

import (
	"errors"
	"fmt"

	"go-ems/internal/auth"
	"go-ems/internal/messaging/kafka/producer"
	"go-ems/internal/middleware"
	"go-ems/internal/report"
	"go-ems/internal/shared/connection"
	"go-ems/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const connectRetries = 5

// App is the wired HTTP application plus the resources it must release.
type App struct {
	Router  *gin.Engine
	closers []func() error
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// BuildApp connects the configured infrastructure and registers every route.
func BuildApp(cfg Config, logger *zap.Logger) (*App, error) {
	a := &App{}

	backend, rdb, err := openBackend(cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, backend.Close)

	if rdb == nil && cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
	}

	var publisher report.EventPublisher
	if cfg.KafkaBroker != "" {
		if err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries, logger); err != nil {
			a.Close()
			return nil, err
		}
		writer := producer.NewWriter(cfg.KafkaBroker)
		a.closers = append(a.closers, writer.Close)
		publisher = report.NewKafkaEventPublisher(writer)
	}

	admin, err := adminAccount(cfg.Admin)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())

	registerModules(router, modules{
		cfg:       cfg,
		store:     store.New(backend, logger),
		rdb:       rdb,
		publisher: publisher,
		admin:     admin,
		logger:    logger,
	})

	a.Router = router
	logger.Info("application built",
		zap.String("store_driver", cfg.Store.Driver),
		zap.Bool("idempotency", rdb != nil),
		zap.Bool("export_queue", publisher != nil),
		zap.String("missing_day_policy", string(cfg.MissingDayPolicy)),
	)
	return a, nil
}

// openBackend returns the record store backend for cfg.Store.Driver. For the
// redis driver the client is returned too so it can be shared.
func openBackend(cfg Config, logger *zap.Logger) (store.Backend, *redis.Client, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryBackend(), nil, nil
	case "file":
		b, err := store.NewFileBackend(cfg.Store.Path)
		return b, nil, err
	case "redis":
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisBackend(rdb, cfg.Store.KeyPrefix), rdb, nil
	case "postgres":
		d := cfg.Database
		dsn := connection.PostgresDSN(d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode)
		db, err := connection.ConnectGORMWithRetry(connection.PostgresDialector(dsn), connectRetries, logger)
		if err != nil {
			return nil, nil, err
		}
		b, err := store.NewGormBackend(db)
		return b, nil, err
	case "sqlite":
		db, err := connection.ConnectGORMWithRetry(connection.SQLiteDialector(cfg.Store.Path), connectRetries, logger)
		if err != nil {
			return nil, nil, err
		}
		b, err := store.NewGormBackend(db)
		return b, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func adminAccount(cfg AdminConfig) (auth.Admin, error) {
	hash := cfg.PasswordHash
	if hash == "" {
		b, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return auth.Admin{}, fmt.Errorf("hash admin password: %w", err)
		}
		hash = string(b)
	}
	return auth.Admin{Email: cfg.Email, Name: cfg.Name, PasswordHash: hash}, nil
}
