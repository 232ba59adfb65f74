package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go-ems/internal/attendance"
)

const devJWTSecret = "dev-only-jwt-secret"

type Config struct {
	Port             string
	Env              string
	Store            StoreConfig
	Database         DatabaseConfig
	RedisAddr        string
	KafkaBroker      string
	ReportExportDir  string
	Admin            AdminConfig
	JWTSecret        string
	SessionTTL       time.Duration
	MissingDayPolicy attendance.MissingDayPolicy
}

type StoreConfig struct {
	Driver    string
	Path      string
	KeyPrefix string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AdminConfig struct {
	Email        string
	Name         string
	Password     string
	PasswordHash string
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig reads the process environment. Call godotenv.Load first to
// pick up a .env file.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "3000"),
		Env:  strings.ToLower(getEnv("APP_ENV", "development")),
		Store: StoreConfig{
			Driver:    strings.ToLower(getEnv("STORE_DRIVER", "file")),
			Path:      getEnv("STORE_PATH", "./data"),
			KeyPrefix: getEnv("STORE_KEY_PREFIX", "ems:"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ems"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		ReportExportDir: getEnv("REPORT_EXPORT_DIR", "./exports"),
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@gmail.com"),
			Name:         getEnv("ADMIN_NAME", "Administrator"),
			Password:     getEnv("ADMIN_PASSWORD", "admin@123"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	policy, err := attendance.ParseMissingDayPolicy(os.Getenv("ATTENDANCE_MISSING_DAY_POLICY"))
	if err != nil {
		return Config{}, err
	}
	cfg.MissingDayPolicy = policy

	switch cfg.Store.Driver {
	case "memory", "file", "redis", "postgres", "sqlite":
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	if cfg.Store.Driver == "redis" && cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("REDIS_ADDR is required for the redis store driver")
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
