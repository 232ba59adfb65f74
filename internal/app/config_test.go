package app

import (
	"testing"
	"time"

	"go-ems/internal/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "APP_ENV", "STORE_DRIVER", "STORE_PATH", "REDIS_ADDR", "KAFKA_BROKER",
		"JWT_SECRET", "SESSION_TTL", "ATTENDANCE_MISSING_DAY_POLICY", "ADMIN_EMAIL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "./data", cfg.Store.Path)
	assert.Equal(t, "admin@gmail.com", cfg.Admin.Email)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, attendance.MissingDayIgnore, cfg.MissingDayPolicy)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("ATTENDANCE_MISSING_DAY_POLICY", "absent")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, attendance.MissingDayAbsent, cfg.MissingDayPolicy)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("REDIS_ADDR", "")

	t.Setenv("APP_ENV", "production")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("APP_ENV", "development")
	t.Setenv("STORE_DRIVER", "mongo")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "redis")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "REDIS_ADDR")

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SESSION_TTL", "forever")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "SESSION_TTL")

	t.Setenv("SESSION_TTL", "")
	t.Setenv("ATTENDANCE_MISSING_DAY_POLICY", "penalise")
	_, err = LoadConfig()
	assert.Error(t, err)
}
