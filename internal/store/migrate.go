package store

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// goose keeps its settings in package state.
var migrateMu sync.Mutex

// Migrate brings the kv_entries schema up to date. db must use the postgres
// or sqlite dialector.
func Migrate(db *gorm.DB) error {
	var dialect string
	switch name := db.Dialector.Name(); name {
	case "postgres":
		dialect = "postgres"
	case "sqlite":
		dialect = "sqlite3"
	default:
		return fmt.Errorf("no migrations for dialect %q", name)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
