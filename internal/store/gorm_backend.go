package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	gormMaxAttempts     = 3
	pgSerializationCode = "40001"
)

type kvEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:191"`
	Value     []byte    `gorm:"column:entry_value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvEntry) TableName() string { return "kv_entries" }

type gormBackend struct {
	db *gorm.DB
}

// NewGormBackend keeps collections as rows of the kv_entries table, migrating
// the schema first. A multi-entry Put is one SQL transaction.
func NewGormBackend(db *gorm.DB) (Backend, error) {
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &gormBackend{db: db}, nil
}

func (b *gormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var row kvEntry
	err := b.db.WithContext(ctx).Where("entry_key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return row.Value, nil
}

func (b *gormBackend) Put(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	var err error
	for attempt := 1; attempt <= gormMaxAttempts; attempt++ {
		err = b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, e := range entries {
				row := kvEntry{Key: e.Key, Value: e.Value, UpdatedAt: time.Now().UTC()}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "entry_key"}},
					DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
				}).Create(&row).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil || !isSerializationFailure(err) {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 20 * time.Millisecond):
		}
	}
	if err != nil {
		return fmt.Errorf("upsert kv entries: %w", err)
	}
	return nil
}

func (b *gormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgSerializationCode
}
