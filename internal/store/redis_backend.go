package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisBackend struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBackend keeps every collection under <prefix><key>. Multi-entry
// writes run in a single MULTI/EXEC.
func NewRedisBackend(rdb *redis.Client, prefix string) Backend {
	return &redisBackend{rdb: rdb, prefix: prefix}
}

func (b *redisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.rdb.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (b *redisBackend) Put(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := b.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range entries {
			pipe.Set(ctx, b.prefix+e.Key, e.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put: %w", err)
	}
	return nil
}

func (b *redisBackend) Close() error {
	return b.rdb.Close()
}
