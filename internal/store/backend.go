package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Entry is one key and its full serialized value.
type Entry struct {
	Key   string
	Value []byte
}

// Backend is the persistent key-value medium behind the record store. Values
// are whole collection snapshots; Put replaces them.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Put writes every entry. Implementations that support it apply the
	// entries atomically; the rest apply them in order.
	Put(ctx context.Context, entries ...Entry) error
	Close() error
}
