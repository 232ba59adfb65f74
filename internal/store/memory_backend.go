package store

import (
	"context"
	"sync"
)

type memoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend returns a process-local backend. Contents are lost when the
// process exits.
func NewMemoryBackend() Backend {
	return &memoryBackend{data: make(map[string][]byte)}
}

func (b *memoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (b *memoryBackend) Put(ctx context.Context, entries ...Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range entries {
		v := make([]byte, len(e.Value))
		copy(v, e.Value)
		b.data[e.Key] = v
	}
	return nil
}

func (b *memoryBackend) Close() error { return nil }
