package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

type fileBackend struct {
	dir string
}

// NewFileBackend stores each key as <dir>/<key>.json. Each file is replaced
// atomically through a temp file and rename; a multi-entry Put writes the
// files in order, so an interrupted Put is completed by repeating it.
func NewFileBackend(dir string) (Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &fileBackend{dir: dir}, nil
}

func (b *fileBackend) path(key string) string {
	return filepath.Join(b.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (b *fileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}

func (b *fileBackend) Put(ctx context.Context, entries ...Entry) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.writeFile(e); err != nil {
			return err
		}
	}
	return nil
}

func (b *fileBackend) writeFile(e Entry) error {
	tmp, err := os.CreateTemp(b.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", e.Key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(e.Value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", e.Key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", e.Key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", e.Key, err)
	}
	if err := os.Rename(tmpName, b.path(e.Key)); err != nil {
		return fmt.Errorf("rename %s: %w", e.Key, err)
	}
	return nil
}

func (b *fileBackend) Close() error { return nil }
