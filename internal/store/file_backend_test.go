package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-ems/internal/domain"
	"go-ems/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := store.NewFileBackend(filepath.Join(dir, "data"))
	require.NoError(t, err)
	defer b.Close()

	t.Run("missing key", func(t *testing.T) {
		_, err := b.Get(ctx, "employees")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, b.Put(ctx,
			store.Entry{Key: "employees", Value: []byte(`[{"id":"1"}]`)},
			store.Entry{Key: "attendance", Value: []byte(`[]`)},
		))

		v, err := b.Get(ctx, "employees")
		assert.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(v))

		_, err = os.Stat(filepath.Join(dir, "data", "attendance.json"))
		assert.NoError(t, err)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Join(dir, "data"))
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp-")
		}
	})

	t.Run("key is sanitised", func(t *testing.T) {
		require.NoError(t, b.Put(ctx, store.Entry{Key: "../escape", Value: []byte(`[]`)}))
		_, err := os.Stat(filepath.Join(dir, "escape.json"))
		assert.True(t, os.IsNotExist(err))

		v, err := b.Get(ctx, "../escape")
		assert.NoError(t, err)
		assert.Equal(t, "[]", string(v))
	})
}

func TestFileBackend_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b1, err := store.NewFileBackend(dir)
	require.NoError(t, err)
	s1 := store.New(b1)
	require.NoError(t, s1.AddEmployee(ctx, newEmployee("1", "EMP-1")))
	require.NoError(t, s1.UpsertAttendance(ctx, newRecord("1", "2024-03-01", domain.StatusPresent)))

	b2, err := store.NewFileBackend(dir)
	require.NoError(t, err)
	s2 := store.New(b2)

	emps, err := s2.ListEmployees(ctx)
	assert.NoError(t, err)
	assert.Len(t, emps, 1)

	recs, err := s2.GetEmployeeAttendance(ctx, "1", "", "")
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "1-2024-03-01", recs[0].ID)
}
