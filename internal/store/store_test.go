package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-ems/internal/domain"
	"go-ems/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	putFn func(ctx context.Context, entries ...store.Entry) error
}

func (f *fakeBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getFn == nil {
		return nil, store.ErrNotFound
	}
	return f.getFn(ctx, key)
}

func (f *fakeBackend) Put(ctx context.Context, entries ...store.Entry) error {
	if f.putFn == nil {
		return nil
	}
	return f.putFn(ctx, entries...)
}

func (f *fakeBackend) Close() error { return nil }

func newEmployee(id, code string) domain.Employee {
	return domain.Employee{
		ID:           id,
		EmployeeCode: code,
		Name:         "Employee " + code,
		Department:   domain.DepartmentIT,
		DailySalary:  decimal.NewFromInt(1000),
	}
}

func newRecord(empID, date, status string) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		ID:         domain.AttendanceID(empID, date),
		EmployeeID: empID,
		Date:       date,
		Status:     status,
		Amount:     domain.AmountFor(status, decimal.NewFromInt(1000)),
	}
}

func TestStore_EmptyBackend(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	ctx := context.Background()

	emps, err := s.ListEmployees(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, emps)
	assert.Empty(t, emps)

	recs, err := s.ListAttendance(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestStore_Employees(t *testing.T) {
	ctx := context.Background()

	t.Run("add keeps insertion order", func(t *testing.T) {
		s := store.New(store.NewMemoryBackend())
		require.NoError(t, s.AddEmployee(ctx, newEmployee("1", "EMP-1")))
		require.NoError(t, s.AddEmployee(ctx, newEmployee("2", "EMP-2")))

		emps, err := s.ListEmployees(ctx)
		assert.NoError(t, err)
		assert.Len(t, emps, 2)
		assert.Equal(t, "1", emps[0].ID)
		assert.Equal(t, "2", emps[1].ID)
		assert.True(t, emps[0].DailySalary.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("update replaces matching id", func(t *testing.T) {
		s := store.New(store.NewMemoryBackend())
		require.NoError(t, s.SaveEmployees(ctx, []domain.Employee{newEmployee("1", "EMP-1"), newEmployee("2", "EMP-2")}))

		changed := newEmployee("2", "EMP-2")
		changed.Name = "Renamed"
		changed.DailySalary = decimal.NewFromInt(1500)
		require.NoError(t, s.UpdateEmployee(ctx, changed))

		emps, _ := s.ListEmployees(ctx)
		assert.Len(t, emps, 2)
		assert.Equal(t, "Renamed", emps[1].Name)
		assert.True(t, emps[1].DailySalary.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("update unknown id is a no-op", func(t *testing.T) {
		s := store.New(store.NewMemoryBackend())
		require.NoError(t, s.AddEmployee(ctx, newEmployee("1", "EMP-1")))

		assert.NoError(t, s.UpdateEmployee(ctx, newEmployee("missing", "EMP-9")))

		emps, _ := s.ListEmployees(ctx)
		assert.Len(t, emps, 1)
		assert.Equal(t, "1", emps[0].ID)
	})
}

func TestStore_UpsertAttendance(t *testing.T) {
	ctx := context.Background()

	t.Run("identical upsert is idempotent", func(t *testing.T) {
		s := store.New(store.NewMemoryBackend())
		rec := newRecord("1", "2024-03-01", domain.StatusPresent)

		require.NoError(t, s.UpsertAttendance(ctx, rec))
		first, _ := s.ListAttendance(ctx)
		require.NoError(t, s.UpsertAttendance(ctx, rec))
		second, _ := s.ListAttendance(ctx)

		assert.Len(t, second, 1)
		assert.Equal(t, first, second)
	})

	t.Run("same day replaces in place", func(t *testing.T) {
		s := store.New(store.NewMemoryBackend())
		require.NoError(t, s.UpsertAttendance(ctx, newRecord("1", "2024-03-01", domain.StatusPresent)))
		require.NoError(t, s.UpsertAttendance(ctx, newRecord("1", "2024-03-02", domain.StatusPresent)))
		require.NoError(t, s.UpsertAttendance(ctx, newRecord("1", "2024-03-01", domain.StatusOffDayWork)))

		recs, _ := s.ListAttendance(ctx)
		assert.Len(t, recs, 2)
		assert.Equal(t, "2024-03-01", recs[0].Date)
		assert.Equal(t, domain.StatusOffDayWork, recs[0].Status)
		assert.True(t, recs[0].Amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("id derived from composite key", func(t *testing.T) {
		s := store.New(store.NewMemoryBackend())
		rec := newRecord("7", "2024-03-05", domain.StatusAbsent)
		rec.ID = "something-else"
		require.NoError(t, s.UpsertAttendance(ctx, rec))

		recs, _ := s.ListAttendance(ctx)
		assert.Equal(t, "7-2024-03-05", recs[0].ID)
	})
}

func TestStore_GetEmployeeAttendance(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend())
	require.NoError(t, s.SaveAttendance(ctx, []domain.AttendanceRecord{
		newRecord("1", "2024-03-10", domain.StatusPresent),
		newRecord("2", "2024-03-02", domain.StatusPresent),
		newRecord("1", "2024-03-01", domain.StatusAbsent),
		newRecord("1", "2024-04-01", domain.StatusOffDayWork),
		newRecord("1", "2024-03-05", domain.StatusPresent),
	}))

	t.Run("unbounded sorted ascending", func(t *testing.T) {
		recs, err := s.GetEmployeeAttendance(ctx, "1", "", "")
		assert.NoError(t, err)
		dates := make([]string, 0, len(recs))
		for _, r := range recs {
			dates = append(dates, r.Date)
		}
		assert.Equal(t, []string{"2024-03-01", "2024-03-05", "2024-03-10", "2024-04-01"}, dates)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		recs, err := s.GetEmployeeAttendance(ctx, "1", "2024-03-05", "2024-03-10")
		assert.NoError(t, err)
		assert.Len(t, recs, 2)
		assert.Equal(t, "2024-03-05", recs[0].Date)
		assert.Equal(t, "2024-03-10", recs[1].Date)
	})

	t.Run("only lower bound", func(t *testing.T) {
		recs, _ := s.GetEmployeeAttendance(ctx, "1", "2024-03-06", "")
		assert.Len(t, recs, 2)
	})

	t.Run("unknown employee", func(t *testing.T) {
		recs, err := s.GetEmployeeAttendance(ctx, "404", "", "")
		assert.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})
}

func TestStore_DeleteEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to attendance", func(t *testing.T) {
		s := store.New(store.NewMemoryBackend())
		require.NoError(t, s.SaveEmployees(ctx, []domain.Employee{newEmployee("1", "EMP-1"), newEmployee("2", "EMP-2")}))
		require.NoError(t, s.SaveAttendance(ctx, []domain.AttendanceRecord{
			newRecord("1", "2024-03-01", domain.StatusPresent),
			newRecord("2", "2024-03-01", domain.StatusPresent),
			newRecord("1", "2024-03-02", domain.StatusAbsent),
		}))

		require.NoError(t, s.DeleteEmployee(ctx, "1"))

		emps, _ := s.ListEmployees(ctx)
		assert.Len(t, emps, 1)
		assert.Equal(t, "2", emps[0].ID)

		recs, _ := s.GetEmployeeAttendance(ctx, "1", "", "")
		assert.Empty(t, recs)

		all, _ := s.ListAttendance(ctx)
		assert.Len(t, all, 1)
	})

	t.Run("writes both collections in one put", func(t *testing.T) {
		mem := store.NewMemoryBackend()
		seed := store.New(mem)
		require.NoError(t, seed.AddEmployee(ctx, newEmployee("1", "EMP-1")))
		require.NoError(t, seed.UpsertAttendance(ctx, newRecord("1", "2024-03-01", domain.StatusPresent)))

		var calls [][]store.Entry
		fb := &fakeBackend{
			getFn: mem.Get,
			putFn: func(ctx context.Context, entries ...store.Entry) error {
				calls = append(calls, entries)
				return mem.Put(ctx, entries...)
			},
		}

		require.NoError(t, store.New(fb).DeleteEmployee(ctx, "1"))
		assert.Len(t, calls, 1)
		assert.Len(t, calls[0], 2)
		assert.Equal(t, store.EmployeesKey, calls[0][0].Key)
		assert.Equal(t, store.AttendanceKey, calls[0][1].Key)
		assert.JSONEq(t, `[]`, string(calls[0][0].Value))
		assert.JSONEq(t, `[]`, string(calls[0][1].Value))
	})

	t.Run("unknown id writes nothing", func(t *testing.T) {
		putCalled := false
		fb := &fakeBackend{
			putFn: func(ctx context.Context, entries ...store.Entry) error {
				putCalled = true
				return nil
			},
		}
		assert.NoError(t, store.New(fb).DeleteEmployee(ctx, "missing"))
		assert.False(t, putCalled)
	})

	t.Run("failed put leaves state retryable", func(t *testing.T) {
		mem := store.NewMemoryBackend()
		seed := store.New(mem)
		require.NoError(t, seed.AddEmployee(ctx, newEmployee("1", "EMP-1")))

		fb := &fakeBackend{
			getFn: mem.Get,
			putFn: func(ctx context.Context, entries ...store.Entry) error {
				return errors.New("disk full")
			},
		}
		assert.EqualError(t, store.New(fb).DeleteEmployee(ctx, "1"), "disk full")

		require.NoError(t, seed.DeleteEmployee(ctx, "1"))
		emps, _ := seed.ListEmployees(ctx)
		assert.Empty(t, emps)
	})
}

func TestStore_MalformedData(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryBackend()
	require.NoError(t, mem.Put(ctx,
		store.Entry{Key: store.EmployeesKey, Value: []byte(`{not json`)},
		store.Entry{Key: store.AttendanceKey, Value: []byte(`[{"id":"1-2024-03-01","employee_id":"1","date":"2024-03-01","status":"present","amount":"1000"}, 42]`)},
	))
	s := store.New(mem)

	emps, err := s.ListEmployees(ctx)
	assert.NoError(t, err)
	assert.Empty(t, emps)

	recs, err := s.ListAttendance(ctx)
	assert.NoError(t, err)
	assert.Empty(t, recs)

	require.NoError(t, s.AddEmployee(ctx, newEmployee("1", "EMP-1")))
	emps, _ = s.ListEmployees(ctx)
	assert.Len(t, emps, 1)
}

func TestStore_NullSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryBackend()
	require.NoError(t, mem.Put(ctx, store.Entry{Key: store.EmployeesKey, Value: []byte(`null`)}))

	emps, err := store.New(mem).ListEmployees(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, emps)
	assert.Empty(t, emps)
}

func TestStore_BackendError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	fb := &fakeBackend{
		getFn: func(ctx context.Context, key string) ([]byte, error) { return nil, boom },
	}
	s := store.New(fb)

	_, err := s.ListEmployees(ctx)
	assert.ErrorIs(t, err, boom)

	err = s.UpsertAttendance(ctx, newRecord("1", "2024-03-01", domain.StatusPresent))
	assert.ErrorIs(t, err, boom)

	_, err = s.GetEmployeeAttendance(ctx, "1", "", "")
	assert.ErrorIs(t, err, boom)
}

func TestStore_MarkAttendance(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend())
	require.NoError(t, s.AddEmployee(ctx, newEmployee("1", "EMP-1")))

	rec, err := s.MarkAttendance(ctx, "1", func(e domain.Employee) domain.AttendanceRecord {
		assert.Equal(t, "EMP-1", e.EmployeeCode)
		return domain.AttendanceRecord{Date: "2024-03-01", Status: domain.StatusPresent, Amount: e.DailySalary}
	})
	require.NoError(t, err)
	assert.Equal(t, "1-2024-03-01", rec.ID)
	assert.Equal(t, "1", rec.EmployeeID)

	_, err = s.MarkAttendance(ctx, "missing", func(e domain.Employee) domain.AttendanceRecord {
		t.Fatal("build called for unknown employee")
		return domain.AttendanceRecord{}
	})
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
	all, _ := s.ListAttendance(ctx)
	assert.Len(t, all, 1)
}

func TestStore_MarkAttendance_ConcurrentDelete(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryBackend())
	require.NoError(t, s.AddEmployee(ctx, newEmployee("1", "EMP-1")))

	building := make(chan struct{})
	deleted := make(chan error, 1)
	go func() {
		<-building
		deleted <- s.DeleteEmployee(ctx, "1")
	}()

	_, err := s.MarkAttendance(ctx, "1", func(e domain.Employee) domain.AttendanceRecord {
		close(building)
		// Give the delete time to run if it is not blocked.
		time.Sleep(50 * time.Millisecond)
		return newRecord(e.ID, "2024-03-01", domain.StatusPresent)
	})
	require.NoError(t, err)
	require.NoError(t, <-deleted)

	emps, _ := s.ListEmployees(ctx)
	assert.Empty(t, emps)
	recs, err := s.GetEmployeeAttendance(ctx, "1", "", "")
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = s.MarkAttendance(ctx, "1", func(e domain.Employee) domain.AttendanceRecord {
		return newRecord(e.ID, "2024-03-02", domain.StatusPresent)
	})
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
	recs, _ = s.GetEmployeeAttendance(ctx, "1", "", "")
	assert.Empty(t, recs)
}
