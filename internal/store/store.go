package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go-ems/internal/domain"

	"go.uber.org/zap"
)

const (
	EmployeesKey  = "employees"
	AttendanceKey = "attendance"
)

// ErrEmployeeNotFound is returned by MarkAttendance for an unknown employee.
var ErrEmployeeNotFound = errors.New("store: employee not found")

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	SaveEmployees(ctx context.Context, employees []domain.Employee) error
	AddEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error)
	SaveAttendance(ctx context.Context, records []domain.AttendanceRecord) error
	UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) error
	MarkAttendance(ctx context.Context, employeeID string, build func(domain.Employee) domain.AttendanceRecord) (domain.AttendanceRecord, error)
	GetEmployeeAttendance(ctx context.Context, employeeID, from, to string) ([]domain.AttendanceRecord, error)
}

type recordStore struct {
	backend Backend
	mu      sync.Mutex
	logger  *zap.Logger
}

// New returns a Store persisting both collections through backend. Mutating
// operations are serialised within the process; separate processes sharing a
// backend are not coordinated.
func New(backend Backend, logger ...*zap.Logger) Store {
	l := zap.L().Named("store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store")
	}
	return &recordStore{backend: backend, logger: l}
}

func (s *recordStore) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.readEmployees(ctx)
}

func (s *recordStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeEmployees(ctx, employees)
}

func (s *recordStore) AddEmployee(ctx context.Context, employee domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.readEmployees(ctx)
	if err != nil {
		return err
	}
	return s.writeEmployees(ctx, append(employees, employee))
}

// UpdateEmployee replaces the employee with the same ID. Unknown IDs are
// ignored.
func (s *recordStore) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.readEmployees(ctx)
	if err != nil {
		return err
	}
	for i := range employees {
		if employees[i].ID == employee.ID {
			employees[i] = employee
			return s.writeEmployees(ctx, employees)
		}
	}
	s.logger.Debug("update employee skipped, id not found", zap.String("employee_id", employee.ID))
	return nil
}

// DeleteEmployee removes the employee and every attendance record that
// references it with one multi-entry write.
func (s *recordStore) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.readEmployees(ctx)
	if err != nil {
		return err
	}
	records, err := s.readAttendance(ctx)
	if err != nil {
		return err
	}

	keptEmployees := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if e.ID != id {
			keptEmployees = append(keptEmployees, e)
		}
	}
	keptRecords := make([]domain.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.EmployeeID != id {
			keptRecords = append(keptRecords, r)
		}
	}

	if len(keptEmployees) == len(employees) && len(keptRecords) == len(records) {
		s.logger.Debug("delete employee skipped, id not found", zap.String("employee_id", id))
		return nil
	}

	empEntry, err := encode(EmployeesKey, keptEmployees)
	if err != nil {
		return err
	}
	attEntry, err := encode(AttendanceKey, keptRecords)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, empEntry, attEntry); err != nil {
		s.logger.Error("cascade delete failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("employee deleted",
		zap.String("employee_id", id),
		zap.Int("attendance_removed", len(records)-len(keptRecords)),
	)
	return nil
}

func (s *recordStore) ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	return s.readAttendance(ctx)
}

func (s *recordStore) SaveAttendance(ctx context.Context, records []domain.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAttendance(ctx, records)
}

// UpsertAttendance replaces the record sharing (EmployeeID, Date) in place or
// appends a new one. The ID is always derived from the composite key.
func (s *recordStore) UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertAttendance(ctx, record)
}

// MarkAttendance looks up employeeID and upserts the record build returns for
// it while holding the write lock, so it cannot interleave with
// DeleteEmployee. The stored record is returned.
func (s *recordStore) MarkAttendance(ctx context.Context, employeeID string, build func(domain.Employee) domain.AttendanceRecord) (domain.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.readEmployees(ctx)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	for _, e := range employees {
		if e.ID != employeeID {
			continue
		}
		record := build(e)
		record.EmployeeID = e.ID
		record.ID = domain.AttendanceID(record.EmployeeID, record.Date)
		if err := s.upsertAttendance(ctx, record); err != nil {
			return domain.AttendanceRecord{}, err
		}
		return record, nil
	}
	return domain.AttendanceRecord{}, ErrEmployeeNotFound
}

func (s *recordStore) upsertAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	records, err := s.readAttendance(ctx)
	if err != nil {
		return err
	}

	record.ID = domain.AttendanceID(record.EmployeeID, record.Date)
	replaced := false
	for i := range records {
		if records[i].SameDay(record) {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return s.writeAttendance(ctx, records)
}

// GetEmployeeAttendance returns one employee's records within [from, to],
// ascending by date. An empty bound is open.
func (s *recordStore) GetEmployeeAttendance(ctx context.Context, employeeID, from, to string) ([]domain.AttendanceRecord, error) {
	records, err := s.readAttendance(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AttendanceRecord, 0)
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *recordStore) readEmployees(ctx context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0)
	if err := s.read(ctx, EmployeesKey, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]domain.Employee, 0)
	}
	return out, nil
}

func (s *recordStore) readAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	out := make([]domain.AttendanceRecord, 0)
	if err := s.read(ctx, AttendanceKey, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]domain.AttendanceRecord, 0)
	}
	return out, nil
}

// read decodes key into dst. Absent keys leave dst untouched; malformed data
// is logged and reset dst so callers see an empty collection.
func (s *recordStore) read(ctx context.Context, key string, dst any) error {
	raw, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error("store read failed", zap.String("key", key), zap.Error(err))
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("malformed persisted data, treating as empty",
			zap.String("key", key),
			zap.Int("bytes", len(raw)),
			zap.Error(err),
		)
		resetSlice(dst)
	}
	return nil
}

func (s *recordStore) writeEmployees(ctx context.Context, employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	return s.write(ctx, EmployeesKey, employees)
}

func (s *recordStore) writeAttendance(ctx context.Context, records []domain.AttendanceRecord) error {
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	return s.write(ctx, AttendanceKey, records)
}

func (s *recordStore) write(ctx context.Context, key string, v any) error {
	entry, err := encode(key, v)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, entry); err != nil {
		s.logger.Error("store write failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func encode(key string, v any) (Entry, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Entry{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return Entry{Key: key, Value: raw}, nil
}

func resetSlice(dst any) {
	switch d := dst.(type) {
	case *[]domain.Employee:
		*d = make([]domain.Employee, 0)
	case *[]domain.AttendanceRecord:
		*d = make([]domain.AttendanceRecord, 0)
	}
}
