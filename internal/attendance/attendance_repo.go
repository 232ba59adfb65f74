package attendance

import (
	"context"

	"go-ems/internal/domain"
)

// RecordSource is the read side the aggregator needs.
type RecordSource interface {
	GetEmployeeAttendance(ctx context.Context, employeeID, from, to string) ([]domain.AttendanceRecord, error)
}

// Repository is the slice of the record store used by attendance marking.
// store.Store satisfies it.
type Repository interface {
	RecordSource
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error)
	// MarkAttendance resolves the employee and writes the record built for
	// it as one step, returning store.ErrEmployeeNotFound when absent.
	MarkAttendance(ctx context.Context, employeeID string, build func(domain.Employee) domain.AttendanceRecord) (domain.AttendanceRecord, error)
}
