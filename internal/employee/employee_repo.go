package employee

import (
	"context"

	"go-ems/internal/domain"
)

// Repository is the part of the record store employee administration uses.
type Repository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	AddEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
	ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error)
}
