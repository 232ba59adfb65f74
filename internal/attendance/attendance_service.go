package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-ems/internal/attendance/errors"
	"go-ems/internal/domain"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetDaily(ctx context.Context, date string) (DailyAttendanceResponse, error)
	GetEmployeeAttendance(ctx context.Context, employeeID, from, to string) (EmployeeAttendanceResponse, error)
}

type service struct {
	repo       Repository
	aggregator Aggregator
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(repo Repository, aggregator Aggregator, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:       repo,
		aggregator: aggregator,
		now:        time.Now,
		logger:     l,
	}
}

// Mark sets one employee's status for one day. The amount is derived from the
// employee's current daily rate and frozen on the record.
func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("mark attendance requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	if _, err := domain.ParseDate(req.Date); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}
	if !domain.IsValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	notes := normalizeNotes(req.Notes)
	rec, err := s.repo.MarkAttendance(ctx, req.EmployeeID, func(emp domain.Employee) domain.AttendanceRecord {
		return domain.AttendanceRecord{
			EmployeeID: emp.ID,
			Date:       req.Date,
			Status:     req.Status,
			Amount:     domain.AmountFor(req.Status, emp.DailySalary),
			Notes:      notes,
		}
	})
	if errors.Is(err, store.ErrEmployeeNotFound) {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}
	if err != nil {
		log.Error("mark attendance persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	log.Info("attendance marked",
		zap.String("id", rec.ID),
		zap.String("status", rec.Status),
		zap.String("amount", rec.Amount.String()),
	)
	return mapToResponse(rec), nil
}

// GetDaily lists every employee for date. Employees without a record show
// as absent with a zero amount and Recorded false; nothing is written.
func (s *service) GetDaily(ctx context.Context, date string) (DailyAttendanceResponse, error) {
	if date == "" {
		date = s.now().UTC().Format(domain.DateLayout)
	}
	if _, err := domain.ParseDate(date); err != nil {
		return DailyAttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("daily attendance list employees failed", zap.Error(err))
		return DailyAttendanceResponse{}, err
	}
	records, err := s.repo.ListAttendance(ctx)
	if err != nil {
		s.logger.Error("daily attendance list records failed", zap.Error(err))
		return DailyAttendanceResponse{}, err
	}

	byEmployee := make(map[string]domain.AttendanceRecord)
	for _, r := range records {
		if r.Date == date {
			byEmployee[r.EmployeeID] = r
		}
	}

	resp := DailyAttendanceResponse{
		Date:    date,
		Rows:    make([]DailyAttendanceRow, 0, len(employees)),
		Summary: DailySummary{TotalAmount: decimal.Zero},
	}
	for _, e := range employees {
		row := DailyAttendanceRow{
			EmployeeID:   e.ID,
			EmployeeCode: e.EmployeeCode,
			EmployeeName: e.Name,
			Department:   e.Department,
			DailySalary:  e.DailySalary,
			Status:       domain.StatusAbsent,
			Amount:       decimal.Zero,
		}
		if r, ok := byEmployee[e.ID]; ok {
			row.Status = r.Status
			row.Amount = r.Amount
			row.Notes = r.Notes
			row.Recorded = true
		}

		switch row.Status {
		case domain.StatusPresent:
			resp.Summary.Present++
		case domain.StatusOffDayWork:
			resp.Summary.OffDayWork++
		case domain.StatusAbsent:
			resp.Summary.Absent++
		}
		resp.Summary.TotalAmount = resp.Summary.TotalAmount.Add(row.Amount)
		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}

func (s *service) GetEmployeeAttendance(ctx context.Context, employeeID, from, to string) (EmployeeAttendanceResponse, error) {
	if _, err := s.findEmployee(ctx, employeeID); err != nil {
		return EmployeeAttendanceResponse{}, err
	}

	if from == "" || to == "" {
		first, last := domain.MonthBounds(s.now().UTC())
		if from == "" {
			from = first.Format(domain.DateLayout)
		}
		if to == "" {
			to = last.Format(domain.DateLayout)
		}
	}

	agg, err := s.aggregator.Aggregate(ctx, employeeID, from, to)
	if err != nil {
		return EmployeeAttendanceResponse{}, err
	}

	records := make([]AttendanceResponse, len(agg.Records))
	for i, r := range agg.Records {
		records[i] = mapToResponse(r)
	}

	return EmployeeAttendanceResponse{
		EmployeeID:  employeeID,
		From:        agg.From,
		To:          agg.To,
		TotalDays:   agg.TotalDays,
		Present:     agg.Present,
		Absent:      agg.Absent,
		OffDayWork:  agg.OffDayWork,
		MissingDays: agg.MissingDays,
		TotalAmount: agg.TotalAmount,
		Records:     records,
	}, nil
}

func (s *service) findEmployee(ctx context.Context, id string) (domain.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return domain.Employee{}, err
	}
	for _, e := range employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, attendanceerrors.ErrEmployeeNotFound
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	v := strings.TrimSpace(*notes)
	if v == "" {
		return nil
	}
	return &v
}

func mapToResponse(r domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     r.Status,
		Amount:     r.Amount,
		Notes:      r.Notes,
	}
}
