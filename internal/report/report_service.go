package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-ems/internal/domain"
	"go-ems/internal/events"
	reporterrors "go-ems/internal/report/errors"
	"go-ems/internal/salary"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// EmployeeLister is the part of the record store a report reads from.
type EmployeeLister interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (Report, error)
	ExportPDF(ctx context.Context, req GenerateRequest) (string, []byte, error)
	RequestExport(ctx context.Context, req GenerateRequest) (ExportAcceptedResponse, error)
}

type service struct {
	employees  EmployeeLister
	calculator salary.Calculator
	publisher  EventPublisher
	sf         *singleflight.Group
	now        func() time.Time
	logger     *zap.Logger
}

// NewService builds the report service. publisher may be nil, in which case
// RequestExport is unavailable.
func NewService(
	employees EmployeeLister,
	calculator salary.Calculator,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		employees:  employees,
		calculator: calculator,
		publisher:  publisher,
		sf:         &singleflight.Group{},
		now:        time.Now,
		logger:     l,
	}
}

// Generate computes one salary row per matching employee, in listing order.
func (s *service) Generate(ctx context.Context, req GenerateRequest) (Report, error) {
	req, err := s.normalize(req)
	if err != nil {
		return Report{}, err
	}

	key := fmt.Sprintf("%s|%s|%s", req.From, req.To, strings.ToLower(req.Search))
	// The shared build outlives any single caller; each caller still stops
	// waiting when its own context ends.
	ch := s.sf.DoChan(key, func() (interface{}, error) {
		return s.build(context.WithoutCancel(ctx), req)
	})
	select {
	case <-ctx.Done():
		return Report{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Report{}, res.Err
		}
		if res.Shared {
			s.logger.Debug("salary report shared between callers", zap.String("key", key))
		}
		return res.Val.(Report), nil
	}
}

func (s *service) build(ctx context.Context, req GenerateRequest) (Report, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employees, err := s.employees.ListEmployees(ctx)
	if err != nil {
		log.Error("salary report list employees failed", zap.Error(err))
		return Report{}, err
	}

	rows := make([]domain.SalaryCalculation, 0, len(employees))
	for _, e := range employees {
		if !matchesSearch(e, req.Search) {
			continue
		}
		row, err := s.calculator.Calculate(ctx, e, req.From, req.To)
		if err != nil {
			return Report{}, err
		}
		rows = append(rows, row)
	}

	log.Info("salary report generated",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Int("rows", len(rows)),
	)

	return Report{
		Period:      domain.Period(req.From, req.To),
		From:        req.From,
		To:          req.To,
		GeneratedAt: s.now().UTC(),
		Rows:        rows,
		Totals:      Summarize(rows),
	}, nil
}

func (s *service) ExportPDF(ctx context.Context, req GenerateRequest) (string, []byte, error) {
	rep, err := s.Generate(ctx, req)
	if err != nil {
		return "", nil, err
	}
	if len(rep.Rows) == 0 {
		return "", nil, reporterrors.ErrNothingToExport
	}

	pdf, err := RenderPDF(rep)
	if err != nil {
		s.logger.Error("render salary report failed", zap.String("period", rep.Period), zap.Error(err))
		return "", nil, apperror.WithCause(reporterrors.ErrRenderFailed, err)
	}

	return ExportFilename(rep.Period, rep.GeneratedAt), pdf, nil
}

func (s *service) RequestExport(ctx context.Context, req GenerateRequest) (ExportAcceptedResponse, error) {
	if s.publisher == nil {
		return ExportAcceptedResponse{}, reporterrors.ErrExportQueueDisabled
	}

	req, err := s.normalize(req)
	if err != nil {
		return ExportAcceptedResponse{}, err
	}

	requestID := contextutil.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	event := events.ReportExportRequestedEvent{
		EventType:   events.ReportExportRequestedType,
		RequestID:   requestID,
		From:        req.From,
		To:          req.To,
		Search:      req.Search,
		RequestedBy: contextutil.GetUserID(ctx),
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publisher.PublishReportExportRequested(ctx, event); err != nil {
		s.logger.Error("publish report export failed", zap.String("request_id", requestID), zap.Error(err))
		return ExportAcceptedResponse{}, apperror.WithCause(reporterrors.ErrExportPublishFailed, err)
	}

	s.logger.Info("report export queued",
		zap.String("request_id", requestID),
		zap.String("from", req.From),
		zap.String("to", req.To),
	)

	return ExportAcceptedResponse{
		RequestID: requestID,
		From:      req.From,
		To:        req.To,
		Status:    "queued",
	}, nil
}

// normalize fills an omitted bound from the current month and validates both.
func (s *service) normalize(req GenerateRequest) (GenerateRequest, error) {
	req.Search = strings.TrimSpace(req.Search)
	if req.From == "" || req.To == "" {
		first, last := domain.MonthBounds(s.now().UTC())
		if req.From == "" {
			req.From = first.Format(domain.DateLayout)
		}
		if req.To == "" {
			req.To = last.Format(domain.DateLayout)
		}
	}

	from, err := domain.ParseDate(req.From)
	if err != nil {
		return req, reporterrors.ErrInvalidDateFormat
	}
	to, err := domain.ParseDate(req.To)
	if err != nil {
		return req, reporterrors.ErrInvalidDateFormat
	}
	if from.After(to) {
		return req, reporterrors.ErrInvalidDateRange
	}
	return req, nil
}

// Summarize adds up every row of a report.
func Summarize(rows []domain.SalaryCalculation) Totals {
	t := Totals{
		Employees:     len(rows),
		RegularSalary: decimal.Zero,
		OffDayAmount:  decimal.Zero,
		TotalSalary:   decimal.Zero,
	}
	for _, r := range rows {
		t.PresentDays += r.PresentDays
		t.AbsentDays += r.AbsentDays
		t.OffDayWorkDays += r.OffDayWorkDays
		t.RegularSalary = t.RegularSalary.Add(r.RegularSalary)
		t.OffDayAmount = t.OffDayAmount.Add(r.OffDayAmount)
		t.TotalSalary = t.TotalSalary.Add(r.TotalSalary)
	}
	return t
}

// ExportFilename names a downloaded report, e.g.
// Salary_Report_2024-01-01_to_2024-01-31_2024-02-01.pdf.
func ExportFilename(period string, generatedAt time.Time) string {
	return fmt.Sprintf("Salary_Report_%s_%s.pdf",
		strings.Join(strings.Fields(period), "_"),
		generatedAt.Format(domain.DateLayout),
	)
}

func matchesSearch(e domain.Employee, term string) bool {
	if term == "" {
		return true
	}
	q := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.EmployeeCode), q)
}
