package attendance

import (
	"context"
	"fmt"
	"strings"

	attendanceerrors "go-ems/internal/attendance/errors"
	"go-ems/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MissingDayPolicy decides how in-range days without a record are counted.
type MissingDayPolicy string

const (
	// MissingDayIgnore counts only recorded days.
	MissingDayIgnore MissingDayPolicy = "ignore"
	// MissingDayAbsent adds unrecorded days to the absent count.
	MissingDayAbsent MissingDayPolicy = "absent"
)

func ParseMissingDayPolicy(v string) (MissingDayPolicy, error) {
	switch MissingDayPolicy(strings.ToLower(strings.TrimSpace(v))) {
	case "", MissingDayIgnore:
		return MissingDayIgnore, nil
	case MissingDayAbsent:
		return MissingDayAbsent, nil
	default:
		return "", fmt.Errorf("unknown missing day policy %q", v)
	}
}

// Aggregation is one employee's attendance over an inclusive date range.
// Each record with a known status is counted in exactly one of Present,
// Absent and OffDayWork.
type Aggregation struct {
	EmployeeID  string
	From        string
	To          string
	Records     []domain.AttendanceRecord
	TotalDays   int
	Present     int
	Absent      int
	OffDayWork  int
	MissingDays int
	TotalAmount decimal.Decimal
}

type Aggregator interface {
	Aggregate(ctx context.Context, employeeID, from, to string) (Aggregation, error)
}

type aggregator struct {
	source RecordSource
	policy MissingDayPolicy
	logger *zap.Logger
}

func NewAggregator(source RecordSource, policy MissingDayPolicy, logger ...*zap.Logger) Aggregator {
	l := zap.L().Named("attendance.aggregator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.aggregator")
	}
	if policy == "" {
		policy = MissingDayIgnore
	}
	return &aggregator{source: source, policy: policy, logger: l}
}

func (a *aggregator) Aggregate(ctx context.Context, employeeID, from, to string) (Aggregation, error) {
	fromDate, err := domain.ParseDate(from)
	if err != nil {
		return Aggregation{}, attendanceerrors.ErrInvalidDateFormat
	}
	toDate, err := domain.ParseDate(to)
	if err != nil {
		return Aggregation{}, attendanceerrors.ErrInvalidDateFormat
	}
	if fromDate.After(toDate) {
		return Aggregation{}, attendanceerrors.ErrInvalidDateRange
	}

	records, err := a.source.GetEmployeeAttendance(ctx, employeeID, from, to)
	if err != nil {
		a.logger.Error("aggregate attendance load failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return Aggregation{}, err
	}

	agg := Aggregation{
		EmployeeID:  employeeID,
		From:        from,
		To:          to,
		Records:     records,
		TotalDays:   domain.DaysInclusive(fromDate, toDate),
		TotalAmount: decimal.Zero,
	}

	recorded := make(map[string]struct{}, len(records))
	for _, r := range records {
		recorded[r.Date] = struct{}{}
		agg.TotalAmount = agg.TotalAmount.Add(r.Amount)
		switch r.Status {
		case domain.StatusPresent:
			agg.Present++
		case domain.StatusAbsent:
			agg.Absent++
		case domain.StatusOffDayWork:
			agg.OffDayWork++
		default:
			a.logger.Warn("attendance record with unknown status ignored",
				zap.String("id", r.ID),
				zap.String("status", r.Status),
			)
		}
	}

	if missing := agg.TotalDays - len(recorded); missing > 0 {
		agg.MissingDays = missing
	}
	if a.policy == MissingDayAbsent {
		agg.Absent += agg.MissingDays
	}

	return agg, nil
}
