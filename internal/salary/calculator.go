// Package salary turns an employee's attendance over a period into a salary
// breakdown.
package salary

import (
	"context"

	"go-ems/internal/attendance"
	"go-ems/internal/domain"
	salaryerrors "go-ems/internal/salary/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Calculator interface {
	Calculate(ctx context.Context, employee domain.Employee, from, to string) (domain.SalaryCalculation, error)
}

type calculator struct {
	aggregator attendance.Aggregator
	logger     *zap.Logger
}

func NewCalculator(aggregator attendance.Aggregator, logger ...*zap.Logger) Calculator {
	l := zap.L().Named("salary.calculator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.calculator")
	}
	return &calculator{aggregator: aggregator, logger: l}
}

// Calculate computes the breakdown for [from, to], both inclusive.
//
//	regular = present days * daily rate
//	off-day = off-day-work days * domain.OffDayRate
//	total   = regular + off-day
//
// The daily rate is read from employee at call time, so a rate change
// affects every later calculation including past periods. Stored attendance
// amounts are not used. A range with from after to is rejected.
func (c *calculator) Calculate(ctx context.Context, employee domain.Employee, from, to string) (domain.SalaryCalculation, error) {
	fromDate, err := domain.ParseDate(from)
	if err != nil {
		return domain.SalaryCalculation{}, salaryerrors.ErrInvalidDateFormat
	}
	toDate, err := domain.ParseDate(to)
	if err != nil {
		return domain.SalaryCalculation{}, salaryerrors.ErrInvalidDateFormat
	}
	if fromDate.After(toDate) {
		return domain.SalaryCalculation{}, salaryerrors.ErrInvalidDateRange
	}

	agg, err := c.aggregator.Aggregate(ctx, employee.ID, from, to)
	if err != nil {
		c.logger.Error("salary aggregation failed",
			zap.String("employee_id", employee.ID),
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
		return domain.SalaryCalculation{}, err
	}

	regular := employee.DailySalary.Mul(decimal.NewFromInt(int64(agg.Present)))
	offDay := domain.OffDayRate.Mul(decimal.NewFromInt(int64(agg.OffDayWork)))

	return domain.SalaryCalculation{
		EmployeeID:     employee.EmployeeCode,
		EmployeeName:   employee.Name,
		DailyRate:      employee.DailySalary,
		TotalDays:      domain.DaysInclusive(fromDate, toDate),
		PresentDays:    agg.Present,
		AbsentDays:     agg.Absent,
		OffDayWorkDays: agg.OffDayWork,
		RegularSalary:  regular,
		OffDayAmount:   offDay,
		TotalSalary:    regular.Add(offDay),
		Period:         domain.Period(from, to),
	}, nil
}
