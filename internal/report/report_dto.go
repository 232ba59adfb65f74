package report

import (
	"time"

	"go-ems/internal/domain"

	"github.com/shopspring/decimal"
)

// GenerateRequest selects the period and, optionally, a subset of employees
// by name or employee code. Empty dates default to the current month.
type GenerateRequest struct {
	From   string `form:"from" json:"from"`
	To     string `form:"to" json:"to"`
	Search string `form:"search" json:"search"`
}

type Totals struct {
	Employees      int             `json:"employees"`
	PresentDays    int             `json:"present_days"`
	AbsentDays     int             `json:"absent_days"`
	OffDayWorkDays int             `json:"off_day_work_days"`
	RegularSalary  decimal.Decimal `json:"regular_salary"`
	OffDayAmount   decimal.Decimal `json:"off_day_amount"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
}

type Report struct {
	Period      string                     `json:"period"`
	From        string                     `json:"from"`
	To          string                     `json:"to"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Rows        []domain.SalaryCalculation `json:"rows"`
	Totals      Totals                     `json:"totals"`
}

type ExportAcceptedResponse struct {
	RequestID string `json:"request_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Status    string `json:"status"`
}
