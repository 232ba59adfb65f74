package domain

import "github.com/shopspring/decimal"

// SalaryCalculation is a derived report row for one employee over one period.
// Employee fields and DailyRate are a snapshot taken at computation time.
type SalaryCalculation struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	DailyRate      decimal.Decimal `json:"daily_rate"`
	TotalDays      int             `json:"total_days"`
	PresentDays    int             `json:"present_days"`
	AbsentDays     int             `json:"absent_days"`
	OffDayWorkDays int             `json:"off_day_work_days"`
	RegularSalary  decimal.Decimal `json:"regular_salary"`
	OffDayAmount   decimal.Decimal `json:"off_day_amount"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
	Period         string          `json:"period"`
}
