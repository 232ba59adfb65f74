package attendance

import "github.com/shopspring/decimal"

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status" binding:"required,oneof=present absent off-day-work"`
	Notes      *string `json:"notes"`
}

type AttendanceResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      *string         `json:"notes,omitempty"`
}

// DailyAttendanceRow is one employee's status on the requested day.
// Recorded is false when no record exists and the row shows the absent
// default.
type DailyAttendanceRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeCode string          `json:"employee_code"`
	EmployeeName string          `json:"employee_name"`
	Department   string          `json:"department"`
	DailySalary  decimal.Decimal `json:"daily_salary"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        *string         `json:"notes,omitempty"`
	Recorded     bool            `json:"recorded"`
}

type DailySummary struct {
	Present     int             `json:"present"`
	Absent      int             `json:"absent"`
	OffDayWork  int             `json:"off_day_work"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type DailyAttendanceResponse struct {
	Date    string               `json:"date"`
	Rows    []DailyAttendanceRow `json:"rows"`
	Summary DailySummary         `json:"summary"`
}

type EmployeeAttendanceResponse struct {
	EmployeeID  string               `json:"employee_id"`
	From        string               `json:"from"`
	To          string               `json:"to"`
	TotalDays   int                  `json:"total_days"`
	Present     int                  `json:"present"`
	Absent      int                  `json:"absent"`
	OffDayWork  int                  `json:"off_day_work"`
	MissingDays int                  `json:"missing_days"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	Records     []AttendanceResponse `json:"records"`
}
