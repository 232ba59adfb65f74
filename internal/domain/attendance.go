package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	StatusPresent    = "present"
	StatusAbsent     = "absent"
	StatusOffDayWork = "off-day-work"
)

// OffDayRate is the flat amount paid for one day of off-day work,
// independent of the employee's daily rate.
var OffDayRate = decimal.NewFromInt(500)

func IsValidStatus(v string) bool {
	switch v {
	case StatusPresent, StatusAbsent, StatusOffDayWork:
		return true
	default:
		return false
	}
}

// AttendanceRecord is one employee's status on one calendar day. There is at
// most one record per (EmployeeID, Date).
type AttendanceRecord struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      *string         `json:"notes,omitempty"`
}

func AttendanceID(employeeID, date string) string {
	return fmt.Sprintf("%s-%s", employeeID, date)
}

// SameDay reports whether both records share the composite key.
func (a AttendanceRecord) SameDay(o AttendanceRecord) bool {
	return a.EmployeeID == o.EmployeeID && a.Date == o.Date
}

// AmountFor derives the amount attributed to a day at the time it is marked.
// It is stored on the record and never recomputed when the rate changes.
func AmountFor(status string, dailySalary decimal.Decimal) decimal.Decimal {
	switch status {
	case StatusPresent:
		return dailySalary
	case StatusOffDayWork:
		return OffDayRate
	default:
		return decimal.Zero
	}
}
