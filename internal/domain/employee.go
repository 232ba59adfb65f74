package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DepartmentHR         = "HR"
	DepartmentIT         = "IT"
	DepartmentFinance    = "Finance"
	DepartmentOperations = "Operations"
	DepartmentMarketing  = "Marketing"
	DepartmentSales      = "Sales"
)

// Departments lists the department labels an employee can belong to.
var Departments = []string{
	DepartmentHR,
	DepartmentIT,
	DepartmentFinance,
	DepartmentOperations,
	DepartmentMarketing,
	DepartmentSales,
}

func IsValidDepartment(v string) bool {
	for _, d := range Departments {
		if d == v {
			return true
		}
	}
	return false
}

// Employee is the persisted payroll profile. ID is generated by the system,
// EmployeeCode is assigned by the admin and shown on reports.
type Employee struct {
	ID            string          `json:"id"`
	EmployeeCode  string          `json:"employee_code"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	NationalID    string          `json:"national_id"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	JoiningDate   string          `json:"joining_date"`
	Position      string          `json:"position"`
	Department    string          `json:"department"`
	DailySalary   decimal.Decimal `json:"daily_salary"`
}

// Matches reports whether the employee matches a free-text search the way the
// employee list does: name, code, email and department ignore case, the
// national id is matched as typed.
func (e Employee) Matches(term string) bool {
	if term == "" {
		return true
	}
	q := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.EmployeeCode), q) ||
		strings.Contains(strings.ToLower(e.Email), q) ||
		strings.Contains(strings.ToLower(e.Department), q) ||
		strings.Contains(e.NationalID, term)
}
