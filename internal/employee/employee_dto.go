package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	EmployeeCode  string          `json:"employee_code" binding:"required,max=32"`
	Name          string          `json:"name" binding:"required,max=120"`
	Email         string          `json:"email" binding:"required,email"`
	Phone         string          `json:"phone" binding:"required,max=32"`
	Address       string          `json:"address" binding:"required"`
	NationalID    string          `json:"national_id" binding:"required,max=32"`
	AccountName   string          `json:"account_name" binding:"required"`
	AccountNumber string          `json:"account_number" binding:"required,max=34"`
	JoiningDate   string          `json:"joining_date" binding:"required,datetime=2006-01-02"`
	Position      string          `json:"position" binding:"required"`
	Department    string          `json:"department" binding:"required,oneof=HR IT Finance Operations Marketing Sales"`
	DailySalary   decimal.Decimal `json:"daily_salary"`
}

// UpdateEmployeeRequest replaces every attribute of an employee.
type UpdateEmployeeRequest CreateEmployeeRequest

type EmployeeResponse struct {
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
