package employeeerrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code is already in use",
		http.StatusConflict,
	)
	ErrInvalidDailySalary = apperror.New(
		apperror.CodeInvalidInput,
		"Daily salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Department must be one of HR, IT, Finance, Operations, Marketing, Sales",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
