package salaryerrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"The start date must not be after the end date",
		http.StatusBadRequest,
	)
	ErrInvalidDailyRate = apperror.New(
		apperror.CodeInvalidInput,
		"Daily salary must be greater than zero",
		http.StatusBadRequest,
	)
)
