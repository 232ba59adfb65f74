package reporterrors

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
	ErrNothingToExport = apperror.New(
		apperror.CodeNotFound,
		"No salary data to export for this period",
		http.StatusNotFound,
	)
	ErrExportQueueDisabled = apperror.New(
		apperror.CodeServiceUnavailable,
		"Background export is not configured",
		http.StatusServiceUnavailable,
	)
	ErrExportPublishFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Failed to queue the export, try again later",
		http.StatusServiceUnavailable,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render the salary report",
		http.StatusInternalServerError,
	)
)
