package autherrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		"AUTH_FAILED",
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Session has expired, please log in again",
		http.StatusUnauthorized,
	)
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		"FORBIDDEN",
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Admin not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue session token",
		http.StatusInternalServerError,
	)
)
