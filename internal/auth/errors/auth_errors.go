package autherrors

import (
	"go-groupware/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid id or password",
		http.StatusUnauthorized,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only change your own password",
		http.StatusForbidden,
	)
	ErrOldPasswordMismatch = apperror.New(
		apperror.CodeForbidden,
		"Old password does not match",
		http.StatusForbidden,
	)
	ErrPasswordTooLong = apperror.New(
		apperror.CodeValidation,
		"New Password must be at most 72 bytes",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
