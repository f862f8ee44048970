package chaterrors

import (
	"go-groupware/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
	ErrBlankMessage = apperror.New(
		apperror.CodeValidation,
		"Message is required",
		http.StatusBadRequest,
	)
	ErrTalkerNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication failed",
		http.StatusUnauthorized,
	)
)
