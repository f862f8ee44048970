package noteerrors

import (
	"go-groupware/internal/shared/apperror"
	"net/http"
)

var (
	ErrBlankContent = apperror.New(
		apperror.CodeValidation,
		"Content is required",
		http.StatusBadRequest,
	)
	ErrNoReceivers = apperror.New(
		apperror.CodeValidation,
		"At least one receiver is required",
		http.StatusBadRequest,
	)
	ErrReceiverNotFound = apperror.New(
		apperror.CodeNotFound,
		"Receiver not found",
		http.StatusNotFound,
	)
	ErrSenderNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication failed",
		http.StatusUnauthorized,
	)

	ErrStatusNotFound = apperror.New(
		apperror.CodeNotFound,
		"Note status not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid note status ID",
		http.StatusBadRequest,
	)
	ErrNotReceiver = apperror.New(
		apperror.CodeForbidden,
		"Only the receiver can mark this note as read",
		http.StatusForbidden,
	)
)
