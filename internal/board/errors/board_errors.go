package boarderrors

import (
	"go-groupware/internal/shared/apperror"
	"net/http"
)

var (
	ErrBoardNotFound = apperror.New(
		apperror.CodeNotFound,
		"Board post not found",
		http.StatusNotFound,
	)
	ErrBlankTitle = apperror.New(
		apperror.CodeValidation,
		"Title is required",
		http.StatusBadRequest,
	)
	ErrBlankContent = apperror.New(
		apperror.CodeValidation,
		"Content is required",
		http.StatusBadRequest,
	)
	ErrInvalidBoardID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid board ID",
		http.StatusBadRequest,
	)
	// token valid tapi employee-nya sudah tidak ada
	ErrWriterNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication failed",
		http.StatusUnauthorized,
	)
)
