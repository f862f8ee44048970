package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

func formatFieldName(s string) string {
	// 1. Pisahkan camelCase dan underscore (newPassword -> new Password)
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Ubah jadi Title Case (new Password -> New Password)
	caser := cases.Title(language.English)
	return caser.String(s)
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		// Ambil error pertama
		e := errs[0]

		// e.Field() sudah mengikuti nama json karena RegisterTagNameFunc di Init()
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "strongpassword":
			return New(
				CodeValidation,
				fmt.Sprintf("%s must contain a lower-case letter, an upper-case letter and a digit", humanReadableField),
				http.StatusBadRequest,
			)
		case "max":
			return New(
				CodeValidation,
				fmt.Sprintf("%s must be at most %s characters", humanReadableField, e.Param()),
				http.StatusBadRequest,
			)
		case "pastorpresent":
			return New(
				CodeValidation,
				fmt.Sprintf("%s must be a past or present date (YYYY-MM-DD)", humanReadableField),
				http.StatusBadRequest,
			)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusBadRequest,
	)
}
