package apperror

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	lowerRe = regexp.MustCompile(`[a-z]`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

func Init() {
	// Daftarkan fungsi kustom ke validator bawaan Gin
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations dipisah supaya bisa dipanggil dari test tanpa Gin.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Mengambil nama dari tag json (contoh: `json:"newPassword"`)
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("strongpassword", validateStrongPassword)
	_ = v.RegisterValidation("pastorpresent", validatePastOrPresent)
}

// minimal satu huruf kecil, satu huruf besar, satu angka
func validateStrongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return lowerRe.MatchString(s) && upperRe.MatchString(s) && digitRe.MatchString(s)
}

// Format tanggal YYYY-MM-DD, kosong dianggap valid (pakai "required" kalau wajib)
func validatePastOrPresent(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return false
	}
	return !d.After(time.Now())
}
