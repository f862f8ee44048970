package middleware

import (
	"net/http"
	"strings"

	"go-groupware/internal/shared/apperror"
	"go-groupware/internal/shared/contextutil"
	"go-groupware/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SubjectKey adalah key gin context tempat subject hasil verifikasi disimpan.
const SubjectKey = "subject"

const bearerPrefix = "Bearer "

type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// AuthGate memverifikasi bearer token untuk setiap request di grup yang dilindungi.
// Semua kegagalan dijawab 401 dengan pesan yang sama.
func AuthGate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// preflight CORS tidak membawa Authorization
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !found || raw == "" {
			rejectUnauthenticated(c)
			return
		}

		subject, err := tokens.Verify(raw)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		c.Set(SubjectKey, subject)
		c.Request = c.Request.WithContext(contextutil.WithSubject(c.Request.Context(), subject))

		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication failed", nil)
	c.Abort()
}

// Subject dibaca handler yang berada di belakang AuthGate.
func Subject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}
