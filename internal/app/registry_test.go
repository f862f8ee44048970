package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-groupware/internal/config"
	"go-groupware/internal/notify/notifytest"
	"go-groupware/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	r := gin.New()
	registerModules(r, moduleDeps{
		cfg:       config.Config{JWTSecret: "registry-test", DefaultPassword: "0000"},
		sqlDB:     sqlDB,
		gormDB:    gdb,
		publisher: &notifytest.Recorder{},
		logger:    zap.NewNop(),
	})
	return r
}

func TestRegisterModules_Routes(t *testing.T) {
	r := setupRouter(t)

	got := map[string]bool{}
	for _, rt := range r.Routes() {
		got[rt.Method+" "+rt.Path] = true
	}

	for _, want := range []string{
		"GET /api/employee",
		"POST /api/employee",
		"GET /api/employee/:id",
		"POST /api/employee/verify",
		"GET /api/department",
		"GET /api/board",
		"POST /api/board",
		"GET /api/board/:id",
		"GET /api/chat/:departmentId",
		"POST /api/chat/:departmentId",
		"POST /api/note",
		"GET /api/note/inBox",
		"GET /api/note/outBox",
		"GET /api/note/receive",
		"GET /api/note/send",
		"PUT /api/note/status/:id",
		"PUT /api/private/change-password",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestRegisterModules_ProtectedSurface(t *testing.T) {
	r := setupRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/board"},
		{http.MethodPost, "/api/board"},
		{http.MethodGet, "/api/chat/1"},
		{http.MethodGet, "/api/note/inBox"},
		{http.MethodPut, "/api/note/status/1"},
		{http.MethodPut, "/api/private/change-password"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}
