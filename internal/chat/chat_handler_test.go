package chat_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-groupware/internal/chat"
	chaterrors "go-groupware/internal/chat/errors"
	"go-groupware/internal/middleware"
	"go-groupware/internal/shared/apperror"
	"go-groupware/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeChatService struct {
	ListFn   func(ctx context.Context, departmentID int) ([]chat.ChatResponse, error)
	CreateFn func(ctx context.Context, subject string, departmentID int, req chat.AddChatRequest) (chat.ChatResponse, error)
}

func (f *fakeChatService) List(ctx context.Context, departmentID int) ([]chat.ChatResponse, error) {
	return f.ListFn(ctx, departmentID)
}
func (f *fakeChatService) Create(ctx context.Context, subject string, departmentID int, req chat.AddChatRequest) (chat.ChatResponse, error) {
	return f.CreateFn(ctx, subject, departmentID, req)
}

func setupRouter(svc chat.Service) (*gin.Engine, *token.Service) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	tokens := token.NewService("chat-test-secret")
	r := gin.New()
	chat.RegisterRoutes(r.Group("/api"), chat.NewHandler(svc), middleware.AuthGate(tokens))
	return r, tokens
}

func TestChatHandler(t *testing.T) {
	svc := &fakeChatService{
		ListFn: func(ctx context.Context, departmentID int) ([]chat.ChatResponse, error) {
			if departmentID == 404 {
				return nil, chaterrors.ErrDepartmentNotFound
			}
			return []chat.ChatResponse{{ID: 1}}, nil
		},
		CreateFn: func(ctx context.Context, subject string, departmentID int, req chat.AddChatRequest) (chat.ChatResponse, error) {
			return chat.ChatResponse{ID: 1, DepartmentID: departmentID, Talker: chat.ChatTalkerResponse{ID: subject}, Message: req.Message}, nil
		},
	}
	r, tokens := setupRouter(svc)
	raw, err := tokens.Issue("g-5")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		auth       bool
		wantStatus int
	}{
		{"list ok", http.MethodGet, "/api/chat/1", "", true, http.StatusOK},
		{"list unknown department", http.MethodGet, "/api/chat/404", "", true, http.StatusNotFound},
		{"list bad id", http.MethodGet, "/api/chat/abc", "", true, http.StatusBadRequest},
		{"list without token", http.MethodGet, "/api/chat/1", "", false, http.StatusUnauthorized},
		{"create ok", http.MethodPost, "/api/chat/1", `{"message":"hi"}`, true, http.StatusCreated},
		{"create missing message", http.MethodPost, "/api/chat/1", `{}`, true, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.auth {
				req.Header.Set("Authorization", "Bearer "+raw)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
