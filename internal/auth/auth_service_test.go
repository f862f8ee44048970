package auth_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"go-groupware/internal/auth"
	autherrors "go-groupware/internal/auth/errors"
	authMock "go-groupware/internal/auth/mock"
	"go-groupware/internal/employee"
	employeeerrors "go-groupware/internal/employee/errors"
	"go-groupware/internal/shared/apperror"
	"go-groupware/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const secret = "test-secret"

type fakeEmployeeReader struct{}

func (fakeEmployeeReader) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id, Name: "Kim Minji"}, nil
}

// memoryRepo menyimpan credential di memori supaya alur aktivasi bisa diuji end-to-end.
type memoryRepo struct {
	mu    sync.Mutex
	creds map[string]auth.Credential
}

func (m *memoryRepo) FindCredential(ctx context.Context, id string) (*auth.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (m *memoryRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Password = hash
	c.Active = employee.ActiveYes
	m.creds[id] = c
	return nil
}

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	tokens := token.NewService(secret)
	svc := auth.NewService(repo, tokens, fakeEmployeeReader{})
	ctx := context.Background()

	t.Run("success - token subject is employee id", func(t *testing.T) {
		repo.EXPECT().FindCredential(ctx, "g-1").
			Return(&auth.Credential{ID: "g-1", Password: hashOf(t, "0000"), Active: "N"}, nil)

		result, err := svc.Verify(ctx, auth.LoginRequest{ID: "g-1", Password: "0000"})

		require.NoError(t, err)
		subject, err := tokens.Verify(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "g-1", subject)
		assert.Equal(t, "g-1", result.Employee.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindCredential(ctx, "g-1").
			Return(&auth.Credential{ID: "g-1", Password: hashOf(t, "0000")}, nil)

		_, err := svc.Verify(ctx, auth.LoginRequest{ID: "g-1", Password: "1111"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown employee looks the same as wrong password", func(t *testing.T) {
		repo.EXPECT().FindCredential(ctx, "g-404").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Verify(ctx, auth.LoginRequest{ID: "g-404", Password: "0000"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("db error is not masked", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo.EXPECT().FindCredential(ctx, "g-1").Return(nil, dbErr)

		_, err := svc.Verify(ctx, auth.LoginRequest{ID: "g-1", Password: "0000"})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("forbidden - employeeId is not the subject, repo untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, token.NewService(secret), fakeEmployeeReader{})

		repo.EXPECT().FindCredential(gomock.Any(), gomock.Any()).Times(0)
		repo.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword(ctx, "g-1", auth.ChangePasswordRequest{
			EmployeeID: "g-2", OldPassword: "0000", NewPassword: "Abc123",
		})

		assert.ErrorIs(t, err, autherrors.ErrNotOwner)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, token.NewService(secret), fakeEmployeeReader{})

		repo.EXPECT().FindCredential(ctx, "g-9").Return(nil, gorm.ErrRecordNotFound)

		err := svc.ChangePassword(ctx, "g-9", auth.ChangePasswordRequest{
			EmployeeID: "g-9", OldPassword: "0000", NewPassword: "Abc123",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("old password mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, token.NewService(secret), fakeEmployeeReader{})

		repo.EXPECT().FindCredential(ctx, "g-1").
			Return(&auth.Credential{ID: "g-1", Password: hashOf(t, "0000")}, nil)
		repo.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword(ctx, "g-1", auth.ChangePasswordRequest{
			EmployeeID: "g-1", OldPassword: "9999", NewPassword: "Abc123",
		})

		assert.ErrorIs(t, err, autherrors.ErrOldPasswordMismatch)
	})

	t.Run("new password over 72 bytes -> 400, nothing persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, token.NewService(secret), fakeEmployeeReader{})

		repo.EXPECT().FindCredential(ctx, "g-1").
			Return(&auth.Credential{ID: "g-1", Password: hashOf(t, "0000")}, nil)
		repo.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.ChangePassword(ctx, "g-1", auth.ChangePasswordRequest{
			EmployeeID: "g-1", OldPassword: "0000", NewPassword: "Aa1" + strings.Repeat("x", 80),
		})

		assert.ErrorIs(t, err, autherrors.ErrPasswordTooLong)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})
}

func TestService_ActivationScenario(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{creds: map[string]auth.Credential{
		"g-1": {ID: "g-1", Password: hashOf(t, "0000"), Active: employee.ActiveNo},
	}}
	svc := auth.NewService(repo, token.NewService(secret), fakeEmployeeReader{})

	_, err := svc.Verify(ctx, auth.LoginRequest{ID: "g-1", Password: "0000"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, "g-1", auth.ChangePasswordRequest{
		EmployeeID: "g-1", OldPassword: "0000", NewPassword: "Abc123",
	})
	require.NoError(t, err)

	assert.Equal(t, employee.ActiveYes, repo.creds["g-1"].Active)

	_, err = svc.Verify(ctx, auth.LoginRequest{ID: "g-1", Password: "0000"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, err = svc.Verify(ctx, auth.LoginRequest{ID: "g-1", Password: "Abc123"})
	assert.NoError(t, err)
}
