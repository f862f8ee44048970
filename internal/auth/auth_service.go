package auth

import (
	"context"
	"errors"

	autherrors "go-groupware/internal/auth/errors"
	"go-groupware/internal/employee"
	employeeerrors "go-groupware/internal/employee/errors"
	"go-groupware/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// EmployeeReader dipenuhi oleh employee.Service.
type EmployeeReader interface {
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Verify(ctx context.Context, req LoginRequest) (LoginResult, error)
	ChangePassword(ctx context.Context, subject string, req ChangePasswordRequest) error
}

type service struct {
	repo      Repository
	tokens    TokenIssuer
	employees EmployeeReader
	logger    *zap.Logger
}

func NewService(repo Repository, tokens TokenIssuer, employees EmployeeReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, employees: employees, logger: l}
}

func (s *service) Verify(ctx context.Context, req LoginRequest) (LoginResult, error) {
	rid := contextutil.GetRequestID(ctx)

	// 1. Ambil credential
	cred, err := s.repo.FindCredential(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("login rejected", zap.String("request_id", rid), zap.String("employee_id", req.ID))
			return LoginResult{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login find credential failed", zap.Error(err))
		return LoginResult{}, err
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("request_id", rid), zap.String("employee_id", req.ID))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	// 3. Token tanpa expiry, subject = employee id
	token, err := s.tokens.Issue(cred.ID)
	if err != nil {
		s.logger.Error("login issue token failed", zap.Error(err))
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	empl, err := s.employees.GetByID(ctx, cred.ID)
	if err != nil {
		return LoginResult{}, err
	}

	s.logger.Info("login success", zap.String("request_id", rid), zap.String("employee_id", cred.ID))
	return LoginResult{Token: token, Employee: empl}, nil
}

// ChangePassword: 403 kalau bukan pemilik, 404 kalau employee hilang, 403 kalau password lama salah,
// 400 kalau password baru lebih dari 72 byte.
func (s *service) ChangePassword(ctx context.Context, subject string, req ChangePasswordRequest) error {
	if req.EmployeeID != subject {
		s.logger.Warn("change password for another employee rejected",
			zap.String("subject", subject),
			zap.String("employee_id", req.EmployeeID),
		)
		return autherrors.ErrNotOwner
	}

	cred, err := s.repo.FindCredential(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("change password find credential failed", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrOldPasswordMismatch
	}

	// bcrypt hanya menerima 72 byte
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return autherrors.ErrPasswordTooLong
		}
		s.logger.Error("change password hash failed", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, cred.ID, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("change password persist failed", zap.Error(err))
		return err
	}

	s.logger.Info("password changed, account active", zap.String("employee_id", cred.ID))
	return nil
}
