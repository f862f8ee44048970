package auth

import (
	"context"
	"time"

	"go-groupware/internal/employee"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	FindCredential(ctx context.Context, employeeID string) (*Credential, error)
	UpdatePassword(ctx context.Context, employeeID, passwordHash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCredential(ctx context.Context, employeeID string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).
		Select("id", "password", "active").
		Where("id = ?", employeeID).
		First(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// UpdatePassword sekaligus mengaktifkan akun (active N -> Y).
func (r *repository) UpdatePassword(ctx context.Context, employeeID, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&Credential{}).
		Where("id = ?", employeeID).
		Updates(map[string]any{
			"password":   passwordHash,
			"active":     employee.ActiveYes,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
