package chat

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const viewColumns = "c.id, c.department_id, c.talker_id, e.name AS talker_name, c.message, c.created_at"

//go:generate mockgen -source=chat_repo.go -destination=mock/chat_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Chat) error
	FindByDepartment(ctx context.Context, departmentID int) ([]ChatView, error)
	DepartmentExists(ctx context.Context, departmentID int) (bool, error)
	TalkerExists(ctx context.Context, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Chat) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

// FindByDepartment: urut id naik, pesan lama di atas.
func (r *repository) FindByDepartment(ctx context.Context, departmentID int) ([]ChatView, error) {
	var views []ChatView
	err := r.db.WithContext(ctx).
		Table("chats c").
		Select(viewColumns).
		Joins("JOIN employees e ON e.id = c.talker_id").
		Where("c.department_id = ?", departmentID).
		Order("c.id ASC").
		Scan(&views).Error
	return views, err
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) TalkerExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
