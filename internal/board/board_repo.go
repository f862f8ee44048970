package board

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const viewColumns = "b.id, b.writer_id, e.name AS writer_name, b.title, b.content, b.view_count, b.wrote_at"

//go:generate mockgen -source=board_repo.go -destination=mock/board_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, b *Board) error
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, limit, offset int) ([]BoardView, error)
	FindByID(ctx context.Context, id int64) (*BoardView, error)
	IncrementViewCount(ctx context.Context, id int64) error
	WriterExists(ctx context.Context, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Board) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Board{}).
		Count(&count).Error
	return count, err
}

// FindPage: terbaru di atas.
func (r *repository) FindPage(ctx context.Context, limit, offset int) ([]BoardView, error) {
	var views []BoardView
	err := r.db.WithContext(ctx).
		Table("boards b").
		Select(viewColumns).
		Joins("JOIN employees e ON e.id = b.writer_id").
		Order("b.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error
	return views, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*BoardView, error) {
	var view BoardView
	res := r.db.WithContext(ctx).
		Table("boards b").
		Select(viewColumns).
		Joins("JOIN employees e ON e.id = b.writer_id").
		Where("b.id = ?", id).
		Limit(1).
		Scan(&view)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}

func (r *repository) IncrementViewCount(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&Board{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) WriterExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
