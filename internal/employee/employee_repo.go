package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const viewColumns = "e.id, e.name, e.email, e.hire_date, e.position, e.active, e.department_id, d.name AS department_name"

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]EmployeeView, error)
	FindByID(ctx context.Context, id string) (*EmployeeView, error)
	DepartmentExists(ctx context.Context, departmentID int) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Omit(clause.Associations).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeView, error) {
	var views []EmployeeView
	err := r.conn(ctx).
		Table("employees e").
		Select(viewColumns).
		Joins("JOIN departments d ON d.id = e.department_id").
		Order("e.created_at ASC, e.id ASC").
		Scan(&views).Error
	return views, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeView, error) {
	var view EmployeeView
	res := r.conn(ctx).
		Table("employees e").
		Select(viewColumns).
		Joins("JOIN departments d ON d.id = e.department_id").
		Where("e.id = ?", id).
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

func (r *repository) DepartmentExists(ctx context.Context, departmentID int) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("departments").
		Where("id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}
