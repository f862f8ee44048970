package serial

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RefEmployee adalah ref yang dipakai untuk id employee (g-<n>).
const RefEmployee = "employee"

// ErrSerialMissing berarti baris serial belum di-seed. Tidak pernah dibuat otomatis.
var ErrSerialMissing = errors.New("serial row missing")

//go:generate mockgen -source=serial_repo.go -destination=mock/serial_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Allocate(ctx context.Context, ref string) (int64, error)
	FindByRef(ctx context.Context, ref string) (*Serial, error)
	EnsureRef(ctx context.Context, ref string) error
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

// Allocate menaikkan last_number secara atomik. Row lock dari UPDATE menyerialkan pemanggil konkuren.
func (r *repository) Allocate(ctx context.Context, ref string) (int64, error) {
	var next int64
	res := r.conn(ctx).Raw(
		`UPDATE serials SET last_number = last_number + 1 WHERE ref = ? RETURNING last_number`,
		ref,
	).Scan(&next)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrSerialMissing
	}
	return next, nil
}

func (r *repository) FindByRef(ctx context.Context, ref string) (*Serial, error) {
	var s Serial
	err := r.conn(ctx).Where("ref = ?", ref).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSerialMissing
	}
	return &s, err
}

// EnsureRef dipakai tool seed; baris yang sudah ada tidak disentuh.
func (r *repository) EnsureRef(ctx context.Context, ref string) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "ref"}}, DoNothing: true}).
		Create(&Serial{Ref: ref}).Error
}
