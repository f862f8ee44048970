package note

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const statusColumns = "ns.id, ns.note_id, ns.receiver_id, n.sender_id, e.name AS sender_name, n.content, n.send_at, ns.is_read, ns.read_at"

//go:generate mockgen -source=note_repo.go -destination=mock/note_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateNote(ctx context.Context, n *Note) error
	CreateStatuses(ctx context.Context, statuses []NoteStatus) error
	ExistingEmployeeIDs(ctx context.Context, ids []string) ([]string, error)
	EmployeeName(ctx context.Context, id string) (string, error)
	FindInbox(ctx context.Context, receiverID string) ([]StatusView, error)
	FindSent(ctx context.Context, senderID string) ([]SentView, error)
	FindReceivers(ctx context.Context, noteIDs []int64) ([]ReceiverView, error)
	LockStatus(ctx context.Context, statusID int64) (*StatusView, error)
	MarkRead(ctx context.Context, statusID int64, at time.Time) error
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

func (r *repository) CreateNote(ctx context.Context, n *Note) error {
	return r.conn(ctx).Omit(clause.Associations).Create(n).Error
}

func (r *repository) CreateStatuses(ctx context.Context, statuses []NoteStatus) error {
	if len(statuses) == 0 {
		return nil
	}
	return r.conn(ctx).Omit(clause.Associations).Create(&statuses).Error
}

func (r *repository) ExistingEmployeeIDs(ctx context.Context, ids []string) ([]string, error) {
	var found []string
	if len(ids) == 0 {
		return found, nil
	}
	err := r.conn(ctx).
		Table("employees").
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	return found, err
}

func (r *repository) EmployeeName(ctx context.Context, id string) (string, error) {
	var names []string
	err := r.conn(ctx).
		Table("employees").
		Where("id = ?", id).
		Limit(1).
		Pluck("name", &names).Error
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return names[0], nil
}

// FindInbox: status milik penerima yang belum dihapus, terbaru di atas.
func (r *repository) FindInbox(ctx context.Context, receiverID string) ([]StatusView, error) {
	var views []StatusView
	err := r.conn(ctx).
		Table("note_statuses ns").
		Select(statusColumns).
		Joins("JOIN notes n ON n.id = ns.note_id").
		Joins("JOIN employees e ON e.id = n.sender_id").
		Where("ns.receiver_id = ? AND ns.is_delete = ?", receiverID, false).
		Order("ns.id DESC").
		Scan(&views).Error
	return views, err
}

func (r *repository) FindSent(ctx context.Context, senderID string) ([]SentView, error) {
	var views []SentView
	err := r.conn(ctx).
		Table("notes").
		Select("id, content, send_at").
		Where("sender_id = ? AND is_delete = ?", senderID, false).
		Order("id DESC").
		Scan(&views).Error
	return views, err
}

func (r *repository) FindReceivers(ctx context.Context, noteIDs []int64) ([]ReceiverView, error) {
	var views []ReceiverView
	if len(noteIDs) == 0 {
		return views, nil
	}
	err := r.conn(ctx).
		Table("note_statuses ns").
		Select("ns.id AS status_id, ns.note_id, ns.receiver_id, e.name AS receiver_name, ns.is_read, ns.read_at").
		Joins("JOIN employees e ON e.id = ns.receiver_id").
		Where("ns.note_id IN ?", noteIDs).
		Order("ns.id ASC").
		Scan(&views).Error
	return views, err
}

// LockStatus wajib dipanggil di dalam transaksi; baris note_statuses dikunci sampai commit/rollback.
func (r *repository) LockStatus(ctx context.Context, statusID int64) (*StatusView, error) {
	var view StatusView
	res := r.conn(ctx).Raw(`
		SELECT `+statusColumns+`
		FROM note_statuses ns
		JOIN notes n ON n.id = ns.note_id
		JOIN employees e ON e.id = n.sender_id
		WHERE ns.id = ?
		FOR UPDATE OF ns`, statusID).
		Scan(&view)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}

func (r *repository) MarkRead(ctx context.Context, statusID int64, at time.Time) error {
	res := r.conn(ctx).
		Model(&NoteStatus{}).
		Where("id = ? AND is_read = ?", statusID, false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
