package note

import (
	"time"

	"go-groupware/internal/employee"
)

type Note struct {
	ID       int64     `gorm:"primaryKey"`
	SenderID string    `gorm:"size:20;not null;index"`
	Content  string    `gorm:"type:text;not null"`
	SendAt   time.Time `gorm:"not null"`
	IsDelete bool      `gorm:"not null;default:false"`

	Sender *employee.Employee `gorm:"foreignKey:SenderID;constraint:OnDelete:RESTRICT"`
}

func (Note) TableName() string { return "notes" }

// NoteStatus satu baris per penerima; hanya menyimpan note_id, tanpa back-pointer ke Note.Statuses.
type NoteStatus struct {
	ID         int64      `gorm:"primaryKey"`
	NoteID     int64      `gorm:"not null;index"`
	ReceiverID string     `gorm:"size:20;not null;index"`
	IsRead     bool       `gorm:"not null;default:false"`
	ReadAt     *time.Time
	IsDelete   bool       `gorm:"not null;default:false"`

	Note     *Note              `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
	Receiver *employee.Employee `gorm:"foreignKey:ReceiverID;constraint:OnDelete:RESTRICT"`
}

func (NoteStatus) TableName() string { return "note_statuses" }

// StatusView: note_statuses JOIN notes JOIN employees (pengirim).
type StatusView struct {
	ID         int64
	NoteID     int64
	ReceiverID string
	SenderID   string
	SenderName string
	Content    string
	SendAt     time.Time
	IsRead     bool
	ReadAt     *time.Time
}

type SentView struct {
	ID      int64
	Content string
	SendAt  time.Time
}

type ReceiverView struct {
	StatusID     int64
	NoteID       int64
	ReceiverID   string
	ReceiverName string
	IsRead       bool
	ReadAt       *time.Time
}
