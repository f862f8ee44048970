package board

import (
	"time"

	"go-groupware/internal/employee"
)

type Board struct {
	ID        int64     `gorm:"primaryKey"`
	WriterID  string    `gorm:"size:20;not null;index"`
	Title     string    `gorm:"size:200;not null"`
	Content   string    `gorm:"type:text;not null"`
	ViewCount int       `gorm:"not null;default:0"`
	WroteAt   time.Time `gorm:"not null"`

	Writer *employee.Employee `gorm:"foreignKey:WriterID;constraint:OnDelete:RESTRICT"`
}

func (Board) TableName() string { return "boards" }

// BoardView hasil JOIN boards + employees (nama penulis).
type BoardView struct {
	ID         int64
	WriterID   string
	WriterName string
	Title      string
	Content    string
	ViewCount  int
	WroteAt    time.Time
}
