package chat

import (
	"time"

	"go-groupware/internal/department"
	"go-groupware/internal/employee"
)

type Chat struct {
	ID           int64     `gorm:"primaryKey"`
	DepartmentID int       `gorm:"not null;index"`
	TalkerID     string    `gorm:"size:20;not null"`
	Message      string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Department *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	Talker     *employee.Employee     `gorm:"foreignKey:TalkerID;constraint:OnDelete:RESTRICT"`
}

func (Chat) TableName() string { return "chats" }

type ChatView struct {
	ID           int64
	DepartmentID int
	TalkerID     string
	TalkerName   string
	Message      string
	CreatedAt    time.Time
}
