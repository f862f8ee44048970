package employee

import (
	"time"

	"go-groupware/internal/department"
)

const (
	ActiveNo  = "N"
	ActiveYes = "Y"
)

type Employee struct {
	ID           string     `gorm:"primaryKey;size:20"`
	Password     string     `gorm:"size:100;not null"`
	Name         string     `gorm:"size:100;not null"`
	Email        string     `gorm:"size:100"`
	HireDate     *time.Time `gorm:"type:date"`
	Position     string     `gorm:"size:50"`
	Active       string     `gorm:"type:char(1);not null;default:N"`
	DepartmentID int        `gorm:"not null;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	// hanya untuk FK saat migrate, tidak pernah di-load
	Department *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
}

func (Employee) TableName() string { return "employees" }

// EmployeeView hasil JOIN employees + departments.
type EmployeeView struct {
	ID             string
	Name           string
	Email          string
	HireDate       *time.Time
	Position       string
	Active         string
	DepartmentID   int
	DepartmentName string
}
