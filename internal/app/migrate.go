package app

import (
	"go-groupware/internal/board"
	"go-groupware/internal/chat"
	"go-groupware/internal/department"
	"go-groupware/internal/employee"
	"go-groupware/internal/messaging/kafka"
	"go-groupware/internal/note"
	"go-groupware/internal/serial"

	"gorm.io/gorm"
)

// Models urut sesuai dependensi foreign key.
func Models() []any {
	return []any{
		&department.Department{},
		&employee.Employee{},
		&serial.Serial{},
		&board.Board{},
		&chat.Chat{},
		&note.Note{},
		&note.NoteStatus{},
		&kafka.OutboxEvent{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
