package notify

import (
	"context"
	"fmt"
)

const (
	PublicChannel         = "/public"
	PrivatePrefix         = "/private"
	ChatDepartmentPrefix  = "/chat-department"
	MessageNewBoardPost   = "new board post"
	MessageBoardViewed    = "board list viewed"
	MessageChatRefresh    = "refresh"
	MessageNewNote        = "you have a new note"
	messageNoteReadSuffix = " read your note"
	messageNewColleague   = "new colleague: "
)

// Publisher mengirim payload ke semua subscriber channel yang sedang terhubung.
// Tidak ada jaminan delivery; error hanya untuk di-log oleh pemanggil.
type Publisher interface {
	Publish(ctx context.Context, channel, payload string) error
}

func ChatDepartment(departmentID int) string {
	return fmt.Sprintf("%s/%d", ChatDepartmentPrefix, departmentID)
}

func Private(employeeID string) string {
	return PrivatePrefix + "/" + employeeID
}

// NoteRead payload untuk pengirim note ketika penerima membacanya.
func NoteRead(readerName string) string {
	return readerName + messageNoteReadSuffix
}

// NewColleague advisory /public setelah event employee_registered diterima.
func NewColleague(name string) string {
	return messageNewColleague + name
}

type nop struct{}

// Nop dipakai saat realtime hub tidak dipasang (mis. worker, seed).
func Nop() Publisher { return nop{} }

func (nop) Publish(context.Context, string, string) error { return nil }
