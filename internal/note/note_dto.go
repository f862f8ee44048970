package note

import "time"

type AddNoteRequest struct {
	Content     string   `json:"content" binding:"required"`
	ReceiverIDs []string `json:"receiverIds" binding:"required,min=1,dive,required"`
}

type NotePartyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// NoteStatusResponse item inbox, juga hasil PUT /status/:id.
type NoteStatusResponse struct {
	ID      int64             `json:"id"`
	NoteID  int64             `json:"noteId"`
	Sender  NotePartyResponse `json:"sender"`
	Content string            `json:"content"`
	SendAt  time.Time         `json:"sendAt"`
	IsRead  bool              `json:"isRead"`
	ReadAt  *time.Time        `json:"readAt,omitempty"`
}

type NoteReceiverResponse struct {
	StatusID int64             `json:"statusId"`
	Receiver NotePartyResponse `json:"receiver"`
	IsRead   bool              `json:"isRead"`
	ReadAt   *time.Time        `json:"readAt,omitempty"`
}

type SentNoteResponse struct {
	ID        int64                  `json:"id"`
	Content   string                 `json:"content"`
	SendAt    time.Time              `json:"sendAt"`
	Receivers []NoteReceiverResponse `json:"receivers"`
}
