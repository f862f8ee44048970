package chat

import "time"

type AddChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type ChatTalkerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ChatResponse struct {
	ID           int64              `json:"id"`
	DepartmentID int                `json:"departmentId"`
	Talker       ChatTalkerResponse `json:"talker"`
	Message      string             `json:"message"`
	CreatedAt    time.Time          `json:"createdAt"`
}
