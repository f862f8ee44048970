package board

import "time"

type AddBoardRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

type BoardWriterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type BoardResponse struct {
	ID        int64               `json:"id"`
	Writer    BoardWriterResponse `json:"writer"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	ViewCount int                 `json:"viewCount"`
	WroteAt   time.Time           `json:"wroteAt"`
}
