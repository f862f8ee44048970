package note

import (
	"go-groupware/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	gate gin.HandlerFunc,
	idempotency gin.HandlerFunc,
) {
	notes := r.Group("/note", gate)
	{
		notes.POST("",
			middleware.RateLimitBySubject(1, 10),
			idempotency,
			handler.Create,
		)

		notes.GET("/inBox", handler.Inbox)
		notes.GET("/outBox", handler.Outbox)
		// alias lama
		notes.GET("/receive", handler.Inbox)
		notes.GET("/send", handler.Outbox)

		notes.PUT("/status/:id", handler.MarkRead)
	}
}
