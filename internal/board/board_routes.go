package board

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
	boards := r.Group("/board", gate)
	{
		boards.GET("", handler.List)
		boards.GET("/:id", handler.GetByID)
		boards.POST("",
			middleware.RateLimitBySubject(0.5, 5),
			idempotency,
			handler.Create,
		)
	}
}
