package chat

import (
	"go-groupware/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, gate gin.HandlerFunc) {
	chats := r.Group("/chat", gate)
	{
		chats.GET("/:departmentId", handler.List)
		chats.POST("/:departmentId", middleware.RateLimitBySubject(2, 10), handler.Create)
	}
}
