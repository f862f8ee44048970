package employee

import (
	"go-groupware/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes: endpoint direktori publik. /verify didaftarkan oleh package auth pada grup yang sama.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employee")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("",
			middleware.RateLimitByIP(0.5, 5),
			handler.Create,
		)
	}
}
