package auth

import (
	"go-groupware/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes: /employee/verify publik, /private/** di belakang gate.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, gate gin.HandlerFunc) {
	r.POST("/employee/verify",
		middleware.RateLimitByIP(1, 5),
		h.Verify,
	)

	private := r.Group("/private", gate)
	{
		private.PUT("/change-password",
			middleware.RateLimitBySubject(0.2, 3),
			h.ChangePassword,
		)
	}
}
