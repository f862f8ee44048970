package department

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes: daftar department publik, dipakai form registrasi.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/department")
	{
		departments.GET("", h.GetAll)
	}
}
