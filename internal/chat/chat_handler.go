package chat

import (
	"net/http"
	"strconv"

	chaterrors "go-groupware/internal/chat/errors"
	"go-groupware/internal/middleware"
	"go-groupware/internal/shared/apperror"
	"go-groupware/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("chat.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("chat request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("subject", middleware.Subject(c)),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func departmentParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("departmentId"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	departmentID, ok := departmentParam(c)
	if !ok {
		h.writeServiceError(c, chaterrors.ErrInvalidDepartmentID)
		return
	}

	resp, err := h.service.List(c.Request.Context(), departmentID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	departmentID, ok := departmentParam(c)
	if !ok {
		h.writeServiceError(c, chaterrors.ErrInvalidDepartmentID)
		return
	}

	var req AddChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.Subject(c), departmentID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}
