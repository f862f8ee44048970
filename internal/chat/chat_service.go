package chat

import (
	"context"
	"strings"
	"time"

	chaterrors "go-groupware/internal/chat/errors"
	"go-groupware/internal/notify"
	"go-groupware/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=chat_service.go -destination=mock/chat_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, departmentID int) ([]ChatResponse, error)
	Create(ctx context.Context, subject string, departmentID int, req AddChatRequest) (ChatResponse, error)
}

type service struct {
	repo      Repository
	publisher notify.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, publisher notify.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("chat.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.service")
	}
	if publisher == nil {
		publisher = notify.Nop()
	}
	return &service{repo: repo, publisher: publisher, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context, departmentID int) ([]ChatResponse, error) {
	if err := s.ensureDepartment(ctx, departmentID); err != nil {
		return nil, err
	}

	views, err := s.repo.FindByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("list chats failed", zap.Int("department_id", departmentID), zap.Error(err))
		return nil, err
	}

	res := make([]ChatResponse, len(views))
	for i, v := range views {
		res[i] = mapToResponse(v)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, subject string, departmentID int, req AddChatRequest) (ChatResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if strings.TrimSpace(req.Message) == "" {
		return ChatResponse{}, chaterrors.ErrBlankMessage
	}
	if err := s.ensureDepartment(ctx, departmentID); err != nil {
		return ChatResponse{}, err
	}

	ok, err := s.repo.TalkerExists(ctx, subject)
	if err != nil {
		s.logger.Error("create chat check talker failed", zap.Error(err))
		return ChatResponse{}, err
	}
	if !ok {
		s.logger.Warn("create chat talker not found", zap.String("subject", subject))
		return ChatResponse{}, chaterrors.ErrTalkerNotFound
	}

	c := &Chat{
		DepartmentID: departmentID,
		TalkerID:     subject,
		Message:      req.Message,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create chat persist failed", zap.String("request_id", rid), zap.Error(err))
		return ChatResponse{}, mapRepositoryError(err)
	}

	channel := notify.ChatDepartment(departmentID)
	// chat sudah tersimpan; client yang disconnect tidak membatalkan notifikasi
	if err := s.publisher.Publish(context.WithoutCancel(ctx), channel, notify.MessageChatRefresh); err != nil {
		s.logger.Warn("chat notification failed", zap.String("channel", channel), zap.Error(err))
	}

	s.logger.Info("create chat success",
		zap.String("request_id", rid),
		zap.Int64("chat_id", c.ID),
		zap.Int("department_id", departmentID),
	)

	return mapToResponse(ChatView{
		ID:           c.ID,
		DepartmentID: c.DepartmentID,
		TalkerID:     c.TalkerID,
		Message:      c.Message,
		CreatedAt:    c.CreatedAt,
	}), nil
}

func (s *service) ensureDepartment(ctx context.Context, departmentID int) error {
	exists, err := s.repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		s.logger.Error("chat check department failed", zap.Int("department_id", departmentID), zap.Error(err))
		return err
	}
	if !exists {
		return chaterrors.ErrDepartmentNotFound
	}
	return nil
}

func mapToResponse(v ChatView) ChatResponse {
	return ChatResponse{
		ID:           v.ID,
		DepartmentID: v.DepartmentID,
		Talker:       ChatTalkerResponse{ID: v.TalkerID, Name: v.TalkerName},
		Message:      v.Message,
		CreatedAt:    v.CreatedAt,
	}
}
