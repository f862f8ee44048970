package board

import (
	"context"
	"strings"
	"time"

	boarderrors "go-groupware/internal/board/errors"
	"go-groupware/internal/notify"
	"go-groupware/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=board_service.go -destination=mock/board_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, subject string, req AddBoardRequest) (BoardResponse, error)
	List(ctx context.Context, page, pageSize int) ([]BoardResponse, int64, error)
	GetByID(ctx context.Context, id int64) (BoardResponse, error)
}

type service struct {
	repo      Repository
	publisher notify.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, publisher notify.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("board.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("board.service")
	}
	if publisher == nil {
		publisher = notify.Nop()
	}
	return &service{repo: repo, publisher: publisher, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, subject string, req AddBoardRequest) (BoardResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	// binding "required" masih meloloskan spasi saja
	if strings.TrimSpace(req.Title) == "" {
		return BoardResponse{}, boarderrors.ErrBlankTitle
	}
	if strings.TrimSpace(req.Content) == "" {
		return BoardResponse{}, boarderrors.ErrBlankContent
	}

	exists, err := s.repo.WriterExists(ctx, subject)
	if err != nil {
		s.logger.Error("create board check writer failed", zap.Error(err))
		return BoardResponse{}, err
	}
	if !exists {
		s.logger.Warn("create board writer not found", zap.String("subject", subject))
		return BoardResponse{}, boarderrors.ErrWriterNotFound
	}

	b := &Board{
		WriterID:  subject,
		Title:     req.Title,
		Content:   req.Content,
		ViewCount: 0,
		WroteAt:   s.now(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("create board persist failed", zap.String("request_id", rid), zap.Error(err))
		return BoardResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, notify.MessageNewBoardPost)

	s.logger.Info("create board success",
		zap.String("request_id", rid),
		zap.Int64("board_id", b.ID),
		zap.String("writer_id", subject),
	)

	return mapEntityToResponse(*b), nil
}

// List mengembalikan satu halaman board plus total seluruh board.
// page dan pageSize diasumsikan >= 1; halaman di luar jangkauan menghasilkan slice kosong.
func (s *service) List(ctx context.Context, page, pageSize int) ([]BoardResponse, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count boards failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	var views []BoardView
	// bandingkan lewat pembagian supaya (page-1)*pageSize tidak overflow
	lastPage := (total + int64(pageSize) - 1) / int64(pageSize)
	if int64(page-1) < lastPage {
		views, err = s.repo.FindPage(ctx, pageSize, (page-1)*pageSize)
		if err != nil {
			s.logger.Error("list boards failed", zap.Error(err))
			return nil, 0, mapRepositoryError(err)
		}
	}

	s.publish(ctx, notify.MessageBoardViewed)

	return mapToListResponse(views), total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (BoardResponse, error) {
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return BoardResponse{}, mapRepositoryError(err)
	}

	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BoardResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*view), nil
}

// publish best-effort: kegagalan hanya di-log, mutasi yang sudah commit tetap sukses.
// Client yang sudah disconnect tidak membatalkan notifikasi.
func (s *service) publish(ctx context.Context, payload string) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), notify.PublicChannel, payload); err != nil {
		s.logger.Warn("board notification failed",
			zap.String("channel", notify.PublicChannel),
			zap.String("payload", payload),
			zap.Error(err),
		)
	}
}

func mapToResponse(v BoardView) BoardResponse {
	return BoardResponse{
		ID:        v.ID,
		Writer:    BoardWriterResponse{ID: v.WriterID, Name: v.WriterName},
		Title:     v.Title,
		Content:   v.Content,
		ViewCount: v.ViewCount,
		WroteAt:   v.WroteAt,
	}
}

func mapEntityToResponse(b Board) BoardResponse {
	return mapToResponse(BoardView{
		ID:        b.ID,
		WriterID:  b.WriterID,
		Title:     b.Title,
		Content:   b.Content,
		ViewCount: b.ViewCount,
		WroteAt:   b.WroteAt,
	})
}

func mapToListResponse(views []BoardView) []BoardResponse {
	res := make([]BoardResponse, len(views))
	for i, v := range views {
		res[i] = mapToResponse(v)
	}
	return res
}
