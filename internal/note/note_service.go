package note

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	noteerrors "go-groupware/internal/note/errors"
	"go-groupware/internal/notify"
	"go-groupware/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=note_service.go -destination=mock/note_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, subject string, req AddNoteRequest) error
	Inbox(ctx context.Context, subject string) ([]NoteStatusResponse, error)
	Sent(ctx context.Context, subject string) ([]SentNoteResponse, error)
	MarkRead(ctx context.Context, subject string, statusID int64) (NoteStatusResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher notify.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, publisher notify.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("note.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("note.service")
	}
	if publisher == nil {
		publisher = notify.Nop()
	}
	return &service{db: db, repo: repo, publisher: publisher, now: time.Now, logger: l}
}

// Create menyimpan satu note + satu status per penerima dalam satu transaksi.
// Notifikasi baru dikirim setelah commit.
func (s *service) Create(ctx context.Context, subject string, req AddNoteRequest) error {
	rid := contextutil.GetRequestID(ctx)

	if strings.TrimSpace(req.Content) == "" {
		return noteerrors.ErrBlankContent
	}
	receivers := uniqueIDs(req.ReceiverIDs)
	if len(receivers) == 0 {
		return noteerrors.ErrNoReceivers
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create note begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.EmployeeName(ctx, subject); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("create note sender not found", zap.String("subject", subject))
			return noteerrors.ErrSenderNotFound
		}
		return err
	}

	found, err := qtx.ExistingEmployeeIDs(ctx, receivers)
	if err != nil {
		s.logger.Error("create note check receivers failed", zap.Error(err))
		return err
	}
	if missing := missingIDs(receivers, found); len(missing) > 0 {
		s.logger.Warn("create note receiver not found", zap.Strings("missing", missing))
		return noteerrors.ErrReceiverNotFound
	}

	n := &Note{
		SenderID: subject,
		Content:  req.Content,
		SendAt:   s.now(),
		IsDelete: false,
	}
	if err := qtx.CreateNote(ctx, n); err != nil {
		s.logger.Error("create note persist failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	statuses := make([]NoteStatus, len(receivers))
	for i, id := range receivers {
		statuses[i] = NoteStatus{NoteID: n.ID, ReceiverID: id}
	}
	if err := qtx.CreateStatuses(ctx, statuses); err != nil {
		s.logger.Error("create note statuses failed", zap.Int64("note_id", n.ID), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create note commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	for _, id := range receivers {
		s.publish(ctx, notify.Private(id), notify.MessageNewNote)
	}

	s.logger.Info("create note success",
		zap.String("request_id", rid),
		zap.Int64("note_id", n.ID),
		zap.String("sender_id", subject),
		zap.Int("receivers", len(receivers)),
	)
	return nil
}

func (s *service) Inbox(ctx context.Context, subject string) ([]NoteStatusResponse, error) {
	views, err := s.repo.FindInbox(ctx, subject)
	if err != nil {
		s.logger.Error("list inbox failed", zap.String("subject", subject), zap.Error(err))
		return nil, err
	}

	res := make([]NoteStatusResponse, len(views))
	for i, v := range views {
		res[i] = mapStatusToResponse(v)
	}
	return res, nil
}

func (s *service) Sent(ctx context.Context, subject string) ([]SentNoteResponse, error) {
	notes, err := s.repo.FindSent(ctx, subject)
	if err != nil {
		s.logger.Error("list sent notes failed", zap.String("subject", subject), zap.Error(err))
		return nil, err
	}

	ids := make([]int64, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	receivers, err := s.repo.FindReceivers(ctx, ids)
	if err != nil {
		s.logger.Error("list sent note receivers failed", zap.String("subject", subject), zap.Error(err))
		return nil, err
	}

	byNote := make(map[int64][]NoteReceiverResponse, len(notes))
	for _, r := range receivers {
		byNote[r.NoteID] = append(byNote[r.NoteID], NoteReceiverResponse{
			StatusID: r.StatusID,
			Receiver: NotePartyResponse{ID: r.ReceiverID, Name: r.ReceiverName},
			IsRead:   r.IsRead,
			ReadAt:   r.ReadAt,
		})
	}

	res := make([]SentNoteResponse, len(notes))
	for i, n := range notes {
		rs := byNote[n.ID]
		if rs == nil {
			rs = []NoteReceiverResponse{}
		}
		res[i] = SentNoteResponse{ID: n.ID, Content: n.Content, SendAt: n.SendAt, Receivers: rs}
	}
	return res, nil
}

// MarkRead: unread -> read sekali saja. Status yang sudah dibaca dikembalikan apa adanya
// tanpa stamp ulang dan tanpa notifikasi kedua.
func (s *service) MarkRead(ctx context.Context, subject string, statusID int64) (NoteStatusResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark note read begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return NoteStatusResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	st, err := qtx.LockStatus(ctx, statusID)
	if err != nil {
		return NoteStatusResponse{}, mapRepositoryError(err)
	}

	if st.ReceiverID != subject {
		s.logger.Warn("mark note read forbidden",
			zap.String("subject", subject),
			zap.Int64("status_id", statusID),
		)
		return NoteStatusResponse{}, noteerrors.ErrNotReceiver
	}

	if st.IsRead {
		s.logger.Debug("note already read", zap.Int64("status_id", statusID))
		return mapStatusToResponse(*st), nil
	}

	at := s.now()
	if err := qtx.MarkRead(ctx, statusID, at); err != nil {
		s.logger.Error("mark note read persist failed", zap.Int64("status_id", statusID), zap.Error(err))
		return NoteStatusResponse{}, mapRepositoryError(err)
	}

	readerName, err := qtx.EmployeeName(ctx, subject)
	if err != nil || readerName == "" {
		readerName = subject
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark note read commit failed", zap.String("request_id", rid), zap.Error(err))
		return NoteStatusResponse{}, err
	}

	s.publish(ctx, notify.Private(st.SenderID), notify.NoteRead(readerName))

	st.IsRead = true
	st.ReadAt = &at

	s.logger.Info("mark note read success",
		zap.String("request_id", rid),
		zap.Int64("status_id", statusID),
		zap.String("sender_id", st.SenderID),
	)
	return mapStatusToResponse(*st), nil
}

func (s *service) publish(ctx context.Context, channel, payload string) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), channel, payload); err != nil {
		s.logger.Warn("note notification failed",
			zap.String("channel", channel),
			zap.Error(err),
		)
	}
}

// uniqueIDs membuang id kosong dan duplikat, urutan pertama dipertahankan.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(want, found []string) []string {
	have := make(map[string]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	var missing []string
	for _, id := range want {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func mapStatusToResponse(v StatusView) NoteStatusResponse {
	return NoteStatusResponse{
		ID:      v.ID,
		NoteID:  v.NoteID,
		Sender:  NotePartyResponse{ID: v.SenderID, Name: v.SenderName},
		Content: v.Content,
		SendAt:  v.SendAt,
		IsRead:  v.IsRead,
		ReadAt:  v.ReadAt,
	}
}
