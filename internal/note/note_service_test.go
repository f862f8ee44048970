package note_test

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"go-groupware/internal/note"
	noteerrors "go-groupware/internal/note/errors"
	noteMock "go-groupware/internal/note/mock"
	"go-groupware/internal/notify/notifytest"
	"go-groupware/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   note.Service
	repo      *noteMock.MockRepository
	publisher *notifytest.Recorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := noteMock.NewMockRepository(ctrl)
	pub := &notifytest.Recorder{}

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   note.NewService(db, repo, pub),
		repo:      repo,
		publisher: pub,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("g-10 sends to g-11 and g-12 - one note, two statuses, two publishes", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeName(ctx, "g-10").Return("Kim", nil)
		deps.repo.EXPECT().ExistingEmployeeIDs(ctx, []string{"g-11", "g-12"}).Return([]string{"g-12", "g-11"}, nil)
		deps.repo.EXPECT().
			CreateNote(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, n *note.Note) error {
				assert.Equal(t, "g-10", n.SenderID)
				assert.Equal(t, "review the PR", n.Content)
				assert.False(t, n.IsDelete)
				n.ID = 1
				return nil
			})
		deps.repo.EXPECT().
			CreateStatuses(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, statuses []note.NoteStatus) error {
				require.Len(t, statuses, 2)
				for i, want := range []string{"g-11", "g-12"} {
					assert.Equal(t, int64(1), statuses[i].NoteID)
					assert.Equal(t, want, statuses[i].ReceiverID)
					assert.False(t, statuses[i].IsRead)
					assert.False(t, statuses[i].IsDelete)
					assert.Nil(t, statuses[i].ReadAt)
				}
				// belum commit, belum boleh ada notifikasi
				assert.Empty(t, deps.publisher.Calls())
				return nil
			})

		err := deps.service.Create(ctx, "g-10", note.AddNoteRequest{
			Content:     "review the PR",
			ReceiverIDs: []string{"g-11", "g-12", "g-11"},
		})

		assert.NoError(t, err)
		assert.Equal(t, []notifytest.Call{
			{Channel: "/private/g-11", Payload: "you have a new note"},
			{Channel: "/private/g-12", Payload: "you have a new note"},
		}, deps.publisher.Calls())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown receiver -> 404, nothing written", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeName(ctx, "g-10").Return("Kim", nil)
		deps.repo.EXPECT().ExistingEmployeeIDs(ctx, []string{"g-11", "g-99"}).Return([]string{"g-11"}, nil)
		deps.repo.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().CreateStatuses(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.Create(ctx, "g-10", note.AddNoteRequest{
			Content:     "hi",
			ReceiverIDs: []string{"g-11", "g-99"},
		})

		assert.ErrorIs(t, err, noteerrors.ErrReceiverNotFound)
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
		assert.Empty(t, deps.publisher.Calls())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("sender missing -> 401", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeName(ctx, "g-gone").Return("", gorm.ErrRecordNotFound)

		err := deps.service.Create(ctx, "g-gone", note.AddNoteRequest{Content: "hi", ReceiverIDs: []string{"g-1"}})

		assert.ErrorIs(t, err, noteerrors.ErrSenderNotFound)
	})

	t.Run("blank content -> 400 before tx", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Create(ctx, "g-10", note.AddNoteRequest{Content: "  ", ReceiverIDs: []string{"g-11"}})

		assert.ErrorIs(t, err, noteerrors.ErrBlankContent)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("only blank receiver ids -> 400", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Create(ctx, "g-10", note.AddNoteRequest{Content: "x", ReceiverIDs: []string{" ", ""}})

		assert.ErrorIs(t, err, noteerrors.ErrNoReceivers)
	})
}

func TestNoteService_MarkRead(t *testing.T) {
	ctx := context.Background()

	unread := func() *note.StatusView {
		return &note.StatusView{ID: 5, NoteID: 1, ReceiverID: "g-11", SenderID: "g-10", SenderName: "Kim", Content: "review the PR"}
	}

	t.Run("first read stamps and notifies sender; second read is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, false)

		var stampedAt time.Time
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
		gomock.InOrder(
			deps.repo.EXPECT().LockStatus(ctx, int64(5)).Return(unread(), nil),
			deps.repo.EXPECT().
				MarkRead(ctx, int64(5), gomock.Any()).
				DoAndReturn(func(ctx context.Context, id int64, at time.Time) error {
					stampedAt = at
					return nil
				}),
			deps.repo.EXPECT().EmployeeName(ctx, "g-11").Return("Park", nil),
			deps.repo.EXPECT().LockStatus(ctx, int64(5)).DoAndReturn(func(ctx context.Context, id int64) (*note.StatusView, error) {
				st := unread()
				st.IsRead = true
				st.ReadAt = &stampedAt
				return st, nil
			}),
		)

		first, err := deps.service.MarkRead(ctx, "g-11", 5)
		require.NoError(t, err)
		assert.True(t, first.IsRead)
		require.NotNil(t, first.ReadAt)

		second, err := deps.service.MarkRead(ctx, "g-11", 5)
		require.NoError(t, err)
		assert.True(t, second.IsRead)
		assert.Equal(t, *first.ReadAt, *second.ReadAt)

		assert.Equal(t, []notifytest.Call{{Channel: "/private/g-10", Payload: "Park read your note"}}, deps.publisher.Calls())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("non-receiver -> 403, row untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockStatus(ctx, int64(5)).Return(unread(), nil)
		deps.repo.EXPECT().MarkRead(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.MarkRead(ctx, "g-12", 5)

		assert.ErrorIs(t, err, noteerrors.ErrNotReceiver)
		assert.Equal(t, http.StatusForbidden, apperror.ToHTTP(err).Status)
		assert.Empty(t, deps.publisher.Calls())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown status -> 404", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockStatus(ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.MarkRead(ctx, "g-11", 404)

		assert.ErrorIs(t, err, noteerrors.ErrStatusNotFound)
	})

	t.Run("reader name missing falls back to id", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockStatus(ctx, int64(5)).Return(unread(), nil)
		deps.repo.EXPECT().MarkRead(ctx, int64(5), gomock.Any()).Return(nil)
		deps.repo.EXPECT().EmployeeName(ctx, "g-11").Return("", gorm.ErrRecordNotFound)

		_, err := deps.service.MarkRead(ctx, "g-11", 5)

		assert.NoError(t, err)
		assert.Equal(t, []notifytest.Call{{Channel: "/private/g-10", Payload: "g-11 read your note"}}, deps.publisher.Calls())
	})
}

func TestNoteService_Sent(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	now := time.Now()

	deps.repo.EXPECT().FindSent(ctx, "g-10").Return([]note.SentView{
		{ID: 2, Content: "second", SendAt: now},
		{ID: 1, Content: "first", SendAt: now},
	}, nil)
	deps.repo.EXPECT().FindReceivers(ctx, []int64{2, 1}).Return([]note.ReceiverView{
		{StatusID: 1, NoteID: 1, ReceiverID: "g-11", ReceiverName: "Park"},
		{StatusID: 2, NoteID: 1, ReceiverID: "g-12", ReceiverName: "Choi", IsRead: true, ReadAt: &now},
	}, nil)

	resp, err := deps.service.Sent(ctx, "g-10")

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Empty(t, resp[0].Receivers)
	assert.NotNil(t, resp[0].Receivers)
	assert.Len(t, resp[1].Receivers, 2)
	assert.True(t, resp[1].Receivers[1].IsRead)
}
