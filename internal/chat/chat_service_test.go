package chat_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-groupware/internal/chat"
	chaterrors "go-groupware/internal/chat/errors"
	chatMock "go-groupware/internal/chat/mock"
	"go-groupware/internal/notify/notifytest"
	"go-groupware/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   chat.Service
	repo      *chatMock.MockRepository
	publisher *notifytest.Recorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := chatMock.NewMockRepository(ctrl)
	pub := &notifytest.Recorder{}

	return &serviceDeps{
		service:   chat.NewService(repo, pub),
		repo:      repo,
		publisher: pub,
	}
}

func TestChatService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success - keeps ascending order", func(t *testing.T) {
		deps := setupServiceTest(t)
		now := time.Now()

		deps.repo.EXPECT().DepartmentExists(ctx, 1).Return(true, nil)
		deps.repo.EXPECT().FindByDepartment(ctx, 1).Return([]chat.ChatView{
			{ID: 1, DepartmentID: 1, TalkerID: "g-1", TalkerName: "Lee", Message: "a", CreatedAt: now},
			{ID: 2, DepartmentID: 1, TalkerID: "g-2", TalkerName: "Park", Message: "b", CreatedAt: now},
			{ID: 3, DepartmentID: 1, TalkerID: "g-1", TalkerName: "Lee", Message: "c", CreatedAt: now},
		}, nil)

		resp, err := deps.service.List(ctx, 1)

		assert.NoError(t, err)
		assert.Len(t, resp, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{resp[0].Message, resp[1].Message, resp[2].Message})
		assert.Equal(t, "Park", resp[1].Talker.Name)
		assert.Empty(t, deps.publisher.Calls())
	})

	t.Run("unknown department -> 404", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().DepartmentExists(ctx, 77).Return(false, nil)
		deps.repo.EXPECT().FindByDepartment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.List(ctx, 77)

		assert.ErrorIs(t, err, chaterrors.ErrDepartmentNotFound)
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})
}

func TestChatService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - refresh on department channel", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().DepartmentExists(ctx, 4).Return(true, nil)
		deps.repo.EXPECT().TalkerExists(ctx, "g-3").Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *chat.Chat) error {
				assert.Equal(t, 4, c.DepartmentID)
				assert.Equal(t, "g-3", c.TalkerID)
				c.ID = 10
				return nil
			})

		resp, err := deps.service.Create(ctx, "g-3", 4, chat.AddChatRequest{Message: "hello"})

		assert.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, []notifytest.Call{{Channel: "/chat-department/4", Payload: "refresh"}}, deps.publisher.Calls())
	})

	t.Run("client gone after insert - refresh still published", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.RejectCanceled = true
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		deps.repo.EXPECT().DepartmentExists(canceled, 4).Return(true, nil)
		deps.repo.EXPECT().TalkerExists(canceled, "g-3").Return(true, nil)
		deps.repo.EXPECT().Create(canceled, gomock.Any()).Return(nil)

		_, err := deps.service.Create(canceled, "g-3", 4, chat.AddChatRequest{Message: "hello"})

		assert.NoError(t, err)
		assert.Equal(t, []notifytest.Call{{Channel: "/chat-department/4", Payload: "refresh"}}, deps.publisher.Calls())
	})

	t.Run("blank message -> 400", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, "g-3", 4, chat.AddChatRequest{Message: "  "})

		assert.ErrorIs(t, err, chaterrors.ErrBlankMessage)
		assert.Empty(t, deps.publisher.Calls())
	})

	t.Run("unknown department -> 404, no publish", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().DepartmentExists(ctx, 9).Return(false, nil)

		_, err := deps.service.Create(ctx, "g-3", 9, chat.AddChatRequest{Message: "hi"})

		assert.ErrorIs(t, err, chaterrors.ErrDepartmentNotFound)
		assert.Empty(t, deps.publisher.Calls())
	})

	t.Run("persist error -> no publish", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().DepartmentExists(ctx, 4).Return(true, nil)
		deps.repo.EXPECT().TalkerExists(ctx, "g-3").Return(true, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.Create(ctx, "g-3", 4, chat.AddChatRequest{Message: "hi"})

		assert.Error(t, err)
		assert.Empty(t, deps.publisher.Calls())
	})
}
