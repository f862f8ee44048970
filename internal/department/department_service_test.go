package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-groupware/internal/department"

	departmentMock "go-groupware/internal/department/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   department.NewService(repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit Cache - ambil dari Redis tanpa query DB", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached, _ := json.Marshal([]department.DepartmentResponse{
			{ID: 1, Name: "HR"},
			{ID: 2, Name: "IT"},
		})
		deps.redismock.ExpectGet(department.CacheKeyAll).SetVal(string(cached))
		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "HR", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Miss Cache - ambil dari DB lalu simpan ke Redis", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(department.CacheKeyAll).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]department.Department{{ID: 3, Name: "Finance"}}, nil).
			Times(1)

		expected, _ := json.Marshal([]department.DepartmentResponse{{ID: 3, Name: "Finance"}})
		deps.redismock.ExpectSet(department.CacheKeyAll, string(expected), 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []department.DepartmentResponse{{ID: 3, Name: "Finance"}}, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Database Error - error diteruskan", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(department.CacheKeyAll).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error"))

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("Tanpa Redis - langsung ke DB", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		svc := department.NewService(repo, nil)

		repo.EXPECT().FindAll(ctx).Return([]department.Department{{ID: 1, Name: "HR"}}, nil)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}
