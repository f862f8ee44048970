package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-groupware/internal/employee"
	employeeerrors "go-groupware/internal/employee/errors"
	"go-groupware/internal/events"
	"go-groupware/internal/messaging/kafka"
	"go-groupware/internal/serial"
	"go-groupware/internal/shared/apperror"
	"go-groupware/internal/shared/contextutil"

	employeeMock "go-groupware/internal/employee/mock"
	kafkaMock "go-groupware/internal/messaging/kafka/mock"
	serialMock "go-groupware/internal/serial/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	serials   *serialMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	serialRepo := serialMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, serialRepo, outboxRepo, dbRedis, "")

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		serials:   serialRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
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

func validRequest() employee.AddEmployeeRequest {
	return employee.AddEmployeeRequest{
		Name:         "Kim Minji",
		Email:        "minji@example.com",
		HireDate:     "2024-03-04",
		DepartmentID: 2,
		Position:     "Engineer",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - allocate g-id, initial password, inactive", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "req-1")
		req := validRequest()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, 2).Return(true, nil)
		deps.serials.EXPECT().WithTx(gomock.Any()).Return(deps.serials)
		deps.serials.EXPECT().Allocate(ctx, serial.RefEmployee).Return(int64(13), nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "g-13", e.ID)
				assert.Equal(t, employee.ActiveNo, e.Active)
				assert.Equal(t, 2, e.DepartmentID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.Password), []byte("0000")))
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
				assert.Equal(t, "g-13", ev.AggregateID)
				assert.Equal(t, "req-1", ev.RequestID)

				var payload events.EmployeeRegistered
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, events.EmployeeRegisteredEvent, payload.EventType)
				assert.Equal(t, "Kim Minji", payload.Name)
				return nil
			})

		deps.redismock.ExpectDel(employee.CacheKeyAll).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "g-13", resp.ID)
		assert.Equal(t, "N", resp.Active)
		assert.Equal(t, "2024-03-04", resp.HireDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("error - department not found -> rollback, no id allocated", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, 2).Return(false, nil)
		deps.serials.EXPECT().Allocate(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, validRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("error - serial row missing -> 500, nothing inserted", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, 2).Return(true, nil)
		deps.serials.EXPECT().WithTx(gomock.Any()).Return(deps.serials)
		deps.serials.EXPECT().Allocate(ctx, serial.RefEmployee).Return(int64(0), serial.ErrSerialMissing)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, validRequest())

		assert.ErrorIs(t, err, serial.ErrSerialMissing)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("error - outbox failure rolls back employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, 2).Return(true, nil)
		deps.serials.EXPECT().WithTx(gomock.Any()).Return(deps.serials)
		deps.serials.EXPECT().Allocate(ctx, serial.RefEmployee).Return(int64(2), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert outbox failed"))

		_, err := deps.service.Create(ctx, validRequest())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("error - invalid hire date never opens tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.HireDate = "04/03/2024"

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Miss Cache - ambil dari DB lalu simpan", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(employee.CacheKeyAll).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return([]employee.EmployeeView{
			{ID: "g-1", Name: "Lee", Active: "Y", DepartmentID: 1, DepartmentName: "HR"},
		}, nil)

		expected := []employee.EmployeeResponse{{
			ID: "g-1", Name: "Lee", Active: "Y",
			Department: employee.EmployeeDepartmentResponse{ID: 1, Name: "HR"},
		}}
		data, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(employee.CacheKeyAll, string(data), 10*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})

	t.Run("Hit Cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		data, _ := json.Marshal([]employee.EmployeeResponse{{ID: "g-9", Name: "Park"}})
		deps.redismock.ExpectGet(employee.CacheKeyAll).SetVal(string(data))
		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "g-9", resp[0].ID)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, "g-1").Return(&employee.EmployeeView{
			ID: "g-1", Name: "Lee", DepartmentID: 1, DepartmentName: "HR",
		}, nil)

		resp, err := deps.service.GetByID(ctx, "g-1")

		assert.NoError(t, err)
		assert.Equal(t, "HR", resp.Department.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, "g-404").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, "g-404")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
