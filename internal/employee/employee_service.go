package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	employeeerrors "go-groupware/internal/employee/errors"
	"go-groupware/internal/events"
	"go-groupware/internal/messaging/kafka"
	"go-groupware/internal/serial"
	"go-groupware/internal/shared/apperror"
	"go-groupware/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKeyAll            = "employees:all"
	cacheTTL               = 10 * time.Minute
	DefaultInitialPassword = "0000"
	idPrefix               = "g-"
	dateLayout             = "2006-01-02"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req AddEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db              *sql.DB
	repo            Repository
	serials         serial.Repository
	outbox          kafka.OutboxRepository
	rdb             *redis.Client
	sf              *singleflight.Group
	initialPassword string
	logger          *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	serials serial.Repository,
	rdb *redis.Client,
	initialPassword string,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, serials, nil, rdb, initialPassword, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	serials serial.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	initialPassword string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if initialPassword == "" {
		initialPassword = DefaultInitialPassword
	}
	return &service{
		db:              db,
		repo:            repo,
		serials:         serials,
		outbox:          outboxRepo,
		rdb:             rdb,
		sf:              &singleflight.Group{},
		initialPassword: initialPassword,
		logger:          l,
	}
}

func (s *service) Create(ctx context.Context, req AddEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.Int("department_id", req.DepartmentID),
		zap.String("email", req.Email),
	)

	var hireDate *time.Time
	if req.HireDate != "" {
		d, err := time.ParseInLocation(dateLayout, req.HireDate, time.Local)
		if err != nil {
			s.logger.Warn("create employee invalid hireDate", zap.String("hire_date", req.HireDate))
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		hireDate = &d
	}

	// hash di luar transaksi supaya row lock serial tidak ditahan lama
	hash, err := bcrypt.GenerateFromPassword([]byte(s.initialPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash initial password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	exists, err := qtx.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		s.logger.Error("create employee check department failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !exists {
		s.logger.Warn("create employee department not found", zap.Int("department_id", req.DepartmentID))
		return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
	}

	next, err := s.serials.WithTx(tx).Allocate(ctx, serial.RefEmployee)
	if err != nil {
		if errors.Is(err, serial.ErrSerialMissing) {
			s.logger.Error("employee serial row missing, run the seed tool",
				zap.String("ref", serial.RefEmployee),
				zap.Error(err),
			)
			return EmployeeResponse{}, apperror.Wrap(err, apperror.CodeInternalError, apperror.ErrInternal.Message, http.StatusInternalServerError)
		}
		s.logger.Error("create employee allocate id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           fmt.Sprintf("%s%d", idPrefix, next),
		Password:     string(hash),
		Name:         req.Name,
		Email:        req.Email,
		HireDate:     hireDate,
		Position:     req.Position,
		Active:       ActiveNo,
		DepartmentID: req.DepartmentID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeRegistered{
			EventType:    events.EmployeeRegisteredEvent,
			RequestID:    rid,
			EmployeeID:   empl.ID,
			Name:         empl.Name,
			DepartmentID: empl.DepartmentID,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID,
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)

	return mapEntityToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CacheKeyAll).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight, halaman direktori sering dibuka bersamaan
	v, err, _ := s.sf.Do(CacheKeyAll, func() (interface{}, error) {
		views, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("get all employees failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(views)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CacheKeyAll, string(data), cacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, employeeerrors.ErrEmployeeNotFound) {
			s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		}
		return EmployeeResponse{}, mapped
	}

	return mapToResponse(*view), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CacheKeyAll).Err(); err != nil {
		s.logger.Error("failed to invalidate employee cache",
			zap.Error(err),
			zap.String("key", CacheKeyAll),
		)
	}
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}

func mapToResponse(v EmployeeView) EmployeeResponse {
	return EmployeeResponse{
		ID:       v.ID,
		Name:     v.Name,
		Email:    v.Email,
		HireDate: formatDate(v.HireDate),
		Position: v.Position,
		Active:   v.Active,
		Department: EmployeeDepartmentResponse{
			ID:   v.DepartmentID,
			Name: v.DepartmentName,
		},
	}
}

func mapEntityToResponse(e Employee) EmployeeResponse {
	return mapToResponse(EmployeeView{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		HireDate:     e.HireDate,
		Position:     e.Position,
		Active:       e.Active,
		DepartmentID: e.DepartmentID,
	})
}

func mapToListResponse(views []EmployeeView) []EmployeeResponse {
	res := make([]EmployeeResponse, len(views))
	for i, v := range views {
		res[i] = mapToResponse(v)
	}
	return res
}
