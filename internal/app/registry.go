package app

import (
	"database/sql"

	"go-groupware/internal/auth"
	"go-groupware/internal/board"
	"go-groupware/internal/chat"
	"go-groupware/internal/config"
	"go-groupware/internal/department"
	"go-groupware/internal/employee"
	"go-groupware/internal/messaging/kafka"
	"go-groupware/internal/middleware"
	"go-groupware/internal/note"
	"go-groupware/internal/notify"
	"go-groupware/internal/serial"
	"go-groupware/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type moduleDeps struct {
	cfg       config.Config
	sqlDB     *sql.DB
	gormDB    *gorm.DB
	rdb       *redis.Client
	publisher notify.Publisher
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, d moduleDeps) {
	router.Use(middleware.CORS(), middleware.ContextLogger(d.logger))

	// --- Repositories ---
	authRepo := auth.NewRepository(d.gormDB)
	boardRepo := board.NewRepository(d.gormDB)
	chatRepo := chat.NewRepository(d.gormDB)
	departmentRepo := department.NewRepository(d.gormDB)
	employeeRepo := employee.NewRepository(d.gormDB)
	noteRepo := note.NewRepository(d.gormDB)
	outboxRepo := kafka.NewOutboxRepository(d.sqlDB)
	serialRepo := serial.NewRepository(d.gormDB)

	// --- Core ---
	tokens := token.NewService(d.cfg.JWTSecret)
	gate := middleware.AuthGate(tokens)
	idempotency := middleware.Idempotency(d.rdb, d.logger)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, d.rdb, d.logger)
	employeeService := employee.NewServiceWithOutbox(d.sqlDB, employeeRepo, serialRepo, outboxRepo, d.rdb, d.cfg.DefaultPassword, d.logger)
	authService := auth.NewService(authRepo, tokens, employeeService, d.logger)
	boardService := board.NewService(boardRepo, d.publisher, d.logger)
	chatService := chat.NewService(chatRepo, d.publisher, d.logger)
	noteService := note.NewService(d.sqlDB, noteRepo, d.publisher, d.logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, d.logger)
	boardHandler := board.NewHandler(boardService, d.logger)
	chatHandler := chat.NewHandler(chatService, d.logger)
	departmentHandler := department.NewHandler(departmentService, d.logger)
	employeeHandler := employee.NewHandler(employeeService, d.logger)
	noteHandler := note.NewHandler(noteService, d.logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, gate)
		employee.RegisterRoutes(api, employeeHandler)
		department.RegisterRoutes(api, departmentHandler)
		board.RegisterRoutes(api, boardHandler, gate, idempotency)
		chat.RegisterRoutes(api, chatHandler, gate)
		note.RegisterRoutes(api, noteHandler, gate, idempotency)
	}
}
