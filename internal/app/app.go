package app

import (
	"context"
	"database/sql"

	"go-groupware/internal/config"
	"go-groupware/internal/realtime"
	"go-groupware/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

type App struct {
	sqlDB  *sql.DB
	rdb    *redis.Client
	hub    *realtime.Hub
	cancel context.CancelFunc
	logger *zap.Logger
}

// BuildApp menyiapkan koneksi, migrasi opsional, lalu mendaftarkan semua route.
// Redis dan Kafka opsional: tanpa REDIS_ADDR cache & idempotency mati,
// tanpa KAFKA_BROKER consumer lifecycle tidak dijalankan.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		connectRetries,
	)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			return nil, err
		}
		log.Info("auto migrate done")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			return nil, err
		}
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set, cache and idempotency disabled")
	}

	hub := realtime.NewHub(realtime.WithLogger(logger))

	registerModules(router, moduleDeps{
		cfg:       cfg,
		sqlDB:     sqlDB,
		gormDB:    gormDB,
		rdb:       rdb,
		publisher: hub,
		logger:    logger,
	})
	realtime.RegisterRoutes(router, hub)

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		sqlDB:  sqlDB,
		rdb:    rdb,
		hub:    hub,
		cancel: cancel,
		logger: log,
	}

	if cfg.KafkaBroker != "" {
		startLifecycleConsumer(ctx, cfg.KafkaBroker, hub, logger)
	}

	return a, nil
}

// Close dipanggil sebelum HTTP server shutdown.
func (a *App) Close() {
	a.cancel()
	a.hub.Close()
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
	}
	if err := a.sqlDB.Close(); err != nil {
		a.logger.Warn("close database failed", zap.Error(err))
	}
}
