package main

import (
	"context"
	"errors"
	"time"

	"go-groupware/internal/app"
	"go-groupware/internal/config"
	"go-groupware/internal/department"
	"go-groupware/internal/serial"
	"go-groupware/internal/shared/connection"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	file := pflag.StringP("file", "f", "seed.yaml", "YAML file listing departments to create")
	migrate := pflag.Bool("migrate", true, "run AutoMigrate before seeding")
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrMissingJWTSecret) {
		logger.Fatal("load config failed", zap.Error(err))
	}

	seedFile, err := app.LoadSeedFile(*file)
	if err != nil {
		logger.Fatal("read seed file failed", zap.String("file", *file), zap.Error(err))
	}

	db, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if *migrate {
		if err := app.Migrate(db); err != nil {
			logger.Fatal("auto migrate failed", zap.Error(err))
		}
		logger.Info("auto migrate done")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := app.SeedData(ctx, serial.NewRepository(db), department.NewRepository(db), seedFile, logger)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	// cache list department basi setelah seed
	if cfg.RedisAddr != "" && res.DepartmentsCreated > 0 {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 1)
		if err != nil {
			logger.Warn("redis unavailable, department cache not cleared", zap.Error(err))
		} else {
			if err := rdb.Del(ctx, department.CacheKeyAll).Err(); err != nil {
				logger.Warn("clear department cache failed", zap.Error(err))
			}
			_ = rdb.Close()
		}
	}

	logger.Info("seed done",
		zap.Int("departments_created", res.DepartmentsCreated),
		zap.Int("departments_skipped", res.DepartmentsSkipped),
	)
}
