package main

import (
	"go-groupware/internal/app"
	"go-groupware/internal/config"
	"go-groupware/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, cfgErr := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// worker tidak memverifikasi token, JWT_SECRET boleh kosong
	if cfgErr != nil && cfgErr != config.ErrMissingJWTSecret {
		logger.Fatal("load config failed", zap.Error(cfgErr))
	}

	apperror.Init()

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
