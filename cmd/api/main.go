package main

import (
	"errors"
	"time"

	"go-groupware/internal/app"
	"go-groupware/internal/bootstrap"
	"go-groupware/internal/config"
	"go-groupware/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, cfgErr := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfgErr != nil {
		if errors.Is(cfgErr, config.ErrMissingJWTSecret) {
			logger.Fatal("JWT_SECRET must be set, refusing to start")
		}
		logger.Fatal("load config failed", zap.Error(cfgErr))
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	application, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
		application.Close,
	)
}
