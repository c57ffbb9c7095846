package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/internal/stub"
	"github.com/noah-isme/sigue-client/pkg/config"
	"github.com/noah-isme/sigue-client/pkg/logger"
)

// @title SIGUE Stub Gateway
// @version 0.1.0
// @description In-memory university gateway for developing and testing the SIGUE client
// @BasePath /
// @schemes http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Error("stub gateway stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := stub.New(stub.Options{
		Config: cfg.Stub,
		Logger: logr,
		Docs:   cfg.Env != config.EnvProduction,
	})
	if err != nil {
		return fmt.Errorf("seed stub gateway: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.Stub.Port)
	logr.Info("stub gateway starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("admin", cfg.Stub.AdminUsername),
	)
	if err := server.Serve(ctx, addr); err != nil {
		return err
	}
	logr.Info("stub gateway shut down")
	return nil
}
