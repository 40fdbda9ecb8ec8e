package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"userapp/internal/adapter/database"
	apphttp "userapp/internal/adapter/http"
	"userapp/internal/adapter/telemetry"
	"userapp/pkg/config"
)

const serviceName = "kvapi"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(serviceName, os.Args[1:])

	if err != nil {
		return err
	}

	logger, err := config.NewLogger(serviceName, cfg.LogLevel)

	if err != nil {
		return err
	}

	defer logger.Sync()

	tel, err := telemetry.NewContainer(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	}, logger)

	if err != nil {
		return err
	}

	defer tel.Shutdown(context.Background())

	store, err := database.OpenKVStore(cfg.RedisAddr, cfg.Workers)

	if err != nil {
		return err
	}

	defer store.Close()

	if cfg.RedisAddr == "" {
		logger.Warn("No redis address configured, using the in-memory store")
	} else {
		logger.Info("KV store ready", zap.String("redis", cfg.RedisAddr), zap.Int("workers", cfg.Workers))
	}

	container := apphttp.NewKVContainer(store, apphttp.ContainerConfig{
		ServiceName: serviceName,
		Workers:     cfg.Workers,
		Logger:      logger,
		Metrics:     tel.AppMetrics,
		Telemetry:   tel.NewTelemetry(),
	})

	return apphttp.Serve(ctx, cfg.ListenAddr(), container.Router(), logger)
}
