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

const serviceName = "userapi"

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

	recorder := tel.NewTelemetry()

	repo, closeStore, err := database.OpenUserRepository(ctx, database.Config{
		Driver:     cfg.DatabaseDriver,
		URL:        cfg.DatabaseURL,
		MaxConns:   cfg.Workers,
		LogQueries: cfg.LogQueries,
	}, recorder)

	if err != nil {
		return err
	}

	defer closeStore()

	logger.Info("User store ready",
		zap.String("driver", cfg.DatabaseDriver),
		zap.Int("workers", cfg.Workers))

	container := apphttp.NewUserContainer(repo, apphttp.ContainerConfig{
		ServiceName: serviceName,
		Workers:     cfg.Workers,
		Logger:      logger,
		Metrics:     tel.AppMetrics,
		Telemetry:   recorder,
	})

	return apphttp.Serve(ctx, cfg.ListenAddr(), container.Router(), logger)
}
