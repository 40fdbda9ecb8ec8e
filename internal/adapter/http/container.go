package http

import (
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"userapp/internal/adapter/http/handler"
	"userapp/internal/adapter/http/middleware"
	"userapp/internal/adapter/http/routes"
	"userapp/internal/core/port"
	"userapp/internal/core/service"
	"userapp/internal/core/telemetry"
)

type Container struct {
	UserService port.UserService
	KVService   port.KVService

	UserHandler *handler.UserHandler
	KVHandler   *handler.KVHandler

	options middleware.Options
}

type ContainerConfig struct {
	ServiceName string
	Workers     int
	Logger      *otelzap.Logger
	Metrics     *telemetry.AppMetrics
	Telemetry   port.Telemetry
}

func NewUserContainer(repo port.UserRepository, cfg ContainerConfig) *Container {
	userSvc := service.NewUserService(repo, cfg.Telemetry)

	return &Container{
		UserService: userSvc,
		UserHandler: handler.NewUserHandler(userSvc, cfg.Logger),
		options:     cfg.options(),
	}
}

func NewKVContainer(store port.KVStore, cfg ContainerConfig) *Container {
	kvSvc := service.NewKVService(store, cfg.Telemetry)

	return &Container{
		KVService: kvSvc,
		KVHandler: handler.NewKVHandler(kvSvc, cfg.Logger),
		options:   cfg.options(),
	}
}

// Router builds the gin engine for whichever service the container holds.
func (c *Container) Router() *gin.Engine {
	if c.KVHandler != nil {
		return routes.SetupKVRouter(c.KVHandler, c.options)
	}

	return routes.SetupUserRouter(c.UserHandler, c.options)
}

func (cfg ContainerConfig) options() middleware.Options {
	return middleware.Options{
		ServiceName: cfg.ServiceName,
		Workers:     cfg.Workers,
		Logger:      cfg.Logger,
		Metrics:     cfg.Metrics,
	}
}
