package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"userapp/internal/core/telemetry"
)

type Options struct {
	ServiceName string
	Workers     int
	Logger      *otelzap.Logger
	Metrics     *telemetry.AppMetrics
}

// Setup installs the shared middleware chain. Tracing and the request id
// come first so the access log can carry both.
func Setup(router *gin.Engine, opts Options) {
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(RequestID())

	if opts.Logger != nil {
		router.Use(Logging(opts.Logger, opts.ServiceName))
	}

	if opts.Metrics != nil {
		router.Use(Metrics(opts.Metrics))
	}

	router.Use(Workers(opts.Workers, opts.Metrics))
}
