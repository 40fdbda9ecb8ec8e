package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"userapp/internal/core/telemetry"
)

// Workers lets at most n requests run their handlers at once. A request
// waits for a free slot until its context ends, then gets 503.
func Workers(n int, metrics *telemetry.AppMetrics) gin.HandlerFunc {
	slots := semaphore.NewWeighted(int64(n))

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()

		if err := slots.Acquire(ctx, 1); err != nil {
			if metrics != nil {
				metrics.RecordWorkerRejected(ctx)
			}

			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}

		defer slots.Release(1)

		if metrics != nil {
			metrics.RecordWorkerWait(ctx, time.Since(start))
			metrics.IncrementActiveRequests(ctx)
			defer metrics.DecrementActiveRequests(ctx)
		}

		c.Next()
	}
}
