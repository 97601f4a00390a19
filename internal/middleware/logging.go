package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
)

// RequestLogger logs every request and feeds the HTTP metrics. The route
// template is used as the metrics label so path cardinality stays bounded.
func RequestLogger(log *logger.Logger, metrics metrics.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(status))
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(status), duration)

		log.Info("HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	}
}
