package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger emits one structured log line per completed request.
func RequestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	attrs := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", c.GetString("request_id"),
	}
	if status >= 500 {
		slog.Error("request failed", attrs...)
	} else {
		slog.Info("request ok", attrs...)
	}
}
