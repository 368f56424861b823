package middleware

import (
	"time"

	"tournament-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger writes one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"body_size":  c.Writer.Size(),
		}
		if raw != "" {
			fields["query"] = raw
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		log := logger.WithContext(c.Request.Context()).WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("server error")
		case status >= 400:
			log.Warn("client error")
		default:
			log.Info("request completed")
		}
	}
}
