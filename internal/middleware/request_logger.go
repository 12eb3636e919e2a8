package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/guttosm/order-service/internal/logger"
	"github.com/guttosm/order-service/internal/service"
)

// RequestLogger returns a middleware that logs every request to the console
// and, when loggingService is set, to the log sink.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(statusCode),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		stampCaller(c, entry)
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}

		log := logger.WithRequest(entry.RequestID)
		event := log.Info()
		switch entry.Level {
		case "error":
			event = log.Error()
		case "warn":
			event = log.Warn()
		}
		event.
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Str("user_id", entry.UserID).
			Msg("HTTP request")

		if loggingService != nil {
			enqueueLog(loggingService, entry)
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
