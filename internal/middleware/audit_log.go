package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/guttosm/order-service/internal/service"
)

// Audit action types.
const (
	ActionCreateOrder  = "create_order"
	ActionFilterOrders = "filter_orders"
)

// AuditLog records a business action, such as an order being created, in the log sink.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	enqueueLog(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed business action in the log sink.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	enqueueLog(loggingService, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}
	stampCaller(c, entry)
	return entry
}
