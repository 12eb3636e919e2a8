// Package metrics provides Prometheus metrics collection for the order service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Order operation names used as the operation label.
const (
	OperationList   = "list"
	OperationCreate = "create"
	OperationFilter = "filter"
)

// Order operation outcomes used as the status label.
const (
	StatusSuccess = "success"
	// StatusInvalid is a request rejected by validation before touching the store.
	StatusInvalid = "validation_error"
	StatusError   = "error"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, route, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OrderOperationsTotal counts order operations by outcome.
	OrderOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_operations_total",
			Help: "Total number of order operations",
		},
		[]string{"operation", "status"},
	)

	// OrderOperationDuration tracks order operation latency, store round trips included.
	OrderOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_operation_duration_seconds",
			Help:    "Order operation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"operation"},
	)

	// OrderLinesPerOrder tracks how many lines created orders carry.
	OrderLinesPerOrder = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_lines_per_order",
			Help:    "Number of lines in each created order",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// AuditLogDropped counts audit entries dropped because the async queue was full.
	AuditLogDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_log_dropped_total",
			Help: "Total number of request log entries dropped",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
// Requests are labelled by route template so ids and query strings do not
// create new series.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOrderOperation records the outcome and latency of one order operation.
func RecordOrderOperation(operation, status string, duration time.Duration) {
	OrderOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	OrderOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordOrderLines records the line count of a created order.
func RecordOrderLines(n int) {
	OrderLinesPerOrder.Observe(float64(n))
}

// SetCircuitBreakerState publishes a breaker's state as a gauge value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditLogDropped counts one dropped request log entry.
func RecordAuditLogDropped() {
	AuditLogDropped.Inc()
}
