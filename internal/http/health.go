package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/circuitbreaker"
)

// defaultCheckTimeout bounds each dependency probe in Readiness.
const defaultCheckTimeout = 2 * time.Second

// HealthChecker is a dependency probe, satisfied by the Postgres and MongoDB handles.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type namedChecker struct {
	name     string
	checker  HealthChecker
	optional bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        []namedChecker
	circuitBreakers []*circuitbreaker.CircuitBreaker
	timeout         time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{timeout: defaultCheckTimeout}
}

// RegisterChecker adds a dependency that must be healthy for the service to be ready.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers = append(h.checkers, namedChecker{name: name, checker: checker})
}

// RegisterOptionalChecker adds a dependency that is reported but never fails readiness.
func (h *HealthHandler) RegisterOptionalChecker(name string, checker HealthChecker) {
	h.checkers = append(h.checkers, namedChecker{name: name, checker: checker, optional: true})
}

// RegisterCircuitBreaker reports cb under its name. An open breaker fails readiness.
func (h *HealthHandler) RegisterCircuitBreaker(cb *circuitbreaker.CircuitBreaker) {
	if cb != nil {
		h.circuitBreakers = append(h.circuitBreakers, cb)
	}
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router gin.IRoutes) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReadinessResponse is the body of the readiness probe.
type ReadinessResponse struct {
	Status          string                 `json:"status" example:"ok"`
	Checks          map[string]string      `json:"checks"`
	CircuitBreakers []circuitbreaker.Stats `json:"circuit_breakers,omitempty"`
} // @name ReadinessResponse

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Pings PostgreSQL (and MongoDB when the log sink is enabled) and reports the circuit breakers. Returns 503 when PostgreSQL is unreachable or a breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} ReadinessResponse "Service is ready"
// @Failure     503 {object} ReadinessResponse "Service is degraded"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := http.StatusOK
	resp := ReadinessResponse{Checks: make(map[string]string, len(h.checkers))}

	for _, nc := range h.checkers {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		err := nc.checker.HealthCheck(ctx)
		cancel()

		if err == nil {
			resp.Checks[nc.name] = "ok"
			continue
		}
		resp.Checks[nc.name] = err.Error()
		if !nc.optional {
			status = http.StatusServiceUnavailable
		}
	}

	for _, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		resp.CircuitBreakers = append(resp.CircuitBreakers, stats)
		if stats.State == circuitbreaker.StateOpen.String() {
			status = http.StatusServiceUnavailable
		}
	}

	if len(resp.Checks) == 0 {
		resp.Checks["service"] = "ok"
	}
	resp.Status = "ok"
	if status != http.StatusOK {
		resp.Status = "degraded"
	}
	c.JSON(status, resp)
}
