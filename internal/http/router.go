package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/metrics"
	"github.com/guttosm/order-service/internal/middleware"
	"github.com/guttosm/order-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	// APIKeys, when non-empty, are required on /api unless a valid bearer token is sent.
	APIKeys           map[string]bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	// TokenValidator enables JWT bearer auth with role checks on /api.
	TokenValidator middleware.TokenValidator
	// Idempotency overrides the default idempotency cache when EnableIdempotency is set.
	Idempotency *middleware.IdempotencyConfig
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultRequestTimeout,
		EnableIdempotency: true,
	}
}

// Router is the configured gin engine plus the background helpers it owns.
type Router struct {
	*gin.Engine
	limiter     *middleware.RateLimiter
	idempotency *middleware.IdempotencyCache
}

// Close stops the rate limiter and idempotency cache cleanup loops.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
	if r.idempotency != nil {
		r.idempotency.Stop()
	}
}

// NewRouter creates and configures the gin router for the order service.
func NewRouter(orders *OrderHandler, health *HealthHandler, cfg RouterConfig) *Router {
	r := &Router{Engine: gin.New()}

	r.configureGlobalMiddleware(&cfg)
	registerInfrastructureRoutes(r.Engine, health, &cfg)

	api := r.Group("/api")
	r.configureAPIMiddleware(api, &cfg)
	if orders != nil {
		NewOrderRoutes(orders).RegisterRoutes(api, &cfg)
	}
	return r
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func (r *Router) configureGlobalMiddleware(cfg *RouterConfig) {
	r.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, health *HealthHandler, cfg *RouterConfig) {
	if health != nil {
		health.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up authentication, rate limiting, the request
// deadline and idempotency for the API group, in that order.
func (r *Router) configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	switch {
	case cfg.TokenValidator != nil && len(cfg.APIKeys) > 0:
		api.Use(bearerOrAPIKey(cfg.TokenValidator, cfg.APIKeys))
	case cfg.TokenValidator != nil:
		api.Use(middleware.JWTAuth(cfg.TokenValidator))
	case len(cfg.APIKeys) > 0:
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.RateLimit > 0 {
		r.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		api.Use(r.limiter.UserRateLimit())
	}

	api.Use(middleware.Timeout(cfg.RequestTimeout))

	if cfg.EnableIdempotency {
		idem := middleware.DefaultIdempotencyConfig()
		if cfg.Idempotency != nil {
			idem = *cfg.Idempotency
		}
		r.idempotency = idem.Cache
		api.Use(middleware.Idempotency(idem))
	}
}

// bearerOrAPIKey accepts either credential: a request with an Authorization
// header is checked as a JWT, any other as an API key.
func bearerOrAPIKey(tokens middleware.TokenValidator, keys map[string]bool) gin.HandlerFunc {
	jwtAuth := middleware.JWTAuth(tokens)
	apiKeyAuth := middleware.APIKeyAuth(keys)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			jwtAuth(c)
			return
		}
		apiKeyAuth(c)
	}
}
