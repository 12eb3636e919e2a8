package app

import (
	"github.com/guttosm/order-service/config"
	"github.com/guttosm/order-service/internal/http"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	OrderHandler  *http.OrderHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the handlers, registers the readiness checks and
// translates cfg into the router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	if db == nil {
		db = &DatabaseComponents{}
	}

	handler := http.NewOrderHandler(services.Orders, db.LoggingService)

	health := http.NewHealthHandler()
	if db.Postgres != nil {
		health.RegisterChecker("postgres", db.Postgres)
	}
	if db.MongoDB != nil {
		health.RegisterOptionalChecker("mongodb", db.MongoDB)
	}
	health.RegisterCircuitBreaker(db.OrdersCircuitBreaker)
	health.RegisterCircuitBreaker(db.ReferencesCircuitBreaker)
	health.RegisterCircuitBreaker(db.LogsCircuitBreaker)

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    db.LoggingService,
	}
	if cfg.Auth.Enabled {
		routerCfg.APIKeys = cfg.Auth.APIKeys
		if len(cfg.Auth.APIKeys) == 0 && services.Tokens == nil {
			log.Warn().Msg("AUTH_ENABLED is set but neither API_KEYS nor JWT_SECRET_KEY is configured - /api is open")
		}
	}
	if services.Tokens != nil {
		routerCfg.TokenValidator = services.Tokens
	}

	return &RouterComponents{
		OrderHandler:  handler,
		HealthHandler: health,
		Config:        routerCfg,
	}
}
