// Package app wires configuration, storage, services and the HTTP router.
package app

import (
	"context"
	"time"

	"github.com/guttosm/order-service/config"
	"github.com/guttosm/order-service/internal/http"
	"github.com/guttosm/order-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// closeTimeout bounds how long Close waits for the stores to disconnect.
const closeTimeout = 5 * time.Second

// App is the wired order service.
type App struct {
	Router *http.Router
	db     *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// PostgreSQL is required; the MongoDB log sink is optional.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	db, err := InitializeDatabase(cfg.Database, cfg.Logs)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(db, cfg.Auth)
	if err != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		db.Close(ctx)
		return nil, err
	}

	if db.LoggingService != nil {
		middleware.InitAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	components := InitializeRouter(services, db, cfg)
	router := http.NewRouter(components.OrderHandler, components.HealthHandler, components.Config)

	return &App{Router: router, db: db}, nil
}

// Close stops the router's background loops, flushes pending request logs
// and closes the stores, in that order.
func (a *App) Close() {
	a.Router.Close()
	middleware.StopAsyncLogger()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	a.db.Close(ctx)
	log.Info().Msg("Application resources released")
}
