package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/order-service/config"
	"github.com/guttosm/order-service/internal/circuitbreaker"
	"github.com/guttosm/order-service/internal/metrics"
	"github.com/guttosm/order-service/internal/repository"
	"github.com/guttosm/order-service/internal/service"
	"github.com/rs/zerolog/log"
)

// Circuit breaker names, as reported by /readyz and the breaker gauge.
const (
	breakerOrders     = "postgres-orders"
	breakerReferences = "postgres-references"
	breakerLogs       = "mongodb-logs"
)

// DatabaseComponents holds the stores, their repositories and the circuit
// breakers guarding them. MongoDB and the logging fields are nil when the
// log sink is disabled or unreachable.
type DatabaseComponents struct {
	Postgres                 *repository.Postgres
	MongoDB                  *repository.MongoDB
	OrderRepo                repository.OrderRepositoryInterface
	ReferenceRepo            repository.ReferenceRepositoryInterface
	LoggingService           service.LoggingService
	OrdersCircuitBreaker     *circuitbreaker.CircuitBreaker
	ReferencesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker       *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to PostgreSQL, migrating it when configured,
// and to the MongoDB log sink when enabled. A PostgreSQL failure is fatal;
// a MongoDB failure only disables request log persistence.
func InitializeDatabase(cfg config.DatabaseConfig, logs config.LogsConfig) (*DatabaseComponents, error) {
	pg, err := repository.NewPostgres(postgresConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres at %s: %w", cfg, err)
	}
	log.Info().Str("target", cfg.String()).Bool("migrated", cfg.AutoMigrate).Msg("Connected to PostgreSQL")

	ordersCB := newCircuitBreaker(cfg, breakerOrders)
	refsCB := newCircuitBreaker(cfg, breakerReferences)

	db := &DatabaseComponents{
		Postgres:                 pg,
		OrderRepo:                repository.NewOrderRepositoryWithCircuitBreaker(repository.NewOrderRepository(pg), ordersCB),
		ReferenceRepo:            repository.NewReferenceRepositoryWithCircuitBreaker(repository.NewReferenceRepository(pg), refsCB),
		OrdersCircuitBreaker:     ordersCB,
		ReferencesCircuitBreaker: refsCB,
	}
	initializeLogSink(db, logs, cfg)
	return db, nil
}

func postgresConfig(cfg config.DatabaseConfig) repository.PostgresConfig {
	pgCfg := repository.DefaultPostgresConfig(cfg.DSN())
	if cfg.MaxOpenConns > 0 {
		pgCfg.MaxOpenConns = cfg.MaxOpenConns
	}
	if cfg.MaxIdleConns > 0 {
		pgCfg.MaxIdleConns = cfg.MaxIdleConns
	}
	if cfg.ConnMaxLifetime > 0 {
		pgCfg.ConnMaxLifetime = cfg.ConnMaxLifetime
	}
	if cfg.LogLevel != "" {
		pgCfg.LogLevel = cfg.LogLevel
	}
	pgCfg.AutoMigrate = cfg.AutoMigrate
	return pgCfg
}

func initializeLogSink(db *DatabaseComponents, cfg config.LogsConfig, breakers config.DatabaseConfig) {
	if !cfg.Enabled {
		return
	}

	mongo, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without the request log sink")
		return
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongo.SetLogsTTL(ctx, cfg.TTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	logsCB := newCircuitBreaker(breakers, breakerLogs)
	db.MongoDB = mongo
	db.LogsCircuitBreaker = logsCB
	db.LoggingService = service.NewLoggingService(
		repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(mongo), logsCB),
	)
}

// newCircuitBreaker builds a breaker that publishes its state to Prometheus.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return cb
}

// Close disconnects MongoDB and closes the PostgreSQL pool.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil {
		return
	}
	if d.MongoDB != nil {
		if err := d.MongoDB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect MongoDB")
		}
	}
	if d.Postgres != nil {
		if err := d.Postgres.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close PostgreSQL pool")
		}
	}
}
