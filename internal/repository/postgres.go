package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guttosm/order-service/internal/domain/model"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresConfig holds PostgreSQL connection pool configuration.
type PostgresConfig struct {
	DSN string
	// MaxOpenConns is the maximum number of open connections.
	MaxOpenConns int
	// MaxIdleConns is the maximum number of idle connections kept in the pool.
	MaxIdleConns int
	// ConnMaxLifetime is how long a connection may be reused.
	ConnMaxLifetime time.Duration
	// ConnectTimeout bounds the initial ping.
	ConnectTimeout time.Duration
	// AutoMigrate creates or updates the schema on startup.
	AutoMigrate bool
	// LogLevel is the GORM log level: silent, error, warn or info.
	LogLevel string
	// SlowThreshold marks queries logged as slow.
	SlowThreshold time.Duration
}

// DefaultPostgresConfig returns production-oriented pool settings for dsn.
func DefaultPostgresConfig(dsn string) PostgresConfig {
	return PostgresConfig{
		DSN:             dsn,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnectTimeout:  10 * time.Second,
		AutoMigrate:     true,
		LogLevel:        "warn",
		SlowThreshold:   200 * time.Millisecond,
	}
}

// Postgres provides the GORM handle over a lib/pq connection pool.
type Postgres struct {
	DB    *gorm.DB
	sqlDB *sql.DB
}

// NewPostgres opens the pool, verifies connectivity and optionally migrates the schema.
func NewPostgres(cfg PostgresConfig) (*Postgres, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: NewGormLogger(cfg.LogLevel, cfg.SlowThreshold),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	pg := &Postgres{DB: db, sqlDB: sqlDB}

	if cfg.AutoMigrate {
		if err := pg.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	return pg, nil
}

// Migrate creates the reference and order tables.
func (p *Postgres) Migrate(ctx context.Context) error {
	if err := p.DB.WithContext(ctx).AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Client{},
		&model.Order{},
		&model.OrderLine{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// HealthCheck verifies the PostgreSQL connection is healthy.
func (p *Postgres) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.sqlDB.PingContext(ctx)
}

// Close closes the connection pool.
func (p *Postgres) Close() error {
	return p.sqlDB.Close()
}
