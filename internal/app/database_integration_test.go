//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/order-service/config"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("postgres only", func(t *testing.T) {
		db, err := InitializeDatabase(config.DatabaseConfig{
			URL:         testutil.NewPostgresDatabase(t),
			AutoMigrate: true,
			LogLevel:    "silent",
		}, config.LogsConfig{})
		require.NoError(t, err)
		defer db.Close(ctx)

		assert.NotNil(t, db.Postgres)
		assert.Nil(t, db.MongoDB)
		assert.Nil(t, db.LoggingService)
		assert.Nil(t, db.LogsCircuitBreaker)

		orders, total, err := db.OrderRepo.List(ctx, dto.Page(1))
		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.Zero(t, total)
	})

	t.Run("with log sink", func(t *testing.T) {
		db, err := InitializeDatabase(config.DatabaseConfig{
			URL:         testutil.NewPostgresDatabase(t),
			AutoMigrate: true,
			LogLevel:    "silent",
		}, config.LogsConfig{
			Enabled:      true,
			URI:          testutil.GetSharedContainerURI(),
			DatabaseName: testutil.SanitizeDBName(t.Name()),
			TTL:          time.Hour,
		})
		require.NoError(t, err)
		defer db.Close(ctx)

		require.NotNil(t, db.MongoDB)
		require.NotNil(t, db.LoggingService)
		assert.NoError(t, db.MongoDB.HealthCheck(ctx))
		assert.Equal(t, breakerLogs, db.LogsCircuitBreaker.Name())
	})

	t.Run("unreachable log sink is not fatal", func(t *testing.T) {
		db, err := InitializeDatabase(config.DatabaseConfig{
			URL:         testutil.NewPostgresDatabase(t),
			AutoMigrate: true,
			LogLevel:    "silent",
		}, config.LogsConfig{
			Enabled:      true,
			URI:          "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500",
			DatabaseName: "unused",
		})
		require.NoError(t, err)
		defer db.Close(ctx)

		assert.Nil(t, db.MongoDB)
		assert.Nil(t, db.LoggingService)
	})
}
