//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/order-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	require.NoError(t, db.SetLogsTTL(ctx, time.Hour))

	repo := NewLogsRepository(db)

	t.Run("create log entry", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "HTTP request",
			RequestID:  "req-create",
			Method:     "POST",
			Path:       "/api/pedidos",
			StatusCode: 200,
			Duration:   12,
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many log entries", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "info", Message: "Order created", ActionType: "create_order", Fields: map[string]interface{}{"order_id": 1}},
			{Level: "info", Message: "Order created", ActionType: "create_order", Fields: map[string]interface{}{"order_id": 2}},
			{Level: "warn", Message: "HTTP request", Method: "GET", Path: "/api/pedidos/filtrar", StatusCode: 422},
		}
		require.NoError(t, repo.CreateMany(ctx, entries))
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by request ID", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-create"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/api/pedidos", entries[0].Path)
	})

	t.Run("query by action type", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ActionType: "create_order", Limit: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("query by path prefix", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{Path: "/api/pedidos/filtrar"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 422, entries[0].StatusCode)
	})

	t.Run("count logs", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = repo.Count(ctx, LogQueryOptions{Level: "warn"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, wrappedRepo.Create(ctx, &LogEntryDocument{Level: "info", Message: "Test entry"}))

	count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}
