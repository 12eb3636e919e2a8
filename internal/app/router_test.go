//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/order-service/config"
	"github.com/guttosm/order-service/internal/circuitbreaker"
	"github.com/guttosm/order-service/internal/mocks"
	"github.com/guttosm/order-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	tokens, err := service.NewTokenService("app-test-secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		services *ServiceComponents
		db       *DatabaseComponents
		cfg      config.Config
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name:     "open API without a log sink",
			services: &ServiceComponents{Orders: new(mocks.MockOrderService)},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:      100,
					RateWindow:     time.Minute,
					RequestTimeout: 20 * time.Second,
					CORSOrigins:    []string{"http://localhost:3000"},
				},
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.OrderHandler)
				assert.NotNil(t, c.HealthHandler)
				assert.True(t, c.Config.EnableIdempotency)
				assert.Equal(t, 100, c.Config.RateLimit)
				assert.Equal(t, time.Minute, c.Config.RateWindow)
				assert.Equal(t, 20*time.Second, c.Config.RequestTimeout)
				assert.Equal(t, []string{"http://localhost:3000"}, c.Config.CORSOrigins)
				assert.Nil(t, c.Config.APIKeys)
				assert.Nil(t, c.Config.TokenValidator)
				assert.Nil(t, c.Config.LoggingService)
			},
		},
		{
			name:     "API keys only apply when auth is enabled",
			services: &ServiceComponents{Orders: new(mocks.MockOrderService)},
			cfg: config.Config{
				Auth: config.AuthConfig{APIKeys: map[string]bool{"k": true}},
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.Nil(t, c.Config.APIKeys)
			},
		},
		{
			name:     "API keys and JWT",
			services: &ServiceComponents{Orders: new(mocks.MockOrderService), Tokens: tokens},
			cfg: config.Config{
				Auth: config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"k": true}},
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.Equal(t, map[string]bool{"k": true}, c.Config.APIKeys)
				assert.NotNil(t, c.Config.TokenValidator)
			},
		},
		{
			name:     "log sink and breakers",
			services: &ServiceComponents{Orders: new(mocks.MockOrderService)},
			db: &DatabaseComponents{
				LoggingService:       new(mocks.MockLoggingService),
				OrdersCircuitBreaker: circuitbreaker.New(circuitbreaker.Config{Name: breakerOrders}),
			},
			cfg: config.Config{Server: config.ServerConfig{SwaggerUser: "docs", SwaggerPass: "pw"}},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.Config.LoggingService)
				assert.Equal(t, "docs", c.Config.SwaggerUser)
				assert.Equal(t, "pw", c.Config.SwaggerPass)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(tt.services, tt.db, tt.cfg)
			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}
