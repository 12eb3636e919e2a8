package app

import (
	"fmt"

	"github.com/guttosm/order-service/config"
	"github.com/guttosm/order-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
// Tokens is nil unless a JWT secret is configured.
type ServiceComponents struct {
	Orders service.OrderService
	Tokens service.TokenService
}

// InitializeServices builds the order service over the guarded repositories
// and, when a JWT secret is set, the token service.
func InitializeServices(db *DatabaseComponents, auth config.AuthConfig) (*ServiceComponents, error) {
	components := &ServiceComponents{
		Orders: service.NewOrderService(db.OrderRepo, db.ReferenceRepo),
	}

	if auth.JWTSecretKey != "" {
		tokens, err := service.NewTokenService(auth.JWTSecretKey)
		if err != nil {
			return nil, fmt.Errorf("initialize token service: %w", err)
		}
		components.Tokens = tokens
		log.Info().Msg("JWT bearer authentication enabled")
	}

	return components, nil
}
