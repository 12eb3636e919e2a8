// Package main is the entry point for the order-service application.
//
// @title           Order Service API
// @version         1.0.0
// @description     API for listing, creating and filtering customer orders (pedidos).
//
//	Orders are written atomically with their lines; every failure is answered with the standard error envelope.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/order-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required when AUTH_ENABLED is set.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token ("Bearer <token>"). Enabled when JWT_SECRET_KEY is set.
//
// @tag.name        Pedidos
// @tag.description Order listing, creation and filtering
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/order-service/docs" // swagger docs

	"github.com/guttosm/order-service/config"
	"github.com/guttosm/order-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	server := app.NewServer(application.Router, cfg.Server)
	if err := server.Run(); err != nil {
		log.Error().Err(err).Msg("Server error")
	}
}
