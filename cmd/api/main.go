package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "fieldservice/docs"
	"fieldservice/internal/adapter/http/routes"
	"fieldservice/internal/infrastructure/config"
	"fieldservice/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Field Service API
// @version         1.0
// @description     Customer requests fanned out into Unit, Pole and Transformer work orders, with a purchase order gatekeeper.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Init(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		zap.S().Fatalw("Failed to startup the application", "error", err)
	}
}
