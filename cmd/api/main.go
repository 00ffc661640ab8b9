package main

import (
	"fmt"
	"os"

	"checkout_gateway/internal/adapter/http/routes"
	"checkout_gateway/internal/config"
	"checkout_gateway/internal/logging"

	"go.uber.org/zap"
)

// @title           Checkout Gateway API
// @version         1.0
// @description     Payment gateway layer: checkout sessions, session verification and transaction lookups per tenant.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Server.LogEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
