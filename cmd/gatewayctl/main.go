package main

import (
	"context"
	"fmt"
	"os"

	"checkout_gateway/internal/adapter/persistence/repository"
	"checkout_gateway/internal/config"
	"checkout_gateway/internal/infrastructure/database"
	"checkout_gateway/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

// env holds what every subcommand needs, built once per invocation.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func (e *env) tenantConfigs(ctx context.Context) (*repository.TenantConfigDynamoRepository, error) {
	ddb, err := database.ConnectDynamoDB(ctx, e.cfg.DynamoDB, e.logger)
	if err != nil {
		return nil, err
	}
	return repository.NewTenantConfigDynamoRepository(ddb, e.cfg.DynamoDB.TenantConfigTable), nil
}

func (e *env) notifications(ctx context.Context) (*repository.NotificationDynamoRepository, error) {
	ddb, err := database.ConnectDynamoDB(ctx, e.cfg.DynamoDB, e.logger)
	if err != nil {
		return nil, err
	}
	return repository.NewNotificationDynamoRepository(ddb, e.cfg.DynamoDB.NotificationsTable, e.cfg.DynamoDB.SessionIndex), nil
}

func main() {
	e := &env{}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "gatewayctl",
		Short:   "Operator tooling for the checkout gateway",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logEnv := "production"
			if verbose {
				logEnv = "development"
			}
			logger, err := logging.New(logEnv)
			if err != nil {
				return err
			}
			if !verbose {
				logger = zap.NewNop()
			}
			e.cfg, e.logger = cfg, logger
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")

	rootCmd.AddCommand(sessionCmd(e))
	rootCmd.AddCommand(transactionsCmd(e))
	rootCmd.AddCommand(tenantCmd(e))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
