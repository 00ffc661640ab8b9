package main

import (
	"fmt"

	"checkout_gateway/internal/infrastructure/hostauth"
	"checkout_gateway/internal/infrastructure/payments"
	"checkout_gateway/internal/usecase"

	"github.com/spf13/cobra"
)

func sessionCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Hosted-checkout session commands",
	}

	var tenantID, accountID, sessionID, sessionResult string
	check := &cobra.Command{
		Use:   "check",
		Short: "Verify that a checkout session completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			configs, err := e.tenantConfigs(ctx)
			if err != nil {
				return err
			}
			transports := &payments.Factory{
				Timeout:  e.cfg.Gateway.Timeout,
				BaseURL:  e.cfg.Gateway.BaseURL,
				MockMode: e.cfg.Gateway.MockMode,
				Logger:   e.logger,
			}
			uc := usecase.NewSessionVerificationUseCase(
				configs,
				hostauth.NewKillBillAuthenticator(e.cfg.Host.BaseURL, e.cfg.Host.Timeout, e.logger),
				usecase.NewProcessorFactory(transports.NewTransport, e.logger),
				e.logger,
			)

			result, err := uc.CheckSessionResult(ctx, accountID, tenantID, sessionID, sessionResult)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %s: %s\n",
				result[usecase.SessionResultKeySessionID], result[usecase.SessionResultKeySessionStatus])
			return nil
		},
	}
	check.Flags().StringVar(&tenantID, "tenant", "", "Tenant id")
	check.Flags().StringVar(&accountID, "account", "", "Account id")
	check.Flags().StringVar(&sessionID, "session", "", "Checkout session id")
	check.Flags().StringVar(&sessionResult, "result", "", "Session result token")
	_ = check.MarkFlagRequired("tenant")

	cmd.AddCommand(check)
	return cmd
}
