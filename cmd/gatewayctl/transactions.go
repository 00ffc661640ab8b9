package main

import (
	"encoding/json"

	"checkout_gateway/internal/usecase"

	"github.com/spf13/cobra"
)

func transactionsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Recorded transaction commands",
	}

	var tenantID, accountID, sessionID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions recorded for a checkout session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := e.notifications(ctx)
			if err != nil {
				return err
			}
			records, err := usecase.NewNotificationQueryUseCase(repo, e.logger).
				ListTransactionsForSession(ctx, accountID, sessionID, tenantID)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}
	list.Flags().StringVar(&tenantID, "tenant", "", "Tenant id")
	list.Flags().StringVar(&accountID, "account", "", "Account id")
	list.Flags().StringVar(&sessionID, "session", "", "Checkout session id")

	cmd.AddCommand(list)
	return cmd
}
