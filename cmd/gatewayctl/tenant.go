package main

import (
	"fmt"
	"strings"

	"checkout_gateway/internal/domain/entities"

	"github.com/spf13/cobra"
)

func tenantCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Tenant gateway configuration commands",
	}
	cmd.AddCommand(tenantShowCmd(e), tenantPutCmd(e))
	return cmd
}

func tenantShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show [tenant-id]",
		Short: "Show a tenant's gateway configuration with secrets masked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := e.tenantConfigs(cmd.Context())
			if err != nil {
				return err
			}
			cfg, err := repo.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tenant:           %s\n", args[0])
			fmt.Fprintf(out, "resolved:         %t\n", cfg.IsResolved())
			fmt.Fprintf(out, "processor:        %s\n", cfg.ProcessorOrDefault())
			fmt.Fprintf(out, "environment:      %s\n", valueOrDefault(string(cfg.Environment), string(entities.EnvironmentTest)))
			fmt.Fprintf(out, "merchant account: %s\n", cfg.MerchantAccount)
			fmt.Fprintf(out, "api key:          %s\n", mask(cfg.APIKey))
			fmt.Fprintf(out, "username:         %s\n", cfg.Username)
			return nil
		},
	}
}

func tenantPutCmd(e *env) *cobra.Command {
	var cfg entities.TenantGatewayConfig
	var environment, processor string

	cmd := &cobra.Command{
		Use:   "put [tenant-id]",
		Short: "Create or replace a tenant's gateway configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.TenantID = args[0]
			cfg.Environment = entities.GatewayEnvironment(strings.ToUpper(environment))
			cfg.Processor = entities.Processor(strings.ToLower(processor))

			repo, err := e.tenantConfigs(cmd.Context())
			if err != nil {
				return err
			}
			if err := repo.Save(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved tenant %s (resolved=%t)\n", cfg.TenantID, cfg.IsResolved())
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.APIKey, "api-key", "", "Processor API key")
	cmd.Flags().StringVar(&cfg.MerchantAccount, "merchant-account", "", "Merchant account")
	cmd.Flags().StringVar(&cfg.Username, "username", "", "Host platform username")
	cmd.Flags().StringVar(&cfg.Password, "password", "", "Host platform password")
	cmd.Flags().StringVar(&cfg.ReturnURL, "return-url", "", "Checkout return URL")
	cmd.Flags().StringVar(&cfg.Region, "region", "", "Country code sent with sessions")
	cmd.Flags().IntVar(&cfg.CaptureDelayHours, "capture-delay-hours", 0, "Capture delay in hours")
	cmd.Flags().StringVar(&cfg.LiveURLPrefix, "live-url-prefix", "", "Live endpoint prefix")
	cmd.Flags().StringVar(&environment, "environment", string(entities.EnvironmentTest), "TEST or LIVE")
	cmd.Flags().StringVar(&processor, "processor", string(entities.ProcessorAdyen), "adyen or mercadopago")
	return cmd
}

func mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
