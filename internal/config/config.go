package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	DynamoDB DynamoDBConfig
	Gateway  GatewayConfig
	Host     HostConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
	LogEnv  string // "development", "production"
}

type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	TenantConfigTable  string
	NotificationsTable string
	SessionIndex       string
}

type GatewayConfig struct {
	Timeout time.Duration
	// BaseURL overrides the processor endpoint for every tenant (sandbox proxies, local stubs).
	BaseURL  string
	MockMode bool
}

type HostConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_TENANT_CONFIG_TABLE", "tenant_gateway_configs")
	v.SetDefault("DYNAMODB_NOTIFICATIONS_TABLE", "gateway_notifications")
	v.SetDefault("DYNAMODB_NOTIFICATIONS_SESSION_INDEX", "checkout_session_id-index")
	v.SetDefault("GATEWAY_TIMEOUT", "30s")
	v.SetDefault("KILLBILL_URL", "http://localhost:8080")
	v.SetDefault("KILLBILL_TIMEOUT", "10s")

	return &Config{
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			GinMode: v.GetString("GIN_MODE"),
			LogEnv:  v.GetString("APP_ENV"),
		},
		DynamoDB: DynamoDBConfig{
			Region:             v.GetString("AWS_REGION"),
			Endpoint:           v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:        v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:    v.GetString("AWS_SECRET_ACCESS_KEY"),
			TenantConfigTable:  v.GetString("DYNAMODB_TENANT_CONFIG_TABLE"),
			NotificationsTable: v.GetString("DYNAMODB_NOTIFICATIONS_TABLE"),
			SessionIndex:       v.GetString("DYNAMODB_NOTIFICATIONS_SESSION_INDEX"),
		},
		Gateway: GatewayConfig{
			Timeout:  durationOr(v.GetString("GATEWAY_TIMEOUT"), 30*time.Second),
			BaseURL:  strings.TrimSpace(v.GetString("GATEWAY_BASE_URL")),
			MockMode: isMockEnabled(v),
		},
		Host: HostConfig{
			BaseURL: strings.TrimRight(v.GetString("KILLBILL_URL"), "/"),
			Timeout: durationOr(v.GetString("KILLBILL_TIMEOUT"), 10*time.Second),
		},
	}, nil
}

func durationOr(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func isMockEnabled(v *viper.Viper) bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
