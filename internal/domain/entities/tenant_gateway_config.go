package entities

import "strings"

// Processor identifies the remote payment processor backing a tenant.
type Processor string

const (
	ProcessorAdyen       Processor = "adyen"
	ProcessorMercadoPago Processor = "mercadopago"
)

// GatewayEnvironment selects the processor's test or live endpoints.
type GatewayEnvironment string

const (
	EnvironmentTest GatewayEnvironment = "TEST"
	EnvironmentLive GatewayEnvironment = "LIVE"
)

// TenantGatewayConfig is the per-tenant configuration snapshot.
//
// It is loaded fresh for every operation and never cached. A config is only
// usable when both APIKey and MerchantAccount are set.
type TenantGatewayConfig struct {
	TenantID          string             `json:"tenant_id"`
	APIKey            string             `json:"-"`
	MerchantAccount   string             `json:"merchant_account"`
	Username          string             `json:"username"`
	Password          string             `json:"-"`
	Environment       GatewayEnvironment `json:"environment"`
	ReturnURL         string             `json:"return_url"`
	Region            string             `json:"region"`
	CaptureDelayHours int                `json:"capture_delay_hours"`
	Processor         Processor          `json:"processor"`
	LiveURLPrefix     string             `json:"live_url_prefix,omitempty"`
}

// IsResolved reports whether the config carries credentials for the processor.
func (c TenantGatewayConfig) IsResolved() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.MerchantAccount) != ""
}

// ProcessorOrDefault returns the configured processor, falling back to Adyen.
func (c TenantGatewayConfig) ProcessorOrDefault() Processor {
	p := Processor(strings.ToLower(strings.TrimSpace(string(c.Processor))))
	if p == "" {
		return ProcessorAdyen
	}
	return p
}

// IsLive reports whether live endpoints must be used.
func (c TenantGatewayConfig) IsLive() bool {
	return strings.EqualFold(strings.TrimSpace(string(c.Environment)), string(EnvironmentLive))
}
