package interfaces

import (
	"context"

	"checkout_gateway/internal/domain/entities"
)

//go:generate mockgen -source=tenant_config_repository_interface.go -destination=mocks/tenant_config_repository_mock.go -package=mock_interfaces

// ITenantConfigRepository resolves the gateway configuration of a tenant.
//
// Missing tenants resolve to a zero config (IsResolved() == false), not an error.
type ITenantConfigRepository interface {
	Resolve(ctx context.Context, tenantID string) (entities.TenantGatewayConfig, error)
}
