package interfaces

import (
	"context"

	"checkout_gateway/internal/domain/entities"
)

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/notification_repository_mock.go -package=mock_interfaces

// INotificationRepository is a read-only view over recorded notifications.
type INotificationRepository interface {
	ListByCheckoutSessionID(ctx context.Context, kbAccountID, sessionID, tenantID string) ([]entities.Notification, error)
}
