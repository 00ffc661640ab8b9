package interfaces

import (
	"context"

	"checkout_gateway/internal/domain/entities"
)

//go:generate mockgen -source=host_authenticator_interface.go -destination=mocks/host_authenticator_mock.go -package=mock_interfaces

// IHostAuthenticator authenticates against the host billing platform.
//
// Sessions are per call. Logout must accept a nil session and be safe to call
// more than once.
type IHostAuthenticator interface {
	Login(ctx context.Context, username, password string) (*entities.HostSession, error)
	Logout(ctx context.Context, session *entities.HostSession) error
}
