package hostauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const permissionsPath = "/1.0/kb/security/permissions"

var (
	ErrMissingCredentials = errors.New("host credentials are not configured")
	ErrInvalidCredentials = errors.New("host rejected the credentials")
)

// KillBillAuthenticator verifies tenant credentials against the Kill Bill
// security API and hands out per-call sessions.
type KillBillAuthenticator struct {
	client *resty.Client
	logger *zap.Logger

	mu     sync.Mutex
	active map[string]struct{}
}

var _ interfaces.IHostAuthenticator = (*KillBillAuthenticator)(nil)

func NewKillBillAuthenticator(baseURL string, timeout time.Duration, logger *zap.Logger) *KillBillAuthenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &KillBillAuthenticator{client: client, logger: logger, active: make(map[string]struct{})}
}

func (a *KillBillAuthenticator) Login(ctx context.Context, username, password string) (*entities.HostSession, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var permissions []string
	resp, err := a.client.R().
		SetContext(ctx).
		SetBasicAuth(username, password).
		SetResult(&permissions).
		Get(permissionsPath)
	if err != nil {
		a.logger.Error("[hostauth] login request failed", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("host login: %w", err)
	}
	if resp.IsError() {
		a.logger.Warn("[hostauth] login rejected", zap.String("username", username), zap.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("%w: status %d", ErrInvalidCredentials, resp.StatusCode())
	}

	session := &entities.HostSession{
		Token:       uuid.NewString(),
		Username:    username,
		Permissions: permissions,
		IssuedAt:    time.Now().UTC(),
	}
	a.mu.Lock()
	a.active[session.Token] = struct{}{}
	a.mu.Unlock()

	a.logger.Debug("[hostauth] login ok", zap.String("username", username), zap.Int("permissions", len(permissions)))
	return session, nil
}

// Logout releases the session. A nil or already released session is a no-op.
func (a *KillBillAuthenticator) Logout(_ context.Context, session *entities.HostSession) error {
	if session == nil {
		return nil
	}
	a.mu.Lock()
	_, ok := a.active[session.Token]
	delete(a.active, session.Token)
	a.mu.Unlock()

	if ok {
		a.logger.Debug("[hostauth] logout", zap.String("username", session.Username))
	}
	return nil
}

// ActiveSessions reports how many sessions have not been released.
func (a *KillBillAuthenticator) ActiveSessions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.active)
}
