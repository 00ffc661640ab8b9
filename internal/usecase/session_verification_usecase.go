package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidSessionInput      = entities.NewGatewayError(entities.KindPreconditionNotMet, "session id and session result cannot be empty", nil)
	ErrHostAuthenticationFailed = errors.New("host authentication failed")
	ErrSessionLookupFailed      = errors.New("failed to retrieve session result")
	ErrSessionNotCompleted      = errors.New("payment session not completed")
)

const (
	SessionResultKeySessionID     = "sessionId"
	SessionResultKeySessionStatus = "sessionStatus"
)

// ISessionVerificationUseCase verifies that a hosted-checkout session finished.
type ISessionVerificationUseCase interface {
	CheckSessionResult(ctx context.Context, kbAccountID, tenantID, sessionID, sessionResult string) (map[string]string, error)
}

// SessionVerificationUseCase runs the verification state machine:
//
//	START -> AUTHENTICATED -> LOOKED_UP -> VALIDATED -> SUCCESS | REJECTED
//
// Once past START, the host session is always released through Logout, on
// success and on every rejection path.
type SessionVerificationUseCase struct {
	configs    interfaces.ITenantConfigRepository
	auth       interfaces.IHostAuthenticator
	processors ProcessorFactory
	logger     *zap.Logger
}

var _ ISessionVerificationUseCase = (*SessionVerificationUseCase)(nil)

func NewSessionVerificationUseCase(configs interfaces.ITenantConfigRepository, auth interfaces.IHostAuthenticator, processors ProcessorFactory, logger *zap.Logger) *SessionVerificationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionVerificationUseCase{configs: configs, auth: auth, processors: processors, logger: logger}
}

func (u *SessionVerificationUseCase) CheckSessionResult(ctx context.Context, kbAccountID, tenantID, sessionID, sessionResult string) (result map[string]string, err error) {
	query := entities.SessionQuery{SessionID: strings.TrimSpace(sessionID), SessionResult: strings.TrimSpace(sessionResult)}
	if !query.Valid() {
		return nil, ErrInvalidSessionInput
	}
	u.logger.Info("[session][usecase] retrieving session result",
		zap.String("session_id", query.SessionID),
		zap.String("kb_account_id", kbAccountID),
		zap.String("tenant_id", tenantID),
	)

	var hostSession *entities.HostSession
	defer func() {
		// Logout accepts a nil session, so this also runs after a failed login.
		if logoutErr := u.auth.Logout(ctx, hostSession); logoutErr != nil {
			u.logger.Warn("[session][usecase] logout failed", zap.String("session_id", query.SessionID), zap.Error(logoutErr))
		}
		if err != nil {
			u.logger.Error("[session][usecase] session result rejected", zap.String("session_id", query.SessionID), zap.Error(err))
		}
	}()

	cfg, err := u.configs.Resolve(ctx, tenantID)
	if err != nil {
		return nil, rejectInternal(err, "error resolving gateway configuration")
	}

	hostSession, err = u.auth.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return nil, rejectInternal(fmt.Errorf("%w: %w", ErrHostAuthenticationFailed, err), "error retrieving session result")
	}

	processor, err := u.processors(cfg)
	if err != nil {
		return nil, rejectInternal(err, "error building gateway processor")
	}

	status, err := processor.GetSessionResult(ctx, query)
	if err != nil {
		return nil, rejectInternal(fmt.Errorf("%w: %w", ErrSessionLookupFailed, err), "error retrieving session result")
	}

	if !status.IsCompleted() {
		return nil, rejectInternal(ErrSessionNotCompleted, fmt.Sprintf("payment for session: %s, status: %s", query.SessionID, status.Status))
	}

	u.logger.Info("[session][usecase] session completed", zap.String("session_id", status.SessionID))
	return map[string]string{
		SessionResultKeySessionID:     status.SessionID,
		SessionResultKeySessionStatus: status.Status,
	}, nil
}

func rejectInternal(reason error, message string) error {
	return &entities.GatewayError{Kind: entities.KindInternal, Message: message, Err: reason}
}
