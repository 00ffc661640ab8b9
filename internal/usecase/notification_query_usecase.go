package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidAccountID       = errors.New("account id cannot be empty")
	ErrInvalidSessionID       = errors.New("session id cannot be empty")
	ErrTransactionQueryFailed = errors.New("error retrieving transaction data")
)

// INotificationQueryUseCase lists recorded transactions of a checkout session.
type INotificationQueryUseCase interface {
	ListTransactionsForSession(ctx context.Context, kbAccountID, sessionID, tenantID string) ([]entities.TransactionRecord, error)
}

type NotificationQueryUseCase struct {
	repo   interfaces.INotificationRepository
	logger *zap.Logger
}

var _ INotificationQueryUseCase = (*NotificationQueryUseCase)(nil)

func NewNotificationQueryUseCase(repo interfaces.INotificationRepository, logger *zap.Logger) *NotificationQueryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationQueryUseCase{repo: repo, logger: logger}
}

func (u *NotificationQueryUseCase) ListTransactionsForSession(ctx context.Context, kbAccountID, sessionID, tenantID string) ([]entities.TransactionRecord, error) {
	kbAccountID = strings.TrimSpace(kbAccountID)
	sessionID = strings.TrimSpace(sessionID)
	if kbAccountID == "" {
		return nil, ErrInvalidAccountID
	}
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	notifications, err := u.repo.ListByCheckoutSessionID(ctx, kbAccountID, sessionID, tenantID)
	if err != nil {
		u.logger.Error("[notification][usecase] list failed",
			zap.String("session_id", sessionID),
			zap.String("kb_account_id", kbAccountID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrTransactionQueryFailed, err)
	}

	records := make([]entities.TransactionRecord, 0, len(notifications))
	for _, n := range notifications {
		records = append(records, u.toTransactionRecord(n))
	}
	return records, nil
}

func (u *NotificationQueryUseCase) toTransactionRecord(n entities.Notification) entities.TransactionRecord {
	additionalData, err := normalizeAdditionalData(n.AdditionalData)
	if err != nil {
		u.logger.Warn("[notification][usecase] dropping unreadable additional data",
			zap.String("notification_id", n.ID),
			zap.Error(err),
		)
	}
	return entities.TransactionRecord{
		"kbPaymentId":            n.KbPaymentID,
		"kbPaymentTransactionId": n.KbPaymentTransactionID,
		"transactionType":        n.TransactionType,
		"amount":                 n.Amount,
		"currency":               n.Currency,
		"transactionStatus":      n.TransactionStatus,
		"pspReference":           n.PspReference,
		"createdDate":            n.CreatedDate,
		"additionalData":         additionalData,
	}
}

// normalizeAdditionalData re-encodes the stored additional data JSON object
// in compact form with sorted keys. Blank input stays blank.
func normalizeAdditionalData(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	var fields map[string]any
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "", nil
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
