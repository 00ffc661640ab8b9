package payments

import (
	"context"
	"strconv"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MockTransport answers every operation with a synthetic approval.
// Enabled with PAYMENT_GATEWAY_MOCK for local runs without processor credentials.
type MockTransport struct {
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.IGatewayTransport = (*MockTransport)(nil)

func NewMockTransport(logger *zap.Logger) *MockTransport {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[payment][gateway] mock mode enabled")
	return &MockTransport{logger: logger, now: time.Now}
}

func (m *MockTransport) reference() string {
	return strconv.FormatInt(m.now().UTC().UnixNano(), 10)
}

func (m *MockTransport) CreateCheckoutSession(_ context.Context, currency string, amount decimal.Decimal, txnID, _ string, recurring bool) (entities.CheckoutSessionResponse, error) {
	if _, err := entities.ToMinorUnits(amount); err != nil {
		return entities.CheckoutSessionResponse{}, entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid amount", err)
	}
	id := "CS" + m.reference()
	m.logger.Info("[payment][gateway] mock checkout-session",
		zap.String("session_id", id),
		zap.String("currency", currency),
		zap.Bool("recurring", recurring),
	)
	return entities.CheckoutSessionResponse{ID: id, MerchantOrderReference: txnID, SessionData: uuid.NewString()}, nil
}

func (m *MockTransport) Purchase(_ context.Context, _ string, amount decimal.Decimal, txnID, _, _ string) (entities.PaymentResponse, error) {
	if _, err := entities.ToMinorUnits(amount); err != nil {
		return entities.PaymentResponse{}, entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid amount", err)
	}
	ref := m.reference()
	m.logger.Info("[payment][gateway] mock purchase", zap.String("reference", txnID), zap.String("psp_reference", ref))
	return entities.PaymentResponse{
		PspReference:   ref,
		ResultCode:     "Authorised",
		AdditionalData: map[string]string{"mock": "true"},
	}, nil
}

func (m *MockTransport) Refund(_ context.Context, _ string, _ decimal.Decimal, txnID, pspReference string) (entities.RefundResponse, error) {
	ref := m.reference()
	m.logger.Info("[payment][gateway] mock refund", zap.String("reference", txnID), zap.String("original", pspReference))
	return entities.RefundResponse{PspReference: ref, Status: "received"}, nil
}

func (m *MockTransport) Reverse(_ context.Context, txnID, pspReference string) (entities.ReversalResponse, error) {
	ref := m.reference()
	m.logger.Info("[payment][gateway] mock void", zap.String("reference", txnID), zap.String("original", pspReference))
	return entities.ReversalResponse{PspReference: ref, Status: "received"}, nil
}

func (m *MockTransport) LookupSessionResult(_ context.Context, sessionID, _ string) (entities.SessionResultResponse, error) {
	return entities.SessionResultResponse{ID: sessionID, Status: entities.SessionStatusCompleted}, nil
}
