package payments

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken = entities.NewGatewayError(entities.KindPreconditionNotMet, "missing mercado pago access token", nil)
	ErrPartialRefundUnsupported      = entities.NewGatewayError(entities.KindPreconditionNotMet, "mercado pago refunds must cover the full payment amount", nil)
	ErrInvalidPaymentReference       = entities.NewGatewayError(entities.KindPreconditionNotMet, "mercado pago payment reference must be numeric", nil)
	ErrRecurringUnsupported          = entities.NewGatewayError(entities.KindPreconditionNotMet, "mercado pago checkout cannot store a payment method", nil)
	ErrSessionPaymentMismatch        = entities.NewProcessorRejection("session_payment_mismatch", "payment does not belong to the checkout session")
)

// MercadoPagoTransport maps the gateway operations onto Mercado Pago:
// checkout sessions are preferences, purchases are card-token payments,
// voids cancel the payment and refunds are full refunds. Preferences cannot
// store a payment method, so recurring checkouts are refused.
type MercadoPagoTransport struct {
	payments    payment.Client
	preferences preference.Client
	refunds     refund.Client
	cfg         entities.TenantGatewayConfig
	timeout     time.Duration
	logger      *zap.Logger
}

var _ interfaces.IGatewayTransport = (*MercadoPagoTransport)(nil)

func NewMercadoPagoTransport(cfg entities.TenantGatewayConfig, timeout time.Duration, logger *zap.Logger) (*MercadoPagoTransport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Error("[payment][mercadopago] missing access token", zap.String("tenant_id", cfg.TenantID))
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.APIKey)
	if err != nil {
		logger.Error("[payment][mercadopago] failed creating sdk config", zap.Error(err))
		return nil, entities.NewGatewayError(entities.KindInternal, "failed creating mercado pago config", err)
	}
	logger.Info("[payment][mercadopago] client initialized", zap.String("tenant_id", cfg.TenantID))

	return &MercadoPagoTransport{
		payments:    payment.NewClient(sdkCfg),
		preferences: preference.NewClient(sdkCfg),
		refunds:     refund.NewClient(sdkCfg),
		cfg:         cfg,
		timeout:     timeout,
		logger:      logger,
	}, nil
}

func (t *MercadoPagoTransport) CreateCheckoutSession(ctx context.Context, currency string, amount decimal.Decimal, txnID, accountID string, recurring bool) (entities.CheckoutSessionResponse, error) {
	if recurring {
		t.logger.Warn("[payment][mercadopago] recurring checkout refused",
			zap.String("tenant_id", t.cfg.TenantID),
			zap.String("reference", txnID),
		)
		return entities.CheckoutSessionResponse{}, ErrRecurringUnsupported
	}
	if _, err := entities.ToMinorUnits(amount); err != nil {
		return entities.CheckoutSessionResponse{}, entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid amount", err)
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      "Payment " + txnID,
				Quantity:   1,
				UnitPrice:  amount.InexactFloat64(),
				CurrencyID: currency,
			},
		},
		ExternalReference: txnID,
	}
	if t.cfg.ReturnURL != "" {
		req.AutoReturn = "approved"
		req.BackURLs = &preference.BackURLsRequest{
			Success: t.cfg.ReturnURL,
			Failure: t.cfg.ReturnURL,
			Pending: t.cfg.ReturnURL,
		}
	}

	resp, err := t.preferences.Create(ctx, req)
	if err != nil {
		return entities.CheckoutSessionResponse{}, t.classify("checkout-session", err)
	}
	t.logger.Info("[payment][mercadopago] preference created",
		zap.String("preference_id", resp.ID),
		zap.String("account_id", accountID),
	)

	sessionData := resp.InitPoint
	if !t.cfg.IsLive() && resp.SandboxInitPoint != "" {
		sessionData = resp.SandboxInitPoint
	}
	return entities.CheckoutSessionResponse{ID: resp.ID, MerchantOrderReference: txnID, SessionData: sessionData}, nil
}

func (t *MercadoPagoTransport) Purchase(ctx context.Context, currency string, amount decimal.Decimal, txnID, accountID, storedMethodRef string) (entities.PaymentResponse, error) {
	if _, err := entities.ToMinorUnits(amount); err != nil {
		return entities.PaymentResponse{}, entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid amount", err)
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.payments.Create(ctx, payment.Request{
		TransactionAmount: amount.InexactFloat64(),
		Token:             storedMethodRef,
		Installments:      1,
		ExternalReference: txnID,
		Description:       "Payment " + txnID,
	})
	if err != nil {
		return entities.PaymentResponse{}, t.classify("purchase", err)
	}

	status := mapMercadoPagoStatus(resp.Status)
	if status == mercadoPagoStatusFailed {
		return entities.PaymentResponse{}, entities.NewProcessorRejection(resp.StatusDetail, "payment "+resp.Status)
	}
	t.logger.Info("[payment][mercadopago] payment created",
		zap.Int("payment_id", resp.ID),
		zap.String("status", resp.Status),
		zap.String("currency", currency),
		zap.String("account_id", accountID),
	)
	return entities.PaymentResponse{
		PspReference: strconv.Itoa(resp.ID),
		ResultCode:   resp.Status,
		AdditionalData: map[string]string{
			"statusDetail": resp.StatusDetail,
		},
	}, nil
}

func (t *MercadoPagoTransport) Refund(ctx context.Context, currency string, amount decimal.Decimal, txnID, pspReference string) (entities.RefundResponse, error) {
	paymentID, err := strconv.Atoi(strings.TrimSpace(pspReference))
	if err != nil {
		return entities.RefundResponse{}, ErrInvalidPaymentReference
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	original, err := t.payments.Get(ctx, paymentID)
	if err != nil {
		return entities.RefundResponse{}, t.classify("refund-lookup", err)
	}
	if !decimal.NewFromFloat(original.TransactionAmount).Equal(amount) {
		t.logger.Warn("[payment][mercadopago] partial refund refused",
			zap.Int("payment_id", paymentID),
			zap.String("requested", amount.String()),
			zap.Float64("captured", original.TransactionAmount),
		)
		return entities.RefundResponse{}, ErrPartialRefundUnsupported
	}

	resp, err := t.refunds.Create(ctx, paymentID)
	if err != nil {
		return entities.RefundResponse{}, t.classify("refund", err)
	}
	t.logger.Info("[payment][mercadopago] refund created",
		zap.Int("payment_id", paymentID),
		zap.Int("refund_id", resp.ID),
		zap.String("reference", txnID),
		zap.String("currency", currency),
	)
	return entities.RefundResponse{PspReference: strconv.Itoa(resp.ID), Status: resp.Status}, nil
}

func (t *MercadoPagoTransport) Reverse(ctx context.Context, txnID, pspReference string) (entities.ReversalResponse, error) {
	paymentID, err := strconv.Atoi(strings.TrimSpace(pspReference))
	if err != nil {
		return entities.ReversalResponse{}, ErrInvalidPaymentReference
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.payments.Cancel(ctx, paymentID)
	if err != nil {
		return entities.ReversalResponse{}, t.classify("void", err)
	}
	t.logger.Info("[payment][mercadopago] payment cancelled",
		zap.Int("payment_id", resp.ID),
		zap.String("reference", txnID),
		zap.String("status", resp.Status),
	)
	return entities.ReversalResponse{PspReference: strconv.Itoa(resp.ID), Status: resp.Status}, nil
}

// LookupSessionResult reads the payment the checkout redirect reported.
// sessionResult carries the Mercado Pago payment id; the payment only counts
// when its external reference matches the preference behind sessionID.
func (t *MercadoPagoTransport) LookupSessionResult(ctx context.Context, sessionID, sessionResult string) (entities.SessionResultResponse, error) {
	paymentID, err := strconv.Atoi(strings.TrimSpace(sessionResult))
	if err != nil {
		return entities.SessionResultResponse{}, ErrInvalidPaymentReference
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	pref, err := t.preferences.Get(ctx, sessionID)
	if err != nil {
		return entities.SessionResultResponse{}, t.classify("session-preference", err)
	}
	resp, err := t.payments.Get(ctx, paymentID)
	if err != nil {
		return entities.SessionResultResponse{}, t.classify("session-result", err)
	}
	if pref.ExternalReference == "" || resp.ExternalReference != pref.ExternalReference {
		t.logger.Warn("[payment][mercadopago] payment does not match session",
			zap.String("preference_id", pref.ID),
			zap.Int("payment_id", resp.ID),
			zap.String("preference_reference", pref.ExternalReference),
			zap.String("payment_reference", resp.ExternalReference),
		)
		return entities.SessionResultResponse{}, ErrSessionPaymentMismatch
	}
	return entities.SessionResultResponse{ID: pref.ID, Status: mapMercadoPagoStatus(resp.Status)}, nil
}

func (t *MercadoPagoTransport) classify(op string, err error) error {
	t.logger.Error("[payment][mercadopago] sdk call failed", zap.String("op", op), zap.Error(err))
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return entities.NewGatewayError(entities.KindTransientTransport, "processor unreachable", err)
	}
	return &entities.GatewayError{Kind: entities.KindProcessorRejection, Message: "mercado pago rejected the request", Err: err}
}

const (
	mercadoPagoStatusPending = "pending"
	mercadoPagoStatusFailed  = "failed"
)

// mapMercadoPagoStatus folds Mercado Pago payment statuses into the session
// vocabulary where only "completed" counts as finished.
func mapMercadoPagoStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.SessionStatusCompleted
	case "pending", "in_process", "authorized", "in_mediation":
		return mercadoPagoStatusPending
	default:
		return mercadoPagoStatusFailed
	}
}
