package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	adyenTestBaseURL     = "https://checkout-test.adyen.com/v71"
	adyenLiveBaseURLTmpl = "https://%s-checkout-live.adyenpayments.com/checkout/v71"
	defaultTimeout       = 30 * time.Second
)

var ErrMissingLiveURLPrefix = entities.NewGatewayError(entities.KindPreconditionNotMet, "live environment requires a live url prefix", nil)

type adyenAmount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

type adyenSessionRequest struct {
	MerchantAccount          string      `json:"merchantAccount"`
	Amount                   adyenAmount `json:"amount"`
	Reference                string      `json:"reference"`
	ReturnURL                string      `json:"returnUrl"`
	Channel                  string      `json:"channel"`
	CountryCode              string      `json:"countryCode,omitempty"`
	ShopperReference         string      `json:"shopperReference"`
	CaptureDelayHours        int         `json:"captureDelayHours,omitempty"`
	RecurringProcessingModel string      `json:"recurringProcessingModel,omitempty"`
	ShopperInteraction       string      `json:"shopperInteraction,omitempty"`
	StorePaymentMethod       bool        `json:"storePaymentMethod,omitempty"`
	StorePaymentMethodMode   string      `json:"storePaymentMethodMode,omitempty"`
}

type adyenSessionResponse struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	SessionData string `json:"sessionData"`
}

type adyenStoredMethod struct {
	Type                  string `json:"type"`
	StoredPaymentMethodID string `json:"storedPaymentMethodId"`
}

type adyenPaymentRequest struct {
	MerchantAccount          string            `json:"merchantAccount"`
	Amount                   adyenAmount       `json:"amount"`
	Reference                string            `json:"reference"`
	ReturnURL                string            `json:"returnUrl,omitempty"`
	CaptureDelayHours        int               `json:"captureDelayHours,omitempty"`
	ShopperReference         string            `json:"shopperReference"`
	ShopperInteraction       string            `json:"shopperInteraction"`
	RecurringProcessingModel string            `json:"recurringProcessingModel"`
	PaymentMethod            adyenStoredMethod `json:"paymentMethod"`
}

type adyenPaymentResponse struct {
	PspReference      string            `json:"pspReference"`
	ResultCode        string            `json:"resultCode"`
	RefusalReason     string            `json:"refusalReason"`
	RefusalReasonCode string            `json:"refusalReasonCode"`
	AdditionalData    map[string]string `json:"additionalData"`
}

type adyenModificationRequest struct {
	MerchantAccount string       `json:"merchantAccount"`
	Reference       string       `json:"reference"`
	Amount          *adyenAmount `json:"amount,omitempty"`
}

type adyenModificationResponse struct {
	PspReference string `json:"pspReference"`
	Status       string `json:"status"`
}

type adyenSessionResultResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type adyenErrorBody struct {
	Status    int    `json:"status"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
}

// AdyenTransport talks to the Adyen Checkout API over REST.
type AdyenTransport struct {
	client  *resty.Client
	cfg     entities.TenantGatewayConfig
	timeout time.Duration
	logger  *zap.Logger
}

var _ interfaces.IGatewayTransport = (*AdyenTransport)(nil)

type AdyenOption func(*adyenOptions)

type adyenOptions struct {
	baseURL string
	timeout time.Duration
}

// WithBaseURL overrides the environment-derived endpoint.
func WithBaseURL(u string) AdyenOption {
	return func(o *adyenOptions) { o.baseURL = strings.TrimRight(strings.TrimSpace(u), "/") }
}

// WithTimeout bounds every remote call.
func WithTimeout(d time.Duration) AdyenOption {
	return func(o *adyenOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func NewAdyenTransport(cfg entities.TenantGatewayConfig, logger *zap.Logger, opts ...AdyenOption) (*AdyenTransport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := adyenOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := o.baseURL
	if baseURL == "" {
		var err error
		if baseURL, err = adyenBaseURL(cfg); err != nil {
			return nil, err
		}
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("X-API-Key", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	logger.Info("[payment][adyen] client initialized",
		zap.String("tenant_id", cfg.TenantID),
		zap.Bool("live", cfg.IsLive()),
	)
	return &AdyenTransport{client: client, cfg: cfg, timeout: o.timeout, logger: logger}, nil
}

func adyenBaseURL(cfg entities.TenantGatewayConfig) (string, error) {
	if !cfg.IsLive() {
		return adyenTestBaseURL, nil
	}
	prefix := strings.TrimSpace(cfg.LiveURLPrefix)
	if prefix == "" {
		return "", ErrMissingLiveURLPrefix
	}
	return fmt.Sprintf(adyenLiveBaseURLTmpl, prefix), nil
}

func (t *AdyenTransport) CreateCheckoutSession(ctx context.Context, currency string, amount decimal.Decimal, txnID, accountID string, recurring bool) (entities.CheckoutSessionResponse, error) {
	minor, err := entities.ToMinorUnits(amount)
	if err != nil {
		return entities.CheckoutSessionResponse{}, entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid amount", err)
	}

	body := adyenSessionRequest{
		MerchantAccount:   t.cfg.MerchantAccount,
		Amount:            adyenAmount{Currency: currency, Value: minor},
		Reference:         txnID,
		ReturnURL:         t.cfg.ReturnURL,
		Channel:           "Web",
		CountryCode:       t.cfg.Region,
		ShopperReference:  accountID,
		CaptureDelayHours: t.cfg.CaptureDelayHours,
	}
	if recurring {
		body.RecurringProcessingModel = "CardOnFile"
		body.ShopperInteraction = "Ecommerce"
		body.StorePaymentMethod = true
		body.StorePaymentMethodMode = "enabled"
	}

	var out adyenSessionResponse
	if err := t.do(ctx, http.MethodPost, "/sessions", txnID, body, &out, nil); err != nil {
		return entities.CheckoutSessionResponse{}, err
	}
	return entities.CheckoutSessionResponse{ID: out.ID, MerchantOrderReference: out.Reference, SessionData: out.SessionData}, nil
}

func (t *AdyenTransport) Purchase(ctx context.Context, currency string, amount decimal.Decimal, txnID, accountID, storedMethodRef string) (entities.PaymentResponse, error) {
	minor, err := entities.ToMinorUnits(amount)
	if err != nil {
		return entities.PaymentResponse{}, entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid amount", err)
	}

	body := adyenPaymentRequest{
		MerchantAccount:          t.cfg.MerchantAccount,
		Amount:                   adyenAmount{Currency: currency, Value: minor},
		Reference:                txnID,
		ReturnURL:                t.cfg.ReturnURL,
		CaptureDelayHours:        t.cfg.CaptureDelayHours,
		ShopperReference:         accountID,
		ShopperInteraction:       "ContAuth",
		RecurringProcessingModel: "UnscheduledCardOnFile",
		PaymentMethod:            adyenStoredMethod{Type: "scheme", StoredPaymentMethodID: storedMethodRef},
	}

	var out adyenPaymentResponse
	if err := t.do(ctx, http.MethodPost, "/payments", txnID, body, &out, nil); err != nil {
		return entities.PaymentResponse{}, err
	}
	switch out.ResultCode {
	case "Refused", "Error", "Cancelled":
		t.logger.Warn("[payment][adyen] payment refused",
			zap.String("reference", txnID),
			zap.String("result_code", out.ResultCode),
			zap.String("refusal_reason", out.RefusalReason),
		)
		msg := out.RefusalReason
		if msg == "" {
			msg = "payment " + strings.ToLower(out.ResultCode)
		}
		return entities.PaymentResponse{}, entities.NewProcessorRejection(out.RefusalReasonCode, msg)
	}
	return entities.PaymentResponse{PspReference: out.PspReference, ResultCode: out.ResultCode, AdditionalData: out.AdditionalData}, nil
}

func (t *AdyenTransport) Refund(ctx context.Context, currency string, amount decimal.Decimal, txnID, pspReference string) (entities.RefundResponse, error) {
	minor, err := entities.ToMinorUnits(amount)
	if err != nil {
		return entities.RefundResponse{}, entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid amount", err)
	}

	body := adyenModificationRequest{
		MerchantAccount: t.cfg.MerchantAccount,
		Reference:       txnID,
		Amount:          &adyenAmount{Currency: currency, Value: minor},
	}
	var out adyenModificationResponse
	if err := t.do(ctx, http.MethodPost, "/payments/{psp}/refunds", txnID, body, &out, map[string]string{"psp": pspReference}); err != nil {
		return entities.RefundResponse{}, err
	}
	return entities.RefundResponse{PspReference: out.PspReference, Status: out.Status}, nil
}

func (t *AdyenTransport) Reverse(ctx context.Context, txnID, pspReference string) (entities.ReversalResponse, error) {
	body := adyenModificationRequest{MerchantAccount: t.cfg.MerchantAccount, Reference: txnID}
	var out adyenModificationResponse
	if err := t.do(ctx, http.MethodPost, "/payments/{psp}/reversals", txnID, body, &out, map[string]string{"psp": pspReference}); err != nil {
		return entities.ReversalResponse{}, err
	}
	return entities.ReversalResponse{PspReference: out.PspReference, Status: out.Status}, nil
}

func (t *AdyenTransport) LookupSessionResult(ctx context.Context, sessionID, sessionResult string) (entities.SessionResultResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var out adyenSessionResultResponse
	var errBody adyenErrorBody
	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("id", sessionID).
		SetQueryParam("sessionResult", sessionResult).
		SetResult(&out).
		SetError(&errBody).
		Get("/sessions/{id}")
	if err := t.classify("session-result", resp, err, errBody); err != nil {
		return entities.SessionResultResponse{}, err
	}
	return entities.SessionResultResponse{ID: out.ID, Status: out.Status}, nil
}

// do sends a mutation with the transaction id as idempotency key.
func (t *AdyenTransport) do(ctx context.Context, method, path, idempotencyKey string, body, result any, pathParams map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var errBody adyenErrorBody
	req := t.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", idempotencyKey).
		SetBody(body).
		SetResult(result).
		SetError(&errBody)
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}

	resp, err := req.Execute(method, path)
	return t.classify(path, resp, err, errBody)
}

func (t *AdyenTransport) classify(op string, resp *resty.Response, err error, errBody adyenErrorBody) error {
	if err != nil {
		t.logger.Error("[payment][adyen] transport failure", zap.String("op", op), zap.Error(err))
		msg := "processor unreachable"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "processor call timed out"
		}
		return entities.NewGatewayError(entities.KindTransientTransport, msg, err)
	}
	if !resp.IsError() {
		return nil
	}

	status := resp.StatusCode()
	t.logger.Error("[payment][adyen] processor error",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error_code", errBody.ErrorCode),
		zap.String("error_type", errBody.ErrorType),
	)
	msg := errBody.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		gwErr := entities.NewGatewayError(entities.KindTransientTransport, msg, nil)
		gwErr.Code = errBody.ErrorCode
		return gwErr
	}
	return entities.NewProcessorRejection(errBody.ErrorCode, msg)
}
