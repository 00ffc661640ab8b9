package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrConfigUnresolved       = entities.NewGatewayError(entities.KindPreconditionNotMet, "gateway configuration not ready", nil)
	ErrInvalidSessionQuery    = entities.NewGatewayError(entities.KindPreconditionNotMet, "session id and session result are required", nil)
	ErrMissingPspReference    = entities.NewGatewayError(entities.KindPreconditionNotMet, "psp reference is required", nil)
	ErrMissingStoredMethod    = entities.NewGatewayError(entities.KindPreconditionNotMet, "stored payment method reference is required", nil)
	ErrMissingTransactionID   = entities.NewGatewayError(entities.KindPreconditionNotMet, "transaction id is required", nil)
	ErrMissingCurrency        = entities.NewGatewayError(entities.KindPreconditionNotMet, "currency is required", nil)
	ErrInvalidPaymentAmount   = entities.NewGatewayError(entities.KindPreconditionNotMet, "amount must be non-negative with at most two fractional digits", entities.ErrInvalidAmount)
	ErrGatewayNotConfigured   = entities.NewGatewayError(entities.KindInternal, "gateway transport not configured", nil)
	ErrUnsupportedProcessor   = entities.NewGatewayError(entities.KindPreconditionNotMet, "unsupported payment processor", nil)
	errUnexpectedTransportErr = errors.New("unexpected transport fault")
)

// createdDateLayout is the yyyyMMdd stamp put on every processor input.
const createdDateLayout = "20060102"

// IGatewayProcessor is the payment operation surface of a processor backend.
//
// Every operation returns the zero ProcessorOutput together with a non-nil
// error on failure. The error is an *entities.GatewayError whose Kind tells
// transport failures, processor rejections and caller mistakes apart.
type IGatewayProcessor interface {
	ProcessOneTimePayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error)
	ProcessPayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error)
	RefundPayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error)
	VoidPayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error)
	ValidateData(ctx context.Context, configs interfaces.ITenantConfigRepository, properties map[string]string, tenantID, kbAccountID uuid.UUID) (entities.ProcessorInput, error)
	GetSessionResult(ctx context.Context, query entities.SessionQuery) (entities.SessionStatus, error)
}

// TransportFactory builds the remote client for a tenant configuration.
type TransportFactory func(cfg entities.TenantGatewayConfig) (interfaces.IGatewayTransport, error)

// ProcessorFactory builds a processor bound to a tenant configuration.
type ProcessorFactory func(cfg entities.TenantGatewayConfig) (IGatewayProcessor, error)

// NewProcessorFactory returns a ProcessorFactory that builds one transport
// per call. Unresolved configurations are refused.
func NewProcessorFactory(transports TransportFactory, logger *zap.Logger) ProcessorFactory {
	return func(cfg entities.TenantGatewayConfig) (IGatewayProcessor, error) {
		if !cfg.IsResolved() {
			return nil, ErrConfigUnresolved
		}
		transport, err := transports(cfg)
		if err != nil {
			return nil, err
		}
		return NewGatewayProcessor(transport, logger), nil
	}
}

type GatewayProcessor struct {
	transport interfaces.IGatewayTransport
	logger    *zap.Logger
	now       func() time.Time
}

var _ IGatewayProcessor = (*GatewayProcessor)(nil)

func NewGatewayProcessor(transport interfaces.IGatewayTransport, logger *zap.Logger) *GatewayProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GatewayProcessor{transport: transport, logger: logger, now: time.Now}
}

// ProcessOneTimePayment charges a stored payment method immediately.
func (p *GatewayProcessor) ProcessOneTimePayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error) {
	if err := p.checkAmountInput(in); err != nil {
		return entities.ProcessorOutput{}, p.preconditionFailed("purchase", in, err)
	}
	if strings.TrimSpace(in.RecurringData) == "" {
		return entities.ProcessorOutput{}, p.preconditionFailed("purchase", in, ErrMissingStoredMethod)
	}

	resp, err := p.transport.Purchase(ctx, in.Currency, in.Amount, in.KbTransactionID, in.KbAccountID, in.RecurringData)
	if err != nil {
		return entities.ProcessorOutput{}, p.transportFailed("purchase", in, err)
	}
	p.logger.Info("[gateway][processor] purchase success",
		zap.String("kb_transaction_id", in.KbTransactionID),
		zap.String("psp_reference", resp.PspReference),
		zap.String("result_code", resp.ResultCode),
	)

	return entities.ProcessorOutput{
		FirstPaymentReferenceID: resp.PspReference,
		AdditionalData:          resp.AdditionalData,
	}, nil
}

// ProcessPayment creates a hosted-checkout session.
func (p *GatewayProcessor) ProcessPayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error) {
	if err := p.checkAmountInput(in); err != nil {
		return entities.ProcessorOutput{}, p.preconditionFailed("checkout-session", in, err)
	}

	resp, err := p.transport.CreateCheckoutSession(ctx, in.Currency, in.Amount, in.KbTransactionID, in.KbAccountID, in.IsRecurring())
	if err != nil {
		return entities.ProcessorOutput{}, p.transportFailed("checkout-session", in, err)
	}
	p.logger.Info("[gateway][processor] checkout-session success",
		zap.String("kb_transaction_id", in.KbTransactionID),
		zap.String("session_id", resp.ID),
		zap.Bool("recurring", in.IsRecurring()),
	)

	return entities.ProcessorOutput{
		FirstPaymentReferenceID:  resp.ID,
		SecondPaymentReferenceID: resp.MerchantOrderReference,
		AdditionalData: map[string]string{
			entities.AdditionalDataSessionData: resp.SessionData,
		},
	}, nil
}

// RefundPayment refunds Amount against the original PspReference.
func (p *GatewayProcessor) RefundPayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error) {
	if err := p.checkAmountInput(in); err != nil {
		return entities.ProcessorOutput{}, p.preconditionFailed("refund", in, err)
	}
	if strings.TrimSpace(in.PspReference) == "" {
		return entities.ProcessorOutput{}, p.preconditionFailed("refund", in, ErrMissingPspReference)
	}

	resp, err := p.transport.Refund(ctx, in.Currency, in.Amount, in.KbTransactionID, in.PspReference)
	if err != nil {
		return entities.ProcessorOutput{}, p.transportFailed("refund", in, err)
	}
	p.logger.Info("[gateway][processor] refund success",
		zap.String("kb_transaction_id", in.KbTransactionID),
		zap.String("psp_reference", resp.PspReference),
		zap.String("status", resp.Status),
	)

	return entities.ProcessorOutput{FirstPaymentReferenceID: resp.PspReference}, nil
}

// VoidPayment cancels the full authorized amount of PspReference.
func (p *GatewayProcessor) VoidPayment(ctx context.Context, in entities.ProcessorInput) (entities.ProcessorOutput, error) {
	if p.transport == nil {
		return entities.ProcessorOutput{}, ErrGatewayNotConfigured
	}
	if strings.TrimSpace(in.KbTransactionID) == "" {
		return entities.ProcessorOutput{}, p.preconditionFailed("void", in, ErrMissingTransactionID)
	}
	if strings.TrimSpace(in.PspReference) == "" {
		return entities.ProcessorOutput{}, p.preconditionFailed("void", in, ErrMissingPspReference)
	}

	resp, err := p.transport.Reverse(ctx, in.KbTransactionID, in.PspReference)
	if err != nil {
		return entities.ProcessorOutput{}, p.transportFailed("void", in, err)
	}
	p.logger.Info("[gateway][processor] void success",
		zap.String("kb_transaction_id", in.KbTransactionID),
		zap.String("psp_reference", resp.PspReference),
		zap.String("status", resp.Status),
	)

	return entities.ProcessorOutput{FirstPaymentReferenceID: resp.PspReference}, nil
}

// ValidateData resolves the tenant configuration and builds a processor input.
// It returns ErrConfigUnresolved when the tenant has no API key or merchant account.
func (p *GatewayProcessor) ValidateData(ctx context.Context, configs interfaces.ITenantConfigRepository, properties map[string]string, tenantID, kbAccountID uuid.UUID) (entities.ProcessorInput, error) {
	if configs == nil {
		return entities.ProcessorInput{}, ErrConfigUnresolved
	}
	cfg, err := configs.Resolve(ctx, tenantID.String())
	if err != nil {
		p.logger.Error("[gateway][processor] config resolve failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return entities.ProcessorInput{}, entities.NewGatewayError(entities.KindInternal, "failed resolving gateway configuration", err)
	}
	if !cfg.IsResolved() {
		p.logger.Warn("[gateway][processor] config unresolved", zap.String("tenant_id", tenantID.String()))
		return entities.ProcessorInput{}, ErrConfigUnresolved
	}
	return BuildProcessorInput(cfg, properties, tenantID, kbAccountID, p.now()), nil
}

// GetSessionResult looks up the outcome of a hosted-checkout session.
//
// Invalid queries never reach the transport. Transport faults are logged and
// returned as errors; they are never raised any other way.
func (p *GatewayProcessor) GetSessionResult(ctx context.Context, query entities.SessionQuery) (entities.SessionStatus, error) {
	if !query.Valid() {
		p.logger.Error("[gateway][processor] invalid session data provided: session id or session result missing")
		return entities.SessionStatus{}, ErrInvalidSessionQuery
	}
	if p.transport == nil {
		return entities.SessionStatus{}, ErrGatewayNotConfigured
	}

	resp, err := p.transport.LookupSessionResult(ctx, query.SessionID, query.SessionResult)
	if err != nil {
		p.logger.Error("[gateway][processor] session result lookup failed",
			zap.String("session_id", query.SessionID),
			zap.String("kind", string(entities.KindOf(err))),
			zap.Error(err),
		)
		return entities.SessionStatus{}, asGatewayError(err)
	}

	return entities.SessionStatus{SessionID: resp.ID, Status: resp.Status}, nil
}

// BuildProcessorInput stamps a processor input from an already resolved config.
func BuildProcessorInput(cfg entities.TenantGatewayConfig, properties map[string]string, tenantID, kbAccountID uuid.UUID, now time.Time) entities.ProcessorInput {
	return entities.ProcessorInput{
		PluginProperties: properties,
		PluginConfiguration: map[string]string{
			entities.PluginConfigMerchantAccount: cfg.MerchantAccount,
			entities.PluginConfigAPIKey:          cfg.APIKey,
		},
		TenantContext: entities.TenantContext{
			AccountID: kbAccountID.String(),
			TenantID:  tenantID.String(),
		},
		CreatedDate: now.Local().Format(createdDateLayout),
		KbAccountID: strings.ReplaceAll(kbAccountID.String(), "-", ""),
	}
}

func (p *GatewayProcessor) checkAmountInput(in entities.ProcessorInput) error {
	if p.transport == nil {
		return ErrGatewayNotConfigured
	}
	if strings.TrimSpace(in.KbTransactionID) == "" {
		return ErrMissingTransactionID
	}
	if strings.TrimSpace(in.Currency) == "" {
		return ErrMissingCurrency
	}
	if _, err := entities.ToMinorUnits(in.Amount); err != nil {
		return ErrInvalidPaymentAmount
	}
	return nil
}

func (p *GatewayProcessor) preconditionFailed(op string, in entities.ProcessorInput, err error) error {
	p.logger.Error("[gateway][processor] "+op+" rejected before transport",
		zap.String("kb_transaction_id", in.KbTransactionID),
		zap.Error(err),
	)
	return err
}

func (p *GatewayProcessor) transportFailed(op string, in entities.ProcessorInput, err error) error {
	gwErr := asGatewayError(err)
	p.logger.Error("[gateway][processor] "+op+" failed",
		zap.String("kb_transaction_id", in.KbTransactionID),
		zap.String("kind", string(gwErr.Kind)),
		zap.String("code", gwErr.Code),
		zap.Error(err),
	)
	return gwErr
}

func asGatewayError(err error) *entities.GatewayError {
	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	return entities.NewGatewayError(entities.KindInternal, errUnexpectedTransportErr.Error(), err)
}
