package usecase

import (
	"context"
	"errors"
	"strings"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../adapter/http/handlers/mocks/usecase_mock.go -package=mocks checkout_gateway/internal/usecase ISessionVerificationUseCase,INotificationQueryUseCase,IPaymentUseCase

var (
	ErrInvalidTenantID         = entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid tenant id", nil)
	ErrInvalidKbAccountID      = entities.NewGatewayError(entities.KindPreconditionNotMet, "invalid account id", nil)
	ErrUnknownPaymentOperation = entities.NewGatewayError(entities.KindPreconditionNotMet, "unknown payment operation", nil)
)

// PaymentOperation names a payment mutation the billing platform can request.
type PaymentOperation string

const (
	OperationCheckout PaymentOperation = "checkout"
	OperationPurchase PaymentOperation = "purchase"
	OperationRefund   PaymentOperation = "refund"
	OperationVoid     PaymentOperation = "void"
)

// PaymentCommand is what the billing platform sends for a payment mutation.
type PaymentCommand struct {
	TenantID        string
	KbAccountID     string
	KbTransactionID string
	Currency        string
	Amount          decimal.Decimal
	PspReference    string
	PaymentMethod   entities.PaymentMethod
	RecurringData   string
	Properties      map[string]string
}

// IPaymentUseCase resolves the tenant's processor and runs a payment operation.
type IPaymentUseCase interface {
	Execute(ctx context.Context, op PaymentOperation, cmd PaymentCommand) (entities.ProcessorOutput, error)
}

type PaymentUseCase struct {
	configs    interfaces.ITenantConfigRepository
	processors ProcessorFactory
	logger     *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(configs interfaces.ITenantConfigRepository, processors ProcessorFactory, logger *zap.Logger) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{configs: configs, processors: processors, logger: logger}
}

func (u *PaymentUseCase) Execute(ctx context.Context, op PaymentOperation, cmd PaymentCommand) (entities.ProcessorOutput, error) {
	u.logger.Info("[payment][usecase] start",
		zap.String("operation", string(op)),
		zap.String("tenant_id", cmd.TenantID),
		zap.String("kb_transaction_id", cmd.KbTransactionID),
	)

	tenantID, err := uuid.Parse(strings.TrimSpace(cmd.TenantID))
	if err != nil {
		return entities.ProcessorOutput{}, ErrInvalidTenantID
	}
	kbAccountID, err := uuid.Parse(strings.TrimSpace(cmd.KbAccountID))
	if err != nil {
		return entities.ProcessorOutput{}, ErrInvalidKbAccountID
	}

	cfg, err := u.configs.Resolve(ctx, tenantID.String())
	if err != nil {
		u.logger.Error("[payment][usecase] config resolve failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return entities.ProcessorOutput{}, entities.NewGatewayError(entities.KindInternal, "failed resolving gateway configuration", err)
	}
	if !cfg.IsResolved() {
		u.logger.Warn("[payment][usecase] config unresolved", zap.String("tenant_id", tenantID.String()))
		return entities.ProcessorOutput{}, ErrConfigUnresolved
	}

	processor, err := u.processors(cfg)
	if err != nil {
		u.logger.Error("[payment][usecase] processor build failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
		return entities.ProcessorOutput{}, err
	}

	// The transport and the input must come from the same config snapshot.
	in, err := processor.ValidateData(ctx, configSnapshot(cfg), cmd.Properties, tenantID, kbAccountID)
	if err != nil {
		return entities.ProcessorOutput{}, err
	}
	in.KbTransactionID = strings.TrimSpace(cmd.KbTransactionID)
	in.Currency = strings.ToUpper(strings.TrimSpace(cmd.Currency))
	in.Amount = cmd.Amount
	in.PspReference = strings.TrimSpace(cmd.PspReference)
	in.PaymentMethod = cmd.PaymentMethod
	in.RecurringData = strings.TrimSpace(cmd.RecurringData)
	if in.PaymentMethod == "" {
		in.PaymentMethod = entities.PaymentMethodOneTime
	}

	var out entities.ProcessorOutput
	switch op {
	case OperationCheckout:
		out, err = processor.ProcessPayment(ctx, in)
	case OperationPurchase:
		out, err = processor.ProcessOneTimePayment(ctx, in)
	case OperationRefund:
		out, err = processor.RefundPayment(ctx, in)
	case OperationVoid:
		out, err = processor.VoidPayment(ctx, in)
	default:
		err = ErrUnknownPaymentOperation
	}
	if err != nil {
		return entities.ProcessorOutput{}, err
	}
	if !out.HasReference() {
		// A processor answering without a reference did not confirm anything.
		return entities.ProcessorOutput{}, entities.NewGatewayError(entities.KindProcessorRejection, "processor returned no reference", errors.New(string(op)))
	}

	u.logger.Info("[payment][usecase] success",
		zap.String("operation", string(op)),
		zap.String("kb_transaction_id", in.KbTransactionID),
		zap.String("reference", out.FirstPaymentReferenceID),
	)
	return out, nil
}

// configSnapshot serves one already resolved config to ValidateData.
type configSnapshot entities.TenantGatewayConfig

func (c configSnapshot) Resolve(context.Context, string) (entities.TenantGatewayConfig, error) {
	return entities.TenantGatewayConfig(c), nil
}
