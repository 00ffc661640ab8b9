package usecase

import (
	"context"
	"errors"
	"testing"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"
	mock_interfaces "checkout_gateway/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testAccountID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func newPaymentUseCase(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockITenantConfigRepository, *mock_interfaces.MockIGatewayTransport) {
	ctrl := gomock.NewController(t)
	configs := mock_interfaces.NewMockITenantConfigRepository(ctrl)
	transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
	factory := NewProcessorFactory(func(entities.TenantGatewayConfig) (interfaces.IGatewayTransport, error) {
		return transport, nil
	}, zap.NewNop())
	return NewPaymentUseCase(configs, factory, zap.NewNop()), configs, transport
}

func TestPaymentUseCase_Execute(t *testing.T) {
	amount := decimal.RequireFromString("25.00")

	t.Run("invalid tenant id", func(t *testing.T) {
		uc, _, _ := newPaymentUseCase(t)
		_, err := uc.Execute(context.Background(), OperationCheckout, PaymentCommand{TenantID: "nope", KbAccountID: testAccountID})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("invalid account id", func(t *testing.T) {
		uc, _, _ := newPaymentUseCase(t)
		_, err := uc.Execute(context.Background(), OperationCheckout, PaymentCommand{TenantID: testTenantID, KbAccountID: "x"})
		if !errors.Is(err, ErrInvalidKbAccountID) {
			t.Fatalf("expected ErrInvalidKbAccountID, got %v", err)
		}
	})

	t.Run("unresolved config", func(t *testing.T) {
		uc, configs, _ := newPaymentUseCase(t)
		configs.EXPECT().Resolve(gomock.Any(), testTenantID).Return(entities.TenantGatewayConfig{APIKey: "key"}, nil)

		_, err := uc.Execute(context.Background(), OperationCheckout, PaymentCommand{TenantID: testTenantID, KbAccountID: testAccountID})
		if !errors.Is(err, ErrConfigUnresolved) {
			t.Fatalf("expected ErrConfigUnresolved, got %v", err)
		}
	})

	t.Run("recurring checkout", func(t *testing.T) {
		uc, configs, transport := newPaymentUseCase(t)
		configs.EXPECT().Resolve(gomock.Any(), testTenantID).Return(resolvedConfig, nil)
		transport.EXPECT().
			CreateCheckoutSession(gomock.Any(), "EUR", amount, "txn-1", "aaaaaaaabbbbccccddddeeeeeeeeeeee", true).
			Return(entities.CheckoutSessionResponse{ID: "CS1", MerchantOrderReference: "txn-1", SessionData: "blob"}, nil)

		out, err := uc.Execute(context.Background(), OperationCheckout, PaymentCommand{
			TenantID:        testTenantID,
			KbAccountID:     testAccountID,
			KbTransactionID: "txn-1",
			Currency:        "eur",
			Amount:          amount,
			PaymentMethod:   entities.PaymentMethodRecurring,
		})
		if err != nil || out.FirstPaymentReferenceID != "CS1" {
			t.Fatalf("unexpected result: %+v err=%v", out, err)
		}
	})

	t.Run("void", func(t *testing.T) {
		uc, configs, transport := newPaymentUseCase(t)
		configs.EXPECT().Resolve(gomock.Any(), testTenantID).Return(resolvedConfig, nil)
		transport.EXPECT().Reverse(gomock.Any(), "txn-2", "PSP1").Return(entities.ReversalResponse{PspReference: "REV1"}, nil)

		out, err := uc.Execute(context.Background(), OperationVoid, PaymentCommand{
			TenantID:        testTenantID,
			KbAccountID:     testAccountID,
			KbTransactionID: "txn-2",
			PspReference:    "PSP1",
		})
		if err != nil || out.FirstPaymentReferenceID != "REV1" {
			t.Fatalf("unexpected result: %+v err=%v", out, err)
		}
	})

	t.Run("empty reference is a rejection", func(t *testing.T) {
		uc, configs, transport := newPaymentUseCase(t)
		configs.EXPECT().Resolve(gomock.Any(), testTenantID).Return(resolvedConfig, nil)
		transport.EXPECT().Refund(gomock.Any(), "EUR", amount, "txn-3", "PSP1").Return(entities.RefundResponse{}, nil)

		_, err := uc.Execute(context.Background(), OperationRefund, PaymentCommand{
			TenantID:        testTenantID,
			KbAccountID:     testAccountID,
			KbTransactionID: "txn-3",
			Currency:        "EUR",
			Amount:          amount,
			PspReference:    "PSP1",
		})
		if entities.KindOf(err) != entities.KindProcessorRejection {
			t.Fatalf("expected processor rejection, got %v", err)
		}
	})

	t.Run("unknown operation", func(t *testing.T) {
		uc, configs, _ := newPaymentUseCase(t)
		configs.EXPECT().Resolve(gomock.Any(), testTenantID).Return(resolvedConfig, nil)

		_, err := uc.Execute(context.Background(), PaymentOperation("capture"), PaymentCommand{TenantID: testTenantID, KbAccountID: testAccountID})
		if !errors.Is(err, ErrUnknownPaymentOperation) {
			t.Fatalf("expected ErrUnknownPaymentOperation, got %v", err)
		}
	})
}

type validatingProcessor struct {
	IGatewayProcessor
	validated []map[string]string
}

func (p *validatingProcessor) ValidateData(ctx context.Context, configs interfaces.ITenantConfigRepository, properties map[string]string, tenantID, kbAccountID uuid.UUID) (entities.ProcessorInput, error) {
	p.validated = append(p.validated, properties)
	return p.IGatewayProcessor.ValidateData(ctx, configs, properties, tenantID, kbAccountID)
}

func TestPaymentUseCase_ExecuteBuildsInputThroughValidateData(t *testing.T) {
	ctrl := gomock.NewController(t)
	configs := mock_interfaces.NewMockITenantConfigRepository(ctrl)
	transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
	processor := &validatingProcessor{IGatewayProcessor: NewGatewayProcessor(transport, zap.NewNop())}
	uc := NewPaymentUseCase(configs, func(cfg entities.TenantGatewayConfig) (IGatewayProcessor, error) {
		return processor, nil
	}, zap.NewNop())

	configs.EXPECT().Resolve(gomock.Any(), testTenantID).Return(resolvedConfig, nil).Times(1)
	transport.EXPECT().Purchase(gomock.Any(), "EUR", decimal.RequireFromString("9.99"), "txn-9", "aaaaaaaabbbbccccddddeeeeeeeeeeee", "stored-1").
		Return(entities.PaymentResponse{PspReference: "PSP9"}, nil)

	out, err := uc.Execute(context.Background(), OperationPurchase, PaymentCommand{
		TenantID:        testTenantID,
		KbAccountID:     testAccountID,
		KbTransactionID: "txn-9",
		Currency:        "EUR",
		Amount:          decimal.RequireFromString("9.99"),
		RecurringData:   "stored-1",
		Properties:      map[string]string{"source": "billing"},
	})
	if err != nil || out.FirstPaymentReferenceID != "PSP9" {
		t.Fatalf("unexpected result: %+v err=%v", out, err)
	}
	if len(processor.validated) != 1 || processor.validated[0]["source"] != "billing" {
		t.Fatalf("expected one ValidateData call with the command properties, got %+v", processor.validated)
	}
}
