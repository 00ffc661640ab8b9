package interfaces

import (
	"context"

	"checkout_gateway/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=gateway_transport_interface.go -destination=mocks/gateway_transport_mock.go -package=mock_interfaces

// IGatewayTransport is the opaque client talking to the remote processor.
//
// Implementations return *entities.GatewayError values of kind
// TransientTransport or ProcessorRejection; they never retry.
type IGatewayTransport interface {
	CreateCheckoutSession(ctx context.Context, currency string, amount decimal.Decimal, txnID, accountID string, recurring bool) (entities.CheckoutSessionResponse, error)
	Purchase(ctx context.Context, currency string, amount decimal.Decimal, txnID, accountID, storedMethodRef string) (entities.PaymentResponse, error)
	Refund(ctx context.Context, currency string, amount decimal.Decimal, txnID, pspReference string) (entities.RefundResponse, error)
	Reverse(ctx context.Context, txnID, pspReference string) (entities.ReversalResponse, error)
	LookupSessionResult(ctx context.Context, sessionID, sessionResult string) (entities.SessionResultResponse, error)
}
