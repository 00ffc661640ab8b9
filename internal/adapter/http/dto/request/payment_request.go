package request

import (
	"errors"
	"strings"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInvalidPaymentMethod = errors.New("payment_method must be ONE_TIME or RECURRING")

// PaymentRequest is the payload of the POST /v1/payments/* routes.
//
// Amount is a decimal string ("10.50") so no precision is lost on the way in.
type PaymentRequest struct {
	KbAccountID     string            `json:"kb_account_id" binding:"required"`
	KbTransactionID string            `json:"kb_transaction_id" binding:"required"`
	Currency        string            `json:"currency"`
	Amount          string            `json:"amount"`
	PspReference    string            `json:"psp_reference"`
	PaymentMethod   string            `json:"payment_method"`
	RecurringData   string            `json:"recurring_data"`
	Properties      map[string]string `json:"properties"`
}

// ResolveAmount parses Amount. An empty amount is zero (voids carry none).
func (r PaymentRequest) ResolveAmount() (decimal.Decimal, error) {
	if strings.TrimSpace(r.Amount) == "" {
		return decimal.Zero, nil
	}
	return entities.ParseAmount(r.Amount)
}

func (r PaymentRequest) ResolvePaymentMethod() (entities.PaymentMethod, error) {
	switch entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.PaymentMethod))) {
	case "", entities.PaymentMethodOneTime:
		return entities.PaymentMethodOneTime, nil
	case entities.PaymentMethodRecurring:
		return entities.PaymentMethodRecurring, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// ToCommand builds the use case command for the tenant.
func (r PaymentRequest) ToCommand(tenantID string) (usecase.PaymentCommand, error) {
	amount, err := r.ResolveAmount()
	if err != nil {
		return usecase.PaymentCommand{}, err
	}
	method, err := r.ResolvePaymentMethod()
	if err != nil {
		return usecase.PaymentCommand{}, err
	}
	return usecase.PaymentCommand{
		TenantID:        strings.TrimSpace(tenantID),
		KbAccountID:     strings.TrimSpace(r.KbAccountID),
		KbTransactionID: strings.TrimSpace(r.KbTransactionID),
		Currency:        r.Currency,
		Amount:          amount,
		PspReference:    r.PspReference,
		PaymentMethod:   method,
		RecurringData:   r.RecurringData,
		Properties:      r.Properties,
	}, nil
}
