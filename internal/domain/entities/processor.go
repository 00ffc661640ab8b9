package entities

import "github.com/shopspring/decimal"

// PaymentMethod tells the processor whether the payer's method is kept on file.
type PaymentMethod string

const (
	PaymentMethodOneTime   PaymentMethod = "ONE_TIME"
	PaymentMethodRecurring PaymentMethod = "RECURRING"
)

const (
	PluginConfigMerchantAccount = "merchantAccount"
	PluginConfigAPIKey          = "apiKey"

	AdditionalDataSessionData = "sessionData"
)

// TenantContext identifies the account and tenant an operation runs for.
type TenantContext struct {
	AccountID string `json:"account_id"`
	TenantID  string `json:"tenant_id"`
}

// ProcessorInput is the processor-agnostic request for a payment operation.
//
// KbTransactionID is assigned by the billing platform and doubles as the
// merchant reference and idempotency key. PspReference is required for
// refunds and voids.
type ProcessorInput struct {
	Currency            string            `json:"currency"`
	Amount              decimal.Decimal   `json:"amount"`
	KbTransactionID     string            `json:"kb_transaction_id"`
	KbAccountID         string            `json:"kb_account_id"`
	PspReference        string            `json:"psp_reference,omitempty"`
	PaymentMethod       PaymentMethod     `json:"payment_method"`
	RecurringData       string            `json:"recurring_data,omitempty"`
	PluginProperties    map[string]string `json:"plugin_properties,omitempty"`
	PluginConfiguration map[string]string `json:"-"`
	TenantContext       TenantContext     `json:"tenant_context"`
	CreatedDate         string            `json:"created_date"`
}

// IsRecurring reports whether the payment method must be stored for reuse.
func (in ProcessorInput) IsRecurring() bool {
	return in.PaymentMethod == PaymentMethodRecurring
}

// ProcessorOutput is the normalized result of a payment operation.
//
// The zero value stands for "no confirmed reference": callers must never read
// an empty FirstPaymentReferenceID as success.
type ProcessorOutput struct {
	FirstPaymentReferenceID  string            `json:"first_payment_reference_id,omitempty"`
	SecondPaymentReferenceID string            `json:"second_payment_reference_id,omitempty"`
	AdditionalData           map[string]string `json:"additional_data,omitempty"`
}

// HasReference reports whether the processor confirmed the operation.
func (o ProcessorOutput) HasReference() bool {
	return o.FirstPaymentReferenceID != ""
}

// Transport-level responses, already stripped of processor wire details.

type CheckoutSessionResponse struct {
	ID                     string
	MerchantOrderReference string
	SessionData            string
}

type PaymentResponse struct {
	PspReference   string
	ResultCode     string
	AdditionalData map[string]string
}

type RefundResponse struct {
	PspReference string
	Status       string
}

type ReversalResponse struct {
	PspReference string
	Status       string
}

type SessionResultResponse struct {
	ID     string
	Status string
}
