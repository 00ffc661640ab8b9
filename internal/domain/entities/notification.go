package entities

// Notification is a transaction notification previously recorded for a
// checkout session. This service only reads them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (checkout_session_id-index): checkout_session_id
type Notification struct {
	ID                     string `json:"id"`
	KbAccountID            string `json:"kb_account_id"`
	KbPaymentID            string `json:"kb_payment_id"`
	KbPaymentTransactionID string `json:"kb_payment_transaction_id"`
	TenantID               string `json:"tenant_id"`
	CheckoutSessionID      string `json:"checkout_session_id"`
	TransactionType        string `json:"transaction_type"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	TransactionStatus      string `json:"transaction_status"`
	PspReference           string `json:"psp_reference"`
	CreatedDate            string `json:"created_date"`
	AdditionalData         string `json:"additional_data,omitempty"`
}

// TransactionRecord is the flat projection of a Notification handed to callers.
type TransactionRecord map[string]string
