package response

import (
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"
)

type SessionResultResponse struct {
	SessionID     string `json:"sessionId"`
	SessionStatus string `json:"sessionStatus"`
}

func FromSessionResult(m map[string]string) SessionResultResponse {
	return SessionResultResponse{
		SessionID:     m[usecase.SessionResultKeySessionID],
		SessionStatus: m[usecase.SessionResultKeySessionStatus],
	}
}

// FromTransactionRecords never returns nil so an empty result encodes as [].
func FromTransactionRecords(records []entities.TransactionRecord) []map[string]string {
	out := make([]map[string]string, 0, len(records))
	for _, r := range records {
		out = append(out, map[string]string(r))
	}
	return out
}

type PaymentResponse struct {
	FirstPaymentReferenceID  string            `json:"first_payment_reference_id"`
	SecondPaymentReferenceID string            `json:"second_payment_reference_id,omitempty"`
	AdditionalData           map[string]string `json:"additional_data,omitempty"`
}

func FromProcessorOutput(out entities.ProcessorOutput) PaymentResponse {
	return PaymentResponse{
		FirstPaymentReferenceID:  out.FirstPaymentReferenceID,
		SecondPaymentReferenceID: out.SecondPaymentReferenceID,
		AdditionalData:           out.AdditionalData,
	}
}
