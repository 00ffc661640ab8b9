package request

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidKbAccountID = errors.New("kbAccountId must be a valid uuid")
	ErrInvalidTenantID    = errors.New("X-Tenant-ID must be a valid uuid")
	ErrMissingSessionID   = errors.New("sessionId cannot be empty")
)

// SessionResultQuery is bound from GET /v1/session.
type SessionResultQuery struct {
	KbAccountID   string `form:"kbAccountId"`
	SessionID     string `form:"sessionId"`
	SessionResult string `form:"sessionResult"`
}

// Normalize trims every field in place.
func (q *SessionResultQuery) Normalize() {
	q.KbAccountID = strings.TrimSpace(q.KbAccountID)
	q.SessionID = strings.TrimSpace(q.SessionID)
	q.SessionResult = strings.TrimSpace(q.SessionResult)
}

// Validate checks the caller identifiers. Blank session fields are left to the use case.
func (q SessionResultQuery) Validate(tenantID string) error {
	if _, err := uuid.Parse(q.KbAccountID); err != nil {
		return ErrInvalidKbAccountID
	}
	return ValidateTenantID(tenantID)
}

// TransactionsQuery is bound from GET /v1/data.
type TransactionsQuery struct {
	KbAccountID string `form:"kbAccountId"`
	SessionID   string `form:"sessionId"`
}

func (q *TransactionsQuery) Normalize() {
	q.KbAccountID = strings.TrimSpace(q.KbAccountID)
	q.SessionID = strings.TrimSpace(q.SessionID)
}

func (q TransactionsQuery) Validate(tenantID string) error {
	if _, err := uuid.Parse(q.KbAccountID); err != nil {
		return ErrInvalidKbAccountID
	}
	if q.SessionID == "" {
		return ErrMissingSessionID
	}
	return ValidateTenantID(tenantID)
}

func ValidateTenantID(tenantID string) error {
	if _, err := uuid.Parse(strings.TrimSpace(tenantID)); err != nil {
		return ErrInvalidTenantID
	}
	return nil
}
