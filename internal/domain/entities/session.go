package entities

import (
	"strings"
	"time"
)

// SessionStatusCompleted is the only status accepted as a finished checkout.
const SessionStatusCompleted = "completed"

// SessionQuery identifies a hosted-checkout session result to verify.
type SessionQuery struct {
	SessionID     string `json:"session_id"`
	SessionResult string `json:"session_result"`
}

// Valid reports whether both fields are populated.
func (q SessionQuery) Valid() bool {
	return strings.TrimSpace(q.SessionID) != "" && strings.TrimSpace(q.SessionResult) != ""
}

// SessionStatus is the processor's view of a checkout session.
//
// Status is opaque; it is only ever compared against SessionStatusCompleted.
type SessionStatus struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// IsCompleted reports whether the payer finished the checkout.
func (s SessionStatus) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// HostSession is a per-call authenticated identity on the host platform.
type HostSession struct {
	Token       string    `json:"token"`
	Username    string    `json:"username"`
	Permissions []string  `json:"permissions,omitempty"`
	IssuedAt    time.Time `json:"issued_at"`
}
