package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies gateway failures so callers can decide on retries.
type ErrorKind string

const (
	// KindPreconditionNotMet: bad or missing input, unresolved config. Not retryable.
	KindPreconditionNotMet ErrorKind = "PRECONDITION_NOT_MET"
	// KindTransientTransport: network, I/O or timeout. Retryable by the caller.
	KindTransientTransport ErrorKind = "TRANSIENT_TRANSPORT"
	// KindProcessorRejection: the processor understood and declined the request.
	KindProcessorRejection ErrorKind = "PROCESSOR_REJECTION"
	// KindInternal: authentication failures and unexpected faults.
	KindInternal ErrorKind = "INTERNAL"
)

// GatewayError carries the failure kind plus the processor's error code, if any.
type GatewayError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s (code=%s)", msg, e.Code)
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError creates a GatewayError of the given kind.
func NewGatewayError(kind ErrorKind, message string, err error) *GatewayError {
	return &GatewayError{Kind: kind, Message: message, Err: err}
}

// NewProcessorRejection creates a rejection carrying the processor error code.
func NewProcessorRejection(code, message string) *GatewayError {
	return &GatewayError{Kind: KindProcessorRejection, Code: code, Message: message}
}

// KindOf returns the kind of the first GatewayError in err's chain.
// Errors outside the taxonomy are reported as KindInternal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return KindInternal
}

// IsRetryable reports whether the caller may retry the same request.
func IsRetryable(err error) bool {
	return KindOf(err) == KindTransientTransport
}
