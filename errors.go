package calendar

import (
	"errors"
	"fmt"
)

// RequestError signals a malformed request: a missing subject, mixed
// Date and Time operands, an undefined period or an out of range count.
//
// Calendar values themselves never fail; only the request envelope can
// be rejected.
type RequestError struct {
	Op     string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("calendar %s: %s", e.Op, e.Reason)
}

// NewRequestError creates a new RequestError.
func NewRequestError(op, reason string) *RequestError {
	return &RequestError{Op: op, Reason: reason}
}

// IsRequest checks whether an error is a RequestError and returns it.
func IsRequest(err error) (*RequestError, bool) {
	var r *RequestError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
