package quote

import (
	"errors"
	"fmt"
)

// NetworkError reports a transport-level failure: no connectivity, DNS
// failure, a dropped connection while reading the body.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// DecodeError reports a response body that is not a quote.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding quote: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// Describe returns the human-readable text shown in place of a quote when a
// fetch fails.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Cause != nil {
		return netErr.Cause.Error()
	}
	return err.Error()
}
