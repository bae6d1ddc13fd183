package client

import "fmt"

// TransportError reports a submission that never produced an HTTP response:
// DNS, connect, TLS or I/O failure, or cancellation.
type TransportError struct {
	Op        string
	URL       string
	RequestID string
	Cause     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
