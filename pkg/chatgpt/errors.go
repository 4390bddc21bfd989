package chatgpt

import "fmt"

// TransportError reports a failure below the API protocol: connection,
// TLS, timeout, or an aborted response body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that did not match the expected
// completion shape. The raw body is logged before this is returned;
// the error itself carries only the fixed diagnostic.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Reason)
}
