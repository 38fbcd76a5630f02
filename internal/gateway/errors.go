package gateway

import "fmt"

// MissingReferenceError is returned by the resolver when a route's
// identifying parameter is absent.
type MissingReferenceError struct {
	Param string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("Missing %s parameter", e.Param)
}

// ExtractionError wraps any failure of the extraction capability. Cause is
// the client-facing message.
type ExtractionError struct {
	Cause string
	Err   error
}

func (e *ExtractionError) Error() string {
	return e.Cause
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

const causeTimeout = "timeout"
