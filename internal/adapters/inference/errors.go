package inference

import (
	"errors"
	"fmt"
)

// Common inference error types
var (
	ErrMissingEndpoint = errors.New("endpoint name is required")
	ErrEmptyPayload    = errors.New("payload is empty")
	ErrEmptyResult     = errors.New("endpoint returned no result")
	ErrMockFailure     = errors.New("scripted inference failure")
)

// InferenceError represents a failed call to the remote model
type InferenceError struct {
	Op       string // Operation that failed (e.g., "InvokeEndpoint")
	Endpoint string // Endpoint the call targeted
	Err      error  // Underlying error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference %s on endpoint '%s' failed: %v", e.Op, e.Endpoint, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// NewInferenceError creates a new InferenceError
func NewInferenceError(op, endpoint string, err error) *InferenceError {
	return &InferenceError{
		Op:       op,
		Endpoint: endpoint,
		Err:      err,
	}
}

// IsInferenceError returns true if err came from an Invoker
func IsInferenceError(err error) bool {
	var ie *InferenceError
	return errors.As(err, &ie)
}
