package inference

import (
	"context"
)

// Invoker sends a payload to a remote model and returns its raw result.
// Implementations must be safe for concurrent use and must not mutate their
// configuration after construction.
type Invoker interface {
	// Invoke sends body with the declared content type and returns the
	// response bytes unchanged
	Invoke(ctx context.Context, contentType string, body []byte) ([]byte, error)

	// Endpoint returns the identifier of the remote model
	Endpoint() string
}

// Config holds inference backend configuration
type Config struct {
	Type           string // "sagemaker" or "mock"
	EndpointName   string
	Region         string
	EndpointURL    string // optional override of the SageMaker runtime URL
	MockPrediction string
}
