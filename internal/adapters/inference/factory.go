package inference

import (
	"context"
	"fmt"
	"strings"
)

// InvokerType represents the type of inference backend
type InvokerType string

const (
	InvokerTypeSageMaker InvokerType = "sagemaker"
	InvokerTypeMock      InvokerType = "mock"
)

// DefaultMockPrediction is returned by the mock backend when none is configured
const DefaultMockPrediction = `{"predictions":[{"score":22.5}]}`

// Factory creates Invoker instances based on configuration
type Factory struct{}

// NewFactory creates a new inference factory
func NewFactory() *Factory {
	return &Factory{}
}

// Create creates an Invoker for the configured backend
func (f *Factory) Create(ctx context.Context, config *Config) (Invoker, error) {
	if config == nil {
		return nil, fmt.Errorf("inference config is required")
	}

	switch InvokerType(strings.ToLower(config.Type)) {
	case InvokerTypeSageMaker, "":
		if config.EndpointName == "" {
			return nil, ErrMissingEndpoint
		}
		return NewSageMakerInvokerFromConfig(ctx, config)
	case InvokerTypeMock:
		prediction := config.MockPrediction
		if prediction == "" {
			prediction = DefaultMockPrediction
		}
		invoker := NewMockInvoker(prediction)
		if config.EndpointName != "" {
			invoker.endpoint = config.EndpointName
		}
		return invoker, nil
	default:
		return nil, fmt.Errorf("unsupported inference type: %s (supported: %v)", config.Type, GetSupportedTypes())
	}
}

// GetSupportedTypes returns the supported inference backends
func GetSupportedTypes() []InvokerType {
	return []InvokerType{InvokerTypeSageMaker, InvokerTypeMock}
}
