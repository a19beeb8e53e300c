package inference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Create(t *testing.T) {
	factory := NewFactory()
	ctx := context.Background()

	t.Run("NilConfig", func(t *testing.T) {
		_, err := factory.Create(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("Mock", func(t *testing.T) {
		invoker, err := factory.Create(ctx, &Config{Type: "mock", EndpointName: "local"})
		require.NoError(t, err)
		assert.Equal(t, "local", invoker.Endpoint())

		result, err := invoker.Invoke(ctx, "text/csv", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, DefaultMockPrediction, string(result))
	})

	t.Run("MockCustomPrediction", func(t *testing.T) {
		invoker, err := factory.Create(ctx, &Config{Type: "MOCK", MockPrediction: "24.5"})
		require.NoError(t, err)

		result, err := invoker.Invoke(ctx, "text/csv", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "24.5", string(result))
	})

	t.Run("SageMakerRequiresEndpoint", func(t *testing.T) {
		_, err := factory.Create(ctx, &Config{Type: "sagemaker"})
		assert.ErrorIs(t, err, ErrMissingEndpoint)
	})

	t.Run("SageMaker", func(t *testing.T) {
		invoker, err := factory.Create(ctx, &Config{
			Type:         "sagemaker",
			EndpointName: "regression-linear-learner-endpoint",
			Region:       "us-east-1",
			EndpointURL:  "http://localhost:4566",
		})
		require.NoError(t, err)
		assert.IsType(t, &SageMakerInvoker{}, invoker)
		assert.Equal(t, "regression-linear-learner-endpoint", invoker.Endpoint())
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := factory.Create(ctx, &Config{Type: "vertex"})
		assert.ErrorContains(t, err, "unsupported inference type: vertex (supported: [sagemaker mock])")
	})
}

func TestGetSupportedTypes(t *testing.T) {
	assert.ElementsMatch(t, []InvokerType{InvokerTypeSageMaker, InvokerTypeMock}, GetSupportedTypes())
}
