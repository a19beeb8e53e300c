package inference

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSageMakerClient struct {
	input  *sagemakerruntime.InvokeEndpointInput
	output *sagemakerruntime.InvokeEndpointOutput
	err    error
}

func (f *fakeSageMakerClient) InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error) {
	f.input = params
	return f.output, f.err
}

func TestNewSageMakerInvoker(t *testing.T) {
	t.Run("NilClient", func(t *testing.T) {
		_, err := NewSageMakerInvoker(nil, "endpoint")
		assert.Error(t, err)
	})

	t.Run("MissingEndpoint", func(t *testing.T) {
		_, err := NewSageMakerInvoker(&fakeSageMakerClient{}, "")
		assert.ErrorIs(t, err, ErrMissingEndpoint)
	})

	t.Run("Valid", func(t *testing.T) {
		invoker, err := NewSageMakerInvoker(&fakeSageMakerClient{}, "regression-linear-learner-endpoint")
		require.NoError(t, err)
		assert.Equal(t, "regression-linear-learner-endpoint", invoker.Endpoint())
	})
}

func TestSageMakerInvoker_Invoke(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsPayloadAndReturnsBody", func(t *testing.T) {
		client := &fakeSageMakerClient{
			output: &sagemakerruntime.InvokeEndpointOutput{Body: []byte("24.5")},
		}
		invoker, err := NewSageMakerInvoker(client, "housing")
		require.NoError(t, err)

		result, err := invoker.Invoke(ctx, "text/csv", []byte("0,0,0,0,0,6.5,0,0,0,0,0,0,4.0"))
		require.NoError(t, err)
		assert.Equal(t, []byte("24.5"), result)

		require.NotNil(t, client.input)
		assert.Equal(t, "housing", aws.ToString(client.input.EndpointName))
		assert.Equal(t, "text/csv", aws.ToString(client.input.ContentType))
		assert.Equal(t, []byte("0,0,0,0,0,6.5,0,0,0,0,0,0,4.0"), client.input.Body)
	})

	t.Run("WrapsClientError", func(t *testing.T) {
		cause := errors.New("ModelError: model container crashed")
		invoker, err := NewSageMakerInvoker(&fakeSageMakerClient{err: cause}, "housing")
		require.NoError(t, err)

		_, err = invoker.Invoke(ctx, "text/csv", []byte("1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.True(t, IsInferenceError(err))
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		client := &fakeSageMakerClient{}
		invoker, err := NewSageMakerInvoker(client, "housing")
		require.NoError(t, err)

		_, err = invoker.Invoke(ctx, "text/csv", nil)
		assert.ErrorIs(t, err, ErrEmptyPayload)
		assert.Nil(t, client.input, "client must not be called")
	})

	t.Run("NilOutput", func(t *testing.T) {
		invoker, err := NewSageMakerInvoker(&fakeSageMakerClient{}, "housing")
		require.NoError(t, err)

		_, err = invoker.Invoke(ctx, "text/csv", []byte("1"))
		assert.ErrorIs(t, err, ErrEmptyResult)
	})
}
