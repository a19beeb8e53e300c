package inference

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
)

// SageMakerAPI is the subset of the SageMaker runtime client used here
type SageMakerAPI interface {
	InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

// SageMakerInvoker calls a SageMaker real-time endpoint
type SageMakerInvoker struct {
	client       SageMakerAPI
	endpointName string
}

// NewSageMakerInvoker creates an invoker around an existing client
func NewSageMakerInvoker(client SageMakerAPI, endpointName string) (*SageMakerInvoker, error) {
	if client == nil {
		return nil, fmt.Errorf("sagemaker client cannot be nil")
	}
	if endpointName == "" {
		return nil, ErrMissingEndpoint
	}

	return &SageMakerInvoker{
		client:       client,
		endpointName: endpointName,
	}, nil
}

// NewSageMakerInvokerFromConfig builds the runtime client from the default AWS
// credential chain
func NewSageMakerInvokerFromConfig(ctx context.Context, cfg *Config) (*SageMakerInvoker, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sagemakerruntime.NewFromConfig(awsCfg, func(o *sagemakerruntime.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}
	})

	return NewSageMakerInvoker(client, cfg.EndpointName)
}

// Invoke implements Invoker.Invoke
func (s *SageMakerInvoker) Invoke(ctx context.Context, contentType string, body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, NewInferenceError("InvokeEndpoint", s.endpointName, ErrEmptyPayload)
	}

	out, err := s.client.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(s.endpointName),
		ContentType:  aws.String(contentType),
		Body:         body,
	})
	if err != nil {
		return nil, NewInferenceError("InvokeEndpoint", s.endpointName, err)
	}
	if out == nil {
		return nil, NewInferenceError("InvokeEndpoint", s.endpointName, ErrEmptyResult)
	}

	return out.Body, nil
}

// Endpoint implements Invoker.Endpoint
func (s *SageMakerInvoker) Endpoint() string {
	return s.endpointName
}
