package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"housing-prediction-api/internal/adapters/inference"
	"housing-prediction-api/internal/metrics"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	PredictionService PredictionService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Logger   logrus.FieldLogger
	Recorder *metrics.Recorder
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(invoker inference.Invoker, config *ServiceConfig) (*ServiceContainer, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	opts := []Option{WithRecorder(config.Recorder)}
	if config.Logger != nil {
		opts = append(opts, WithLogger(config.Logger))
	}

	predictionService, err := NewPredictionService(invoker, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction service: %w", err)
	}

	return &ServiceContainer{
		PredictionService: predictionService,
	}, nil
}
