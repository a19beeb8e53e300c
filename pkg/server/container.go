package server

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"housing-prediction-api/internal/adapters/inference"
	"housing-prediction-api/internal/config"
	"housing-prediction-api/internal/metrics"
	"housing-prediction-api/internal/services"
)

// Container holds all application dependencies. It is built once at startup
// and never mutated afterwards.
type Container struct {
	Config            *config.Config
	Logger            *logrus.Logger
	Metrics           *metrics.Recorder
	Invoker           inference.Invoker
	PredictionService services.PredictionService
}

// NewContainer creates a new dependency injection container, building the
// inference backend selected by configuration
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	invoker, err := inference.NewFactory().Create(ctx, &inference.Config{
		Type:           cfg.Inference.Type,
		EndpointName:   cfg.Inference.EndpointName,
		Region:         cfg.Inference.Region,
		EndpointURL:    cfg.Inference.EndpointURL,
		MockPrediction: cfg.Inference.MockPrediction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create inference invoker: %w", err)
	}

	return NewContainerWithInvoker(cfg, invoker)
}

// NewContainerWithInvoker creates a container around an existing invoker
func NewContainerWithInvoker(cfg *config.Config, invoker inference.Invoker) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	recorder := metrics.NewRecorder()

	serviceContainer, err := services.NewServiceContainer(invoker, &services.ServiceConfig{
		Logger:   logger,
		Recorder: recorder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint":    invoker.Endpoint(),
		"environment": cfg.Environment,
		"mode":        config.GetDeploymentMode(),
	}).Info("Container initialized")

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Metrics:           recorder,
		Invoker:           invoker,
		PredictionService: serviceContainer.PredictionService,
	}, nil
}

// NewLogger builds a logrus logger from the logging configuration
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}

// Close cleans up all resources. The inference clients hold no connections
// that need explicit release.
func (c *Container) Close() error {
	return nil
}
