package lambda

import (
	"context"
	"fmt"
	"sync"

	"housing-prediction-api/internal/config"
	"housing-prediction-api/pkg/server"
)

// ConnectionManager owns the process-wide service container of a Lambda
// function. The container is built once per execution environment and shared
// read-only by every invocation. Cleanup drops it so the next call rebuilds.
type ConnectionManager struct {
	mu        sync.RWMutex
	container *server.Container
	loadCfg   func() (*config.Config, error)
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(config.GetOptimizedConfig)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a manager that loads configuration lazily
func NewConnectionManager(loadCfg func() (*config.Config, error)) *ConnectionManager {
	return &ConnectionManager{loadCfg: loadCfg}
}

// Initialize builds the container from cfg unless one is already installed
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	_, err := cm.initialize(ctx, cfg)
	return err
}

func (cm *ConnectionManager) initialize(ctx context.Context, cfg *config.Config) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service container: %w", err)
	}
	cm.container = container
	return container, nil
}

// GetContainer returns the service container, initializing if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.RLock()
	container := cm.container
	cm.mu.RUnlock()
	if container != nil {
		return container, nil
	}

	cfg, err := cm.loadCfg()
	if err != nil {
		return nil, err
	}
	return cm.initialize(ctx, cfg)
}

// IsHealthy checks if the container has been built
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container != nil
}

// Cleanup releases the container's resources
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}
	err := cm.container.Close()
	cm.container = nil
	return err
}
