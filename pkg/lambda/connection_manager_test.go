package lambda

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-prediction-api/internal/config"
)

func mockConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8081",
		LogLevel:    "error",
		LogFormat:   "json",
		Inference: config.InferenceConfig{
			Type:         "mock",
			EndpointName: "housing-test",
		},
	}
}

func TestConnectionManager_GetContainer(t *testing.T) {
	loads := 0
	var mu sync.Mutex
	cm := NewConnectionManager(func() (*config.Config, error) {
		mu.Lock()
		defer mu.Unlock()
		loads++
		return mockConfig(), nil
	})
	assert.False(t, cm.IsHealthy())

	first, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)
	assert.True(t, cm.IsHealthy())

	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy())
}

func TestConnectionManager_ConfigError(t *testing.T) {
	cfgErr := errors.New("missing SAGEMAKER_ENDPOINT_NAME")
	cm := NewConnectionManager(func() (*config.Config, error) {
		return nil, cfgErr
	})

	_, err := cm.GetContainer(context.Background())
	assert.ErrorIs(t, err, cfgErr)
	assert.False(t, cm.IsHealthy())
}

func TestConnectionManager_InitializeOnce(t *testing.T) {
	cm := NewConnectionManager(func() (*config.Config, error) { return mockConfig(), nil })

	require.NoError(t, cm.Initialize(context.Background(), mockConfig()))
	first, err := cm.GetContainer(context.Background())
	require.NoError(t, err)

	bad := mockConfig()
	bad.Inference.Type = "unknown"
	require.NoError(t, cm.Initialize(context.Background(), bad))

	second, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestConnectionManager_RebuildAfterCleanup(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return mockConfig(), nil
	})

	first, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	require.NoError(t, cm.Cleanup())

	second, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, second)
	require.NotNil(t, second.PredictionService)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, loads)
	assert.True(t, cm.IsHealthy())
}

func TestConnectionManager_InitializeError(t *testing.T) {
	cm := NewConnectionManager(func() (*config.Config, error) { return mockConfig(), nil })

	bad := mockConfig()
	bad.Inference.Type = "unknown"
	require.Error(t, cm.Initialize(context.Background(), bad))
	assert.False(t, cm.IsHealthy())

	// a failed build leaves the manager able to retry
	container, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, container)
}
