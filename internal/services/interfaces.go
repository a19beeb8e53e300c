package services

import (
	"context"

	"housing-prediction-api/internal/models"
)

// PredictionService turns one trigger event into exactly one response
type PredictionService interface {
	// Predict never returns a nil response; every failure is rendered as an
	// error response carrying the CORS headers
	Predict(ctx context.Context, event *models.TriggerEvent) *models.Response
}
