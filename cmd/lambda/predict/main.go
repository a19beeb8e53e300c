package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"housing-prediction-api/internal/config"
	"housing-prediction-api/internal/handlers"
	"housing-prediction-api/internal/models"
	"housing-prediction-api/pkg/lambda"
)

var manager *lambda.ConnectionManager

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	manager = lambda.GetConnectionManager()
	if err := manager.Initialize(context.Background(), cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := manager.GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Container unavailable")
		resp := models.NewErrorResponse(http.StatusInternalServerError, models.MessageUpstreamFailure)
		return lambda.NewResponse(resp).ToAPIGateway(), nil
	}

	predictionHandler := handlers.NewPredictionHandler(container.PredictionService)
	return predictionHandler.HandleAPIGateway(ctx, event), nil
}

func main() {
	awslambda.Start(handler)
}
