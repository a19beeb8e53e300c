package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"housing-prediction-api/internal/middleware"
	"housing-prediction-api/internal/models"
	"housing-prediction-api/internal/services"
	"housing-prediction-api/pkg/lambda"
)

// PredictionHandler handles prediction requests from API Gateway and the local server
type PredictionHandler struct {
	predictionService services.PredictionService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionService services.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// Predict godoc
// @Summary Predict a median home value
// @Description Build the model's CSV row from the housing features and return the endpoint's prediction text
// @Tags predictions
// @Accept json
// @Produce json
// @Param features body object true "Housing features keyed by name (crim, zn, indus, chas, nox, rm, age, dis, rad, tax, ptratio, b, lstat)"
// @Success 200 {object} models.PredictionBody
// @Failure 400 {object} models.ErrorBody
// @Failure 413 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeResponse(c, models.NewErrorResponse(http.StatusRequestEntityTooLarge, "Request body too large"))
			return
		}
		logrus.WithError(err).Warn("Failed to read request body")
		writeResponse(c, models.NewErrorResponse(http.StatusBadRequest, models.MessageInvalidJSON))
		return
	}

	event := &models.TriggerEvent{
		Body:      string(body),
		RequestID: c.GetString(middleware.RequestIDKey),
	}
	writeResponse(c, h.predictionService.Predict(c.Request.Context(), event))
}

// Preflight godoc
// @Summary CORS preflight
// @Description Answer a browser preflight with the allowed origin, headers and methods
// @Tags predictions
// @Success 204
// @Router /predict [options]
func (h *PredictionHandler) Preflight(c *gin.Context) {
	writeResponse(c, models.NewPreflightResponse())
}

// HandlePredict is the framework-agnostic entry used by the Lambda function
func (h *PredictionHandler) HandlePredict(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.Method == http.MethodOptions {
		return lambda.NewResponse(models.NewPreflightResponse()), nil
	}

	event := &models.TriggerEvent{
		Body:      string(req.Body),
		RequestID: req.RequestID,
	}
	return lambda.NewResponse(h.predictionService.Predict(ctx, event)), nil
}

// HandleAPIGateway converts an API Gateway proxy event, runs the prediction
// and converts the result back
func (h *PredictionHandler) HandleAPIGateway(ctx context.Context, event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	req, err := lambda.NewRequestFromAPIGateway(event)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": event.RequestContext.RequestID,
			"error":      err.Error(),
		}).Warn("Rejected undecodable event body")
		return lambda.NewResponse(models.NewErrorResponse(http.StatusBadRequest, models.MessageInvalidJSON)).ToAPIGateway()
	}

	resp, err := h.HandlePredict(ctx, req)
	if err != nil {
		return lambda.NewResponse(models.NewUpstreamFailureError(err).Response()).ToAPIGateway()
	}
	return resp.ToAPIGateway()
}
