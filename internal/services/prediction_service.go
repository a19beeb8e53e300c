package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"housing-prediction-api/internal/adapters/inference"
	"housing-prediction-api/internal/metrics"
	"housing-prediction-api/internal/models"
)

var (
	errMissingEvent    = errors.New("trigger event is nil")
	errInvalidEncoding = errors.New("endpoint result is not valid UTF-8")
)

// predictionService implements the PredictionService interface
type predictionService struct {
	invoker  inference.Invoker
	recorder *metrics.Recorder
	logger   logrus.FieldLogger
}

// Option configures a prediction service
type Option func(*predictionService)

// WithLogger sets the logger receiving pipeline diagnostics
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *predictionService) {
		s.logger = logger
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(s *predictionService) {
		s.recorder = recorder
	}
}

// NewPredictionService creates a new prediction service around a shared invoker
func NewPredictionService(invoker inference.Invoker, opts ...Option) (PredictionService, error) {
	if invoker == nil {
		return nil, fmt.Errorf("inference invoker cannot be nil")
	}

	s := &predictionService{
		invoker: invoker,
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Predict runs the pipeline and shapes its outcome
func (s *predictionService) Predict(ctx context.Context, event *models.TriggerEvent) *models.Response {
	log := s.logger
	if event != nil && event.RequestID != "" {
		log = log.WithField("request_id", event.RequestID)
	}

	prediction, err := s.run(ctx, log, event)
	if err != nil {
		var pe *models.PipelineError
		if !errors.As(err, &pe) {
			pe = models.NewUpstreamFailureError(err)
		}

		fields := logrus.Fields{
			"kind":         pe.Kind,
			"stage":        models.StageFailed,
			"failed_stage": pe.Stage,
		}
		if pe.Err != nil {
			fields["cause"] = pe.Err.Error()
		}

		if pe.Kind == models.ErrorKindUpstreamFailure {
			log.WithFields(fields).Error(models.MessageUpstreamFailure)
			s.recorder.ObservePrediction(metrics.OutcomeUpstreamFailure)
		} else {
			log.WithFields(fields).Warn(pe.Message)
			s.recorder.ObservePrediction(metrics.OutcomeBadRequest)
		}

		return pe.Response()
	}

	log.WithField("stage", models.StageSucceeded).Info("Prediction succeeded")
	s.recorder.ObservePrediction(metrics.OutcomeSuccess)
	return models.NewPredictionResponse(prediction)
}

func (s *predictionService) run(ctx context.Context, log logrus.FieldLogger, event *models.TriggerEvent) (string, error) {
	if event == nil {
		return "", models.NewBadRequestError(models.StageReceived, models.MessageInvalidJSON, errMissingEvent)
	}
	log.WithFields(logrus.Fields{
		"stage":     models.StageReceived,
		"body_size": len(event.Body),
	}).Info("Received event")

	fields, err := DecodeBody(event.Body)
	if err != nil {
		return "", err
	}

	features, err := ResolveFeatures(fields)
	if err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"stage":    models.StageFeaturesResolved,
		"supplied": features.SuppliedCount(),
		"features": features.Map(),
	}).Debug("Resolved features")

	payload := BuildPayload(features)
	log.WithFields(logrus.Fields{
		"stage":   models.StagePayloadBuilt,
		"payload": payload,
	}).Info("Payload to endpoint")

	return s.invoke(ctx, log, payload)
}

func (s *predictionService) invoke(ctx context.Context, log logrus.FieldLogger, payload string) (string, error) {
	start := time.Now()
	result, err := s.invoker.Invoke(ctx, models.ContentTypeCSV, []byte(payload))
	s.recorder.ObserveUpstream(s.invoker.Endpoint(), time.Since(start), err)
	if err != nil {
		return "", models.NewUpstreamFailureError(err)
	}

	if !utf8.Valid(result) {
		return "", models.NewUpstreamFailureError(errInvalidEncoding)
	}

	prediction := string(result)
	log.WithFields(logrus.Fields{
		"stage":      models.StageInvoked,
		"endpoint":   s.invoker.Endpoint(),
		"prediction": prediction,
	}).Info("Received prediction")

	return prediction, nil
}
