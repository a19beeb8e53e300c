package lambda

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-prediction-api/internal/models"
)

func TestNewRequestFromAPIGateway(t *testing.T) {
	t.Run("PlainBody", func(t *testing.T) {
		req, err := NewRequestFromAPIGateway(events.APIGatewayProxyRequest{
			HTTPMethod: "POST",
			Path:       "/prod/predict",
			Body:       `{"rm": 6.5}`,
			Headers:    map[string]string{"Content-Type": "application/json"},
			RequestContext: events.APIGatewayProxyRequestContext{
				RequestID: "c6af9ac6-7b61-11e6-9a41-93e8deadbeef",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "/prod/predict", req.Path)
		assert.Equal(t, `{"rm": 6.5}`, string(req.Body))
		assert.Equal(t, "c6af9ac6-7b61-11e6-9a41-93e8deadbeef", req.RequestID)
	})

	t.Run("Base64Body", func(t *testing.T) {
		req, err := NewRequestFromAPIGateway(events.APIGatewayProxyRequest{
			HTTPMethod:      "POST",
			Body:            base64.StdEncoding.EncodeToString([]byte(`{"lstat": 4.0}`)),
			IsBase64Encoded: true,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"lstat": 4.0}`, string(req.Body))
	})

	t.Run("InvalidBase64", func(t *testing.T) {
		_, err := NewRequestFromAPIGateway(events.APIGatewayProxyRequest{
			Body:            "%%%not-base64%%%",
			IsBase64Encoded: true,
		})
		assert.Error(t, err)
	})
}

func TestResponseConversion(t *testing.T) {
	resp := NewResponse(models.NewPredictionResponse("24.5"))
	gw := resp.ToAPIGateway()

	assert.Equal(t, 200, gw.StatusCode)
	assert.JSONEq(t, `{"prediction": "24.5"}`, gw.Body)
	assert.Equal(t, models.CORSHeaders(), gw.Headers)
}
