package models

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Cross-origin headers attached to every response
const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowMethods = "Access-Control-Allow-Methods"

	AllowOrigin  = "*"
	AllowHeaders = "Content-Type"
	AllowMethods = "OPTIONS,POST"
)

// CORSHeaders returns a fresh copy of the fixed cross-origin header set
func CORSHeaders() map[string]string {
	return map[string]string{
		HeaderAllowOrigin:  AllowOrigin,
		HeaderAllowHeaders: AllowHeaders,
		HeaderAllowMethods: AllowMethods,
	}
}

// Response is the uniform result of one invocation
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// PredictionBody is the success payload
type PredictionBody struct {
	Prediction string `json:"prediction"`
}

// ErrorBody is the failure payload
type ErrorBody struct {
	Error string `json:"error"`
}

// NewPredictionResponse wraps the endpoint's text in a 200 response
func NewPredictionResponse(prediction string) *Response {
	return newJSONResponse(http.StatusOK, PredictionBody{Prediction: prediction})
}

// NewErrorResponse builds an error response with the given status
func NewErrorResponse(statusCode int, message string) *Response {
	return newJSONResponse(statusCode, ErrorBody{Error: message})
}

// NewPreflightResponse answers a CORS preflight request
func NewPreflightResponse() *Response {
	return &Response{
		StatusCode: http.StatusNoContent,
		Headers:    CORSHeaders(),
	}
}

func newJSONResponse(statusCode int, body interface{}) *Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a struct of strings cannot fail
	_ = enc.Encode(body)

	return &Response{
		StatusCode: statusCode,
		Headers:    CORSHeaders(),
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}
}
