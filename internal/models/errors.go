package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies pipeline failures
type ErrorKind string

const (
	ErrorKindBadRequest      ErrorKind = "BadRequest"
	ErrorKindUpstreamFailure ErrorKind = "UpstreamFailure"
)

// StatusCode maps the kind to its HTTP status
func (k ErrorKind) StatusCode() int {
	switch k {
	case ErrorKindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Stage names a step of the prediction pipeline
type Stage string

const (
	StageReceived         Stage = "received"
	StageDecoded          Stage = "decoded"
	StageFeaturesResolved Stage = "features_resolved"
	StagePayloadBuilt     Stage = "payload_built"
	StageInvoked          Stage = "invoked"
	StageSucceeded        Stage = "succeeded"
	StageFailed           Stage = "failed"
)

// Messages returned to callers
const (
	MessageInvalidJSON     = "Invalid JSON format"
	MessageNotObject       = "Request body must be a JSON object"
	MessageUpstreamFailure = "Error processing your request"
)

// PipelineError is a terminal failure of one invocation.
// Message is safe to return to the caller, Err is for logs only.
type PipelineError struct {
	Kind    ErrorKind
	Stage   Stage
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s: %v", e.Kind, e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Stage, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error
func (e *PipelineError) StatusCode() int {
	return e.Kind.StatusCode()
}

// Response renders the error as a caller-facing response
func (e *PipelineError) Response() *Response {
	return NewErrorResponse(e.StatusCode(), e.Message)
}

// NewBadRequestError creates a BadRequest failure for the given stage
func NewBadRequestError(stage Stage, message string, err error) *PipelineError {
	return &PipelineError{
		Kind:    ErrorKindBadRequest,
		Stage:   stage,
		Message: message,
		Err:     err,
	}
}

// NewUpstreamFailureError creates an UpstreamFailure with the fixed generic message
func NewUpstreamFailureError(err error) *PipelineError {
	return &PipelineError{
		Kind:    ErrorKindUpstreamFailure,
		Stage:   StageInvoked,
		Message: MessageUpstreamFailure,
		Err:     err,
	}
}

// IsBadRequest reports whether err is a BadRequest pipeline error
func IsBadRequest(err error) bool {
	var pe *PipelineError
	return errors.As(err, &pe) && pe.Kind == ErrorKindBadRequest
}

// IsUpstreamFailure reports whether err is an UpstreamFailure pipeline error
func IsUpstreamFailure(err error) bool {
	var pe *PipelineError
	return errors.As(err, &pe) && pe.Kind == ErrorKindUpstreamFailure
}
