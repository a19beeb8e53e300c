package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"housing-prediction-api/internal/models"
)

var (
	errNotANumber = errors.New("value is not a number")
	errNonFinite  = errors.New("value is not finite")
)

// decimalPattern accepts plain decimal and exponent notation only
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// DecodeBody decodes the event body exactly once into a JSON object.
// A body that is itself a JSON string (double-encoded) is rejected.
func DecodeBody(body string) (map[string]json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, models.NewBadRequestError(models.StageDecoded, models.MessageInvalidJSON, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, models.NewBadRequestError(models.StageDecoded, models.MessageNotObject,
			fmt.Errorf("body decoded to %s", jsonKind(trimmed)))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, models.NewBadRequestError(models.StageDecoded, models.MessageInvalidJSON, err)
	}

	return fields, nil
}

// ResolveFeatures looks up every model input in order. Missing inputs keep the
// zero default; present inputs must coerce to a finite number.
func ResolveFeatures(fields map[string]json.RawMessage) (models.FeatureSet, error) {
	var features models.FeatureSet

	for i, name := range models.FeatureNames {
		raw, ok := fields[name]
		if !ok {
			continue
		}

		value, err := CoerceFeature(raw)
		if err != nil {
			return models.FeatureSet{}, models.NewBadRequestError(models.StageFeaturesResolved,
				fmt.Sprintf("Feature %q must be a finite number", name), err)
		}
		features.Set(i, value)
	}

	return features, nil
}

// CoerceFeature converts a JSON number or numeric string to float64
func CoerceFeature(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, errNotANumber
	}

	var text string
	switch c := raw[0]; {
	case c == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("%w: %v", errNotANumber, err)
		}
		text = strings.TrimSpace(text)
	case c == '-' || (c >= '0' && c <= '9'):
		text = string(raw)
	default:
		return 0, fmt.Errorf("%w: got %s", errNotANumber, jsonKind(raw))
	}

	if !decimalPattern.MatchString(text) {
		return 0, fmt.Errorf("%w: %q", errNotANumber, text)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat reports overflow as a range error
		return 0, fmt.Errorf("%w: %v", errNonFinite, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errNonFinite
	}

	return value, nil
}

// BuildPayload renders the features as one comma-joined CSV line in model
// column order. Defaults render as "0", supplied values via FormatFeature.
func BuildPayload(features models.FeatureSet) string {
	columns := make([]string, models.FeatureCount)
	for i := range columns {
		value, supplied := features.At(i)
		if !supplied {
			columns[i] = "0"
			continue
		}
		columns[i] = FormatFeature(value)
	}
	return strings.Join(columns, ",")
}

// FormatFeature renders a value as the shortest round-tripping decimal,
// never in exponent form, always with a fractional part
func FormatFeature(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func jsonKind(raw []byte) string {
	if len(raw) == 0 {
		return "empty value"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
