package models

// FeatureCount is the number of inputs the regression model expects
const FeatureCount = 13

// FeatureNames lists the model inputs in the column order the endpoint was
// trained on. The order is part of the wire contract with the model and must
// not change.
var FeatureNames = [FeatureCount]string{
	"crim",
	"zn",
	"indus",
	"chas",
	"nox",
	"rm",
	"age",
	"dis",
	"rad",
	"tax",
	"ptratio",
	"b",
	"lstat",
}

// ContentTypeCSV is the content type declared for the payload sent to the endpoint
const ContentTypeCSV = "text/csv"

// FeatureIndex returns the column position of a feature name
func FeatureIndex(name string) (int, bool) {
	for i, n := range FeatureNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// FeatureSet holds the resolved value of every model input.
// Features that were not supplied by the caller keep the zero default and are
// reported as not supplied.
type FeatureSet struct {
	values   [FeatureCount]float64
	supplied [FeatureCount]bool
}

// Set records a caller-supplied value for the feature at position i
func (f *FeatureSet) Set(i int, value float64) {
	f.values[i] = value
	f.supplied[i] = true
}

// At returns the value at position i and whether the caller supplied it
func (f FeatureSet) At(i int) (float64, bool) {
	return f.values[i], f.supplied[i]
}

// Get returns the value of a named feature and whether the caller supplied it
func (f FeatureSet) Get(name string) (float64, bool) {
	i, ok := FeatureIndex(name)
	if !ok {
		return 0, false
	}
	return f.At(i)
}

// Values returns the resolved values in model column order
func (f FeatureSet) Values() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, f.values[:])
	return out
}

// SuppliedCount returns how many features came from the request body
func (f FeatureSet) SuppliedCount() int {
	n := 0
	for _, s := range f.supplied {
		if s {
			n++
		}
	}
	return n
}

// Map returns the features keyed by name, mainly for structured logging
func (f FeatureSet) Map() map[string]float64 {
	m := make(map[string]float64, FeatureCount)
	for i, name := range FeatureNames {
		m[name] = f.values[i]
	}
	return m
}

// TriggerEvent is the inbound request delivered by the front door.
// Body carries the JSON document describing the features.
type TriggerEvent struct {
	Body      string `json:"body"`
	RequestID string `json:"-"`
}
