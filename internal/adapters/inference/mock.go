package inference

import (
	"context"
	"sync"
)

// MockCall records one call made to a MockInvoker
type MockCall struct {
	ContentType string
	Body        []byte
}

// MockInvoker is an in-memory Invoker returning a scripted result
type MockInvoker struct {
	mu       sync.RWMutex
	endpoint string
	result   []byte
	err      error
	calls    []MockCall
}

// NewMockInvoker creates a MockInvoker that answers every call with prediction
func NewMockInvoker(prediction string) *MockInvoker {
	return &MockInvoker{
		endpoint: "mock-endpoint",
		result:   []byte(prediction),
	}
}

// SetResult scripts the bytes returned by subsequent calls
func (m *MockInvoker) SetResult(result []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = result
	m.err = nil
}

// SetError scripts a failure for subsequent calls
func (m *MockInvoker) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Invoke implements Invoker.Invoke
func (m *MockInvoker) Invoke(ctx context.Context, contentType string, body []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	payload := make([]byte, len(body))
	copy(payload, body)
	m.calls = append(m.calls, MockCall{ContentType: contentType, Body: payload})

	if err := ctx.Err(); err != nil {
		return nil, NewInferenceError("Invoke", m.endpoint, err)
	}
	if m.err != nil {
		return nil, NewInferenceError("Invoke", m.endpoint, m.err)
	}

	result := make([]byte, len(m.result))
	copy(result, m.result)
	return result, nil
}

// Endpoint implements Invoker.Endpoint
func (m *MockInvoker) Endpoint() string {
	return m.endpoint
}

// Calls returns a copy of the recorded calls
func (m *MockInvoker) Calls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns how many times Invoke was called
func (m *MockInvoker) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}
