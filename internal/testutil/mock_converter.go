// mock_converter.go - Mock converter implementation for testing
package testutil

import (
	"sync"
)

// MockConverter implements document.Converter for testing.
type MockConverter struct {
	mu sync.Mutex

	// Result is returned by Convert when Err is nil.
	Result string
	// Err, when set, is returned by Convert.
	Err error

	calls []ConvertCall
}

// ConvertCall records one invocation of Convert.
type ConvertCall struct {
	Content  []byte
	Filename string
}

// NewMockConverter creates a mock that returns result for every call.
func NewMockConverter(result string) *MockConverter {
	return &MockConverter{Result: result}
}

func (m *MockConverter) Convert(content []byte, filename string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := make([]byte, len(content))
	copy(data, content)
	m.calls = append(m.calls, ConvertCall{Content: data, Filename: filename})

	if m.Err != nil {
		return "", m.Err
	}
	return m.Result, nil
}

// Calls returns a copy of all recorded invocations.
func (m *MockConverter) Calls() []ConvertCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ConvertCall, len(m.calls))
	copy(out, m.calls)
	return out
}
