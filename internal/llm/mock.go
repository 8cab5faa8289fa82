package llm

import (
	"context"
	"strings"
	"sync"
)

// MockClient is a deterministic Client implementation for tests and for
// running the pipeline offline with --provider mock.
type MockClient struct {
	rules []mockRule
	calls []string
	mu    sync.Mutex
}

type mockRule struct {
	err      error
	match    string
	response Response
}

// NewMockClient creates an empty mock client. Use Stub to register
// responses; prompts matching no stub yield an empty response.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Stub registers a response for prompts containing match. Rules are
// checked in registration order.
func (m *MockClient) Stub(match string, response Response, err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, mockRule{match: match, response: response, err: err})
	return m
}

// Generate returns the first stubbed response whose match is a substring
// of the prompt, recording the call.
func (m *MockClient) Generate(_ context.Context, prompt string) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, prompt)

	for _, rule := range m.rules {
		if strings.Contains(prompt, rule.match) {
			return rule.response, rule.err
		}
	}
	return Direct(""), nil
}

// Calls returns the prompts seen so far.
func (m *MockClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// newOfflineMock builds the mock used by the CLI's mock provider: it
// answers the extraction prompt with a small fixed JSON array and the
// interpretation prompt with a canned narrative, so the full pipeline can
// be exercised without network access.
func newOfflineMock() *MockClient {
	const extraction = `[
  {"Test": "Hemoglobin", "Value": "11.2 g/dL", "ReferenceRange": "13.5-17.5", "Status": "Low"},
  {"Test": "Glucose", "Value": "105 mg/dL", "ReferenceRange": "70-99", "Status": "High"},
  {"Test": "Total Cholesterol", "Value": "180 mg/dL", "ReferenceRange": "125-200", "Status": "Normal"}
]`

	const narrative = `EXECUTIVE SUMMARY

This is a sample interpretation produced by the offline mock provider. It is not based on your lab results.

KEY CONCERNS AND RECOMMENDATIONS

- Configure a real model provider to analyze your own report
- Consult your healthcare provider for interpretation of lab results

LIFESTYLE AND DIETARY ADVICE

- Maintain a balanced diet and regular physical activity`

	return NewMockClient().
		Stub("JSON", Direct(extraction), nil).
		Stub("", Direct(narrative), nil)
}
