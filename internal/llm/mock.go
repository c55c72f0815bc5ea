// In file: internal/llm/mock.go
package llm

import "context"

// MockCall records one Generate invocation for later assertions.
type MockCall struct {
	Messages []Message
	Config   *GenerationConfig
}

// MockClient is a test double for LLMClient. If GenerateFunc is nil it
// returns a canned response, so simple tests need no setup at all.
type MockClient struct {
	GenerateFunc func(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error)

	// Calls holds every invocation in order. Tests use it to assert how many
	// LLM round-trips a request produced (including zero).
	Calls []MockCall
}

var _ LLMClient = (*MockClient)(nil)

func (m *MockClient) Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error) {
	m.Calls = append(m.Calls, MockCall{Messages: messages, Config: config})
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, messages, config)
	}
	return &GenerationResult{Content: "mock response"}, nil
}
