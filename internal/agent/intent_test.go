// In file: internal/agent/intent_test.go
package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/dileep-u-k/taskmaster-agent/internal/llm"
	"github.com/dileep-u-k/taskmaster-agent/internal/logging"
	"github.com/dileep-u-k/taskmaster-agent/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLog() *logging.Logger {
	return logging.New(nil, "silent")
}

func testRegistry() *tools.Registry {
	registry := tools.NewRegistry()
	registry.Register(tools.NewCalculatorTool())
	return registry
}

func classifierConfig() *llm.GenerationConfig {
	return &llm.GenerationConfig{
		Model:       "test-model",
		Temperature: llm.Float32(0.2),
		MaxTokens:   512,
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"tool_name": "none"}`, `{"tool_name": "none"}`},
		{"fenced with language tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced without language tag", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"trailing fence only", "{\"a\": 1}\n```", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestParseIntent(t *testing.T) {
	t.Run("valid intent with parameters", func(t *testing.T) {
		intent, err := parseIntent(`{"tool_name": "get_weather", "parameters": {"location": "London"}}`)
		require.NoError(t, err)
		assert.Equal(t, "get_weather", intent.ToolName)
		assert.Equal(t, map[string]string{"location": "London"}, intent.Parameters)
	})

	t.Run("nil parameters normalized to empty map", func(t *testing.T) {
		intent, err := parseIntent(`{"tool_name": "none"}`)
		require.NoError(t, err)
		assert.Equal(t, NoTool, intent.ToolName)
		assert.NotNil(t, intent.Parameters)
		assert.Empty(t, intent.Parameters)
	})

	t.Run("empty tool name normalized to none", func(t *testing.T) {
		intent, err := parseIntent(`{"tool_name": "  ", "parameters": {}}`)
		require.NoError(t, err)
		assert.Equal(t, NoTool, intent.ToolName)
	})

	t.Run("not JSON", func(t *testing.T) {
		_, err := parseIntent("I think you want the weather in London.")
		assert.Error(t, err)
	})

	t.Run("missing tool_name key", func(t *testing.T) {
		_, err := parseIntent(`{"parameters": {"location": "London"}}`)
		assert.Error(t, err)
	})

	t.Run("non-string parameter values", func(t *testing.T) {
		_, err := parseIntent(`{"tool_name": "calculate", "parameters": {"operand1": 2}}`)
		assert.Error(t, err)
	})
}

func TestClassifyHappyPath(t *testing.T) {
	mock := &llm.MockClient{
		GenerateFunc: func(ctx context.Context, messages []llm.Message, config *llm.GenerationConfig) (*llm.GenerationResult, error) {
			return &llm.GenerationResult{Content: "```json\n{\"tool_name\": \"calculate\", \"parameters\": {\"operand1\": \"2\", \"operator\": \"+\", \"operand2\": \"3\"}}\n```"}, nil
		},
	}
	classifier := NewIntentClassifier(mock, testRegistry(), classifierConfig(), silentLog())

	intent := classifier.Classify(context.Background(), "what is 2 + 3?")
	assert.Equal(t, "calculate", intent.ToolName)
	assert.Equal(t, "3", intent.Parameters["operand2"])

	// The prompt must embed the registry's tool catalog and the raw query.
	require.Len(t, mock.Calls, 1)
	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "calculate")
	assert.Contains(t, prompt, `User Query: "what is 2 + 3?"`)
}

func TestClassifyFailOpen(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ctx context.Context, messages []llm.Message, config *llm.GenerationConfig) (*llm.GenerationResult, error)
	}{
		{
			"LLM transport error",
			func(ctx context.Context, messages []llm.Message, config *llm.GenerationConfig) (*llm.GenerationResult, error) {
				return nil, errors.New("quota exceeded")
			},
		},
		{
			"unparseable output",
			func(ctx context.Context, messages []llm.Message, config *llm.GenerationConfig) (*llm.GenerationResult, error) {
				return &llm.GenerationResult{Content: "Sure! The tool you want is get_weather."}, nil
			},
		},
		{
			"missing required key",
			func(ctx context.Context, messages []llm.Message, config *llm.GenerationConfig) (*llm.GenerationResult, error) {
				return &llm.GenerationResult{Content: `{"parameters": {}}`}, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &llm.MockClient{GenerateFunc: tt.fn}
			classifier := NewIntentClassifier(mock, testRegistry(), classifierConfig(), silentLog())

			intent := classifier.Classify(context.Background(), "anything")
			assert.Equal(t, NoTool, intent.ToolName)
			assert.Empty(t, intent.Parameters)
		})
	}
}
