// In file: internal/llm/client.go

// Package llm defines the provider-agnostic contract for talking to a large
// language model, plus the Gemini implementation the agent ships with. The
// orchestration core only ever sees the LLMClient interface, which is what
// lets the tests swap in a scripted double.
package llm

import "context"

// Role represents the originator of a message in a conversation.
// Using a defined type and constants prevents typos and improves code clarity.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message sent to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerationConfig holds all the parameters to control the LLM's generation
// behavior. Pointer fields distinguish "unset" from an explicit zero, so a
// caller can ask for temperature 0.0 and actually get it.
type GenerationConfig struct {
	// The specific model to use for the generation (e.g., "models/gemini-2.5-flash").
	Model string
	// Controls randomness. A lower value makes the output more deterministic.
	Temperature *float32
	// Nucleus sampling: only tokens within the top-p probability mass are considered.
	TopP *float32
	// Top-k sampling: only the k most likely tokens are considered.
	TopK *int32
	// The maximum number of tokens to generate in the response.
	MaxTokens int
}

// Usage holds token accounting for a single generation request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerationResult holds the complete output from an LLM call.
type GenerationResult struct {
	// The generated text content from the model, surrounding whitespace removed.
	Content string
	// Token usage statistics for the generation request.
	Usage Usage
}

// LLMClient is the universal interface every model client must implement.
// Generate performs a standard, blocking request and returns a single,
// complete result. Streaming is deliberately absent: the agent endpoint is
// strictly request/response.
type LLMClient interface {
	Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error)
}

// Float32 and Int32 are small helpers for building GenerationConfig literals
// without intermediate variables.
func Float32(v float32) *float32 { return &v }
func Int32(v int32) *int32       { return &v }
