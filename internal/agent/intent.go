// In file: internal/agent/intent.go
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dileep-u-k/taskmaster-agent/internal/llm"
	"github.com/dileep-u-k/taskmaster-agent/internal/logging"
	"github.com/dileep-u-k/taskmaster-agent/internal/tools"
)

// IntentClassifier turns a free-form query into a ParsedIntent with one LLM
// call. It is fail-open by design: an LLM transport error, unparseable
// output, or a response missing the required keys all degrade to a no-tool
// intent, and the pipeline carries on as if the query never needed a tool.
type IntentClassifier struct {
	client   llm.LLMClient
	registry *tools.Registry
	config   *llm.GenerationConfig
	log      *logging.Logger
}

func NewIntentClassifier(client llm.LLMClient, registry *tools.Registry, config *llm.GenerationConfig, log *logging.Logger) *IntentClassifier {
	return &IntentClassifier{
		client:   client,
		registry: registry,
		config:   config,
		log:      log.Component("classifier"),
	}
}

// Classify never fails: the zero-value degradation is a ParsedIntent naming
// NoTool with an empty parameter map.
func (ic *IntentClassifier) Classify(ctx context.Context, query string) ParsedIntent {
	prompt := buildIntentPrompt(ic.registry.Definitions(), query)

	result, err := ic.client.Generate(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, ic.config)
	if err != nil {
		ic.log.Warn().Err(err).Msg("intent LLM call failed, degrading to no-tool")
		return noToolIntent()
	}

	intent, err := parseIntent(result.Content)
	if err != nil {
		ic.log.Warn().Err(err).Str("raw", result.Content).Msg("intent response unparseable, degrading to no-tool")
		return noToolIntent()
	}

	ic.log.Debug().Str("tool", intent.ToolName).Interface("params", intent.Parameters).Msg("intent parsed")
	return intent
}

func noToolIntent() ParsedIntent {
	return ParsedIntent{ToolName: NoTool, Parameters: map[string]string{}}
}

// parseIntent validates the model's output against the required two-key JSON
// shape. A missing tool_name key is a schema violation, not a no-tool
// answer: the model is instructed to say "none" explicitly.
func parseIntent(raw string) (ParsedIntent, error) {
	cleaned := stripCodeFences(raw)

	var decoded struct {
		ToolName   *string           `json:"tool_name"`
		Parameters map[string]string `json:"parameters"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return ParsedIntent{}, fmt.Errorf("intent is not valid JSON: %w", err)
	}
	if decoded.ToolName == nil {
		return ParsedIntent{}, fmt.Errorf("intent JSON is missing the tool_name key")
	}

	intent := ParsedIntent{
		ToolName:   strings.TrimSpace(*decoded.ToolName),
		Parameters: decoded.Parameters,
	}
	if intent.ToolName == "" {
		intent.ToolName = NoTool
	}
	if intent.Parameters == nil {
		intent.Parameters = map[string]string{}
	}
	return intent, nil
}

// stripCodeFences removes the markdown fencing models habitually wrap JSON
// in ("```json ... ```"), including a bare trailing fence.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
