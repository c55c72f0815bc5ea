// In file: internal/agent/orchestrator.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/dileep-u-k/taskmaster-agent/internal/llm"
	"github.com/dileep-u-k/taskmaster-agent/internal/logging"
	"github.com/dileep-u-k/taskmaster-agent/internal/tools"
)

// FallbackResponse is the single generic apology in the system. It is
// returned only when the final response-generation LLM call itself fails,
// as the last safety net before the answer reaches the caller.
const FallbackResponse = "Sorry, I encountered an error while trying to generate a response."

// Config carries the sampling settings for the two LLM passes. The
// classifier gets its own (tighter) temperature and token budget because its
// only job is to emit a small JSON object.
type Config struct {
	Model                     string
	Temperature               float32
	TopP                      float32
	TopK                      int32
	MaxOutputTokens           int
	ClassifierTemperature     float32
	ClassifierMaxOutputTokens int
}

// Agent sequences one request through the pipeline:
//
//	CLASSIFYING -> {NO_TOOL | TOOL_UNKNOWN | MISSING_PARAMS | TOOL_EXECUTING} -> RESPONDING -> DONE
//
// Each stage catches its own failures and converts them into text consumed
// by the next stage, so Run never returns an error and never panics past its
// boundary. The Agent holds no per-request state; one instance serves all
// concurrent requests.
type Agent struct {
	client      llm.LLMClient
	registry    *tools.Registry
	classifier  *IntentClassifier
	responseCfg *llm.GenerationConfig
	log         *logging.Logger
}

func New(client llm.LLMClient, registry *tools.Registry, cfg Config, log *logging.Logger) *Agent {
	classifierCfg := &llm.GenerationConfig{
		Model:       cfg.Model,
		Temperature: llm.Float32(cfg.ClassifierTemperature),
		TopP:        llm.Float32(cfg.TopP),
		TopK:        llm.Int32(cfg.TopK),
		MaxTokens:   cfg.ClassifierMaxOutputTokens,
	}
	responseCfg := &llm.GenerationConfig{
		Model:       cfg.Model,
		Temperature: llm.Float32(cfg.Temperature),
		TopP:        llm.Float32(cfg.TopP),
		TopK:        llm.Int32(cfg.TopK),
		MaxTokens:   cfg.MaxOutputTokens,
	}
	return &Agent{
		client:      client,
		registry:    registry,
		classifier:  NewIntentClassifier(client, registry, classifierCfg, log),
		responseCfg: responseCfg,
		log:         log.Component("orchestrator"),
	}
}

// Run executes the full pipeline for one query. The query is assumed
// non-empty; the HTTP boundary rejects empty ones before the core runs.
func (a *Agent) Run(ctx context.Context, query string) *AgentResponse {
	intent := a.classifier.Classify(ctx, query)
	result := a.invokeTool(ctx, intent)

	var prompt string
	switch {
	case result == nil:
		prompt = buildNoToolPrompt(query)
	case result.Status == StatusMissingParams:
		prompt = buildMissingParamsPrompt(query, intent.ToolName, result.MissingParams)
	default:
		prompt = buildToolResultPrompt(query, intent.ToolName, intent.Parameters, result.Text)
	}

	answer := a.respond(ctx, prompt)

	debug := DebugInfo{
		ParsedIntent:   intent,
		ToolCalled:     NoTool,
		ToolParameters: intent.Parameters,
		ToolResult:     "N/A",
	}
	if result != nil {
		debug.ToolCalled = intent.ToolName
		debug.ToolResult = result.Text
	}
	return &AgentResponse{Response: answer, DebugInfo: debug}
}

// invokeTool runs the tool stage of the state machine. A nil result means
// the NO_TOOL path: nothing was invoked and the response prompt should not
// mention a tool at all.
func (a *Agent) invokeTool(ctx context.Context, intent ParsedIntent) *ToolInvocationResult {
	if intent.ToolName == "" || intent.ToolName == NoTool {
		return nil
	}

	tool, ok := a.registry.Lookup(intent.ToolName)
	if !ok {
		// TOOL_UNKNOWN: synthesize an error-shaped result without invoking anything.
		a.log.Warn().Str("tool", intent.ToolName).Msg("classifier named an unregistered tool")
		return &ToolInvocationResult{
			Status: StatusNotFound,
			Text:   fmt.Sprintf("Error: I cannot perform that action as the tool '%s' is not available.", intent.ToolName),
		}
	}

	required := tool.Definition().Parameters.Required
	var missing []string
	for _, name := range required {
		if _, ok := intent.Parameters[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		// MISSING_PARAMS: no invocation; the response stage asks the user
		// for exactly the parameters named here.
		a.log.Info().Str("tool", intent.ToolName).Strs("missing", missing).Msg("required parameters missing")
		return &ToolInvocationResult{
			Status:        StatusMissingParams,
			Text:          fmt.Sprintf("Error: I need more information to use the '%s' tool. Please provide: %s.", intent.ToolName, strings.Join(missing, ", ")),
			MissingParams: missing,
		}
	}

	return a.execute(ctx, tool, intent)
}

// execute invokes the tool synchronously. The tool boundary must never crash
// the request: a returned error or a panic both downgrade to the generic
// tool_error text.
func (a *Agent) execute(ctx context.Context, tool tools.ToolExecutor, intent ParsedIntent) (result *ToolInvocationResult) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Str("tool", intent.ToolName).Interface("panic", r).Msg("tool panicked")
			result = toolErrorResult(intent.ToolName)
		}
	}()

	a.log.Info().Str("tool", intent.ToolName).Interface("params", intent.Parameters).Msg("executing tool")
	text, err := tool.Execute(ctx, intent.Parameters)
	if err != nil {
		a.log.Error().Err(err).Str("tool", intent.ToolName).Msg("tool execution failed")
		return toolErrorResult(intent.ToolName)
	}
	return &ToolInvocationResult{Status: StatusSuccess, Text: text}
}

func toolErrorResult(toolName string) *ToolInvocationResult {
	return &ToolInvocationResult{
		Status: StatusToolError,
		Text:   fmt.Sprintf("Error: Failed to execute the tool '%s'.", toolName),
	}
}

// respond runs the final LLM pass. If it fails, the fixed fallback string is
// returned rather than an error; this is the one place that fallback is
// defined.
func (a *Agent) respond(ctx context.Context, prompt string) string {
	result, err := a.client.Generate(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, a.responseCfg)
	if err != nil {
		a.log.Error().Err(err).Msg("response generation failed, returning fallback")
		return FallbackResponse
	}
	return strings.TrimSpace(result.Content)
}
