// In file: internal/agent/types.go

// Package agent contains the two-phase orchestration core: classify the
// user's intent with one LLM call, optionally invoke a registered tool, and
// generate the final answer with a second LLM call. Every stage recovers
// from its own failures; nothing in this package returns an error to the
// HTTP boundary.
package agent

// NoTool is the sentinel tool name meaning "answer without invoking anything".
// It is both what the classifier is instructed to emit for tool-free queries
// and what classification failures degrade to.
const NoTool = "none"

// ParsedIntent is the classifier's structured guess at which tool (if any)
// the query calls for, and with what arguments.
type ParsedIntent struct {
	ToolName   string            `json:"tool_name"`
	Parameters map[string]string `json:"parameters"`
}

// InvocationStatus tags the outcome of the tool stage.
type InvocationStatus string

const (
	StatusSuccess       InvocationStatus = "success"
	StatusToolError     InvocationStatus = "tool_error"
	StatusNotFound      InvocationStatus = "not_found"
	StatusMissingParams InvocationStatus = "missing_params"
)

// ToolInvocationResult is the outcome of the tool stage. Text is always a
// human-readable sentence: on success it is the tool's answer, on any error
// it is the explanation handed to the response generator (and ultimately the
// user). MissingParams is populated only for StatusMissingParams and names
// the required parameters the classifier failed to extract.
type ToolInvocationResult struct {
	Status        InvocationStatus `json:"status"`
	Text          string           `json:"text"`
	MissingParams []string         `json:"missing_params,omitempty"`
}

// DebugInfo carries diagnostic detail alongside the final answer. It is not
// required for correctness; clients are free to ignore it.
type DebugInfo struct {
	RequestID      string            `json:"request_id,omitempty"`
	ParsedIntent   ParsedIntent      `json:"parsed_intent"`
	ToolCalled     string            `json:"tool_called"`
	ToolParameters map[string]string `json:"tool_parameters"`
	ToolResult     string            `json:"tool_result"`
}

// AgentResponse is the terminal value of one orchestration run.
type AgentResponse struct {
	Response  string    `json:"response"`
	DebugInfo DebugInfo `json:"debug_info"`
}
