// In file: internal/tools/executor.go
package tools

import "context"

// ToolExecutor defines the standard interface for any tool the agent can
// invoke. By having all tools implement this interface, the orchestrator can
// dispatch them in a plug-and-play fashion without knowing the specific
// details of each implementation.
//
// Execute receives the parameters the classifier extracted from the user's
// query, already validated against Definition().Parameters.Required. The
// returned string is always human-readable: on upstream failures a tool is
// expected to return a descriptive error sentence (and a nil error) so the
// response generator can explain the problem to the user. A non-nil error is
// reserved for genuinely unexpected failures and is downgraded by the
// orchestrator, never propagated past it.
type ToolExecutor interface {
	// Definition returns the tool's schema, which is rendered into the
	// intent-classification prompt.
	Definition() Tool

	// Execute runs the actual logic of the tool.
	Execute(ctx context.Context, params map[string]string) (string, error)
}
