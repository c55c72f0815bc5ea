// In file: internal/tools/types.go

// Package tools defines the agent's tool contract: a static registry of
// named capabilities, each with a declared parameter schema and a
// text-producing Execute method. The schema serves two masters at once:
// it is rendered into the intent-classification prompt so the model knows
// what it can ask for, and its Required list is the registry metadata the
// orchestrator validates parameters against before invoking anything.
package tools

// Tool describes a registered capability to the LLM.
type Tool struct {
	// Name is the identifier the classifier must echo back (e.g., "get_weather").
	Name string `json:"name"`
	// Description is a clear, concise explanation of what the tool does.
	// The LLM uses this description to decide when the tool applies.
	Description string `json:"description"`
	// Parameters defines the arguments the tool accepts, structured as a JSON Schema.
	Parameters JSONSchema `json:"parameters"`
}

// JSONSchema provides a structured, type-safe representation of the JSON
// Schema used for defining tool parameters. Using this struct instead of
// `map[string]interface{}` prevents schema typos and makes tool definitions
// much clearer.
type JSONSchema struct {
	// Type defines the data type for a schema node (e.g., "object", "string").
	// For the top-level parameters object, this should always be "object".
	Type string `json:"type"`
	// Description explains what a specific parameter is for.
	Description string `json:"description,omitempty"`
	// Properties describes the parameters of an object, keyed by parameter name.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Required lists the parameter names that are mandatory for an invocation.
	// The orchestrator treats this list as the tool's static parameter contract.
	Required []string `json:"required,omitempty"`
}

// NewTool is a small helper that keeps tool definitions uniform across
// implementations.
func NewTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Parameters:  parameters,
	}
}
