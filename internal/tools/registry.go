// In file: internal/tools/registry.go
package tools

import "sort"

// Registry holds the static mapping from tool name to executor. It is
// populated once at startup and read-only afterwards, which makes
// unsynchronized concurrent reads safe.
type Registry struct {
	tools map[string]ToolExecutor
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds a tool under the name declared in its definition.
func (r *Registry) Register(tool ToolExecutor) {
	r.tools[tool.Definition().Name] = tool
}

// Lookup resolves a tool by name.
func (r *Registry) Lookup(name string) (ToolExecutor, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Names returns the registered tool names in sorted order. Sorting matters:
// the names are embedded into the classification prompt, and the prompt must
// be identical across requests for identical queries.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all registered tool definitions, ordered by name.
func (r *Registry) Definitions() []Tool {
	defs := make([]Tool, 0, len(r.tools))
	for _, name := range r.Names() {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// RequiredParams returns the statically declared required parameter names
// for a tool, or false if the tool is not registered.
func (r *Registry) RequiredParams(name string) ([]string, bool) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return tool.Definition().Parameters.Required, true
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return len(r.tools)
}
