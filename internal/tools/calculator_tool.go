// In file: internal/tools/calculator_tool.go
package tools

import (
	"context"
	"fmt"
	"strconv"
)

// --- Calculator Tool Implementation ---

// CalculatorTool performs basic arithmetic. It exists mostly to prove the
// registry is open for extension: the orchestrator picked it up the moment
// it was registered, with no control-flow changes.
type CalculatorTool struct{}

// Statically verify that CalculatorTool implements the ToolExecutor interface.
var _ ToolExecutor = (*CalculatorTool)(nil)

// NewCalculatorTool creates a new instance of the CalculatorTool. Even though
// this tool has no dependencies, a constructor keeps the creation pattern
// consistent across all tools.
func NewCalculatorTool() *CalculatorTool {
	return &CalculatorTool{}
}

// Definition describes the tool to the LLM. Asking for structured operands
// instead of a single "expression" string eliminates fragile string parsing
// on our side.
func (ct *CalculatorTool) Definition() Tool {
	return NewTool(
		"calculate",
		"Performs a basic arithmetic calculation (add, subtract, multiply, divide).",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"operand1": {
					Type:        "string",
					Description: "The first number in the calculation.",
				},
				"operator": {
					Type:        "string",
					Description: "The operator to use. Must be one of '+', '-', '*', '/'.",
				},
				"operand2": {
					Type:        "string",
					Description: "The second number in the calculation.",
				},
			},
			Required: []string{"operand1", "operator", "operand2"},
		},
	)
}

// Execute performs the requested calculation. User-facing problems (division
// by zero, an unsupported operator) come back as error sentences; operands
// that do not parse as numbers are an unexpected failure and return a Go
// error for the orchestrator to downgrade.
func (ct *CalculatorTool) Execute(ctx context.Context, params map[string]string) (string, error) {
	operand1, err := strconv.ParseFloat(params["operand1"], 64)
	if err != nil {
		return "", fmt.Errorf("invalid operand1 for calculator: %w", err)
	}
	operand2, err := strconv.ParseFloat(params["operand2"], 64)
	if err != nil {
		return "", fmt.Errorf("invalid operand2 for calculator: %w", err)
	}

	var result float64
	switch params["operator"] {
	case "+":
		result = operand1 + operand2
	case "-":
		result = operand1 - operand2
	case "*":
		result = operand1 * operand2
	case "/":
		if operand2 == 0 {
			return "Error: Division by zero is not allowed.", nil
		}
		result = operand1 / operand2
	default:
		return fmt.Sprintf("Error: Unsupported operator '%s'. Please use +, -, *, or /.", params["operator"]), nil
	}

	// %g avoids trailing zeros (e.g., "10" rather than "10.000000").
	return fmt.Sprintf("The result is %g.", result), nil
}
