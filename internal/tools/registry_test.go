// In file: internal/tools/registry_test.go
package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPopulatedRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()

	wt, err := NewWeatherTool("test-key", "http://127.0.0.1:1", time.Second)
	require.NoError(t, err)
	registry.Register(wt)
	registry.Register(NewCalculatorTool())
	return registry
}

func TestRegistryLookup(t *testing.T) {
	registry := newPopulatedRegistry(t)

	tool, ok := registry.Lookup("get_weather")
	require.True(t, ok)
	assert.Equal(t, "get_weather", tool.Definition().Name)

	_, ok = registry.Lookup("teleport")
	assert.False(t, ok)
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := newPopulatedRegistry(t)
	assert.Equal(t, []string{"calculate", "get_weather"}, registry.Names())
	assert.Equal(t, 2, registry.Count())
}

func TestRegistryDefinitionsOrderedByName(t *testing.T) {
	defs := newPopulatedRegistry(t).Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "calculate", defs[0].Name)
	assert.Equal(t, "get_weather", defs[1].Name)
}

func TestRegistryRequiredParams(t *testing.T) {
	registry := newPopulatedRegistry(t)

	required, ok := registry.RequiredParams("get_weather")
	require.True(t, ok)
	assert.Equal(t, []string{"location"}, required)

	required, ok = registry.RequiredParams("calculate")
	require.True(t, ok)
	assert.Equal(t, []string{"operand1", "operator", "operand2"}, required)

	_, ok = registry.RequiredParams("teleport")
	assert.False(t, ok)
}

func TestCalculatorToolExecute(t *testing.T) {
	calc := NewCalculatorTool()
	ctx := context.Background()

	tests := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{"addition", map[string]string{"operand1": "2", "operator": "+", "operand2": "3"}, "The result is 5."},
		{"subtraction", map[string]string{"operand1": "10", "operator": "-", "operand2": "4.5"}, "The result is 5.5."},
		{"multiplication", map[string]string{"operand1": "6", "operator": "*", "operand2": "7"}, "The result is 42."},
		{"division", map[string]string{"operand1": "9", "operator": "/", "operand2": "2"}, "The result is 4.5."},
		{"division by zero", map[string]string{"operand1": "1", "operator": "/", "operand2": "0"}, "Error: Division by zero is not allowed."},
		{"unsupported operator", map[string]string{"operand1": "1", "operator": "%", "operand2": "2"}, "Error: Unsupported operator '%'. Please use +, -, *, or /."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Execute(ctx, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestCalculatorToolRejectsNonNumericOperands(t *testing.T) {
	calc := NewCalculatorTool()
	_, err := calc.Execute(context.Background(), map[string]string{"operand1": "two", "operator": "+", "operand2": "3"})
	assert.Error(t, err)

	_, err = calc.Execute(context.Background(), map[string]string{"operand1": "2", "operator": "+", "operand2": ""})
	assert.Error(t, err)
}
