// In file: internal/agent/prompts.go
package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dileep-u-k/taskmaster-agent/internal/tools"
)

// The prompt builders in this file are pure functions of their inputs, which
// is what makes whole-pipeline runs reproducible against a stubbed LLM:
// identical query in, byte-identical prompts out.

const intentPromptTemplate = `Analyze the user's query and determine the primary intent.
Based on the intent, decide if one of the available tools should be used.

Available tools:
%s

User Query: "%s"

Respond in JSON format with the following keys:
- "tool_name": The name of the tool to use (from the available list) or "none" if no tool is needed or the intent is unclear.
- "parameters": An object containing the necessary parameters for the tool (e.g., {"location": "City Name"} for get_weather). All parameter values must be strings. If no tool is needed, this should be an empty object {}.

Example 1:
User Query: "What's the weather like in London?"
Response: {"tool_name": "get_weather", "parameters": {"location": "London"}}

Example 2:
User Query: "Tell me a joke."
Response: {"tool_name": "none", "parameters": {}}

Example 3:
User Query: "What is the capital of France?"
Response: {"tool_name": "none", "parameters": {}}

Example 4:
User Query: "How's the weather?"
Response: {"tool_name": "get_weather", "parameters": {}}`

// buildIntentPrompt renders the classification prompt from the registry's
// tool catalog and the raw user query. The catalog comes out of
// Registry.Definitions, which is sorted by name.
func buildIntentPrompt(defs []tools.Tool, query string) string {
	var catalog strings.Builder
	for _, def := range defs {
		catalog.WriteString(fmt.Sprintf("- %s: %s", def.Name, def.Description))
		if len(def.Parameters.Required) > 0 {
			catalog.WriteString(fmt.Sprintf(" (required parameters: %s)", strings.Join(def.Parameters.Required, ", ")))
		}
		catalog.WriteString("\n")
	}
	return fmt.Sprintf(intentPromptTemplate, strings.TrimRight(catalog.String(), "\n"), query)
}

const toolResultPromptTemplate = `User Query: "%s"
You decided to use the tool: '%s' with parameters: %s
The result from the tool is: "%s"

Based ONLY on the user query and the tool result, generate a concise and helpful natural language response for the user.
- If the tool executed successfully, incorporate its result smoothly into your answer.
- If the tool returned an error (e.g., city not found, missing parameters, API failure), explain the error clearly and politely to the user. Do not make up information if there was an error.`

// buildToolResultPrompt is used whenever the tool stage produced a result,
// whether success text or an error explanation.
func buildToolResultPrompt(query, toolName string, params map[string]string, toolResult string) string {
	rendered, err := json.Marshal(params)
	if err != nil {
		rendered = []byte("{}")
	}
	return fmt.Sprintf(toolResultPromptTemplate, query, toolName, rendered, toolResult)
}

const missingParamsPromptTemplate = `User Query: "%s"
You identified that the intent requires the '%s' tool, but the necessary parameters (%s) were missing from the query.
Politely ask the user to provide the missing information. For example, if they asked for weather without a city, ask them for the city name.`

// buildMissingParamsPrompt asks the user for the specific parameters the
// classifier could not extract. It depends only on the resolved tool's own
// metadata, never on the unknown-tool path.
func buildMissingParamsPrompt(query, toolName string, missing []string) string {
	return fmt.Sprintf(missingParamsPromptTemplate, query, toolName, strings.Join(missing, ", "))
}

const noToolPromptTemplate = `User Query: "%s"
No specific tool was needed or could be confidently identified to answer this query.
Respond directly and conversationally to the user based on their query. If it's general knowledge you might know, answer it. If not, state that you cannot perform that specific task or ask for clarification.`

// buildNoToolPrompt handles both genuinely tool-free queries and degraded
// classification failures.
func buildNoToolPrompt(query string) string {
	return fmt.Sprintf(noToolPromptTemplate, query)
}
