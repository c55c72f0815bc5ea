// In file: internal/tools/weather_tool.go
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// --- Weather Tool Implementation ---

const (
	defaultWeatherBaseURL = "http://api.openweathermap.org/data/2.5/weather"
	defaultWeatherTimeout = 10 * time.Second
)

// The four distinguishable failure sentences the tool can return. Each is a
// complete explanation the response generator can relay to the user; the
// timeout message is deliberately distinct from the connection one.
const (
	weatherMsgEmptyLocation = "Error: Please specify a location for the weather."
	weatherMsgTimeout       = "Error: The weather service took too long to respond. Please try again later."
	weatherMsgConnection    = "Error: Could not connect to the weather service. Please check your connection or try again later."
	weatherMsgBadFormat     = "Error: Received an unexpected response format from the weather service."
)

// WeatherTool fetches current weather data from the OpenWeatherMap API.
// It holds its own configured HTTP client so a hung upstream cannot hold a
// request open indefinitely.
type WeatherTool struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Statically verify that WeatherTool implements the ToolExecutor interface.
var _ ToolExecutor = (*WeatherTool)(nil)

// NewWeatherTool creates a new WeatherTool. baseURL and timeout exist so
// tests can point the tool at a local stub; pass "" and 0 for the production
// defaults.
func NewWeatherTool(apiKey, baseURL string, timeout time.Duration) (*WeatherTool, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenWeatherMap API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	if timeout <= 0 {
		timeout = defaultWeatherTimeout
	}
	return &WeatherTool{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Definition describes the tool to the LLM. The Required list doubles as the
// parameter contract the orchestrator validates before calling Execute.
func (wt *WeatherTool) Definition() Tool {
	return NewTool(
		"get_weather",
		"Fetches the current weather conditions for a specified city.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location": {
					Type:        "string",
					Description: "The city to look up, e.g., 'London' or 'Kharagpur, India'.",
				},
			},
			Required: []string{"location"},
		},
	)
}

// weatherResponse mirrors the subset of the OpenWeatherMap payload we use.
// Cod is kept raw because the API reports it as a number on success (200)
// but as a string on errors ("404").
type weatherResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Name    string          `json:"name"`
	Message string          `json:"message"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Execute calls the OpenWeatherMap API and formats the result as a single
// sentence. Every anticipated failure (empty location, unknown city, API
// error, timeout, connection failure, malformed payload) comes back as a
// human-readable error sentence with a nil Go error, per the tool contract.
func (wt *WeatherTool) Execute(ctx context.Context, params map[string]string) (string, error) {
	location := strings.TrimSpace(params["location"])
	if location == "" {
		return weatherMsgEmptyLocation, nil
	}

	query := url.Values{}
	query.Set("appid", wt.apiKey)
	query.Set("q", location)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wt.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create weather API request: %w", err)
	}
	req.Header.Set("User-Agent", "TaskMaster-Agent/1.0")

	resp, err := wt.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return weatherMsgTimeout, nil
		}
		return weatherMsgConnection, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return weatherMsgConnection, nil
	}

	var data weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return weatherMsgBadFormat, nil
	}

	switch code := statusCode(data.Cod); code {
	case http.StatusOK:
		description := "N/A"
		if len(data.Weather) > 0 {
			description = data.Weather[0].Description
		}
		// Use the city name from the response for confirmation; fall back to
		// the queried location if the API omitted it.
		cityName := data.Name
		if cityName == "" {
			cityName = location
		}
		return fmt.Sprintf(
			"The weather in %s is currently %s with a temperature of %g°C (feels like %g°C) and humidity of %d%%.",
			cityName, description, data.Main.Temp, data.Main.FeelsLike, data.Main.Humidity,
		), nil
	case http.StatusNotFound:
		return fmt.Sprintf("Error: Sorry, I couldn't find weather data for the city '%s'. Please check the spelling.", location), nil
	default:
		message := data.Message
		if message == "" {
			message = "Unknown API error"
		}
		return fmt.Sprintf("Error: Could not retrieve weather data. API reported: %s", message), nil
	}
}

// statusCode normalizes OpenWeatherMap's "cod" field, which arrives either
// as a JSON number or a quoted string. Returns 0 when unparseable.
func statusCode(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return code
}

// isTimeout reports whether an HTTP client error was caused by a deadline
// rather than a refused or broken connection.
func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
