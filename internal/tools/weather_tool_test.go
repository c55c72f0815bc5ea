// In file: internal/tools/weather_tool_test.go
package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWeatherTool(t *testing.T, baseURL string, timeout time.Duration) *WeatherTool {
	t.Helper()
	wt, err := NewWeatherTool("test-key", baseURL, timeout)
	require.NoError(t, err)
	return wt
}

func TestWeatherToolRequiresAPIKey(t *testing.T) {
	_, err := NewWeatherTool("", "", 0)
	assert.Error(t, err)
}

func TestWeatherToolSuccess(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cod": 200,
			"name": "London",
			"main": {"temp": 15.5, "feels_like": 14.2, "humidity": 72},
			"weather": [{"description": "scattered clouds"}]
		}`))
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 0)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "London"})
	require.NoError(t, err)

	assert.Equal(t,
		"The weather in London is currently scattered clouds with a temperature of 15.5°C (feels like 14.2°C) and humidity of 72%.",
		result,
	)
	// Each formatted field appears verbatim.
	assert.Contains(t, result, "London")
	assert.Contains(t, result, "scattered clouds")
	assert.Contains(t, result, "15.5")
	assert.Contains(t, result, "72%")

	assert.Equal(t, map[string]string{"q": "London", "appid": "test-key", "units": "metric"}, gotQuery)
}

func TestWeatherToolCityNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 0)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "Atlantis"})
	require.NoError(t, err)
	assert.Equal(t, "Error: Sorry, I couldn't find weather data for the city 'Atlantis'. Please check the spelling.", result)
}

func TestWeatherToolAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 0)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "London"})
	require.NoError(t, err)
	assert.Equal(t, "Error: Could not retrieve weather data. API reported: Invalid API key", result)
}

func TestWeatherToolTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 50*time.Millisecond)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "London"})
	require.NoError(t, err)
	assert.Equal(t, weatherMsgTimeout, result)

	// The timeout sentence must stay distinguishable from a connection failure.
	assert.NotEqual(t, weatherMsgConnection, result)
}

func TestWeatherToolConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // nothing is listening anymore

	wt := newTestWeatherTool(t, url, 0)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "London"})
	require.NoError(t, err)
	assert.Equal(t, weatherMsgConnection, result)
}

func TestWeatherToolUpstreamServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 0)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "London"})
	require.NoError(t, err)
	assert.Equal(t, weatherMsgConnection, result)
}

func TestWeatherToolMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 0)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "London"})
	require.NoError(t, err)
	assert.Equal(t, weatherMsgBadFormat, result)
}

func TestWeatherToolEmptyLocation(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 0)

	for _, params := range []map[string]string{
		{"location": ""},
		{"location": "   "},
		{},
	} {
		result, err := wt.Execute(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, weatherMsgEmptyLocation, result)
	}
	assert.False(t, called, "empty location must not hit the upstream")
}

func TestWeatherToolCityNameFallsBackToQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cod": 200, "main": {"temp": 1, "feels_like": 1, "humidity": 1}, "weather": []}`))
	}))
	defer server.Close()

	wt := newTestWeatherTool(t, server.URL, 0)
	result, err := wt.Execute(context.Background(), map[string]string{"location": "Smalltown"})
	require.NoError(t, err)
	assert.Contains(t, result, "The weather in Smalltown is currently N/A")
}
