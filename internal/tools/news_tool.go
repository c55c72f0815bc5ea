// In file: internal/tools/news_tool.go
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// --- News Tool Implementation ---

const newsAPIURL = "https://newsapi.org/v2/top-headlines"

// NewsTool fetches the latest news headlines. It is only registered when a
// NewsAPI key is configured, which exercises the registry's conditional
// wiring: the orchestrator neither knows nor cares whether it exists.
// A free API key is available from https://newsapi.org
type NewsTool struct {
	apiKey     string
	httpClient *http.Client
}

// Statically verify that NewsTool implements the ToolExecutor interface.
var _ ToolExecutor = (*NewsTool)(nil)

// NewNewsTool creates a new instance of the NewsTool.
func NewNewsTool(apiKey string) (*NewsTool, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("NewsAPI key cannot be empty")
	}
	return &NewsTool{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Definition describes the tool to the LLM. All three parameters are
// optional, so the Required list is empty and the orchestrator will invoke
// the tool with whatever subset the classifier extracted.
func (nt *NewsTool) Definition() Tool {
	return NewTool(
		"get_news_headlines",
		"Fetches the latest news headlines about a specific topic, category, or from a particular country.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"query": {
					Type:        "string",
					Description: "The topic or keyword to search for in the news, e.g., 'artificial intelligence'.",
				},
				"category": {
					Type:        "string",
					Description: "The category of news. Must be one of: business, entertainment, general, health, science, sports, technology.",
				},
				"country": {
					Type:        "string",
					Description: "The 2-letter ISO 3166-1 code of the country to get headlines from, e.g., 'us', 'in', or 'gb'.",
				},
			},
			Required: []string{},
		},
	)
}

// Execute builds a request to the NewsAPI, parses the response, and formats
// it into a clean summary for the response generator.
func (nt *NewsTool) Execute(ctx context.Context, params map[string]string) (string, error) {
	query := url.Values{}
	if v := params["query"]; v != "" {
		query.Set("q", v)
	}
	if v := params["category"]; v != "" {
		query.Set("category", v)
	}
	if v := params["country"]; v != "" {
		query.Set("country", v)
	}
	// Keep the summary concise for the response prompt.
	query.Set("pageSize", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, newsAPIURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create news API request: %w", err)
	}
	req.Header.Set("X-Api-Key", nt.apiKey)
	req.Header.Set("User-Agent", "TaskMaster-Agent/1.0")

	resp, err := nt.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "Error: The news service took too long to respond. Please try again later.", nil
		}
		return "Error: Could not connect to the news service. Please try again later.", nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error: The news service returned status %d. Please check the parameters.", resp.StatusCode), nil
	}

	var apiResp struct {
		Status       string `json:"status"`
		TotalResults int    `json:"totalResults"`
		Articles     []struct {
			Title  string `json:"title"`
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "Error: Received an unexpected response format from the news service.", nil
	}

	if apiResp.TotalResults == 0 {
		return "No news articles found for the given criteria.", nil
	}

	var resultBuilder strings.Builder
	resultBuilder.WriteString(fmt.Sprintf("Here are the top %d headlines:\n", len(apiResp.Articles)))
	for i, article := range apiResp.Articles {
		resultBuilder.WriteString(fmt.Sprintf("%d. %s (Source: %s)\n", i+1, article.Title, article.Source.Name))
	}
	return resultBuilder.String(), nil
}
