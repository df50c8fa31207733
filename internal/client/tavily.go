package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	tavilyAPIBase = "https://api.tavily.com/search"
	searchTimeout = 10 * time.Second
)

// SearchResult is one web hit reduced to what the summarizer needs.
type SearchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// TavilyClient issues restricted-domain web searches. A client without an
// API key is valid and returns no results, which lets the assistant run in
// environments with no search credential.
type TavilyClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *zap.Logger
}

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []SearchResult `json:"results"`
}

func NewTavilyClient(apiKey string, logger *zap.Logger) *TavilyClient {
	return &TavilyClient{
		httpClient: &http.Client{Timeout: searchTimeout},
		apiKey:     apiKey,
		baseURL:    tavilyAPIBase,
		logger:     logger,
	}
}

// Search runs one search. Domains are folded into the query as site:
// operators. Without a credential it returns an empty result set and no
// error.
func (c *TavilyClient) Search(ctx context.Context, query string, domains []string, maxResults int) ([]SearchResult, error) {
	if c.apiKey == "" {
		c.logger.Debug("tavily key not configured, skipping web search")
		return nil, nil
	}

	if len(domains) > 0 {
		var sb strings.Builder
		sb.WriteString(query)
		for _, d := range domains {
			sb.WriteString(" site:")
			sb.WriteString(d)
		}
		query = sb.String()
	}

	reqBody, err := json.Marshal(tavilyRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily API error (status %d): %s", resp.StatusCode, string(body))
	}

	var searchResp tavilyResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(searchResp.Results) > maxResults {
		searchResp.Results = searchResp.Results[:maxResults]
	}

	c.logger.Debug("tavily search completed",
		zap.String("query", query),
		zap.Int("results", len(searchResp.Results)),
	)

	return searchResp.Results, nil
}
