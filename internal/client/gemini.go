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
	geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"
	llmTimeout    = 30 * time.Second

	// Brevity settings: the assistant answers in one short paragraph, so
	// anything past ~70 words is wasted tokens.
	llmTemperature     = 0.3
	llmTopP            = 0.9
	llmMaxOutputTokens = 120
)

// Car-shopping prompts are benign; blocking none reduces empty responses.
var geminiSafetySettings = []geminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
}

// GeminiClient calls the generateContent endpoint of the Gemini API.
type GeminiClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	logger     *zap.Logger
}

type geminiRequest struct {
	Contents         []geminiContent       `json:"contents"`
	GenerationConfig geminiGenConfig       `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting `json:"safetySettings"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback"`
	Error          *geminiError          `json:"error"`
}

type geminiCandidate struct {
	Content       geminiContent `json:"content"`
	FinishReason  string        `json:"finishReason"`
	FinishMessage string        `json:"finishMessage"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func NewGeminiClient(apiKey, model string, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{Timeout: llmTimeout},
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiAPIBase,
		logger:     logger,
	}
}

// Generate sends the prompt and returns the extracted plain text. An empty
// string with a nil error means the model answered but produced nothing
// extractable (blocked candidate, empty parts); callers treat that as a
// soft failure, not an error.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	reqBody, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     llmTemperature,
			TopP:            llmTopP,
			MaxOutputTokens: llmMaxOutputTokens,
		},
		SafetySettings: geminiSafetySettings,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if genResp.Error != nil {
		return "", fmt.Errorf("gemini API error: %s", genResp.Error.Message)
	}

	return c.extractText(&genResp), nil
}

// extractText walks the candidates instead of trusting a single text
// field: the model sometimes returns candidates whose parts are empty or
// split, and a blocked prompt returns feedback with no candidates at all.
func (c *GeminiClient) extractText(resp *geminiResponse) string {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		c.logger.Warn("gemini prompt blocked",
			zap.String("block_reason", resp.PromptFeedback.BlockReason),
		)
	}

	if len(resp.Candidates) == 0 {
		c.logger.Warn("gemini returned no candidates")
		return ""
	}

	for i, cand := range resp.Candidates {
		c.logger.Debug("gemini candidate",
			zap.Int("index", i),
			zap.String("finish_reason", cand.FinishReason),
			zap.String("finish_message", cand.FinishMessage),
		)

		var chunks []string
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				chunks = append(chunks, part.Text)
			}
		}
		if len(chunks) > 0 {
			return strings.TrimSpace(strings.Join(chunks, " "))
		}
	}

	return ""
}
