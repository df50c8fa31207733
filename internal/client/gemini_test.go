package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) (*GeminiClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGeminiClient("test-key", "gemini-2.5-flash", zaptest.NewLogger(t))
	c.baseURL = srv.URL
	return c, srv
}

func TestGeminiGenerate(t *testing.T) {
	c, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, 0.3, req.GenerationConfig.Temperature)
		assert.Equal(t, 0.9, req.GenerationConfig.TopP)
		assert.Equal(t, 120, req.GenerationConfig.MaxOutputTokens)
		assert.Len(t, req.SafetySettings, 4)

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{
					Content:      geminiContent{Parts: []geminiPart{{Text: "The Camry is"}, {Text: "a solid choice."}}},
					FinishReason: "STOP",
				},
			},
		})
	})

	text, err := c.Generate(context.Background(), "camry or corolla?")
	require.NoError(t, err)
	assert.Equal(t, "The Camry is a solid choice.", text)
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	c, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{
			PromptFeedback: &geminiPromptFeedback{BlockReason: "SAFETY"},
		})
	})

	text, err := c.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, text, "blocked prompt yields empty text, not an error")
}

func TestGeminiGenerateEmptyParts(t *testing.T) {
	c, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{FinishReason: "MAX_TOKENS"},
				{
					Content:      geminiContent{Parts: []geminiPart{{Text: "second candidate speaks"}}},
					FinishReason: "STOP",
				},
			},
		})
	})

	text, err := c.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "second candidate speaks", text, "extraction falls through to the next candidate")
}

func TestGeminiGenerateHTTPError(t *testing.T) {
	c, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), "anything")
	assert.Error(t, err)
}

func TestGeminiGenerateWithoutKey(t *testing.T) {
	c := NewGeminiClient("", "gemini-2.5-flash", zaptest.NewLogger(t))
	_, err := c.Generate(context.Background(), "anything")
	assert.Error(t, err)
}
