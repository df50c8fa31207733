package assistant

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"toyota-finder-api/internal/client"
)

type fakeSearch struct {
	queries []string
	results []client.SearchResult
	err     error
}

func (f *fakeSearch) Search(ctx context.Context, query string, domains []string, maxResults int) ([]client.SearchResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeLLM struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func evidence() []client.SearchResult {
	return []client.SearchResult{
		{Title: "2024 Prius Review", URL: "https://www.edmunds.com/prius", Content: "Strong reliability record.\nFew reported issues."},
	}
}

func TestRespondRulesShortCircuit(t *testing.T) {
	search := &fakeSearch{}
	llm := &fakeLLM{reply: "should not be used"}
	r := NewResolver(&fakeStore{vehicles: stockInventory()}, search, llm, zaptest.NewLogger(t))

	text := r.Respond(context.Background(), "camry price?")

	assert.Contains(t, text, "Camry pricing in our inventory")
	assert.Empty(t, search.queries, "deterministic answer must not reach the web")
	assert.Empty(t, llm.prompts)
}

func TestRespondReliabilityQueryFirst(t *testing.T) {
	search := &fakeSearch{results: evidence()}
	llm := &fakeLLM{reply: "The Prius has a strong reliability record with few reported issues."}
	r := NewResolver(&fakeStore{vehicles: stockInventory()}, search, llm, zaptest.NewLogger(t))

	text := r.Respond(context.Background(), "is the prius reliable?")

	assert.Equal(t, llm.reply, text)
	require.Len(t, search.queries, 1, "general web stage must not run after a reliability hit")
	assert.Equal(t, "Toyota prius reliability owner reports 2024 2025", search.queries[0])
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Use ONLY this web context")
	assert.Contains(t, llm.prompts[0], "Source: https://www.edmunds.com/prius")
	assert.Contains(t, llm.prompts[0], "is the prius reliable?")
}

func TestRespondReliabilityWithoutModel(t *testing.T) {
	search := &fakeSearch{results: evidence()}
	llm := &fakeLLM{reply: "Toyotas are generally dependable."}
	r := NewResolver(&fakeStore{}, search, llm, zaptest.NewLogger(t))

	r.Respond(context.Background(), "any common maintenance problems?")

	require.NotEmpty(t, search.queries)
	assert.Equal(t, "Toyota reliability owner reports 2024 2025", search.queries[0])
}

func TestRespondReliabilityFallsToGeneralWeb(t *testing.T) {
	// No evidence for the reliability query; the general stage retries
	// with the raw message before giving up on the web.
	search := &fakeSearch{}
	llm := &fakeLLM{reply: "no evidence path"}
	r := NewResolver(&fakeStore{vehicles: stockInventory()}, search, llm, zaptest.NewLogger(t))

	r.Respond(context.Background(), "is the prius reliable?")

	require.Len(t, search.queries, 2)
	assert.Equal(t, "Toyota prius reliability owner reports 2024 2025", search.queries[0])
	assert.Equal(t, "is the prius reliable?", search.queries[1])
}

func TestRespondInventoryLLMStage(t *testing.T) {
	search := &fakeSearch{} // no web evidence
	llm := &fakeLLM{reply: "The Corolla is the value pick; the Tundra suits towing."}
	r := NewResolver(&fakeStore{vehicles: stockInventory()}, search, llm, zaptest.NewLogger(t))

	text := r.Respond(context.Background(), "which should I buy for commuting?")

	assert.Equal(t, llm.reply, text)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "INVENTORY:")
	assert.Contains(t, llm.prompts[0], "- 2024 Corolla LE: $23,145 (MPG: 35)")
	assert.Contains(t, llm.prompts[0], "which should I buy for commuting?")
}

func TestRespondStaticFallbackWhenEverythingFails(t *testing.T) {
	search := &fakeSearch{err: assert.AnError}
	llm := &fakeLLM{err: assert.AnError}
	r := NewResolver(&fakeStore{vehicles: stockInventory()}, search, llm, zaptest.NewLogger(t))

	text := r.Respond(context.Background(), "tell me about dealerships near me")

	assert.Equal(t, staticFallback, text)
}

func TestRespondStaticFallbackOnEmptyExtraction(t *testing.T) {
	// A blocked or empty model response is a soft failure, never an
	// empty answer to the caller.
	search := &fakeSearch{results: evidence()}
	llm := &fakeLLM{reply: "   "}
	r := NewResolver(&fakeStore{}, search, llm, zaptest.NewLogger(t))

	text := r.Respond(context.Background(), "tell me about dealerships near me")

	assert.Equal(t, staticFallback, text)
}

func TestRespondStaticFallbackOnInventoryError(t *testing.T) {
	search := &fakeSearch{}
	llm := &fakeLLM{reply: "unused"}
	r := NewResolver(&fakeStore{err: assert.AnError}, search, llm, zaptest.NewLogger(t))

	text := r.Respond(context.Background(), "tell me about dealerships near me")

	assert.Equal(t, staticFallback, text)
}

func TestRespondCapsLLMOutput(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 100))
	search := &fakeSearch{results: evidence()}
	llm := &fakeLLM{reply: long}
	r := NewResolver(&fakeStore{}, search, llm, zaptest.NewLogger(t))

	text := r.Respond(context.Background(), "tell me about dealerships near me")

	assert.Len(t, strings.Fields(text), 70)
	assert.True(t, strings.HasSuffix(text, "…"))
}

func TestBuildEvidenceBlockBounds(t *testing.T) {
	var results []client.SearchResult
	for i := 0; i < 6; i++ {
		results = append(results, client.SearchResult{
			Title:   strings.Repeat("t", 150),
			URL:     "https://www.kbb.com/x",
			Content: strings.Repeat("c", 500) + "\ntail",
		})
	}

	block := buildEvidenceBlock(results)

	assert.Equal(t, 4, strings.Count(block, "Source:"))
	assert.NotContains(t, block, strings.Repeat("t", 121))
	assert.NotContains(t, block, strings.Repeat("c", 401))
}

func TestBuildEvidenceBlockKeepsRuneBoundaries(t *testing.T) {
	// Multi-byte titles and snippets must clip on character boundaries,
	// not bytes, or the evidence block carries invalid UTF-8.
	results := []client.SearchResult{{
		Title:   strings.Repeat("é", 130),
		URL:     "https://www.kbb.com/x",
		Content: strings.Repeat("ü", 410),
	}}

	block := buildEvidenceBlock(results)

	assert.True(t, utf8.ValidString(block))
	assert.Contains(t, block, strings.Repeat("é", 120))
	assert.NotContains(t, block, strings.Repeat("é", 121))
	assert.Contains(t, block, strings.Repeat("ü", 400))
	assert.NotContains(t, block, strings.Repeat("ü", 401))
}

func TestInventoryContextEmpty(t *testing.T) {
	got := inventoryContext(nil)
	assert.Equal(t, "Currently available vehicles:\n(none)\n\nBe concise and neutral.", got)
}
