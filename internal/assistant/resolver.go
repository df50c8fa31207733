package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"toyota-finder-api/internal/client"
	"toyota-finder-api/internal/model"
)

// SearchClient retrieves web evidence. An empty result with a nil error
// means no evidence (missing credential included); an error means the
// transport failed.
type SearchClient interface {
	Search(ctx context.Context, query string, domains []string, maxResults int) ([]client.SearchResult, error)
}

// Generator produces a style-constrained summary for a prompt. Empty
// text with a nil error means the model produced nothing extractable.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	wordCapRules = 65
	wordCapLLM   = 70

	maxSearchResults = 5
	maxEvidenceItems = 4
	maxTitleLen      = 120
	maxSnippetLen    = 400

	staticFallback = "I can pull Toyota info from our inventory and trusted sources. What model or detail should I focus on?"
)

const styleGuide = `You are a Toyota shopping assistant. Answer in ONE short paragraph (≤70 words).
No tables, no lists, no headings, no code, no emojis, no fluff.
Use inventory price/MPG when available; otherwise omit numbers.
Briefly state the tradeoff (who should pick which). Output plain text only.`

// trustedDomains restricts web evidence to manufacturer, government and
// established review sources.
var trustedDomains = []string{
	"www.toyota.com", "pressroom.toyota.com", "www.fueleconomy.gov",
	"www.consumerreports.org", "www.jdpower.com",
	"www.edmunds.com", "www.kbb.com", "repairpal.com", "www.carcomplaints.com",
}

type stageOutcome int

const (
	stageSuccess stageOutcome = iota
	stageNoEvidence
	stageExtractionFailed
	stageTransportError
)

func (o stageOutcome) String() string {
	switch o {
	case stageSuccess:
		return "success"
	case stageNoEvidence:
		return "no_evidence"
	case stageExtractionFailed:
		return "extraction_failed"
	case stageTransportError:
		return "transport_error"
	}
	return "unknown"
}

type stageResult struct {
	text    string
	outcome stageOutcome
}

// Resolver sequences the answer strategies for one chat message. All
// collaborators are constructed at startup and read-only afterwards.
type Resolver struct {
	rules   *ruleEngine
	store   InventoryStore
	search  SearchClient
	llm     Generator
	domains []string
	logger  *zap.Logger
}

func NewResolver(store InventoryStore, search SearchClient, llm Generator, logger *zap.Logger) *Resolver {
	return &Resolver{
		rules:   newRuleEngine(store, logger),
		store:   store,
		search:  search,
		llm:     llm,
		domains: trustedDomains,
		logger:  logger,
	}
}

// Respond always returns non-empty text. The stages run strictly in
// order, each at most once, and any failure falls forward to the next
// stage; the static sentence at the end cannot fail.
func (r *Resolver) Respond(ctx context.Context, message string) string {
	if text, ok := r.rules.answer(ctx, message); ok {
		return cleanParagraph(text, wordCapRules)
	}

	if hasIntent(IntentReliability, message) {
		query := "Toyota reliability owner reports 2024 2025"
		if models := extractModels(message); len(models) > 0 {
			query = fmt.Sprintf("Toyota %s reliability owner reports 2024 2025", models[0])
		}
		res := r.summarizeWeb(ctx, query, message)
		if res.outcome == stageSuccess {
			return res.text
		}
		r.logger.Debug("reliability web stage fell through", zap.Stringer("outcome", res.outcome))
	}

	res := r.summarizeWeb(ctx, message, message)
	if res.outcome == stageSuccess {
		return res.text
	}
	r.logger.Debug("general web stage fell through", zap.Stringer("outcome", res.outcome))

	res = r.summarizeInventory(ctx, message)
	if res.outcome == stageSuccess {
		return res.text
	}
	r.logger.Debug("inventory LLM stage fell through", zap.Stringer("outcome", res.outcome))

	return staticFallback
}

// summarizeWeb searches the trusted domains for the query and summarizes
// the evidence against the original message.
func (r *Resolver) summarizeWeb(ctx context.Context, query, message string) stageResult {
	results, err := r.search.Search(ctx, query, r.domains, maxSearchResults)
	if err != nil {
		r.logger.Warn("web search failed", zap.String("query", query), zap.Error(err))
		return stageResult{outcome: stageTransportError}
	}
	if len(results) == 0 {
		return stageResult{outcome: stageNoEvidence}
	}

	prompt := fmt.Sprintf(`%s

Use ONLY this web context to answer (if insufficient, say so briefly):
%s

USER:
%s

Return exactly one concise paragraph (plain text, ≤70 words). No lists. No tables.
`, styleGuide, buildEvidenceBlock(results), message)

	return r.summarize(ctx, prompt)
}

// summarizeInventory is the last model-backed stage: the full inventory
// snapshot as context, no web evidence.
func (r *Resolver) summarizeInventory(ctx context.Context, message string) stageResult {
	vehicles, err := r.store.All(ctx)
	if err != nil {
		r.logger.Warn("inventory snapshot failed", zap.Error(err))
		return stageResult{outcome: stageTransportError}
	}

	prompt := fmt.Sprintf(`%s

INVENTORY:
%s

USER:
%s

Return exactly one concise paragraph (plain text, ≤70 words). No lists. No tables.
`, styleGuide, inventoryContext(vehicles), message)

	return r.summarize(ctx, prompt)
}

func (r *Resolver) summarize(ctx context.Context, prompt string) stageResult {
	text, err := r.llm.Generate(ctx, prompt)
	if err != nil {
		r.logger.Warn("summarization failed", zap.Error(err))
		return stageResult{outcome: stageTransportError}
	}
	if strings.TrimSpace(text) == "" {
		r.logger.Warn("summarization returned no extractable text")
		return stageResult{outcome: stageExtractionFailed}
	}
	return stageResult{text: cleanParagraph(text, wordCapLLM), outcome: stageSuccess}
}

// clip truncates to max runes, never splitting a multi-byte character.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// buildEvidenceBlock reduces search hits to a bounded textual digest:
// at most maxEvidenceItems entries, titles and snippets length-clipped,
// snippets flattened to one line.
func buildEvidenceBlock(results []client.SearchResult) string {
	if len(results) > maxEvidenceItems {
		results = results[:maxEvidenceItems]
	}
	lines := make([]string, 0, len(results))
	for _, item := range results {
		title := clip(item.Title, maxTitleLen)
		snippet := strings.ReplaceAll(clip(item.Content, maxSnippetLen), "\n", " ")
		lines = append(lines, fmt.Sprintf("- %s\n  %s\n  Source: %s", title, snippet, item.URL))
	}
	return strings.Join(lines, "\n")
}

func inventoryContext(vehicles []model.Vehicle) string {
	var sb strings.Builder
	sb.WriteString("Currently available vehicles:\n")
	if len(vehicles) == 0 {
		sb.WriteString("(none)")
	}
	for i, v := range vehicles {
		if i > 0 {
			sb.WriteByte('\n')
		}
		mpg := "n/a"
		if v.MPGCombined != nil {
			mpg = strconv.Itoa(*v.MPGCombined)
		}
		sb.WriteString(fmt.Sprintf("- %d %s %s: %s (MPG: %s)", v.Year, v.Model, v.Trim, formatMoney(v.Price), mpg))
	}
	sb.WriteString("\n\nBe concise and neutral.")
	return sb.String()
}
