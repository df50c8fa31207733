// Package assistant turns a free-text shopping question into a single
// short answer, using inventory rules first and web/LLM summarization as
// fallback.
package assistant

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// modelAlias maps a canonical model code to the literal spellings seen in
// real user messages. Only exact substring membership counts: unseen
// misspellings are accepted misses, which keeps false positives out.
type modelAlias struct {
	canonical string
	variants  []string
}

// Table order is significant: extractModels reports models in this order,
// and the comparison wording depends on which model lands first.
var modelAliases = []modelAlias{
	{"camry", []string{"camry"}},
	{"corolla", []string{"corolla", "carolla", "corola", "carola"}},
	{"rav4", []string{"rav4", "rav-4", "rav 4"}},
	{"highlander", []string{"highlander"}},
	{"prius", []string{"prius"}},
	{"tacoma", []string{"tacoma"}},
	{"tundra", []string{"tundra"}},
	{"4runner", []string{"4runner", "4 runner", "four runner"}},
	{"sienna", []string{"sienna"}},
	{"sequoia", []string{"sequoia"}},
	{"venza", []string{"venza"}},
	{"c-hr", []string{"c-hr", "chr"}},
	{"avalon", []string{"avalon"}},
	{"supra", []string{"supra", "gr supra"}},
	{"gr86", []string{"gr86", "gr 86", "86"}},
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s, _, _ = transform.String(accentStripper, s)
	return s
}

// extractModels returns the unique canonical models mentioned in the
// text.
func extractModels(text string) []string {
	t := normalizeText(text)
	var found []string
	for _, alias := range modelAliases {
		for _, v := range alias.variants {
			if strings.Contains(t, v) {
				found = append(found, alias.canonical)
				break
			}
		}
	}
	return found
}
