package assistant

import (
	"regexp"
	"strings"
)

// Intent is the inferred purpose of a user message. A message may carry
// several intents; the rule engine applies them in a fixed priority
// order.
type Intent int

const (
	IntentUnclassified Intent = iota
	IntentMostExpensive
	IntentPrice
	IntentEfficiency
	IntentCompare
	IntentTrims
	IntentReliability
)

// Substring-triggered intents live in a table so each predicate can be
// tested and extended without touching the resolver.
var intentNeedles = map[Intent][]string{
	IntentMostExpensive: {"most expensive", "highest price", "top price"},
	IntentPrice:         {"price", "cost", "how much", "starting at", "msrp"},
	IntentTrims:         {"trim", "trims", "grade", "grades", "variant", "variants"},
}

var (
	// Superlative followed by a fuel-economy token, tolerating the common
	// misspellings (effiecent, milage, economic).
	efficiencyPattern = regexp.MustCompile(`(most|best|highest).*(mpg|fuel|effici|effie|mileage|milage|economy|economic)`)

	// Reliability-adjacent stems: reliable, dependability, breakdowns,
	// maintenance, issues, problems.
	reliabilityPattern = regexp.MustCompile(`reliab|dependab|breakdown|mainten|issue|problem`)

	compareNeedles = []string{" vs ", " versus ", " compare "}
)

func containsAny(t string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(t, n) {
			return true
		}
	}
	return false
}

// hasIntent is a pure predicate over the raw message text.
func hasIntent(intent Intent, text string) bool {
	t := strings.ToLower(text)

	switch intent {
	case IntentMostExpensive, IntentPrice, IntentTrims:
		return containsAny(t, intentNeedles[intent])
	case IntentEfficiency:
		t = strings.ReplaceAll(t, "-", " ")
		if strings.Contains(t, "mpg") {
			return true
		}
		return efficiencyPattern.MatchString(t)
	case IntentCompare:
		if containsAny(t, compareNeedles) {
			return true
		}
		return strings.Contains(t, " or ") && len(extractModels(t)) >= 2
	case IntentReliability:
		return reliabilityPattern.MatchString(t)
	}
	return false
}
