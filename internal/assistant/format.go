package assistant

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

func formatMoney(v float64) string {
	return moneyPrinter.Sprintf("$%d", int64(math.Round(v)))
}

// formatMoneyRange renders "$26,420–$36,015", collapsing to a single
// value when the bounds are equal within a negligible epsilon.
func formatMoneyRange(lo, hi float64) string {
	if math.Abs(hi-lo) < 1e-6 {
		return formatMoney(lo)
	}
	return formatMoney(lo) + "–" + formatMoney(hi)
}

// displayName renders a canonical model code for output. gr86 is a
// letter-number badge; every other code reads as a capitalized word.
func displayName(code string) string {
	if code == "gr86" {
		return "GR86"
	}
	if code == "" {
		return ""
	}
	return strings.ToUpper(code[:1]) + code[1:]
}

// cleanParagraph folds the text into one plain paragraph: whitespace
// collapsed, stray table pipes stripped, hard-capped at wordCap words
// with a trailing ellipsis when truncated.
func cleanParagraph(text string, wordCap int) string {
	words := strings.Fields(strings.ReplaceAll(text, "|", " "))
	if len(words) > wordCap {
		return strings.Join(words[:wordCap], " ") + "…"
	}
	return strings.Join(words, " ")
}
