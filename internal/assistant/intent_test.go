package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasIntent(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		text   string
		want   bool
	}{
		{"most expensive phrase", IntentMostExpensive, "what's the MOST EXPENSIVE toyota?", true},
		{"highest price phrase", IntentMostExpensive, "highest price in stock", true},
		{"not most expensive", IntentMostExpensive, "cheap cars please", false},

		{"price keyword", IntentPrice, "camry price?", true},
		{"how much", IntentPrice, "How much is the prius", true},
		{"msrp", IntentPrice, "corolla MSRP", true},
		{"no price keyword", IntentPrice, "tell me about the camry", false},

		{"mpg keyword", IntentEfficiency, "what mpg does the prius get", true},
		{"hyphenated mpg", IntentEfficiency, "best m-p-g? no, best mpg", true},
		{"superlative plus misspelled efficiency", IntentEfficiency, "which is the most effiecent?", true},
		{"superlative plus milage", IntentEfficiency, "best milage model", true},
		{"fuel word without superlative", IntentEfficiency, "fuel tank size", false},

		{"vs separator", IntentCompare, "camry vs corolla", true},
		{"versus separator", IntentCompare, "tundra versus tacoma", true},
		{"compare verb", IntentCompare, "can you compare them", true},
		{"or with two models", IntentCompare, "camry or corolla?", true},
		{"or with one model", IntentCompare, "camry or something else", false},

		{"trims", IntentTrims, "what trims does the rav4 come in", true},
		{"grades", IntentTrims, "available grades?", true},
		{"no trim words", IntentTrims, "rav4 colors", false},

		{"reliability stem", IntentReliability, "how reliable is the prius", true},
		{"dependability stem", IntentReliability, "dependability ratings", true},
		{"maintenance stem", IntentReliability, "maintenance costs over 5 years", true},
		{"problems stem", IntentReliability, "any known problems?", true},
		{"no reliability stem", IntentReliability, "what color options exist", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasIntent(tt.intent, tt.text))
		})
	}
}
