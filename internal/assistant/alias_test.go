package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractModels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "common misspelling",
			text: "i luv the carolla",
			want: []string{"corolla"},
		},
		{
			name: "hyphenated variant and second model",
			text: "rav-4 vs Highlander",
			want: []string{"rav4", "highlander"},
		},
		{
			name: "spaced 4runner variant",
			text: "is the four runner any good",
			want: []string{"4runner"},
		},
		{
			name: "gr86 bare number variant",
			text: "thinking about the 86",
			want: []string{"gr86"},
		},
		{
			name: "duplicate mentions collapse",
			text: "camry camry camry",
			want: []string{"camry"},
		},
		{
			name: "no model mentioned",
			text: "what should i buy",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractModels(tt.text))
		})
	}
}

func TestExtractModelsTableOrder(t *testing.T) {
	// Matches are reported in alias-table order regardless of where they
	// appear in the text; identical messages always produce the same list.
	got := extractModels("highlander or rav4?")
	assert.Equal(t, []string{"rav4", "highlander"}, got)
}
