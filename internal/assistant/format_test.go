package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoneyRange(t *testing.T) {
	assert.Equal(t, "$26,420–$36,015", formatMoneyRange(26420, 36015))
	assert.Equal(t, "$28,675", formatMoneyRange(28675, 28675), "equal bounds render a single value")
	assert.Equal(t, "$28,675", formatMoneyRange(28675, 28675.0000001), "bounds within epsilon collapse")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "GR86", displayName("gr86"))
	assert.Equal(t, "Camry", displayName("camry"))
	assert.Equal(t, "C-hr", displayName("c-hr"))
	assert.Equal(t, "4runner", displayName("4runner"))
}

func TestCleanParagraph(t *testing.T) {
	t.Run("collapses whitespace", func(t *testing.T) {
		got := cleanParagraph("  spread \n over\t\tlines  ", 70)
		assert.Equal(t, "spread over lines", got)
	})

	t.Run("strips table pipes", func(t *testing.T) {
		got := cleanParagraph("Camry | Corolla | Prius", 70)
		assert.Equal(t, "Camry Corolla Prius", got)
	})

	t.Run("truncates at word cap with ellipsis", func(t *testing.T) {
		long := strings.Repeat("word ", 80)
		got := cleanParagraph(long, 70)
		words := strings.Fields(got)
		assert.Len(t, words, 70)
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("short text unchanged", func(t *testing.T) {
		got := cleanParagraph("short answer", 70)
		assert.Equal(t, "short answer", got)
		assert.False(t, strings.HasSuffix(got, "…"))
	})
}
