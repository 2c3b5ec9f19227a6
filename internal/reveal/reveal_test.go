package reveal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChars(t *testing.T) {
	tokens := Chars("Año 1", Options{Delay: 0.5, Stagger: 0.1})
	require.Len(t, tokens, 5)
	assert.Equal(t, "ñ", tokens[1].Text)
	assert.True(t, tokens[3].Space)
	assert.InDelta(t, 0.5, tokens[0].Delay, 1e-9)
	assert.InDelta(t, 0.9, tokens[4].Delay, 1e-9)
}

func TestWords(t *testing.T) {
	tokens := Words("  energía   que  impulsa ", Options{Stagger: 0.2})
	require.Len(t, tokens, 3)
	assert.Equal(t, "energía", tokens[0].Text)
	assert.InDelta(t, 0.4, tokens[2].Delay, 1e-9)
	assert.Empty(t, Words("   ", CodeReveal))
}

func TestTypeWriterHTML(t *testing.T) {
	out := string(TypeWriterHTML("a <b", 0.2))
	assert.Contains(t, out, `class="reveal reveal-char"`)
	assert.Contains(t, out, `aria-label="a &lt;b"`)
	assert.Contains(t, out, "&nbsp;")
	assert.Contains(t, out, "&lt;")
	assert.NotContains(t, out, "<b")
	assert.Contains(t, out, "animation-delay:0.200s")
	assert.Contains(t, out, "animation-delay:0.290s")
	assert.Equal(t, 4, strings.Count(out, `aria-hidden="true"`))
}

func TestCodeRevealHTML(t *testing.T) {
	out := string(CodeRevealHTML("servicios de campo", 0))
	assert.Contains(t, out, `aria-label="servicios de campo"`)
	assert.Contains(t, out, "animation-delay:0.160s")
	assert.Equal(t, 3, strings.Count(out, `aria-hidden="true"`))
}
