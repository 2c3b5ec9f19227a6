// Package reveal splits text into tokens that enter one after another.
//
// The timeline itself is CSS: every token is rendered as a span carrying its
// own animation-delay, and the stylesheet animates opacity, vertical offset
// and blur from hidden to visible.
package reveal

import (
	"fmt"
	"html/template"
	"strings"
	"unicode/utf8"
)

// Options configures a reveal. Times are in seconds.
type Options struct {
	// Delay before the first token starts.
	Delay float64
	// Stagger between consecutive tokens.
	Stagger float64
	// Duration of one token's transition.
	Duration float64
}

var (
	// TypeWriter reveals one character at a time.
	TypeWriter = Options{Delay: 0, Stagger: 0.03, Duration: 0.4}
	// CodeReveal reveals one word at a time.
	CodeReveal = Options{Delay: 0, Stagger: 0.08, Duration: 0.5}
)

// Token is one animated unit.
type Token struct {
	Text  string
	Delay float64
	Space bool
}

func (o Options) at(i int) float64 { return o.Delay + float64(i)*o.Stagger }

// Chars splits text into runes. Spaces are kept as tokens so the line keeps
// its shape, and they advance the stagger like any other character.
func Chars(text string, o Options) []Token {
	tokens := make([]Token, 0, utf8.RuneCountInString(text))
	i := 0
	for _, r := range text {
		tokens = append(tokens, Token{Text: string(r), Delay: o.at(i), Space: r == ' '})
		i++
	}
	return tokens
}

// Words splits text on white space.
func Words(text string, o Options) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	for i, w := range fields {
		tokens = append(tokens, Token{Text: w, Delay: o.at(i)})
	}
	return tokens
}

// HTML renders tokens as spans of the given class. Word tokens are separated
// by a plain space.
func HTML(tokens []Token, class string, o Options) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<span class="reveal %s" aria-label="%s">`, template.HTMLEscapeString(class), template.HTMLEscapeString(joinText(tokens, class)))
	for i, t := range tokens {
		if class == WordClass && i > 0 {
			b.WriteByte(' ')
		}
		text := template.HTMLEscapeString(t.Text)
		if t.Space {
			text = "&nbsp;"
		}
		fmt.Fprintf(&b, `<span aria-hidden="true" style="animation-delay:%.3fs;animation-duration:%.3fs">%s</span>`, t.Delay, o.Duration, text)
	}
	b.WriteString(`</span>`)
	return template.HTML(b.String())
}

const (
	CharClass = "reveal-char"
	WordClass = "reveal-word"
)

func joinText(tokens []Token, class string) string {
	var b strings.Builder
	for i, t := range tokens {
		if class == WordClass && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// TypeWriterHTML is Chars rendered with the TypeWriter timing, offset by delay.
func TypeWriterHTML(text string, delay float64) template.HTML {
	o := TypeWriter
	o.Delay = delay
	return HTML(Chars(text, o), CharClass, o)
}

// CodeRevealHTML is Words rendered with the CodeReveal timing, offset by delay.
func CodeRevealHTML(text string, delay float64) template.HTML {
	o := CodeReveal
	o.Delay = delay
	return HTML(Words(text, o), WordClass, o)
}
