package pair

import (
	"strings"

	"github.com/dshills/autopair/internal/engine/buffer"
)

// definedClosing holds the closers for brackets whose closing character
// is not the next code point after the opener.
var definedClosing = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// Closing returns the canonical closing delimiter for an opening code
// point. Unknown ASCII runes are their own mirror, which makes
// symmetric delimiters such as quotes close with themselves; unknown
// runes beyond ASCII close with the code point one greater, since
// Unicode bracket pairs tend to occupy adjacent code points. Pure and
// total; there is no failure case.
func Closing(r rune) string {
	if c, ok := definedClosing[r]; ok {
		return string(c)
	}
	if r < 128 {
		return string(r)
	}
	return string(r + 1)
}

// Config describes the delimiter set in effect at a document position.
type Config struct {
	// Brackets lists the opening tokens that trigger auto-closing.
	// A token repeated three times (e.g. `"""`) does not match typed
	// input itself; its presence enables triple-run recognition for the
	// single token.
	Brackets []string

	// Before is the set of characters an asymmetric bracket may
	// auto-close in front of, besides whitespace and end of input.
	Before string
}

// DefaultBrackets is the built-in delimiter set.
var DefaultBrackets = []string{"(", "[", "{", "'", `"`}

// DefaultBefore is the built-in close-before boundary set.
const DefaultBefore = `)]}'":;>`

// DefaultConfig returns the built-in delimiter configuration.
func DefaultConfig() Config {
	return Config{
		Brackets: DefaultBrackets,
		Before:   DefaultBefore,
	}
}

// AllowsTriple reports whether the config enables triple-run handling
// for the given token (the token appears tripled in Brackets).
func (c Config) AllowsTriple(token string) bool {
	triple := token + token + token
	for _, b := range c.Brackets {
		if b == triple {
			return true
		}
	}
	return false
}

// normalized fills empty fields from the defaults.
func (c Config) normalized() Config {
	if len(c.Brackets) == 0 {
		c.Brackets = DefaultBrackets
	}
	if c.Before == "" {
		c.Before = DefaultBefore
	}
	return c
}

// ConfigFunc resolves the delimiter configuration in effect at a
// position, allowing per-language overrides over the global default.
type ConfigFunc func(pos buffer.Offset) Config

// StaticConfig returns a ConfigFunc that ignores position.
func StaticConfig(c Config) ConfigFunc {
	return func(buffer.Offset) Config { return c }
}

// tokenRune returns the single code point of a one-rune token.
// Multi-rune tokens (triple entries) return false.
func tokenRune(token string) (rune, bool) {
	var r rune
	n := 0
	for _, c := range token {
		r = c
		n++
	}
	if n != 1 {
		return 0, false
	}
	return r, true
}

// isSpace reports whether a one-code-point string is whitespace.
func isSpace(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}
