package pair

import (
	"strings"
	"unicode"

	"github.com/dshills/autopair/internal/engine/buffer"
	"github.com/dshills/autopair/internal/syntax"
)

// nextChar returns the single code point at pos, or "" at the document
// end.
func nextChar(doc *buffer.Document, pos buffer.Offset) string {
	r, ok := doc.RuneAt(pos)
	if !ok {
		return ""
	}
	return string(r)
}

// prevChar returns the single code point before pos, or "" at the
// document start.
func prevChar(doc *buffer.Document, pos buffer.Offset) string {
	r, ok := doc.RuneAt(pos - 1)
	if !ok {
		return ""
	}
	return string(r)
}

// isWordChar reports whether a one-code-point string is a word
// character (letter, digit, or underscore). Empty strings are not.
func isWordChar(s string) bool {
	for _, r := range s {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// nodeStart reports whether pos coincides exactly with the start of a
// syntax node that has a parent. This licenses doubling a quote into an
// empty pair directly before an existing node.
func nodeStart(r syntax.Resolver, pos buffer.Offset) bool {
	if r == nil {
		return false
	}
	n := r.Resolve(pos+1, syntax.BiasLeft)
	return n != nil && n.Parent() != nil && n.From == pos
}

// probablyInString reports whether pos is probably inside a string
// delimited by quote. It walks at most five ancestors starting from the
// node touching pos on the left, reporting true when a node's leading
// text equals the quote token, and ascending only while the node ends
// exactly at pos.
//
// Both the five-step bound and the shallow leading-text comparison are
// deliberate: real string detection is parser-specific and out of
// scope, so the heuristic can misreport on lookalike nodes or deep
// nesting. Keep the bound rather than fixing it.
func probablyInString(r syntax.Resolver, doc *buffer.Document, pos buffer.Offset, quote string) bool {
	if r == nil {
		return false
	}
	n := r.Resolve(pos, syntax.BiasLeft)
	qlen := len([]rune(quote))
	for i := 0; i < 5; i++ {
		if n == nil {
			return false
		}
		if doc.Slice(n.From, n.From+qlen) == quote {
			return true
		}
		if n.To != pos {
			return false
		}
		n = n.Parent()
	}
	return false
}

// beforeBoundary reports whether an asymmetric bracket may auto-close
// in front of next: end of input, whitespace, or a member of the
// configured before set.
func beforeBoundary(conf Config, next string) bool {
	if next == "" || isSpace(next) {
		return true
	}
	return strings.Contains(conf.Before, next)
}
