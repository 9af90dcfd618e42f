package langcfg

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/autopair/internal/pair"
)

// LoadVSCode imports the autoClosingPairs section of a VS Code
// language-configuration.json file. Pairs are accepted only when the
// open token is a single code point and the close token matches its
// canonical closing form; anything else (multi-character comment
// fences, mismatched pairs) is outside the model and skipped. The
// before set is left at its default.
func LoadVSCode(path string) (pair.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pair.Config{}, fmt.Errorf("reading language config %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return pair.Config{}, &ParseError{
			Path:    path,
			Message: "invalid JSON",
		}
	}
	return parseVSCode(data), nil
}

// parseVSCode extracts the supported delimiters from a parsed
// language-configuration document. Both pair encodings are handled:
// {"open": "(", "close": ")"} objects and ["(", ")"] tuples. Files
// without autoClosingPairs fall back to surroundingPairs.
func parseVSCode(data []byte) pair.Config {
	var brackets []string
	seen := make(map[string]bool)

	pairs := gjson.GetBytes(data, "autoClosingPairs").Array()
	if len(pairs) == 0 {
		pairs = gjson.GetBytes(data, "surroundingPairs").Array()
	}
	for _, entry := range pairs {
		var open, close string
		if entry.IsObject() {
			open = entry.Get("open").String()
			close = entry.Get("close").String()
		} else if entry.IsArray() {
			tuple := entry.Array()
			if len(tuple) != 2 {
				continue
			}
			open = tuple[0].String()
			close = tuple[1].String()
		}

		r, single := runeOf(open)
		if !single || close != pair.Closing(r) || seen[open] {
			continue
		}
		seen[open] = true
		brackets = append(brackets, open)
	}

	return pair.Config{Brackets: brackets}
}

// runeOf returns the single code point of a one-rune string.
func runeOf(s string) (rune, bool) {
	var r rune
	n := 0
	for _, c := range s {
		r = c
		n++
	}
	if n != 1 {
		return 0, false
	}
	return r, true
}
