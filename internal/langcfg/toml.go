package langcfg

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/autopair/internal/pair"
)

// tomlFile is the on-disk schema:
//
//	[language.python]
//	brackets = ["(", "[", "{", "'", "\"", "\"\"\""]
//	before = ")]}'\":;>"
type tomlFile struct {
	Language map[string]tomlLanguage `toml:"language"`
}

type tomlLanguage struct {
	Brackets []string `toml:"brackets"`
	Before   string   `toml:"before"`
}

// LoadTOML reads per-language delimiter configurations from a TOML
// file. A missing file returns a nil map without error.
func LoadTOML(path string) (map[string]pair.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading language config %s: %w", path, err)
	}
	return parseTOML(path, data)
}

// parseTOML parses TOML data into per-language configurations.
func parseTOML(source string, data []byte) (map[string]pair.Config, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}

	langs := make(map[string]pair.Config, len(file.Language))
	for name, lang := range file.Language {
		langs[name] = pair.Config{
			Brackets: lang.Brackets,
			Before:   lang.Before,
		}
	}
	return langs, nil
}

// ParseError represents an error while parsing a language
// configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
