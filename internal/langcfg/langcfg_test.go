package langcfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/autopair/internal/pair"
)

func TestParseTOML(t *testing.T) {
	data := []byte(`
[language.python]
brackets = ["(", "[", "{", "'", "\"", "\"\"\""]
before = ")]}'\":;>"

[language.lisp]
brackets = ["(", "\""]
`)
	langs, err := parseTOML("test.toml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(langs))
	}

	py, ok := langs["python"]
	if !ok {
		t.Fatal("expected python entry")
	}
	if len(py.Brackets) != 6 {
		t.Errorf("expected 6 brackets, got %d", len(py.Brackets))
	}
	if !py.AllowsTriple(`"`) {
		t.Error("expected triple quotes enabled for python")
	}
	if py.Before != `)]}'":;>` {
		t.Errorf("unexpected before set: %q", py.Before)
	}

	lisp := langs["lisp"]
	if len(lisp.Brackets) != 2 {
		t.Errorf("expected 2 brackets, got %d", len(lisp.Brackets))
	}
	if lisp.Before != "" {
		t.Errorf("expected empty before set, got %q", lisp.Before)
	}
}

func TestParseTOMLInvalid(t *testing.T) {
	_, err := parseTOML("bad.toml", []byte("[language\nbroken"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Path != "bad.toml" {
		t.Errorf("expected path bad.toml, got %q", perr.Path)
	}
}

func TestLoadTOMLMissingFile(t *testing.T) {
	langs, err := LoadTOML(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if langs != nil {
		t.Errorf("expected nil map for missing file, got %v", langs)
	}
}

func TestParseVSCode(t *testing.T) {
	data := []byte(`{
		"autoClosingPairs": [
			{"open": "(", "close": ")"},
			["[", "]"],
			{"open": "{", "close": "}", "notIn": ["string"]},
			{"open": "\"", "close": "\""},
			{"open": "/*", "close": "*/"},
			{"open": "<", "close": "}"}
		]
	}`)
	cfg := parseVSCode(data)

	want := []string{"(", "[", "{", `"`}
	if len(cfg.Brackets) != len(want) {
		t.Fatalf("expected %d brackets, got %v", len(want), cfg.Brackets)
	}
	for i, b := range want {
		if cfg.Brackets[i] != b {
			t.Errorf("bracket %d: expected %q, got %q", i, b, cfg.Brackets[i])
		}
	}
}

func TestParseVSCodeSurroundingFallback(t *testing.T) {
	data := []byte(`{"surroundingPairs": [["(", ")"], ["'", "'"]]}`)
	cfg := parseVSCode(data)
	if len(cfg.Brackets) != 2 {
		t.Fatalf("expected 2 brackets, got %v", cfg.Brackets)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	cfg, ok := r.Lookup("go")
	if ok {
		t.Error("expected fallback for unknown language")
	}
	if len(cfg.Brackets) != len(pair.DefaultBrackets) {
		t.Errorf("expected default brackets, got %v", cfg.Brackets)
	}

	r.Set("lisp", pair.Config{Brackets: []string{"(", `"`}})
	cfg, ok = r.Lookup("lisp")
	if !ok {
		t.Fatal("expected explicit entry for lisp")
	}
	if len(cfg.Brackets) != 2 {
		t.Errorf("expected 2 brackets, got %v", cfg.Brackets)
	}
}

func TestRegistryConfigFunc(t *testing.T) {
	r := NewRegistry()
	r.Set("lisp", pair.Config{Brackets: []string{"("}})

	fn := r.ConfigFunc("lisp")
	cfg := fn(0)
	if len(cfg.Brackets) != 1 || cfg.Brackets[0] != "(" {
		t.Errorf("unexpected config: %v", cfg.Brackets)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	toml := `
[language.python]
brackets = ["(", "'"]
`
	if err := os.WriteFile(filepath.Join(dir, "langs.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	json := `{"autoClosingPairs": [{"open": "(", "close": ")"}]}`
	if err := os.WriteFile(filepath.Join(dir, "ruby.language-configuration.json"), []byte(json), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := r.Lookup("python"); !ok {
		t.Error("expected python from TOML")
	}
	if _, ok := r.Lookup("ruby"); !ok {
		t.Error("expected ruby from VS Code import")
	}
}

func TestLoadDirMissing(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadDir(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("expected nil for missing directory, got %v", err)
	}
}
