package pair

import "testing"

func TestClosing(t *testing.T) {
	tests := []struct {
		open rune
		want string
	}{
		{'(', ")"},
		{'[', "]"},
		{'{', "}"},
		{'<', ">"},
		{'\'', "'"},
		{'"', `"`},
		{'`', "`"},
		{'|', "|"},
		{'「', "」"}, // adjacent code points
	}
	for _, tt := range tests {
		if got := Closing(tt.open); got != tt.want {
			t.Errorf("Closing(%q): expected %q, got %q", tt.open, tt.want, got)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Brackets) != 5 {
		t.Errorf("expected 5 default brackets, got %d", len(cfg.Brackets))
	}
	if cfg.Before != `)]}'":;>` {
		t.Errorf("unexpected before set: %q", cfg.Before)
	}
	if cfg.AllowsTriple(`"`) {
		t.Error("triple quotes should be disabled by default")
	}
}

func TestAllowsTriple(t *testing.T) {
	cfg := Config{Brackets: []string{"(", `"`, `"""`}}
	if !cfg.AllowsTriple(`"`) {
		t.Error("expected triple enabled for tripled token")
	}
	if cfg.AllowsTriple("(") {
		t.Error("expected triple disabled for untripled token")
	}
}

func TestNormalized(t *testing.T) {
	cfg := Config{}.normalized()
	if len(cfg.Brackets) == 0 {
		t.Error("expected default brackets")
	}
	if cfg.Before == "" {
		t.Error("expected default before set")
	}

	custom := Config{Brackets: []string{"("}, Before: ")"}.normalized()
	if len(custom.Brackets) != 1 || custom.Before != ")" {
		t.Error("normalized must not override explicit fields")
	}
}

func TestTokenRune(t *testing.T) {
	if r, ok := tokenRune("("); !ok || r != '(' {
		t.Errorf("expected ('(' , true), got (%q, %v)", r, ok)
	}
	if _, ok := tokenRune(`"""`); ok {
		t.Error("triple token must not be a single rune")
	}
	if _, ok := tokenRune(""); ok {
		t.Error("empty token must not be a single rune")
	}
}

func TestStaticConfig(t *testing.T) {
	cfg := Config{Brackets: []string{"("}}
	fn := StaticConfig(cfg)
	if got := fn(42); len(got.Brackets) != 1 || got.Brackets[0] != "(" {
		t.Errorf("unexpected config: %v", got.Brackets)
	}
}
