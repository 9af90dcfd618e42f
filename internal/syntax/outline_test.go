package syntax

import "testing"

func TestParseFlatText(t *testing.T) {
	o := Parse("hello world")

	root := o.Root()
	if root.Kind != KindDocument {
		t.Errorf("expected document root, got %q", root.Kind)
	}
	if len(root.Children()) != 0 {
		t.Errorf("expected no children, got %d", len(root.Children()))
	}
}

func TestParseBracketNode(t *testing.T) {
	o := Parse("a(bc)d")

	root := o.Root()
	if len(root.Children()) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children()))
	}

	n := root.Children()[0]
	if n.Kind != KindBracket || n.From != 1 || n.To != 5 {
		t.Errorf("expected bracket[1,5), got %v", n)
	}
	if n.Parent() != root {
		t.Error("expected parent to be root")
	}
}

func TestParseNestedBrackets(t *testing.T) {
	o := Parse("([x])")

	outer := o.Root().Children()[0]
	if outer.From != 0 || outer.To != 5 {
		t.Fatalf("expected outer [0,5), got %v", outer)
	}

	if len(outer.Children()) != 1 {
		t.Fatalf("expected 1 nested child, got %d", len(outer.Children()))
	}

	inner := outer.Children()[0]
	if inner.From != 1 || inner.To != 4 {
		t.Errorf("expected inner [1,4), got %v", inner)
	}
}

func TestParseStringNode(t *testing.T) {
	o := Parse(`x "ab" y`)

	n := o.Root().Children()[0]
	if n.Kind != KindString || n.From != 2 || n.To != 6 {
		t.Errorf("expected string[2,6), got %v", n)
	}
}

func TestParseStringSwallowsBrackets(t *testing.T) {
	o := Parse(`"(x"`)

	root := o.Root()
	if len(root.Children()) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children()))
	}
	if root.Children()[0].Kind != KindString {
		t.Errorf("expected string node, got %q", root.Children()[0].Kind)
	}
}

func TestParseUnterminatedString(t *testing.T) {
	o := Parse(`abc "def`)

	n := o.Root().Children()[0]
	if n.Kind != KindString || n.To != 8 {
		t.Errorf("expected unterminated string ending at 8, got %v", n)
	}
}

func TestParseEscapedQuote(t *testing.T) {
	o := Parse(`"a\"b"`)

	n := o.Root().Children()[0]
	if n.To != 6 {
		t.Errorf("expected string ending at 6, got %v", n)
	}
}

func TestResolveBias(t *testing.T) {
	o := Parse(`a"xy"b`)
	// string node is [1,5)

	if n := o.Resolve(1, BiasRight); n.Kind != KindString {
		t.Errorf("bias right at 1: expected string, got %v", n)
	}
	if n := o.Resolve(1, BiasLeft); n.Kind != KindDocument {
		t.Errorf("bias left at 1: expected document, got %v", n)
	}
	if n := o.Resolve(5, BiasLeft); n.Kind != KindString {
		t.Errorf("bias left at 5: expected string, got %v", n)
	}
	if n := o.Resolve(5, BiasRight); n.Kind != KindDocument {
		t.Errorf("bias right at 5: expected document, got %v", n)
	}
}

func TestResolveInnermost(t *testing.T) {
	o := Parse("((x))")

	n := o.Resolve(2, BiasRight)
	if n.From != 1 || n.To != 4 {
		t.Errorf("expected inner bracket [1,4), got %v", n)
	}
}

func TestNullResolver(t *testing.T) {
	var r Resolver = NullResolver{}
	if n := r.Resolve(3, BiasLeft); n != nil {
		t.Errorf("expected nil node, got %v", n)
	}
}

func TestParseRuneOffsets(t *testing.T) {
	o := Parse(`π("😀")`)
	// bracket [1,6), string [2,5) in rune offsets

	n := o.Root().Children()[0]
	if n.From != 1 || n.To != 6 {
		t.Errorf("expected bracket [1,6), got %v", n)
	}

	str := n.Children()[0]
	if str.From != 2 || str.To != 5 {
		t.Errorf("expected string [2,5), got %v", str)
	}
}
