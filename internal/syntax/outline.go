package syntax

// Node kinds produced by the outline parser.
const (
	KindDocument = "document"
	KindBracket  = "bracket"
	KindString   = "string"
)

// outlinePairs maps opening brackets to their closers for the outline.
var outlinePairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// outlineQuotes is the set of string delimiters the outline recognizes.
var outlineQuotes = map[rune]bool{
	'\'': true,
	'"':  true,
	'`':  true,
}

// Outline is a shallow syntax tree built from bracket and quote
// structure alone. It is reparsed from scratch; incremental re-parse is
// the host's concern, and at the line-local scale the pair engine
// queries, a full parse is cheap enough.
type Outline struct {
	root *Node
}

// Parse builds an outline tree for the given text.
func Parse(text string) *Outline {
	runes := []rune(text)
	root := &Node{From: 0, To: len(runes), Kind: KindDocument}

	var stack []*Node
	cur := root

	openNode := func(from int, kind string) {
		n := &Node{From: from, To: len(runes), Kind: kind, parent: cur}
		cur.children = append(cur.children, n)
		stack = append(stack, cur)
		cur = n
	}
	closeNode := func(to int) {
		cur.To = to
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}

	i := 0
	for i < len(runes) {
		r := runes[i]

		if outlineQuotes[r] {
			// String node: runs to the matching quote or document end.
			// No nesting inside strings.
			openNode(i, KindString)
			i++
			for i < len(runes) && runes[i] != r {
				if runes[i] == '\\' {
					i++
				}
				i++
			}
			if i < len(runes) {
				i++ // consume the closing quote
			}
			closeNode(i)
			continue
		}

		if _, ok := outlinePairs[r]; ok {
			openNode(i, KindBracket)
			i++
			continue
		}

		if cur.Kind == KindBracket {
			open, _ := firstRune(runes, cur.From)
			if r == outlinePairs[open] {
				i++
				closeNode(i)
				continue
			}
		}

		i++
	}

	// Unterminated nodes extend to the document end.
	for cur != root {
		closeNode(len(runes))
	}

	return &Outline{root: root}
}

func firstRune(runes []rune, pos int) (rune, bool) {
	if pos < 0 || pos >= len(runes) {
		return 0, false
	}
	return runes[pos], true
}

// Root returns the document node.
func (o *Outline) Root() *Node {
	return o.root
}

// Resolve returns the innermost node containing pos under the given
// bias, falling back to the root. Implements Resolver.
func (o *Outline) Resolve(pos int, bias Bias) *Node {
	n := o.root
	for {
		var next *Node
		for _, child := range n.children {
			if child.contains(pos, bias) {
				next = child
				break
			}
		}
		if next == nil {
			return n
		}
		n = next
	}
}
