package pair

import (
	"github.com/dshills/autopair/internal/engine/buffer"
	"github.com/dshills/autopair/internal/engine/cursor"
)

// Plan is a fully formed edit description produced by the decision
// engine. Edits are in pre-edit coordinates, ascending; selections and
// added marks are in post-edit coordinates; dropped marks are in
// pre-edit coordinates. A Plan is committed atomically or not at all.
type Plan struct {
	Edits      []buffer.Edit
	Selections []cursor.Selection
	AddMarks   []Mark
	DropMarks  []buffer.Offset
}

// IsSkip reports whether the plan moves carets without editing text.
func (p *Plan) IsSkip() bool {
	return len(p.Edits) == 0
}

// PlanInsertion decides how the candidate inserted text should be
// handled. It returns (nil, false), meaning no special behavior, when the
// document is read-only, composition is in progress, the text is not
// exactly one code point, or no configured delimiter matches. The
// returned plan has not been applied.
func (s *Session) PlanInsertion(text string) (*Plan, bool) {
	if s.composing || s.doc.ReadOnly() {
		return nil, false
	}
	if _, single := tokenRune(text); !single {
		return nil, false
	}

	conf := s.configAt(s.cursors.Primary().Head)
	for _, tok := range conf.Brackets {
		r, single := tokenRune(tok)
		if !single {
			continue // triple entries only enable triple runs
		}
		closed := Closing(r)
		if text == tok {
			if closed == tok {
				return s.handleSame(conf, tok, conf.AllowsTriple(tok))
			}
			return s.handleOpen(conf, tok, closed)
		}
		if text == closed && s.tracker.Query(s.cursors.Primary().Start()) {
			return s.handleClose(closed)
		}
	}
	return nil, false
}

// handleOpen plans insertion of an asymmetric bracket (open != close).
// Non-empty selections are wrapped; empty carets auto-close only before
// end of input, whitespace, or a member of the before set.
func (s *Session) handleOpen(conf Config, open, close string) (*Plan, bool) {
	o := runeLen(open)
	c := runeLen(close)
	closer := firstRuneOf(close)

	plan := &Plan{}
	delta := 0
	for _, sel := range s.cursors.All() {
		if !sel.IsEmpty() {
			r := sel.Range()
			plan.Edits = append(plan.Edits,
				buffer.NewInsert(r.Start, open),
				buffer.NewInsert(r.End, close))
			plan.Selections = append(plan.Selections,
				cursor.NewSelection(sel.Anchor+delta+o, sel.Head+delta+o))
			plan.AddMarks = append(plan.AddMarks,
				Mark{Pos: r.End + delta + o, Closer: closer})
			delta += o + c
			continue
		}

		head := sel.Head
		if !beforeBoundary(conf, nextChar(s.doc, head)) {
			// Do not auto-close in front of arbitrary text.
			return nil, false
		}
		plan.Edits = append(plan.Edits, buffer.NewInsert(head, open+close))
		plan.Selections = append(plan.Selections, cursor.NewCursor(head+delta+o))
		plan.AddMarks = append(plan.AddMarks,
			Mark{Pos: head + delta + o, Closer: closer})
		delta += o + c
	}
	return plan, true
}

// handleSame plans insertion of a symmetric delimiter (open == close),
// covering wrapping, doubling at node starts, skip-over of tracked
// closers, triple-run completion, and the word-boundary doubling
// fallback.
func (s *Session) handleSame(conf Config, token string, allowTriple bool) (*Plan, bool) {
	res := s.resolverNow()
	tl := runeLen(token)
	closer := firstRuneOf(token)

	plan := &Plan{}
	delta := 0
	for _, sel := range s.cursors.All() {
		if !sel.IsEmpty() {
			r := sel.Range()
			plan.Edits = append(plan.Edits,
				buffer.NewInsert(r.Start, token),
				buffer.NewInsert(r.End, token))
			plan.Selections = append(plan.Selections,
				cursor.NewSelection(sel.Anchor+delta+tl, sel.Head+delta+tl))
			plan.AddMarks = append(plan.AddMarks,
				Mark{Pos: r.End + delta + tl, Closer: closer})
			delta += 2 * tl
			continue
		}

		pos := sel.Head
		next := nextChar(s.doc, pos)
		switch {
		case next == token:
			if nodeStart(res, pos) {
				// An empty pair directly before an existing node.
				plan.Edits = append(plan.Edits, buffer.NewInsert(pos, token+token))
				plan.Selections = append(plan.Selections, cursor.NewCursor(pos+delta+tl))
				plan.AddMarks = append(plan.AddMarks,
					Mark{Pos: pos + delta + tl, Closer: closer})
				delta += 2 * tl
			} else if s.tracker.Query(pos) {
				// Skip over the auto-inserted closer; a triple run is
				// consumed as one skip.
				n := tl
				if allowTriple && s.doc.Slice(pos, pos+3*tl) == token+token+token {
					n = 3 * tl
				}
				plan.Selections = append(plan.Selections, cursor.NewCursor(pos+delta+n))
				plan.DropMarks = append(plan.DropMarks, pos)
			} else {
				return nil, false
			}

		case allowTriple && pos >= 2*tl &&
			s.doc.Slice(pos-2*tl, pos) == token+token &&
			nodeStart(res, pos-2*tl):
			// The third quote of a triple: complete to three opening and
			// three closing tokens with the caret after the third opener.
			plan.Edits = append(plan.Edits,
				buffer.NewInsert(pos, token+token+token+token))
			plan.Selections = append(plan.Selections, cursor.NewCursor(pos+delta+tl))
			plan.AddMarks = append(plan.AddMarks,
				Mark{Pos: pos + delta + tl, Closer: closer})
			delta += 4 * tl

		case !isWordChar(next):
			prev := prevChar(s.doc, pos)
			if prev == token || isWordChar(prev) ||
				probablyInString(res, s.doc, pos, token) {
				return nil, false
			}
			plan.Edits = append(plan.Edits, buffer.NewInsert(pos, token+token))
			plan.Selections = append(plan.Selections, cursor.NewCursor(pos+delta+tl))
			plan.AddMarks = append(plan.AddMarks,
				Mark{Pos: pos + delta + tl, Closer: closer})
			delta += 2 * tl

		default:
			return nil, false
		}
	}
	return plan, true
}

// handleClose plans skipping over tracked closers. Every caret must be
// empty and positioned exactly before a tracked closer; otherwise the
// whole batch is rejected.
func (s *Session) handleClose(closed string) (*Plan, bool) {
	cl := runeLen(closed)

	plan := &Plan{}
	for _, sel := range s.cursors.All() {
		if !sel.IsEmpty() {
			return nil, false
		}
		pos := sel.Head
		if nextChar(s.doc, pos) != closed || !s.tracker.Query(pos) {
			return nil, false
		}
		plan.Selections = append(plan.Selections, cursor.NewCursor(pos+cl))
		plan.DropMarks = append(plan.DropMarks, pos)
	}
	return plan, true
}

// runeLen returns the length of a token in code points.
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// firstRuneOf returns the first code point of a non-empty string.
func firstRuneOf(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
