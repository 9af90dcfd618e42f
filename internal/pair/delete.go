package pair

import (
	"github.com/dshills/autopair/internal/engine/buffer"
	"github.com/dshills/autopair/internal/engine/cursor"
)

// PlanDeletion decides whether a delete-backward request removes a
// bracket pair. Every caret must be empty and sit exactly between a
// configured token's open form and its closing form; otherwise the
// whole batch is rejected and the host falls back to default backward
// deletion. The tracker is not consulted: any syntactically matching
// adjacent pair qualifies, whether or not this engine inserted it.
func (s *Session) PlanDeletion() (*Plan, bool) {
	if s.composing || s.doc.ReadOnly() {
		return nil, false
	}

	plan := &Plan{}
	delta := 0
	for _, sel := range s.cursors.All() {
		if !sel.IsEmpty() {
			return nil, false
		}
		pos := sel.Head
		conf := s.configAt(pos)
		if !deletablePairAt(s.doc, conf, pos) {
			return nil, false
		}
		plan.Edits = append(plan.Edits, buffer.NewDelete(pos-1, pos+1))
		plan.Selections = append(plan.Selections, cursor.NewCursor(pos-1+delta))
		delta -= 2
	}
	return plan, true
}

// DeleteBracketPair removes the matching pair around every caret in one
// edit, leaving each caret at its deletion start. Returns false when no
// plan applies, so the host can run its default backward delete.
func (s *Session) DeleteBracketPair() bool {
	plan, ok := s.PlanDeletion()
	if !ok {
		return false
	}
	if err := s.commit(plan); err != nil {
		s.logger.Error("commit failed: %v", err)
		return false
	}
	s.logger.Debug("deleted bracket pair (%d carets)", len(plan.Edits))
	return true
}

// deletablePairAt reports whether pos sits exactly between a configured
// open token and its closing form.
func deletablePairAt(doc *buffer.Document, conf Config, pos buffer.Offset) bool {
	before := prevChar(doc, pos)
	if before == "" {
		return false
	}
	for _, tok := range conf.Brackets {
		r, single := tokenRune(tok)
		if !single || tok != before {
			continue
		}
		if nextChar(doc, pos) == Closing(r) {
			return true
		}
	}
	return false
}
