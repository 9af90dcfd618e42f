package pair

import (
	"github.com/google/uuid"

	"github.com/dshills/autopair/internal/engine/buffer"
	"github.com/dshills/autopair/internal/engine/cursor"
	"github.com/dshills/autopair/internal/log"
	"github.com/dshills/autopair/internal/syntax"
)

// SyntaxFunc produces a syntax-node resolver for the current document
// text. A nil SyntaxFunc (or a returned nil resolver) degrades the
// tree-dependent heuristics to their plain fallback branches.
type SyntaxFunc func(text string) syntax.Resolver

// Session owns the closed-bracket tracker for one open document.
// Lifecycle equals the document session lifetime. All mutation flows
// through the session's commit step, which applies edits, remaps marks,
// moves cursors, and runs line invalidation as one unit. Sessions are
// not safe for concurrent use; the host must serialize access.
type Session struct {
	id        uuid.UUID
	doc       *buffer.Document
	cursors   *cursor.Set
	tracker   *Tracker
	config    ConfigFunc
	syntax    SyntaxFunc
	logger    *log.Logger
	composing bool
}

// Option configures a Session.
type Option func(*Session)

// WithConfig sets a static delimiter configuration.
func WithConfig(c Config) Option {
	return func(s *Session) {
		s.config = StaticConfig(c)
	}
}

// WithConfigFunc sets a per-position delimiter configuration resolver.
func WithConfigFunc(f ConfigFunc) Option {
	return func(s *Session) {
		s.config = f
	}
}

// WithSyntax sets the syntax oracle source.
func WithSyntax(f SyntaxFunc) Option {
	return func(s *Session) {
		s.syntax = f
	}
}

// WithOutline uses the built-in outline parser as the syntax oracle.
func WithOutline() Option {
	return WithSyntax(func(text string) syntax.Resolver {
		return syntax.Parse(text)
	})
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a session over a document and cursor set.
func NewSession(doc *buffer.Document, cursors *cursor.Set, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		doc:     doc,
		cursors: cursors,
		tracker: NewTracker(),
		logger:  log.NullLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Document returns the session's document.
func (s *Session) Document() *buffer.Document {
	return s.doc
}

// Cursors returns the session's cursor set.
func (s *Session) Cursors() *cursor.Set {
	return s.cursors
}

// Tracker returns the session's closed-bracket tracker.
func (s *Session) Tracker() *Tracker {
	return s.tracker
}

// SetComposing reports IME composition state to the session.
// All behavior is disabled while composing.
func (s *Session) SetComposing(composing bool) {
	s.composing = composing
}

// Composing returns the current composition state.
func (s *Session) Composing() bool {
	return s.composing
}

// HandleInsertion intercepts a candidate text insertion. It returns
// true when the insertion was handled (document, cursors, and tracker
// updated); false means the host should fall through to ordinary
// insertion.
func (s *Session) HandleInsertion(text string) bool {
	plan, ok := s.PlanInsertion(text)
	if !ok {
		return false
	}
	if err := s.commit(plan); err != nil {
		s.logger.Error("commit failed: %v", err)
		return false
	}
	s.logger.Debug("handled insertion %q (%d edits, %d marks)",
		text, len(plan.Edits), len(plan.AddMarks))
	return true
}

// MoveTo collapses the selection to a single cursor at offset.
// Moving across lines invalidates all tracked marks.
func (s *Session) MoveTo(offset buffer.Offset) {
	s.SetSelections([]cursor.Selection{cursor.NewCursor(offset)})
}

// SetSelections replaces the selection set. If the primary caret lands
// on a different line, all tracked marks are cleared: marks older than
// the current line are never honored.
func (s *Session) SetSelections(sels []cursor.Selection) {
	oldLine := s.doc.LineStartAt(s.cursors.Primary().Head)
	s.cursors.SetAll(sels)
	s.cursors.Clamp(s.doc.Len())
	if s.doc.LineStartAt(s.cursors.Primary().Head) != oldLine {
		s.tracker.Clear()
	}
}

// ApplyExternalEdit routes a host-initiated edit batch through the
// session so the tracker survives it. Cursors are remapped with clamp
// semantics.
func (s *Session) ApplyExternalEdit(edits []buffer.Edit) error {
	oldLine := s.doc.LineStartAt(s.cursors.Primary().Head)

	mapping, err := s.doc.Apply(edits)
	if err != nil {
		return err
	}
	s.tracker.MapThrough(mapping, s.doc)
	s.cursors.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		anchor, _ := mapping.MapPos(sel.Anchor, buffer.MapClamp)
		head, _ := mapping.MapPos(sel.Head, buffer.MapClamp)
		return cursor.NewSelection(anchor, head)
	})
	s.invalidateAcrossLines(mapping, oldLine)
	return nil
}

// commit applies a plan atomically: consumed marks are removed, edits
// applied, surviving marks remapped, cursors replaced, stale lines
// invalidated, and new marks recorded. There is no observable state
// where the document has changed but the tracker has not.
func (s *Session) commit(p *Plan) error {
	oldLine := s.doc.LineStartAt(s.cursors.Primary().Head)

	for _, pos := range p.DropMarks {
		s.tracker.Remove(pos)
	}

	mapping, err := s.doc.Apply(p.Edits)
	if err != nil {
		return err
	}
	s.tracker.MapThrough(mapping, s.doc)
	s.cursors.SetAll(p.Selections)
	s.invalidateAcrossLines(mapping, oldLine)

	for _, m := range p.AddMarks {
		s.tracker.Add(m)
	}
	return nil
}

// invalidateAcrossLines clears all marks when the primary caret's
// pre-edit line start, mapped through the edit, no longer coincides
// with the line start at the new primary caret.
func (s *Session) invalidateAcrossLines(mapping *buffer.Mapping, oldLine buffer.Offset) {
	newLine := s.doc.LineStartAt(s.cursors.Primary().Head)
	mapped, ok := mapping.MapPos(oldLine, buffer.MapClamp)
	if !ok || mapped != newLine {
		s.tracker.Clear()
	}
}

// configAt resolves the delimiter configuration in effect at pos.
func (s *Session) configAt(pos buffer.Offset) Config {
	if s.config == nil {
		return DefaultConfig()
	}
	return s.config(pos).normalized()
}

// resolverNow builds a syntax resolver for the current document text.
func (s *Session) resolverNow() syntax.Resolver {
	if s.syntax == nil {
		return nil
	}
	return s.syntax(s.doc.Text())
}
