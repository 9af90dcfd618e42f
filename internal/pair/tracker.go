package pair

import (
	"sort"

	"github.com/dshills/autopair/internal/engine/buffer"
)

// Mark records the position of a closing delimiter that the engine
// inserted automatically and that has not yet been consumed by a skip
// or a user edit. Positions are rune offsets; each mark covers the
// single code point at Pos.
type Mark struct {
	Pos    buffer.Offset
	Closer rune
}

// Tracker is a position-ordered set of marks. It is owned by exactly
// one Session and updated only through the session's edit application;
// it carries no lock of its own.
type Tracker struct {
	marks []Mark
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Query reports whether the character at pos is a tracked auto-inserted
// closer.
func (t *Tracker) Query(pos buffer.Offset) bool {
	_, ok := t.find(pos)
	return ok
}

// Add records a mark. Adding at an already-marked position replaces the
// existing mark.
func (t *Tracker) Add(m Mark) {
	if i, ok := t.find(m.Pos); ok {
		t.marks[i] = m
		return
	}
	t.marks = append(t.marks, m)
	sort.Slice(t.marks, func(i, j int) bool {
		return t.marks[i].Pos < t.marks[j].Pos
	})
}

// Remove deletes the mark at pos, if any.
func (t *Tracker) Remove(pos buffer.Offset) {
	if i, ok := t.find(pos); ok {
		t.marks = append(t.marks[:i], t.marks[i+1:]...)
	}
}

// Clear removes all marks.
func (t *Tracker) Clear() {
	t.marks = t.marks[:0]
}

// Count returns the number of tracked marks.
func (t *Tracker) Count() int {
	return len(t.marks)
}

// Marks returns a copy of all marks in position order.
func (t *Tracker) Marks() []Mark {
	out := make([]Mark, len(t.marks))
	copy(out, t.marks)
	return out
}

// MapThrough remaps every mark across an edit. A mark is dropped when
// track-after mapping reports its position deleted, or when the mapped
// position no longer holds the mark's closer in the post-edit document.
// Ambiguity is resolved by dropping, never by guessing.
func (t *Tracker) MapThrough(m *buffer.Mapping, doc *buffer.Document) {
	if m.IsIdentity() {
		return
	}
	kept := t.marks[:0]
	for _, mark := range t.marks {
		pos, ok := m.MapPos(mark.Pos, buffer.MapTrackAfter)
		if !ok {
			continue
		}
		if r, ok := doc.RuneAt(pos); !ok || r != mark.Closer {
			continue
		}
		kept = append(kept, Mark{Pos: pos, Closer: mark.Closer})
	}
	t.marks = kept
}

// find locates the mark at pos.
func (t *Tracker) find(pos buffer.Offset) (int, bool) {
	i := sort.Search(len(t.marks), func(i int) bool {
		return t.marks[i].Pos >= pos
	})
	if i < len(t.marks) && t.marks[i].Pos == pos {
		return i, true
	}
	return 0, false
}
