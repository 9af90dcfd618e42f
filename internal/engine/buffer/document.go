package buffer

import (
	"errors"
	"strings"
	"sync"
)

// Errors returned by document operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrEditsOverlap     = errors.New("edits overlap or are not in ascending order")
)

// Document is a code-point addressable text store.
// All methods are thread-safe; mutation happens only through Apply.
type Document struct {
	mu         sync.RWMutex
	text       []rune
	revisionID RevisionID
	readOnly   bool
}

// NewDocument creates a new empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		revisionID: NewRevisionID(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDocumentFromString creates a document with initial content.
func NewDocumentFromString(s string, opts ...Option) *Document {
	d := NewDocument(opts...)
	d.text = []rune(s)
	return d
}

// Read Operations

// Text returns the full document content as a string.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return string(d.text)
}

// Len returns the total length of the document in runes.
func (d *Document) Len() Offset {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.text)
}

// IsEmpty returns true if the document is empty.
func (d *Document) IsEmpty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.text) == 0
}

// Slice returns the text in [start, end), clamped to the document bounds.
func (d *Document) Slice(start, end Offset) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return string(d.sliceLocked(start, end))
}

func (d *Document) sliceLocked(start, end Offset) []rune {
	if start < 0 {
		start = 0
	}
	if end > len(d.text) {
		end = len(d.text)
	}
	if start >= end {
		return nil
	}
	return d.text[start:end]
}

// RuneAt returns the rune at the given offset.
// The second return value is false if the offset is out of range.
func (d *Document) RuneAt(offset Offset) (rune, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if offset < 0 || offset >= len(d.text) {
		return 0, false
	}
	return d.text[offset], true
}

// Line Operations

// LineStartAt returns the offset of the start of the line containing pos.
func (d *Document) LineStartAt(pos Offset) Offset {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lineStartLocked(pos)
}

func (d *Document) lineStartLocked(pos Offset) Offset {
	if pos > len(d.text) {
		pos = len(d.text)
	}
	for i := pos - 1; i >= 0; i-- {
		if d.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// LineEndAt returns the offset of the end of the line containing pos
// (the position of the newline, or the document end on the last line).
func (d *Document) LineEndAt(pos Offset) Offset {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(d.text); i++ {
		if d.text[i] == '\n' {
			return i
		}
	}
	return len(d.text)
}

// LineAt returns the text of the line containing pos, without the newline.
func (d *Document) LineAt(pos Offset) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	start := d.lineStartLocked(pos)
	end := start
	for end < len(d.text) && d.text[end] != '\n' {
		end++
	}
	return string(d.text[start:end])
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return strings.Count(string(d.text), "\n") + 1
}

// Write Operations

// Insert inserts text at the given offset.
func (d *Document) Insert(offset Offset, text string) (*Mapping, error) {
	return d.Apply([]Edit{NewInsert(offset, text)})
}

// Delete removes text in [start, end).
func (d *Document) Delete(start, end Offset) (*Mapping, error) {
	return d.Apply([]Edit{NewDelete(start, end)})
}

// Replace replaces text in [start, end) with new text.
func (d *Document) Replace(start, end Offset, text string) (*Mapping, error) {
	return d.Apply([]Edit{NewEdit(NewRange(start, end), text)})
}

// Apply applies a batch of edits atomically and returns the position
// mapping from pre-edit to post-edit coordinates.
// Edits must be sorted ascending by start offset and must not overlap.
func (d *Document) Apply(edits []Edit) (*Mapping, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.readOnly {
		return nil, ErrReadOnly
	}

	// Validate edits are ascending and non-overlapping.
	for i := 1; i < len(edits); i++ {
		if edits[i].Range.Start < edits[i-1].Range.End {
			return nil, ErrEditsOverlap
		}
	}

	// Validate all ranges.
	docLen := len(d.text)
	for _, edit := range edits {
		if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End ||
			edit.Range.End > docLen {
			return nil, ErrRangeInvalid
		}
	}

	if len(edits) == 0 {
		return NewMapping(nil), nil
	}

	// Rebuild the text in one pass.
	out := make([]rune, 0, docLen)
	prev := 0
	for _, edit := range edits {
		out = append(out, d.text[prev:edit.Range.Start]...)
		out = append(out, []rune(edit.NewText)...)
		prev = edit.Range.End
	}
	out = append(out, d.text[prev:]...)

	d.text = out
	d.revisionID = NewRevisionID()

	return NewMapping(edits), nil
}

// Document State

// RevisionID returns the current revision ID.
func (d *Document) RevisionID() RevisionID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revisionID
}

// ReadOnly reports whether the document rejects edits.
func (d *Document) ReadOnly() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readOnly
}

// SetReadOnly toggles the read-only state.
func (d *Document) SetReadOnly(ro bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readOnly = ro
}
