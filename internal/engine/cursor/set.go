package cursor

import "sort"

// Set manages multiple cursors/selections.
// Selections are kept sorted by position and non-overlapping.
// The first selection is the "primary" selection.
type Set struct {
	selections []Selection
}

// NewSet creates a cursor set with a single selection.
func NewSet(initial Selection) *Set {
	return &Set{selections: []Selection{initial}}
}

// NewSetAt creates a cursor set with a single cursor at the given offset.
func NewSetAt(offset Offset) *Set {
	return &Set{selections: []Selection{NewCursor(offset)}}
}

// NewSetFromSlice creates a cursor set from a slice of selections.
// The selections will be normalized (sorted and merged).
func NewSetFromSlice(selections []Selection) *Set {
	if len(selections) == 0 {
		return NewSetAt(0)
	}
	s := &Set{selections: make([]Selection, len(selections))}
	copy(s.selections, selections)
	s.normalize()
	return s
}

// Primary returns the primary (first) selection.
func (s *Set) Primary() Selection {
	if len(s.selections) == 0 {
		return Selection{}
	}
	return s.selections[0]
}

// All returns a copy of all selections.
func (s *Set) All() []Selection {
	result := make([]Selection, len(s.selections))
	copy(result, s.selections)
	return result
}

// Count returns the number of cursors/selections.
func (s *Set) Count() int {
	return len(s.selections)
}

// Add adds a new selection, merging with overlapping ones.
func (s *Set) Add(sel Selection) {
	s.selections = append(s.selections, sel)
	s.normalize()
}

// Set replaces all selections with a single selection.
func (s *Set) Set(sel Selection) {
	s.selections = []Selection{sel}
}

// SetAll replaces all selections.
func (s *Set) SetAll(sels []Selection) {
	if len(sels) == 0 {
		s.selections = []Selection{NewCursor(0)}
		return
	}
	s.selections = make([]Selection, len(sels))
	copy(s.selections, sels)
	s.normalize()
}

// MapInPlace applies f to each selection in place.
func (s *Set) MapInPlace(f func(sel Selection) Selection) {
	for i, sel := range s.selections {
		s.selections[i] = f(sel)
	}
	s.normalize()
}

// HasSelection returns true if any selection is non-empty (has extent).
func (s *Set) HasSelection() bool {
	for _, sel := range s.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// Clamp clamps all selections to the valid range [0, maxOffset].
func (s *Set) Clamp(maxOffset Offset) {
	for i, sel := range s.selections {
		s.selections[i] = sel.Clamp(maxOffset)
	}
	s.normalize()
}

// Clone returns a deep copy of the cursor set.
func (s *Set) Clone() *Set {
	clone := &Set{selections: make([]Selection, len(s.selections))}
	copy(clone.selections, s.selections)
	return clone
}

// normalize sorts selections and merges overlapping ones.
func (s *Set) normalize() {
	if len(s.selections) <= 1 {
		return
	}

	sort.Slice(s.selections, func(i, j int) bool {
		si, sj := s.selections[i].Start(), s.selections[j].Start()
		if si != sj {
			return si < sj
		}
		return s.selections[i].End() > s.selections[j].End()
	})

	merged := s.selections[:1]
	for _, sel := range s.selections[1:] {
		last := &merged[len(merged)-1]
		if sel.Overlaps(*last) {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	s.selections = merged
}

// Equals returns true if two cursor sets have the same selections.
func (s *Set) Equals(other *Set) bool {
	if other == nil || s.Count() != other.Count() {
		return false
	}
	for i, sel := range s.selections {
		if !sel.Equals(other.selections[i]) {
			return false
		}
	}
	return true
}
