package buffer

import "fmt"

// Range represents a half-open range [Start, End) of rune offsets.
type Range struct {
	Start Offset
	End   Offset
}

// NewRange creates a range, swapping the bounds if given backwards.
func NewRange(start, end Offset) Range {
	if start > end {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// IsEmpty returns true if the range has no extent.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the length of the range in runes.
func (r Range) Len() Offset {
	return r.End - r.Start
}

// Contains returns true if the offset is within [Start, End).
func (r Range) Contains(offset Offset) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if this range overlaps with another.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
