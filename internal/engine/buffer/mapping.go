package buffer

// MapMode selects how a position transforms across a batch of edits.
// Every transform takes an explicit mode; skip-over and deletion
// interactions in the pair engine depend on the distinction.
type MapMode uint8

const (
	// MapClamp maps a position to the nearest surviving position.
	// A position inside a replaced range maps to the replacement start.
	MapClamp MapMode = iota

	// MapTrackAfter moves a position with content inserted strictly
	// before it. An insertion exactly at the position does not move it,
	// and a position whose character was deleted reports as gone.
	MapTrackAfter
)

// Mapping describes how positions transform across a batch of edits.
// The edits are in pre-edit coordinates, ascending and non-overlapping,
// as validated by Document.Apply.
type Mapping struct {
	edits []Edit
}

// NewMapping creates a mapping from an edit batch.
// The edits must be ascending and non-overlapping.
func NewMapping(edits []Edit) *Mapping {
	return &Mapping{edits: edits}
}

// IsIdentity returns true if the mapping contains no edits.
func (m *Mapping) IsIdentity() bool {
	return len(m.edits) == 0
}

// MapPos transforms a pre-edit position into post-edit coordinates.
// The second return value is false only in MapTrackAfter mode, when the
// character at the position was deleted.
func (m *Mapping) MapPos(pos Offset, mode MapMode) (Offset, bool) {
	delta := 0
	for _, e := range m.edits {
		if pos < e.Range.Start {
			break
		}
		if pos == e.Range.Start && e.Range.IsEmpty() {
			// Insertion exactly at pos: the position does not move
			// with it. A later edit may still start here.
			continue
		}
		if pos >= e.Range.End {
			delta += e.Delta()
			continue
		}
		// The character at pos was removed by this edit.
		if mode == MapTrackAfter {
			return 0, false
		}
		return e.Range.Start + delta, true
	}
	return pos + delta, true
}

// Delta returns the total document length change of the batch.
func (m *Mapping) Delta() Offset {
	delta := 0
	for _, e := range m.edits {
		delta += e.Delta()
	}
	return delta
}
