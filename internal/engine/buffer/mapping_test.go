package buffer

import "testing"

func TestMapPosInsertBefore(t *testing.T) {
	m := NewMapping([]Edit{NewInsert(2, "xy")})

	got, ok := m.MapPos(5, MapTrackAfter)
	if !ok || got != 7 {
		t.Errorf("expected 7, got %d (ok=%v)", got, ok)
	}

	got, ok = m.MapPos(5, MapClamp)
	if !ok || got != 7 {
		t.Errorf("expected 7, got %d (ok=%v)", got, ok)
	}
}

func TestMapPosInsertAtPosition(t *testing.T) {
	m := NewMapping([]Edit{NewInsert(5, "xy")})

	// Content inserted exactly at the position does not move it.
	got, ok := m.MapPos(5, MapTrackAfter)
	if !ok || got != 5 {
		t.Errorf("expected 5, got %d (ok=%v)", got, ok)
	}
}

func TestMapPosInsertAfter(t *testing.T) {
	m := NewMapping([]Edit{NewInsert(8, "xy")})

	got, ok := m.MapPos(5, MapTrackAfter)
	if !ok || got != 5 {
		t.Errorf("expected 5, got %d (ok=%v)", got, ok)
	}
}

func TestMapPosDeleted(t *testing.T) {
	m := NewMapping([]Edit{NewDelete(3, 6)})

	if _, ok := m.MapPos(4, MapTrackAfter); ok {
		t.Error("expected track-after to report deletion")
	}

	got, ok := m.MapPos(4, MapClamp)
	if !ok || got != 3 {
		t.Errorf("expected clamp to 3, got %d (ok=%v)", got, ok)
	}
}

func TestMapPosDeletionStart(t *testing.T) {
	m := NewMapping([]Edit{NewDelete(3, 6)})

	// The character at the deletion start is removed.
	if _, ok := m.MapPos(3, MapTrackAfter); ok {
		t.Error("expected deletion at range start")
	}
}

func TestMapPosDeletionEnd(t *testing.T) {
	m := NewMapping([]Edit{NewDelete(3, 6)})

	// The character at the deletion end survives and shifts left.
	got, ok := m.MapPos(6, MapTrackAfter)
	if !ok || got != 3 {
		t.Errorf("expected 3, got %d (ok=%v)", got, ok)
	}
}

func TestMapPosReplace(t *testing.T) {
	m := NewMapping([]Edit{NewEdit(NewRange(2, 4), "abc")})

	got, ok := m.MapPos(6, MapTrackAfter)
	if !ok || got != 7 {
		t.Errorf("expected 7, got %d (ok=%v)", got, ok)
	}

	got, ok = m.MapPos(3, MapClamp)
	if !ok || got != 2 {
		t.Errorf("expected clamp to 2, got %d (ok=%v)", got, ok)
	}
}

func TestMapPosMultipleEdits(t *testing.T) {
	m := NewMapping([]Edit{
		NewInsert(1, "()"),
		NewDelete(4, 5),
		NewInsert(8, "x"),
	})

	// pos 6: +2 from first insert, -1 from delete, unaffected by insert at 8.
	got, ok := m.MapPos(6, MapTrackAfter)
	if !ok || got != 7 {
		t.Errorf("expected 7, got %d (ok=%v)", got, ok)
	}
}

func TestMappingDelta(t *testing.T) {
	m := NewMapping([]Edit{
		NewInsert(0, "ab"),
		NewDelete(5, 8),
	})

	if got := m.Delta(); got != -1 {
		t.Errorf("expected delta -1, got %d", got)
	}
}

func TestMappingIdentity(t *testing.T) {
	m := NewMapping(nil)

	if !m.IsIdentity() {
		t.Error("expected identity mapping")
	}

	got, ok := m.MapPos(9, MapTrackAfter)
	if !ok || got != 9 {
		t.Errorf("expected 9, got %d (ok=%v)", got, ok)
	}
}

func TestMappingRuneCounts(t *testing.T) {
	// Multi-byte replacement text counts runes, not bytes.
	m := NewMapping([]Edit{NewInsert(0, "😀π")})

	got, ok := m.MapPos(1, MapTrackAfter)
	if !ok || got != 3 {
		t.Errorf("expected 3, got %d (ok=%v)", got, ok)
	}
}
