package pair

import (
	"testing"

	"github.com/dshills/autopair/internal/engine/buffer"
)

func TestTrackerAddQueryRemove(t *testing.T) {
	tr := NewTracker()

	if tr.Query(3) {
		t.Error("empty tracker must not report marks")
	}

	tr.Add(Mark{Pos: 5, Closer: ')'})
	tr.Add(Mark{Pos: 1, Closer: '"'})
	if !tr.Query(5) || !tr.Query(1) {
		t.Error("expected both marks tracked")
	}
	if tr.Count() != 2 {
		t.Errorf("expected 2 marks, got %d", tr.Count())
	}

	marks := tr.Marks()
	if marks[0].Pos != 1 || marks[1].Pos != 5 {
		t.Errorf("expected position order, got %v", marks)
	}

	// Adding at a marked position replaces the mark.
	tr.Add(Mark{Pos: 5, Closer: ']'})
	if tr.Count() != 2 {
		t.Errorf("expected replacement, got %d marks", tr.Count())
	}
	if tr.Marks()[1].Closer != ']' {
		t.Error("expected replaced closer")
	}

	tr.Remove(5)
	if tr.Query(5) {
		t.Error("expected mark removed")
	}
	tr.Remove(99) // no-op

	tr.Clear()
	if tr.Count() != 0 {
		t.Errorf("expected empty tracker, got %d marks", tr.Count())
	}
}

func TestTrackerMapThroughShift(t *testing.T) {
	doc := buffer.NewDocumentFromString("()")
	tr := NewTracker()
	tr.Add(Mark{Pos: 1, Closer: ')'})

	mapping, err := doc.Insert(0, "ab")
	if err != nil {
		t.Fatal(err)
	}
	tr.MapThrough(mapping, doc)

	if tr.Query(1) {
		t.Error("expected mark moved off old position")
	}
	if !tr.Query(3) {
		t.Error("expected mark shifted by the insertion")
	}
}

func TestTrackerMapThroughDeleted(t *testing.T) {
	doc := buffer.NewDocumentFromString("()")
	tr := NewTracker()
	tr.Add(Mark{Pos: 1, Closer: ')'})

	mapping, err := doc.Delete(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	tr.MapThrough(mapping, doc)

	if tr.Count() != 0 {
		t.Error("expected mark dropped when its closer is deleted")
	}
}

func TestTrackerMapThroughClosingMismatch(t *testing.T) {
	doc := buffer.NewDocumentFromString("()")
	tr := NewTracker()
	tr.Add(Mark{Pos: 1, Closer: ')'})

	// Insertion exactly at the mark does not move it, so the mark now
	// points at the inserted rune instead of its closer.
	mapping, err := doc.Insert(1, "x")
	if err != nil {
		t.Fatal(err)
	}
	tr.MapThrough(mapping, doc)

	if tr.Count() != 0 {
		t.Error("expected mark dropped when the mapped rune is not its closer")
	}
}

func TestTrackerMapThroughIdentity(t *testing.T) {
	doc := buffer.NewDocumentFromString("()")
	tr := NewTracker()
	tr.Add(Mark{Pos: 1, Closer: ')'})

	tr.MapThrough(buffer.NewMapping(nil), doc)
	if !tr.Query(1) {
		t.Error("identity mapping must keep marks")
	}
}
