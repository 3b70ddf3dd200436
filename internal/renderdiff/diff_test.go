package renderdiff

import (
	"testing"

	"github.com/verte-zerg/typr/internal/model"
)

func states(s string) []model.CharState {
	out := make([]model.CharState, len(s))
	for i, c := range s {
		switch c {
		case 'c':
			out[i] = model.Correct
		case 'i':
			out[i] = model.Incorrect
		case 'f':
			out[i] = model.Corrected
		default:
			out[i] = model.Untyped
		}
	}
	return out
}

func TestSelfDiffIsEmpty(t *testing.T) {
	snap := model.Snapshot{States: states("cciu"), Cursor: 3}
	if spans := Diff(snap, snap); len(spans) != 0 {
		t.Fatalf("expected no dirty spans for self-diff, got %v", spans)
	}
}

func TestSingleKeystrokeDirtiesCursorNeighborhood(t *testing.T) {
	prev := model.Snapshot{States: states("cuuu"), Cursor: 1}
	cur := model.Snapshot{States: states("ccuu"), Cursor: 2}
	spans := Diff(prev, cur)
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %v", spans)
	}
	// Index 1 changed state, index 2 gained the cursor.
	if spans[0] != (model.Span{Start: 1, End: 3}) {
		t.Fatalf("unexpected span %v", spans[0])
	}
}

func TestCursorOnlyMoveIsDirty(t *testing.T) {
	// Backspace over a correct char leaves states untouched.
	prev := model.Snapshot{States: states("ciuu"), Cursor: 2}
	cur := model.Snapshot{States: states("ciuu"), Cursor: 1}
	spans := Diff(prev, cur)
	if len(spans) != 1 || spans[0] != (model.Span{Start: 1, End: 3}) {
		t.Fatalf("expected cursor cells dirty, got %v", spans)
	}
}

func TestDisjointChangesYieldSeparateSpans(t *testing.T) {
	prev := model.Snapshot{States: states("cuuuuuuc"), Cursor: 0}
	cur := model.Snapshot{States: states("iuuuuuui"), Cursor: 0}
	spans := Diff(prev, cur)
	want := []model.Span{{Start: 0, End: 1}, {Start: 7, End: 8}}
	if len(spans) != 2 || spans[0] != want[0] || spans[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, spans)
	}
}

func TestDifferentLengthsDegradeToFullRange(t *testing.T) {
	prev := model.Snapshot{States: states("cc"), Cursor: 2}
	cur := model.Snapshot{States: states("uuuu"), Cursor: 0}
	spans := Diff(prev, cur)
	if len(spans) != 1 || spans[0] != (model.Span{Start: 0, End: 4}) {
		t.Fatalf("expected full-range span, got %v", spans)
	}
}

func TestDifferRetainsPreviousSnapshot(t *testing.T) {
	d := New()
	first := model.Snapshot{States: states("uuu"), Cursor: 0}
	if spans := d.Update(first); len(spans) != 1 || spans[0] != (model.Span{Start: 0, End: 3}) {
		t.Fatalf("expected full-range span on first update, got %v", spans)
	}
	if spans := d.Update(first); len(spans) != 0 {
		t.Fatalf("expected no dirty spans on unchanged snapshot, got %v", spans)
	}

	second := model.Snapshot{States: states("cuu"), Cursor: 1}
	spans := d.Update(second)
	if len(spans) != 1 || spans[0] != (model.Span{Start: 0, End: 2}) {
		t.Fatalf("unexpected spans %v", spans)
	}
}

func TestDifferCopyIsPrivate(t *testing.T) {
	d := New()
	live := states("uuu")
	d.Update(model.Snapshot{States: live, Cursor: 0})
	// Mutating the caller's slice must not corrupt the retained copy.
	live[0] = model.Correct
	spans := d.Update(model.Snapshot{States: live, Cursor: 1})
	if len(spans) != 1 || spans[0] != (model.Span{Start: 0, End: 2}) {
		t.Fatalf("expected retained copy to be independent, got %v", spans)
	}
}

func TestDifferReset(t *testing.T) {
	d := New()
	snap := model.Snapshot{States: states("cc"), Cursor: 2}
	d.Update(snap)
	d.Reset()
	if spans := d.Update(snap); len(spans) != 1 || spans[0] != (model.Span{Start: 0, End: 2}) {
		t.Fatalf("expected full-range span after reset, got %v", spans)
	}
}
