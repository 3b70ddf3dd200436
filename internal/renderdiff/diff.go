// Package renderdiff computes dirty index ranges between render snapshots.
package renderdiff

import "github.com/verte-zerg/typr/internal/model"

// Diff returns the minimal ordered set of contiguous index ranges where the
// two snapshots differ. A cell is dirty when its state changed or when the
// cursor entered or left it; redrawing exactly these ranges is visually
// equivalent to redrawing everything. Snapshots of different lengths (a new
// target) degrade to one full-range span. Diff(s, s) is empty.
func Diff(prev, cur model.Snapshot) []model.Span {
	if len(prev.States) != len(cur.States) {
		if len(cur.States) == 0 {
			return nil
		}
		return []model.Span{{Start: 0, End: len(cur.States)}}
	}

	n := len(cur.States)
	dirty := func(i int) bool {
		if cur.States[i] != prev.States[i] {
			return true
		}
		// Cursor adjacency: the cell under the old or new cursor must
		// repaint its glyph even when the state is unchanged.
		if prev.Cursor != cur.Cursor && (i == prev.Cursor || i == cur.Cursor) {
			return true
		}
		return false
	}

	var spans []model.Span
	for i := 0; i < n; i++ {
		if !dirty(i) {
			continue
		}
		start := i
		for i+1 < n && dirty(i+1) {
			i++
		}
		spans = append(spans, model.Span{Start: start, End: i + 1})
	}
	return spans
}

// Differ retains a private copy of the previous snapshot so an event loop
// can ask for dirty spans after each input event without bookkeeping.
type Differ struct {
	prev model.Snapshot
}

// New returns a Differ with an empty previous snapshot; the first Update
// reports the whole target dirty.
func New() *Differ {
	return &Differ{}
}

// Update diffs the current snapshot against the retained one, then retains
// a copy of the current snapshot for the next call.
func (d *Differ) Update(cur model.Snapshot) []model.Span {
	spans := Diff(d.prev, cur)
	states := make([]model.CharState, len(cur.States))
	copy(states, cur.States)
	d.prev = model.Snapshot{States: states, Cursor: cur.Cursor}
	return spans
}

// Reset forgets the retained snapshot, forcing a full-range diff on the
// next Update. Used when a new session starts.
func (d *Differ) Reset() {
	d.prev = model.Snapshot{}
}
