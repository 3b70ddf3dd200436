// Package ledger tracks mistyped-character counts across sessions.
package ledger

import (
	"context"
	"sort"

	"github.com/verte-zerg/typr/internal/model"
)

// Ledger is the process-wide histogram of mistyped characters. It is owned
// by the caller and passed by reference; the single event-processing thread
// is the only mutator, so no locking is used.
type Ledger struct {
	counts map[rune]int
	order  []rune // first-seen insertion order, for deterministic ties
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{counts: map[rune]int{}}
}

// Record increments the count for the character, creating an entry on
// first sight.
func (l *Ledger) Record(r rune) {
	if _, ok := l.counts[r]; !ok {
		l.order = append(l.order, r)
	}
	l.counts[r]++
}

// Count returns the recorded mistakes for a character.
func (l *Ledger) Count(r rune) int {
	return l.counts[r]
}

// Len returns the number of distinct mistyped characters.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Clear empties the whole mapping.
func (l *Ledger) Clear() {
	l.counts = map[rune]int{}
	l.order = nil
}

// TopN returns up to n entries sorted by count descending, ties broken by
// first-seen insertion order. The sort is stable, so repeated calls on an
// unchanged ledger yield identical output.
func (l *Ledger) TopN(n int) []model.MistakeCount {
	entries := l.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Entries returns all (char, count) pairs in first-seen insertion order,
// the ledger's stable serializable representation.
func (l *Ledger) Entries() []model.MistakeCount {
	out := make([]model.MistakeCount, 0, len(l.order))
	for _, r := range l.order {
		out = append(out, model.MistakeCount{Char: r, Count: l.counts[r]})
	}
	return out
}

// Store is the persistence collaborator for the ledger.
type Store interface {
	ListMistakes(ctx context.Context) ([]model.MistakeCount, error)
	ReplaceMistakes(ctx context.Context, entries []model.MistakeCount) error
}

// Load builds a ledger from persisted storage. Missing or corrupt storage
// yields an empty ledger and the error for optional logging; the
// application never fails on it.
func Load(ctx context.Context, st Store) (*Ledger, error) {
	l := New()
	if st == nil {
		return l, nil
	}
	entries, err := st.ListMistakes(ctx)
	if err != nil {
		return New(), err
	}
	for _, e := range entries {
		if e.Count <= 0 {
			continue
		}
		l.order = append(l.order, e.Char)
		l.counts[e.Char] = e.Count
	}
	return l, nil
}

// Save persists the ledger's current entries, replacing prior contents.
func (l *Ledger) Save(ctx context.Context, st Store) error {
	if st == nil {
		return nil
	}
	return st.ReplaceMistakes(ctx, l.Entries())
}
