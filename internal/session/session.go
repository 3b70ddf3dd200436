// Package session implements the typing session state machine.
package session

import (
	"time"

	"github.com/verte-zerg/typr/internal/model"
)

// State is the lifecycle phase of a session.
type State int

// Session states. Idle lasts until the first keystroke; Complete is
// terminal except for Reset.
const (
	Idle State = iota
	Running
	Complete
)

// MistakeRecorder receives the target character the user failed to produce.
// The ledger satisfies this; tests use lightweight fakes.
type MistakeRecorder interface {
	Record(r rune)
}

// Session owns one practice run: the immutable target, the per-position
// states, the append-only keystroke log, and the cursor. All operations
// are synchronous and driven by a single event loop.
type Session struct {
	target     []rune
	states     []model.CharState
	typed      []rune
	keystrokes []model.Keystroke
	cursor     int
	state      State
	startedAt  time.Time
	recorder   MistakeRecorder
}

// New creates an idle session for the given target. The recorder may be nil
// when mistake tracking is disabled.
func New(target []rune, recorder MistakeRecorder) *Session {
	return &Session{
		target:   target,
		states:   make([]model.CharState, len(target)),
		typed:    make([]rune, len(target)),
		recorder: recorder,
	}
}

// TypeChar resolves the cursor position against the typed rune. The first
// keystroke starts the clock. Comparison is by exact scalar match; a
// mismatch is attributed to the target character, the one the user failed
// to produce. Rejected as a no-op once Complete.
func (s *Session) TypeChar(r rune, now time.Time) {
	if s.state == Complete || s.cursor >= len(s.target) {
		return
	}
	if s.state == Idle {
		s.state = Running
		s.startedAt = now
	}
	pos := s.cursor
	if r == s.target[pos] {
		if s.states[pos] == model.Incorrect {
			s.states[pos] = model.Corrected
		} else {
			s.states[pos] = model.Correct
		}
	} else {
		s.states[pos] = model.Incorrect
		if s.recorder != nil {
			s.recorder.Record(s.target[pos])
		}
	}
	s.typed[pos] = r
	s.keystrokes = append(s.keystrokes, model.Keystroke{
		At:    now,
		Kind:  model.KindInsert,
		Char:  r,
		Index: pos,
	})
	s.cursor++
	if s.cursor == len(s.target) {
		s.state = Complete
	}
}

// Backspace steps the cursor back one position. The vacated state is left
// as-is; retyping it performs the Incorrect to Corrected transition. No-op
// at the start of the target or once Complete.
func (s *Session) Backspace(now time.Time) {
	if s.state == Complete || s.cursor == 0 {
		return
	}
	s.cursor--
	s.keystrokes = append(s.keystrokes, model.Keystroke{
		At:    now,
		Kind:  model.KindBackspace,
		Index: s.cursor,
	})
}

// Reset returns the session to Idle over the same target: all states
// Untyped, keystroke log cleared, cursor at zero.
func (s *Session) Reset() {
	for i := range s.states {
		s.states[i] = model.Untyped
	}
	s.keystrokes = s.keystrokes[:0]
	s.cursor = 0
	s.state = Idle
	s.startedAt = time.Time{}
}

// Snapshot returns a read-only view of the current states and cursor. The
// slice aliases session memory; consumers that outlive the next mutation
// must copy it.
func (s *Session) Snapshot() model.Snapshot {
	return model.Snapshot{States: s.states, Cursor: s.cursor}
}

// Target returns the immutable target runes.
func (s *Session) Target() []rune {
	return s.target
}

// TypedAt returns the rune most recently typed at a resolved position.
func (s *Session) TypedAt(i int) rune {
	return s.typed[i]
}

// Keystrokes returns the append-only event log.
func (s *Session) Keystrokes() []model.Keystroke {
	return s.keystrokes
}

// State reports the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// IsComplete reports whether the cursor has resolved the whole target.
func (s *Session) IsComplete() bool {
	return s.state == Complete
}

// StartedAt returns the first-keystroke time, zero while Idle.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}
