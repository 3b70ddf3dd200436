// Package model defines shared data structures.
package model

import "time"

// Mode selects the source of practice content.
type Mode int

// Practice content modes, cycled in this order.
const (
	ModeAscii Mode = iota
	ModeWords
	ModeText
)

// String returns the mode name used in flags, config, and storage.
func (m Mode) String() string {
	switch m {
	case ModeAscii:
		return "ascii"
	case ModeWords:
		return "words"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	switch m {
	case ModeAscii:
		return ModeWords
	case ModeWords:
		return ModeText
	default:
		return ModeAscii
	}
}

// CharState is the resolution of one target position.
type CharState uint8

// Per-position states. Corrected is kept distinct from Correct so the
// original mistake still counts toward accuracy.
const (
	Untyped CharState = iota
	Correct
	Incorrect
	Corrected
)

// KeystrokeKind distinguishes the two input events a session records.
type KeystrokeKind uint8

// Keystroke kinds.
const (
	KindInsert KeystrokeKind = iota
	KindBackspace
)

// Keystroke is one timestamped input event. Char is meaningful only for
// KindInsert. Index is the target position the event affected.
type Keystroke struct {
	At    time.Time
	Kind  KeystrokeKind
	Char  rune
	Index int
}

// Snapshot is a read-only view of a session's per-position states and
// cursor, consumed by the render differ and the presentation layer.
type Snapshot struct {
	States []CharState
	Cursor int
}

// Span is a contiguous half-open index range [Start, End) needing redraw.
type Span struct {
	Start int
	End   int
}

// MistakeCount pairs a character with how often it was mistyped.
type MistakeCount struct {
	Char  rune
	Count int
}

// Config defines practice settings.
type Config struct {
	Mode          Mode
	Chars         int
	TargetLen     int
	TextFile      string
	TrackMistakes bool
	Notifications bool
}

// SessionRecord captures a completed typing session for history.
type SessionRecord struct {
	ID         int64
	StartedAt  time.Time
	EndedAt    time.Time
	Mode       string
	TargetLen  int
	Correct    int
	Corrected  int
	Incorrect  int
	DurationMs int64
}
