// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Pattern: the marks for one guess, aligned with its letters.
//   - State: coarse session state (playing/won/lost).
//   - Dictionary: the word source a Session consumes.
//   - Event/Recorder: optional side channel for journaling.

package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer, or all of its
//     occurrences are already accounted for in the same guess.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Symbol returns the one-character form used in text output.
func (m Mark) Symbol() byte {
	switch m {
	case MarkHit:
		return '+'
	case MarkPresent:
		return '^'
	case MarkMiss:
		return '-'
	}
	return '?'
}

// valid reports whether m is one of the three known marks.
func (m Mark) valid() bool {
	return m == MarkHit || m == MarkPresent || m == MarkMiss
}

// Pattern is the feedback for one guess.
type Pattern [words.Length]Mark

// String renders the pattern as "+^-^-".
func (p Pattern) String() string {
	var b strings.Builder
	for _, m := range p {
		b.WriteByte(m.Symbol())
	}
	return b.String()
}

// Solved reports whether every position is a hit.
func (p Pattern) Solved() bool {
	for _, m := range p {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// ParsePattern reads the "+^-" text form back into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != words.Length {
		return p, fmt.Errorf("pattern %q: want %d symbols", s, words.Length)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			p[i] = MarkHit
		case '^':
			p[i] = MarkPresent
		case '-':
			p[i] = MarkMiss
		default:
			return p, fmt.Errorf("pattern %q: unknown symbol %q", s, s[i])
		}
	}
	return p, nil
}

// State is the coarse lifecycle state of a Session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Dictionary is the word source consumed by a Session.
// *words.Dictionary satisfies it.
type Dictionary interface {
	Contains(w words.Word) bool
	Random(r *rand.Rand) words.Word
	Words() []words.Word
	Len() int
}

// EventKind names a journaled session event.
type EventKind string

const (
	EventStarted  EventKind = "started"
	EventGuess    EventKind = "guess"
	EventHint     EventKind = "hint"
	EventFinished EventKind = "finished"
)

// Event is a trace record emitted by a Session. Its content is informational
// and carries no behavior.
type Event struct {
	SessionID   string
	Kind        EventKind
	Word        string // guess or hint; empty for started/finished
	Pattern     string // "+^-" form; guess events only
	Remaining   int
	State       State
	Constraints string // Constraints.Summary after the event
	At          time.Time
}

// Recorder receives session events. Implementations must not call back into
// the Session.
type Recorder interface {
	Record(ev Event)
}

// nopRecorder discards events.
type nopRecorder struct{}

func (nopRecorder) Record(Event) {}
