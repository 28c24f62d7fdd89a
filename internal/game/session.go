// internal/game/session.go
//
// Game session: the state machine a player interacts with.
// Responsibilities:
//   - Pick and hold the secret answer for the session's lifetime.
//   - Validate, normalize and score guesses; track attempts and history.
//   - Feed every scored guess into the constraint model.
//   - Serve hints through the Selector.
//   - Track state transitions: playing → won/lost.
//
// A Session is owned by a single goroutine and does no locking. Failed calls
// leave the session unchanged.
package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

// DefaultAttempts is the attempt budget of a standard game.
const DefaultAttempts = 6

type options struct {
	answer        string
	attempts      int
	rng           *rand.Rand
	log           zerolog.Logger
	rec           Recorder
	hintsAfterEnd bool
}

// Option configures a Session at construction.
type Option func(*options)

// WithAnswer fixes the answer instead of drawing one at random. The word
// must be in the dictionary.
func WithAnswer(word string) Option { return func(o *options) { o.answer = word } }

// WithAttempts sets the attempt budget.
func WithAttempts(n int) Option { return func(o *options) { o.attempts = n } }

// WithRand sets the random source used for the answer draw and for hints.
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rng = r } }

// WithLogger sets the trace logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// WithRecorder sets the event sink. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.rec = r
		}
	}
}

// WithHintsAfterGameOver allows RequestHint on finished sessions.
func WithHintsAfterGameOver(allow bool) Option {
	return func(o *options) { o.hintsAfterEnd = allow }
}

// Session holds the state of a single game.
type Session struct {
	id            string
	dict          Dictionary
	answer        words.Word
	attempts      int
	remaining     int
	history       []words.Word
	patterns      []Pattern
	model         *Constraints
	selector      *Selector
	state         State
	hintsAfterEnd bool
	log           zerolog.Logger
	rec           Recorder
}

// New starts a session over dict.
func New(dict Dictionary, opts ...Option) (*Session, error) {
	if dict == nil {
		return nil, fmt.Errorf("%w: nil dictionary", ErrConfiguration)
	}
	if dict.Len() == 0 {
		return nil, ErrDictionaryEmpty
	}

	o := options{
		attempts: DefaultAttempts,
		log:      zerolog.Nop(),
		rec:      nopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.attempts <= 0 {
		return nil, fmt.Errorf("%w: attempts must be positive, got %d", ErrConfiguration, o.attempts)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var answer words.Word
	if o.answer != "" {
		w, err := words.Parse(o.answer)
		if err != nil {
			return nil, fmt.Errorf("%w: answer: %w", ErrConfiguration, err)
		}
		if !dict.Contains(w) {
			return nil, fmt.Errorf("%w: answer %q is not in the dictionary", ErrConfiguration, w.String())
		}
		answer = w
	} else {
		answer = dict.Random(o.rng)
	}

	s := &Session{
		id:            uuid.New().String(),
		dict:          dict,
		answer:        answer,
		attempts:      o.attempts,
		remaining:     o.attempts,
		model:         NewConstraints(),
		selector:      NewSelector(o.rng),
		state:         StatePlaying,
		hintsAfterEnd: o.hintsAfterEnd,
		rec:           o.rec,
	}
	s.log = o.log.With().Str("session", s.id).Logger()
	s.log.Info().Int("attempts", s.attempts).Int("words", dict.Len()).Msg("session started")
	s.record(EventStarted, "", "")
	return s, nil
}

// SubmitGuess scores raw against the answer and advances the session.
//
// Errors (nothing is mutated on error):
//   - ErrInvalidGuess if the session is over or raw is blank.
//   - ErrWordNotInDictionary if raw is not a known word. Malformed input
//     (wrong length, foreign letters) matches ErrInvalidGuess as well.
func (s *Session) SubmitGuess(raw string) (Pattern, error) {
	if s.IsOver() {
		return Pattern{}, fmt.Errorf("%w: game %s", ErrInvalidGuess, s.state)
	}
	if strings.TrimSpace(raw) == "" {
		return Pattern{}, fmt.Errorf("%w: empty guess", ErrInvalidGuess)
	}
	w, err := words.Parse(raw)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %w: %w", ErrWordNotInDictionary, ErrInvalidGuess, err)
	}
	if !s.dict.Contains(w) {
		return Pattern{}, fmt.Errorf("%w: %q", ErrWordNotInDictionary, w.String())
	}

	p := Compare(w, s.answer)
	s.history = append(s.history, w)
	s.patterns = append(s.patterns, p)
	s.model.Update(w, p)
	s.remaining--

	switch {
	case p.Solved():
		s.state = StateWon
	case s.remaining == 0:
		s.state = StateLost
	}

	s.log.Debug().
		Str("guess", w.String()).
		Str("pattern", p.String()).
		Int("remaining", s.remaining).
		Object("constraints", s.model).
		Msg("guess scored")
	s.record(EventGuess, w.String(), p.String())

	if s.IsOver() {
		s.log.Info().Str("state", string(s.state)).Int("used", s.Used()).Msg("session finished")
		s.record(EventFinished, "", "")
	}
	return p, nil
}

// RequestHint proposes a next guess. On a finished session it fails with
// ErrInvalidGuess unless the session was built WithHintsAfterGameOver(true);
// either way it never changes the session.
func (s *Session) RequestHint() (words.Word, error) {
	if s.IsOver() && !s.hintsAfterEnd {
		return words.Word{}, fmt.Errorf("%w: no hints, game %s", ErrInvalidGuess, s.state)
	}
	w, err := s.selector.Select(s.dict.Words(), s.model, s.history)
	if err != nil {
		return words.Word{}, err
	}
	s.log.Debug().Str("hint", w.String()).Int("guesses", len(s.history)).Msg("hint selected")
	s.record(EventHint, w.String(), "")
	return w, nil
}

// Candidates returns the dictionary words that fit every fact gathered so
// far and have not been guessed, in dictionary order.
func (s *Session) Candidates() []words.Word {
	var out []words.Word
	for _, w := range s.dict.Words() {
		if s.model.Accepts(w) && !slices.Contains(s.history, w) {
			out = append(out, w)
		}
	}
	return out
}

// ID returns the session identifier used in logs and the journal.
func (s *Session) ID() string { return s.id }

// State reports the lifecycle state.
func (s *Session) State() State { return s.state }

// IsOver reports whether the session reached a terminal state.
func (s *Session) IsOver() bool { return s.state != StatePlaying }

// Won reports whether the answer was guessed.
func (s *Session) Won() bool { return s.state == StateWon }

// Remaining returns the attempts left.
func (s *Session) Remaining() int { return s.remaining }

// Used returns the attempts spent.
func (s *Session) Used() int { return s.attempts - s.remaining }

// Answer returns the secret word, for the post-game reveal.
func (s *Session) Answer() words.Word { return s.answer }

// History returns a copy of the accepted guesses in order.
func (s *Session) History() []words.Word { return slices.Clone(s.history) }

// Patterns returns a copy of the feedback, aligned with History.
func (s *Session) Patterns() []Pattern { return slices.Clone(s.patterns) }

// Constraints returns a snapshot of the accumulated facts.
func (s *Session) Constraints() Facts { return s.model.Snapshot() }

func (s *Session) record(kind EventKind, word, pattern string) {
	s.rec.Record(Event{
		SessionID:   s.id,
		Kind:        kind,
		Word:        word,
		Pattern:     pattern,
		Remaining:   s.remaining,
		State:       s.state,
		Constraints: s.model.Summary(),
		At:          time.Now().UTC(),
	})
}
