// internal/words/word.go
//
// Word value type and input normalization.
//
// Every word that enters the game (dictionary load, guess submission, fixed
// answers) goes through Parse, which:
//   - trims surrounding whitespace,
//   - lower-cases with Russian casing rules,
//   - folds 'ё' into 'е',
//   - requires exactly Length letters of the alphabet а–я.
//
// A Word is a fixed-size rune array, so it is comparable, usable as a map key
// and copied by value.

package words

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Length is the number of letters in every playable word.
const Length = 5

// ErrMalformed reports input that does not normalize to Length alphabet letters.
var ErrMalformed = errors.New("words: malformed word")

// Word is a normalized five-letter word.
type Word [Length]rune

// yoFold collapses the 'ё' homoglyph into its base letter.
var yoFold = runes.Map(func(r rune) rune {
	if r == 'ё' {
		return 'е'
	}
	return r
})

// Normalize trims, lower-cases and folds letter variants.
// It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	t := transform.Chain(cases.Lower(language.Russian), yoFold)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Parse normalizes raw and validates it as a Word.
func Parse(raw string) (Word, error) {
	rs := []rune(Normalize(raw))
	if len(rs) != Length {
		return Word{}, fmt.Errorf("%w: %q has %d letters, want %d", ErrMalformed, raw, len(rs), Length)
	}
	var w Word
	for i, r := range rs {
		if !IsLetter(r) {
			return Word{}, fmt.Errorf("%w: %q contains %q", ErrMalformed, raw, r)
		}
		w[i] = r
	}
	return w, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for constants and tests.
func MustParse(raw string) Word {
	w, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return w
}

// IsLetter reports whether r belongs to the normalized alphabet.
func IsLetter(r rune) bool { return r >= 'а' && r <= 'я' }

// String returns the word as text.
func (w Word) String() string { return string(w[:]) }

// IsZero reports whether w is the zero value (no letters set).
func (w Word) IsZero() bool { return w == Word{} }

// Count returns how many times r occurs in w.
func (w Word) Count(r rune) int {
	n := 0
	for _, x := range w {
		if x == r {
			n++
		}
	}
	return n
}

// Contains reports whether r occurs anywhere in w.
func (w Word) Contains(r rune) bool { return w.Count(r) > 0 }

// Letters returns the distinct letters of w in first-occurrence order.
func (w Word) Letters() []rune {
	out := make([]rune, 0, Length)
	for i, r := range w {
		seen := false
		for _, p := range w[:i] {
			if p == r {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, r)
		}
	}
	return out
}
