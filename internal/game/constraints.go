// internal/game/constraints.go
//
// Constraint model accumulated from feedback across guesses.
//
// Facts kept:
//   - fixed:    position → letter, set only by a Hit.
//   - required: letters known to occur somewhere in the answer.
//   - excluded: letters known to be absent from the answer.
//   - minCount: letter → confirmed minimum number of occurrences.
//
// Presence is permanent once observed; absence is a rolling hypothesis that a
// later Hit/Present evicts. minCount only grows. A letter is never required
// and excluded at the same time.

package game

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

// Constraints is the mutable constraint model. The zero value is not usable;
// call NewConstraints.
type Constraints struct {
	fixed    map[int]rune
	required mapset.Set[rune]
	excluded mapset.Set[rune]
	minCount map[rune]int
}

// NewConstraints returns a model that accepts every word.
func NewConstraints() *Constraints {
	return &Constraints{
		fixed:    make(map[int]rune, words.Length),
		required: mapset.NewThreadUnsafeSet[rune](),
		excluded: mapset.NewThreadUnsafeSet[rune](),
		minCount: make(map[rune]int),
	}
}

// Update folds one guess and its pattern into the model.
// The pattern must come from Compare; an unknown mark panics.
func (c *Constraints) Update(guess words.Word, p Pattern) {
	for i, m := range p {
		if !m.valid() {
			panic(fmt.Sprintf("game: constraints update with unknown mark %q at %d in %s", m, i, p))
		}
	}

	confirmed := make(map[rune]int, words.Length)
	for i, m := range p {
		l := guess[i]
		switch m {
		case MarkHit:
			c.fixed[i] = l
			fallthrough
		case MarkPresent:
			c.required.Add(l)
			c.excluded.Remove(l)
			confirmed[l]++
		}
	}

	for l, n := range confirmed {
		if n > c.minCount[l] {
			c.minCount[l] = n
		}
	}

	for i, m := range p {
		l := guess[i]
		if m != MarkMiss || confirmed[l] > 0 || c.required.Contains(l) {
			continue
		}
		c.excluded.Add(l)
	}
}

// Accepts reports whether w is consistent with every recorded fact.
func (c *Constraints) Accepts(w words.Word) bool {
	for i, l := range c.fixed {
		if w[i] != l {
			return false
		}
	}
	for _, l := range w {
		if c.excluded.Contains(l) {
			return false
		}
	}
	ok := true
	c.required.Each(func(l rune) bool {
		ok = w.Contains(l)
		return !ok
	})
	if !ok {
		return false
	}
	for l, n := range c.minCount {
		if w.Count(l) < n {
			return false
		}
	}
	return true
}

// Reset drops every fact.
func (c *Constraints) Reset() {
	clear(c.fixed)
	c.required.Clear()
	c.excluded.Clear()
	clear(c.minCount)
}

// Facts is a value snapshot of a Constraints model. Mutating it does not
// affect the model.
type Facts struct {
	Fixed    map[int]rune
	Required []rune // sorted
	Excluded []rune // sorted
	MinCount map[rune]int
}

// Snapshot copies the current facts.
func (c *Constraints) Snapshot() Facts {
	req := c.required.ToSlice()
	slices.Sort(req)
	exc := c.excluded.ToSlice()
	slices.Sort(exc)
	return Facts{
		Fixed:    maps.Clone(c.fixed),
		Required: req,
		Excluded: exc,
		MinCount: maps.Clone(c.minCount),
	}
}

// Summary renders the facts for logs, e.g. "fixed=г@0 required=ео excluded=нц min=".
func (c *Constraints) Summary() string {
	f := c.Snapshot()
	var b strings.Builder
	b.WriteString("fixed=")
	first := true
	for i := 0; i < words.Length; i++ {
		l, ok := f.Fixed[i]
		if !ok {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%c@%d", l, i)
	}
	b.WriteString(" required=")
	b.WriteString(string(f.Required))
	b.WriteString(" excluded=")
	b.WriteString(string(f.Excluded))
	b.WriteString(" min=")
	letters := slices.Sorted(maps.Keys(f.MinCount))
	first = true
	for _, l := range letters {
		if f.MinCount[l] < 2 {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%c%d", l, f.MinCount[l])
	}
	return b.String()
}

// MarshalZerologObject lets the model be attached to log events with
// zerolog's Object.
func (c *Constraints) MarshalZerologObject(e *zerolog.Event) {
	f := c.Snapshot()
	fixed := make([]string, 0, len(f.Fixed))
	for i := 0; i < words.Length; i++ {
		if l, ok := f.Fixed[i]; ok {
			fixed = append(fixed, fmt.Sprintf("%c@%d", l, i))
		}
	}
	e.Strs("fixed", fixed).
		Str("required", string(f.Required)).
		Str("excluded", string(f.Excluded)).
		Int("minCountLetters", len(f.MinCount))
}
