// internal/game/selector.go
//
// Candidate selection for hints.
//
// Selection order:
//   1. Words the constraints accept that were not guessed yet.
//   2. None left → any word not guessed yet, at random; then any word at random.
//   3. At most smallPool candidates → uniform random among them, so a nearly
//      solved board does not always yield the same hint.
//   4. Otherwise the candidate with the most letters not tried in any earlier
//      guess; ties go to the first in pool order.

package game

import (
	"math/rand/v2"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

// smallPool is the candidate count at or below which hints are random.
const smallPool = 3

// Selector picks hint words. It owns its random source.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a Selector drawing from rng.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Select proposes a word from pool given the model and the guesses so far.
// It never returns a word from history while the pool holds another word.
func (s *Selector) Select(pool []words.Word, model *Constraints, history []words.Word) (words.Word, error) {
	if len(pool) == 0 {
		return words.Word{}, ErrDictionaryEmpty
	}

	guessed := make(map[words.Word]struct{}, len(history))
	tried := make(map[rune]struct{})
	for _, g := range history {
		guessed[g] = struct{}{}
		for _, l := range g {
			tried[l] = struct{}{}
		}
	}

	var fresh, candidates []words.Word
	for _, w := range pool {
		if _, ok := guessed[w]; ok {
			continue
		}
		fresh = append(fresh, w)
		if model.Accepts(w) {
			candidates = append(candidates, w)
		}
	}

	switch {
	case len(candidates) == 0 && len(fresh) > 0:
		return s.pick(fresh), nil
	case len(candidates) == 0:
		return s.pick(pool), nil
	case len(candidates) <= smallPool:
		return s.pick(candidates), nil
	}

	best, bestScore := candidates[0], -1
	for _, w := range candidates {
		if sc := novelty(w, tried); sc > bestScore {
			best, bestScore = w, sc
		}
	}
	return best, nil
}

func (s *Selector) pick(list []words.Word) words.Word {
	return list[s.rng.IntN(len(list))]
}

// novelty counts the distinct letters of w absent from tried.
func novelty(w words.Word, tried map[rune]struct{}) int {
	n := 0
	for _, l := range w.Letters() {
		if _, ok := tried[l]; !ok {
			n++
		}
	}
	return n
}
