// internal/game/engine.go
//
// Feedback engine: scores one guess against the answer.
//
// Notes:
//   - Both inputs are normalized words.Word values; no normalization here.
//   - Pure function, no state.
package game

import "github.com/robalobadob/wordle/apps/wordle-ru/internal/words"

// Compare implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count the answer letters at non-hit positions.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Miss.
//
// Hits must consume their letters before any Present is decided, otherwise
// repeated letters are allocated twice.
func Compare(guess, answer words.Word) Pattern {
	var res Pattern
	counts := make(map[rune]int, words.Length)

	for i := range guess {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else {
			counts[answer[i]]++
		}
	}

	for i := range guess {
		if res[i] == MarkHit {
			continue
		}
		if c := guess[i]; counts[c] > 0 {
			res[i] = MarkPresent
			counts[c]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}
