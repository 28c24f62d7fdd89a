package game

import (
	"errors"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

// Errors returned by the engine. Callers match them with errors.Is; the
// returned errors wrap these with context.
var (
	// ErrInvalidGuess: empty input, or a guess/hint against a finished session.
	// The caller re-prompts; nothing was mutated.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrWordNotInDictionary: the normalized guess is not a known word.
	// No attempt is consumed.
	ErrWordNotInDictionary = errors.New("not in word list")

	// ErrDictionaryEmpty: construction with an empty word source.
	ErrDictionaryEmpty = words.ErrEmpty

	// ErrConfiguration: construction with a nil collaborator or bad option.
	ErrConfiguration = errors.New("invalid game configuration")
)
