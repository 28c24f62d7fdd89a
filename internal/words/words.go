// internal/words/words.go
//
// Dictionary management for the game engine.
//
// Responsibilities:
//   - Load the word list from a file or fall back to the embedded default.
//   - Normalize every entry once at load time (see word.go).
//   - Maintain an ordered list plus a set for quick membership checks.
//   - Supply Contains, Random, Words and Len to the game package.
//
// File format:
//   - UTF-8 text, one word per line.
//   - Blank lines and lines starting with '#' are ignored.
//   - Lines that do not normalize to a five-letter word are skipped.
//
// Invariants:
//   - A Dictionary is never empty; constructors return ErrEmpty instead.
//   - Every stored Word is normalized and has Length letters.
//   - A Dictionary is immutable after construction and safe to share.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/wordle-ru/assets"
)

// ErrEmpty is returned when a dictionary would contain no words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an ordered, de-duplicated set of normalized words.
type Dictionary struct {
	list []Word            // load order, used for hint tie-breaking
	set  map[Word]struct{} // membership
}

// New builds a Dictionary from already-parsed words.
// Duplicates are dropped; the first occurrence keeps its position.
func New(list []Word) (*Dictionary, error) {
	d := &Dictionary{set: make(map[Word]struct{}, len(list))}
	for _, w := range list {
		if w.IsZero() {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// FromLines normalizes raw lines and keeps the valid words.
// It reports how many lines were skipped as malformed.
func FromLines(lines []string) (*Dictionary, int, error) {
	var (
		list    []Word
		skipped int
	)
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := Parse(s)
		if err != nil {
			skipped++
			continue
		}
		list = append(list, w)
	}
	d, err := New(list)
	return d, skipped, err
}

// Load reads a dictionary from path, or from the embedded default list when
// path is empty. A missing file and a file without valid words are errors.
func Load(path string) (*Dictionary, error) {
	var (
		lines []string
		err   error
	)
	if path == "" {
		lines, err = assets.DefaultWords()
	} else {
		lines, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	d, _, err := FromLines(lines)
	if err != nil {
		if path == "" {
			path = assets.DefaultWordsFile
		}
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return d, nil
}

// readWordFile returns the raw lines of a word file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.set[w]
	return ok
}

// Random draws a word uniformly using r.
func (d *Dictionary) Random(r *rand.Rand) Word {
	return d.list[r.IntN(len(d.list))]
}

// Words returns a copy of the words in load order.
func (d *Dictionary) Words() []Word {
	out := make([]Word, len(d.list))
	copy(out, d.list)
	return out
}

// Len returns the number of words. A nil Dictionary has none.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}
