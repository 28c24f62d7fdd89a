package game

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

func pool(list ...string) []words.Word {
	out := make([]words.Word, len(list))
	for i, s := range list {
		out[i] = w(s)
	}
	return out
}

func TestSelectScoresNovelLetters(t *testing.T) {
	s := NewSelector(seeded(1))
	// After ручка: баран scores 2 (б, н), тесто 4, герой 4, ветер 3.
	p := pool("ручка", "баран", "ветер", "тесто", "герой", "молот")
	got, err := s.Select(p, NewConstraints(), pool("ручка"))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != w("тесто") {
		t.Fatalf("expected first best-scoring word тесто, got %s", got)
	}
}

func TestSelectRespectsConstraints(t *testing.T) {
	s := NewSelector(seeded(2))
	c := NewConstraints()
	c.Update(w("ручка"), mustPattern(t, "-----"))
	p := pool(testWords...)
	for i := 0; i < 20; i++ {
		got, err := s.Select(p, c, pool("ручка"))
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if !c.Accepts(got) {
			t.Fatalf("hint %s violates constraints", got)
		}
	}
}

func TestSelectSmallPoolIsRandomAmongCandidates(t *testing.T) {
	s := NewSelector(seeded(3))
	c := NewConstraints()
	c.Update(w("тесто"), Compare(w("тесто"), w("молот")))
	p := pool(testWords...)
	var want []words.Word
	for _, x := range p {
		if c.Accepts(x) && x != w("тесто") {
			want = append(want, x)
		}
	}
	if len(want) == 0 || len(want) > smallPool {
		t.Fatalf("test setup: expected 1..%d candidates, got %d", smallPool, len(want))
	}
	for i := 0; i < 30; i++ {
		got, err := s.Select(p, c, pool("тесто"))
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if !slices.Contains(want, got) {
			t.Fatalf("hint %s not among candidates %v", got, want)
		}
	}
}

func TestSelectIsDeterministicForSeed(t *testing.T) {
	p := pool("ручка", "тесто", "баран")
	a, b := NewSelector(seeded(42)), NewSelector(seeded(42))
	for i := 0; i < 10; i++ {
		x, _ := a.Select(p, NewConstraints(), nil)
		y, _ := b.Select(p, NewConstraints(), nil)
		if x != y {
			t.Fatalf("round %d: %s != %s", i, x, y)
		}
	}
}

func TestSelectFallsBackToUnguessedWords(t *testing.T) {
	s := NewSelector(seeded(4))
	c := NewConstraints()
	// nothing in the pool has five 'я'
	c.Update(w("яяяяя"), mustPattern(t, "+++++"))
	p := pool("ручка", "тесто", "баран")
	history := pool("ручка", "тесто")
	for i := 0; i < 10; i++ {
		got, err := s.Select(p, c, history)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if got != w("баран") {
			t.Fatalf("expected the only unguessed word, got %s", got)
		}
	}
}

func TestSelectFallsBackToWholePool(t *testing.T) {
	s := NewSelector(seeded(5))
	p := pool("ручка", "тесто")
	got, err := s.Select(p, NewConstraints(), p)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !slices.Contains(p, got) {
		t.Fatalf("expected a pool word, got %s", got)
	}
}

func TestSelectEmptyPool(t *testing.T) {
	s := NewSelector(seeded(6))
	if _, err := s.Select(nil, NewConstraints(), nil); !errors.Is(err, ErrDictionaryEmpty) {
		t.Fatalf("expected ErrDictionaryEmpty, got %v", err)
	}
}
