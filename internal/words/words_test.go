package words

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"РУЧКА":   "ручка",
		" Ёлка ":  "елка",
		"мёдок":   "медок",
		"СтОлк":   "столк",
		"ручка":   "ручка",
		"\tтесто": "тесто",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"ЁЖИКИ", " Мёдок", "ручка", "abc", ""} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestParse(t *testing.T) {
	w, err := Parse(" ГЕРОЙ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w.String() != "герой" {
		t.Fatalf("expected герой, got %s", w)
	}
	for _, bad := range []string{"", "кот", "длинноеслово", "hello", "ру4ка", "ру чк"} {
		if _, err := Parse(bad); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q): expected ErrMalformed, got %v", bad, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParse("кот")
}

func TestWordHelpers(t *testing.T) {
	w := MustParse("оборо")
	if w.Count('о') != 3 || w.Count('б') != 1 || w.Count('я') != 0 {
		t.Fatalf("unexpected counts for %s", w)
	}
	if diff := cmp.Diff([]rune("обр"), w.Letters()); diff != "" {
		t.Fatalf("letters mismatch (-want +got):\n%s", diff)
	}
	if !(Word{}).IsZero() || w.IsZero() {
		t.Fatal("IsZero mismatch")
	}
}

func TestNewDeduplicatesAndKeepsOrder(t *testing.T) {
	d, err := New([]Word{MustParse("тесто"), MustParse("ручка"), MustParse("тесто")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []Word{MustParse("тесто"), MustParse("ручка")}
	if diff := cmp.Diff(want, d.Words()); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", d.Len())
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	d, _ := New([]Word{MustParse("тесто")})
	ws := d.Words()
	ws[0] = MustParse("ручка")
	if !d.Contains(MustParse("тесто")) || d.Words()[0] != MustParse("тесто") {
		t.Fatal("Words exposes internal slice")
	}
}

func TestRandomIsSeedable(t *testing.T) {
	d, _, err := FromLines([]string{"ручка", "тесто", "баран", "сарай", "салат"})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	a := rand.New(rand.NewPCG(9, 9))
	b := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 20; i++ {
		x, y := d.Random(a), d.Random(b)
		if x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
		if !d.Contains(x) {
			t.Fatalf("random word %s not in dictionary", x)
		}
	}
}

func TestLoadFiltersAndNormalizes(t *testing.T) {
	path := writeFile(t, "ручка\nбумага\nТЕСТО\n\n# comment\nкот\nЁжики\nМёдок\n")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, s := range []string{"ручка", "тесто", "ежики", "медок"} {
		if !d.Contains(MustParse(s)) {
			t.Errorf("expected %s in dictionary", s)
		}
	}
	if d.Len() != 4 {
		t.Fatalf("expected 4 words, got %d", d.Len())
	}
}

func TestFromLinesCountsSkipped(t *testing.T) {
	_, skipped, err := FromLines([]string{"ручка", "кот", "слон", "", "# x"})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	if skipped != 2 {
		t.Fatalf("expected 2 skipped, got %d", skipped)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := Load(writeFile(t, "")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for empty file, got %v", err)
	}
	if _, err := Load(writeFile(t, "кот\nслон\nдом\n")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty without five-letter words, got %v", err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() < 100 {
		t.Fatalf("expected a sizeable default dictionary, got %d words", d.Len())
	}
	if !d.Contains(MustParse("ручка")) {
		t.Fatal("expected ручка in default dictionary")
	}
}
