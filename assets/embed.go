// assets/embed.go
//
// Embedded fallback dictionary used when WORDS_FILE is not configured.
// The file is UTF-8, one word per line; comments start with '#'.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words_ru.txt
var FS embed.FS

// DefaultWordsFile is the name of the embedded dictionary inside FS.
const DefaultWordsFile = "words_ru.txt"

// readLines returns the trimmed, non-comment lines of an embedded file.
// Case folding and letter normalization are left to the words package.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DefaultWords returns the raw lines of the embedded dictionary.
func DefaultWords() ([]string, error) {
	return readLines(DefaultWordsFile)
}
