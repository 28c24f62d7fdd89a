// internal/daily/daily.go
//
// Daily mode: everyone playing on the same UTC date with the same salt gets
// the same answer. The index is HMAC-SHA256(salt, "YYYY-MM-DD") mod n.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the date.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Answer picks the daily answer from list, which must be non-empty.
func Answer(date time.Time, salt string, list []words.Word) words.Word {
	return list[WordIndex(date, salt, len(list))]
}
