// Package numeric normalizes raw user-entered text into numeric strings and
// values. It sits in front of validation: whatever the user typed, the
// validator only ever sees a float64, with NaN standing in for "not a
// number at all".
package numeric

import (
	"math"
	"strconv"
)

// Sanitize reduces raw text to the longest numeric string the user could
// have meant. It keeps ASCII digits and the first decimal point, drops
// everything else, and strips superfluous leading zeros while preserving the
// "0." prefix form. Sanitize is idempotent.
//
//	"$1,234.56" -> "1234.56"
//	"1.2.3"     -> "1.23"
//	"007"       -> "7"
//	"00.5"      -> "0.5"
func Sanitize(raw string) string {
	buf := make([]byte, 0, len(raw))
	dot := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			buf = append(buf, c)
		case c == '.' && !dot:
			buf = append(buf, c)
			dot = true
		}
	}

	// A leading zero is superfluous only while another digit follows it,
	// so "0.5" keeps its zero but "007" becomes "7".
	start := 0
	for start < len(buf)-1 && buf[start] == '0' && buf[start+1] >= '0' && buf[start+1] <= '9' {
		start++
	}
	return string(buf[start:])
}

// Parse sanitizes raw and parses the remainder. It never fails: text with no
// parseable number in it comes back as NaN, which the validator rejects with
// a field message instead of an error.
func Parse(raw string) float64 {
	s := Sanitize(raw)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
