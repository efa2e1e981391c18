package numeric

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain integer", "100", "100"},
		{"plain decimal", "99.50", "99.50"},
		{"currency and commas", "$1,234.56", "1234.56"},
		{"letters mixed in", "12ab3", "123"},
		{"second dot dropped", "1.2.3", "1.23"},
		{"dot run", "1...5", "1.5"},
		{"leading zeros", "007", "7"},
		{"single zero kept", "0", "0"},
		{"zeros collapse", "000", "0"},
		{"zero dot form kept", "0.5", "0.5"},
		{"zeros before dot", "00.5", "0.5"},
		{"bare dot", ".", "."},
		{"leading dot", ".5", ".5"},
		{"trailing dot", "42.", "42."},
		{"sign dropped", "-5", "5"},
		{"spaces and units", "  12 usd ", "12"},
		{"only junk", "abc", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	t.Parallel()

	fixed := []string{
		"", "0", "000", "0.5", "00.5", ".", ".5", "42.", "1.2.3",
		"$1,234.56", "abc", "0.0.0", "0..1", "900", "0090.00",
	}
	for _, s := range fixed {
		once := Sanitize(s)
		assert.Equal(t, once, Sanitize(once), "input %q", s)
	}

	// Random keyboard mashing should behave no differently.
	const alphabet = "0123456789..abc $-,x"
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		b := make([]byte, rng.Intn(12))
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(b)
		once := Sanitize(s)
		assert.Equal(t, once, Sanitize(once), "input %q", s)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"integer", "100", 100},
		{"decimal", "95.5", 95.5},
		{"currency", "$1,234.56", 1234.56},
		{"zero dot form", "0.5", 0.5},
		{"leading dot", ".5", 0.5},
		{"trailing dot", "42.", 42},
		{"leading zeros", "007", 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Parse(tt.in), 1e-12)
		})
	}
}

func TestParseNotANumber(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", ".", "...", "abc", "$ ,", " "} {
		assert.True(t, math.IsNaN(Parse(s)), "input %q", s)
	}
}
