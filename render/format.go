// Package render turns position results and validation outcomes into
// terminal output: a styled result card for humans, CSV and JSON encodings
// for scripts. Nothing here mutates state or persists anything.
package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money formats an amount as a currency string with a thousands-grouped
// fixed two decimal places, e.g. "$10,000.00".
func Money(symbol string, v float64) string {
	d := decimal.NewFromFloat(v)
	s := d.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Percent formats a percentage value, e.g. "5.00%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// Ratio formats a risk/reward ratio in the conventional "1:4.00" form.
func Ratio(v float64) string {
	return "1:" + decimal.NewFromFloat(v).StringFixed(2)
}
