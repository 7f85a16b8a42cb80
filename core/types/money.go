// Package types - money formatting
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with thousands separators, dropping
// the fraction when it is zero: 17000 -> "17,000", 1234.5 -> "1,234.50".
func FormatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "00" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
