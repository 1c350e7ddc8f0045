// Package money holds the currency conventions shared by the catalog, ledger
// and report contexts: two-decimal USD amounts backed by decimal.Decimal.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts user-entered currency text (optional thousands separators,
// optional two-decimal fraction) into a non-negative amount. The input is
// expected to have passed the currency validation pattern already.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %q", s)
	}
	return d.Round(2), nil
}

// Format renders an amount as display-ready USD, e.g. "$1,234.50".
func Format(d decimal.Decimal) string {
	fixed := d.Round(2).StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	frac := fixed[len(fixed)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}
