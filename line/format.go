// SPDX-License-Identifier: MIT

package line

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// displayPlaces is the rounding applied by String.
const displayPlaces = 3

var unit = decimal.NewFromInt(1)

// String renders the line as "a x_1 + b x_2 = c".
//
// Coefficients and the constant are rounded to three decimals and printed
// without decimals when integral. Terms that round to zero are dropped,
// unit coefficients print as a bare sign, and the first term carries no
// leading "+". A degenerate line renders as "0 = c".
//
//	3x_1 + 2x_2 = 5
//	x_1 - x_2 = 1
//	-1.500x_2 = 0.250
func (l Line) String() string {
	lhs := "0"
	if _, err := FirstNonzeroIndex(l.normal); err == nil {
		terms := make([]string, 0, Dimension)
		for i := 0; i < Dimension; i++ {
			coef := l.normal.At(i).Round(displayPlaces)
			if coef.IsZero() {
				continue
			}
			terms = append(terms, writeCoefficient(coef, len(terms) == 0)+"x_"+strconv.Itoa(i+1))
		}
		if len(terms) > 0 {
			lhs = strings.Join(terms, " ")
		}
	}

	return lhs + " = " + formatRounded(l.constant.Round(displayPlaces))
}

// writeCoefficient renders the sign and magnitude of a rounded, non-zero
// coefficient. Non-initial terms are "+ k" or "- k".
func writeCoefficient(coef decimal.Decimal, initial bool) string {
	var b strings.Builder
	switch {
	case coef.Sign() < 0:
		b.WriteByte('-')
	case !initial:
		b.WriteByte('+')
	}
	if !initial {
		b.WriteByte(' ')
	}
	if abs := coef.Abs(); !abs.Equal(unit) {
		b.WriteString(formatRounded(abs))
	}

	return b.String()
}

// formatRounded prints d without decimals when integral, otherwise with
// exactly displayPlaces decimals.
func formatRounded(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}

	return d.StringFixed(displayPlaces)
}
