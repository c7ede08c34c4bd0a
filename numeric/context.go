// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Context is the explicit decimal policy: significant-digit precision and
// near-zero tolerance. Contexts are immutable values; build them with
// NewContext or Default.
//
// The zero Context keeps DefaultPrecision digits and treats only exact zero
// as near-zero.
type Context struct {
	precision int32
	tolerance float64
}

// NewContext resolves opts against DefaultPrecision and DefaultTolerance.
func NewContext(opts ...Option) Context {
	return gatherOptions(opts...)
}

// Default returns the Context with DefaultPrecision and DefaultTolerance.
func Default() Context {
	return gatherOptions()
}

// Precision reports the number of significant digits kept.
func (c Context) Precision() int32 {
	if c.precision <= 0 {
		return DefaultPrecision
	}

	return c.precision
}

// Tolerance reports the near-zero threshold.
func (c Context) Tolerance() float64 { return c.tolerance }

// Round rounds d to Precision significant digits (half away from zero).
// Values that already fit are returned unchanged, so short inputs keep
// their scale.
func (c Context) Round(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	places := c.Precision() - msd(d)
	if -d.Exponent() <= places {
		return d
	}

	return d.Round(places)
}

// Add returns a+b rounded to the context precision.
func (c Context) Add(a, b decimal.Decimal) decimal.Decimal {
	return c.Round(a.Add(b))
}

// Sub returns a-b rounded to the context precision.
func (c Context) Sub(a, b decimal.Decimal) decimal.Decimal {
	return c.Round(a.Sub(b))
}

// Mul returns a*b rounded to the context precision.
func (c Context) Mul(a, b decimal.Decimal) decimal.Decimal {
	return c.Round(a.Mul(b))
}

// Quo returns a/b rounded to the context precision.
//
// Errors:
//   - ErrDivisionByZero if b is zero.
//
// Notes:
//   - The quotient is first computed with enough fractional digits to hold
//     Precision significant digits, then rounded once more by Round.
func (c Context) Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if a.IsZero() {
		return decimal.Zero, nil
	}
	// msd(a/b) <= msd(a) - msd(b) + 1; one guard digit on top.
	places := c.Precision() - (msd(a) - msd(b)) + 1
	if places < 0 {
		places = 0
	}

	return c.Round(a.DivRound(b, places)), nil
}

// Sqrt returns the square root of d computed in float64 and converted back
// to a decimal. This is a finite-precision step (about 16 significant digits).
//
// Errors:
//   - ErrNegativeSqrt if d < 0.
func (c Context) Sqrt(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Sign() < 0 {
		return decimal.Zero, ErrNegativeSqrt
	}

	return floatSqrt(d), nil
}

// Hypot returns sqrt(x1² + x2² + ... + xn²). The sum of squares is exact up
// to the context precision; only the final root goes through float64.
func (c Context) Hypot(xs ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, x := range xs {
		sum = c.Add(sum, c.Mul(x, x))
	}

	return floatSqrt(sum)
}

// IsNearZero reports whether |d| < Tolerance. With a zero tolerance only an
// exact zero qualifies.
func (c Context) IsNearZero(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}

	return d.Abs().LessThan(decimal.NewFromFloat(c.tolerance))
}

// floatSqrt assumes d >= 0. d is split as m·10^(2k) with m in [0.1, 10) so
// that only m passes through float64: sqrt(d) = sqrt(m)·10^k holds for any
// magnitude, including sums of squares beyond the float64 range.
func floatSqrt(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	e := msd(d)
	if e%2 != 0 {
		e--
	}
	m := d.Shift(-e)

	return decimal.NewFromFloat(math.Sqrt(m.InexactFloat64())).Shift(e / 2)
}

// msd returns the decimal position of the most significant digit of d:
// 1 for values in [1, 10), 0 for [0.1, 1), -1 for [0.01, 0.1) and so on.
// d must be non-zero.
func msd(d decimal.Decimal) int32 {
	digits := len(new(big.Int).Abs(d.Coefficient()).String())

	return int32(digits) + d.Exponent()
}
