// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// AngleUnit selects the unit returned by Angle.
type AngleUnit int

const (
	// Degrees is the default unit.
	Degrees AngleUnit = iota
	// Radians returns the raw arccos value.
	Radians
)

var one = decimal.NewFromInt(1)

// Magnitude returns the Euclidean norm √(Σ vᵢ²). The sum of squares is
// decimal; the root is float64, so the result carries about 16 significant
// digits.
func (v Vector) Magnitude() decimal.Decimal {
	return v.ctx.Hypot(v.coords...)
}

// Normalize returns the unit vector v/|v|.
//
// Errors:
//   - ErrZeroVector if |v| is exactly zero.
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	inv, err := v.ctx.Quo(one, mag)
	if err != nil {
		return Vector{}, fmt.Errorf("%w: %w", ErrZeroVector, err)
	}

	return v.Scale(inv), nil
}

// Angle returns the angle between v and w, arccos(v̂·ŵ), in the requested
// unit. The cosine is clamped to [-1, 1] before arccos so that rounding
// never yields NaN.
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
//   - ErrZeroVector (with an angle-specific message) if either operand is
//     the zero vector.
func (v Vector) Angle(w Vector, unit AngleUnit) (float64, error) {
	cos, err := v.cosine(w)
	if err != nil {
		return 0, err
	}
	rad := math.Acos(math.Max(-1, math.Min(1, cos.InexactFloat64())))
	if unit == Radians {
		return rad, nil
	}

	return rad * 180 / math.Pi, nil
}

// IsZero reports whether |v| is below the context tolerance.
func (v Vector) IsZero() bool {
	return v.ctx.IsNearZero(v.Magnitude())
}

// IsZeroWithin reports whether |v| < tol.
func (v Vector) IsZeroWithin(tol float64) bool {
	return v.Magnitude().Abs().LessThan(decimal.NewFromFloat(tol))
}

// IsOrthogonal reports whether |v·w| is below the context tolerance.
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
func (v Vector) IsOrthogonal(w Vector) (bool, error) {
	if err := v.sameDimension(w); err != nil {
		return false, err
	}

	return v.ctx.IsNearZero(v.dot(w)), nil
}

// IsOrthogonalWithin reports whether |v·w| < tol.
func (v Vector) IsOrthogonalWithin(w Vector, tol float64) (bool, error) {
	if err := v.sameDimension(w); err != nil {
		return false, err
	}

	return v.dot(w).Abs().LessThan(decimal.NewFromFloat(tol)), nil
}

// IsParallel reports whether v and w are parallel or anti-parallel. The
// zero vector is parallel to every vector.
//
// Behavior highlights:
//   - The test is |sin θ| < tolerance, evaluated without roots through the
//     Lagrange identity |v|²|w|² - (v·w)² = |v|²|w|² sin²θ. The left side
//     is exactly zero for proportional decimal vectors.
//   - A slightly negative left side (rounding) counts as parallel.
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
func (v Vector) IsParallel(w Vector) (bool, error) {
	if err := v.sameDimension(w); err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	ctx := v.ctx
	norms := ctx.Mul(v.dot(v), w.dot(w))
	vw := v.dot(w)
	gram := ctx.Sub(norms, ctx.Mul(vw, vw))
	if gram.Sign() <= 0 {
		return true, nil
	}
	tol := decimal.NewFromFloat(ctx.Tolerance())

	return gram.LessThan(ctx.Mul(ctx.Mul(tol, tol), norms)), nil
}

// cosine returns v̂·ŵ.
func (v Vector) cosine(w Vector) (decimal.Decimal, error) {
	if err := v.sameDimension(w); err != nil {
		return decimal.Zero, err
	}
	u1, err := v.Normalize()
	if err != nil {
		return decimal.Zero, angleErr(err)
	}
	u2, err := w.Normalize()
	if err != nil {
		return decimal.Zero, angleErr(err)
	}

	return u1.dot(u2), nil
}

func angleErr(err error) error {
	if errors.Is(err, ErrZeroVector) {
		return fmt.Errorf("cannot compute an angle with the zero vector: %w", ErrZeroVector)
	}

	return err
}
