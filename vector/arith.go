// SPDX-License-Identifier: MIT

package vector

import "github.com/shopspring/decimal"

// Add returns v + w, element-wise.
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
//
// Complexity:
//   - Time O(n), Space O(n).
func (v Vector) Add(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, err
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.ctx.Add(v.coords[i], w.coords[i])
	}

	return v.with(out), nil
}

// Subtract returns v - w, element-wise.
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
func (v Vector) Subtract(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, err
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.ctx.Sub(v.coords[i], w.coords[i])
	}

	return v.with(out), nil
}

// Scale returns s·v.
func (v Vector) Scale(s decimal.Decimal) Vector {
	out := make([]decimal.Decimal, len(v.coords))
	for i, x := range v.coords {
		out[i] = v.ctx.Mul(s, x)
	}

	return v.with(out)
}

// Dot returns Σ vᵢ·wᵢ in decimal arithmetic.
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := v.sameDimension(w); err != nil {
		return decimal.Zero, err
	}

	return v.dot(w), nil
}

// dot assumes equal dimensions.
func (v Vector) dot(w Vector) decimal.Decimal {
	sum := decimal.Zero
	for i := range v.coords {
		sum = v.ctx.Add(sum, v.ctx.Mul(v.coords[i], w.coords[i]))
	}

	return sum
}
