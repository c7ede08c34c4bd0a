// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// To3D promotes a 2D vector to 3D by appending a zero z coordinate. 3D
// vectors are returned unchanged.
//
// Errors:
//   - ErrUnsupportedDimension for any other dimension.
func (v Vector) To3D() (Vector, error) {
	switch len(v.coords) {
	case 2:
		return v.with([]decimal.Decimal{v.coords[0], v.coords[1], decimal.Zero}), nil
	case 3:
		return v, nil
	default:
		return Vector{}, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, len(v.coords))
	}
}

// Cross returns v × w after promoting both operands with To3D. The result
// is always 3D; for two 2D inputs only its z coordinate can be non-zero.
//
// Errors:
//   - ErrUnsupportedDimension if either operand is not 2D or 3D.
func (v Vector) Cross(w Vector) (Vector, error) {
	a, err := v.To3D()
	if err != nil {
		return Vector{}, err
	}
	b, err := w.To3D()
	if err != nil {
		return Vector{}, err
	}
	c := v.ctx
	x1, y1, z1 := a.coords[0], a.coords[1], a.coords[2]
	x2, y2, z2 := b.coords[0], b.coords[1], b.coords[2]

	return v.with([]decimal.Decimal{
		c.Sub(c.Mul(y1, z2), c.Mul(y2, z1)),
		c.Sub(c.Mul(x2, z1), c.Mul(x1, z2)),
		c.Sub(c.Mul(x1, y2), c.Mul(x2, y1)),
	}), nil
}

// ParallelogramArea returns |v × w|, the area of the parallelogram spanned
// by v and w.
//
// Errors:
//   - ErrUnsupportedDimension if either operand is not 2D or 3D.
func (v Vector) ParallelogramArea(w Vector) (decimal.Decimal, error) {
	cross, err := v.Cross(w)
	if err != nil {
		return decimal.Zero, err
	}

	return cross.Magnitude(), nil
}

// TriangleArea returns half of ParallelogramArea.
func (v Vector) TriangleArea(w Vector) (decimal.Decimal, error) {
	area, err := v.ParallelogramArea(w)
	if err != nil {
		return decimal.Zero, err
	}

	return v.ctx.Quo(area, two)
}
