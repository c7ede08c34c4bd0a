// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/vecline/numeric"
)

// Vector is an immutable ordered tuple of decimal coordinates.
//
// Invariants (for every Vector returned by a constructor):
//   - Dimension() >= 1;
//   - coordinates are never modified after construction.
//
// The zero value has dimension 0 and is only useful as a "no result"
// placeholder next to a non-nil error.
type Vector struct {
	coords []decimal.Decimal
	ctx    numeric.Context
}

// New builds a Vector from decimal coordinates using numeric.Default().
//
// Errors:
//   - ErrInvalidArgument if no coordinates are given.
func New(coords ...decimal.Decimal) (Vector, error) {
	return NewIn(numeric.Default(), coords...)
}

// NewIn is New with an explicit numeric.Context. The coordinates are copied.
func NewIn(ctx numeric.Context, coords ...decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, fmt.Errorf("%w: empty coordinate list", ErrInvalidArgument)
	}
	cp := make([]decimal.Decimal, len(coords))
	copy(cp, coords)

	return Vector{coords: cp, ctx: ctx}, nil
}

// Parse builds a Vector from numeric-like values (strings, integers,
// floats, decimals) using numeric.Default(). See numeric.Parse for the
// accepted kinds.
//
// Errors:
//   - ErrInvalidArgument if values is empty or any value is not numeric;
//     in the latter case the error also wraps numeric.ErrNotNumeric.
func Parse(values ...any) (Vector, error) {
	return ParseIn(numeric.Default(), values...)
}

// ParseIn is Parse with an explicit numeric.Context.
func ParseIn(ctx numeric.Context, values ...any) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, fmt.Errorf("%w: empty coordinate list", ErrInvalidArgument)
	}
	coords := make([]decimal.Decimal, len(values))
	for i, raw := range values {
		d, err := numeric.Parse(raw)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: coordinate %d: %w", ErrInvalidArgument, i, err)
		}
		coords[i] = d
	}

	return Vector{coords: coords, ctx: ctx}, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(values ...any) Vector {
	v, err := Parse(values...)
	if err != nil {
		panic(err)
	}

	return v
}

// Zero returns the zero vector of the given dimension.
//
// Errors:
//   - ErrInvalidArgument if dim <= 0.
func Zero(dim int) (Vector, error) {
	return ZeroIn(numeric.Default(), dim)
}

// ZeroIn is Zero with an explicit numeric.Context.
func ZeroIn(ctx numeric.Context, dim int) (Vector, error) {
	if dim <= 0 {
		return Vector{}, fmt.Errorf("%w: dimension %d", ErrInvalidArgument, dim)
	}

	return Vector{coords: make([]decimal.Decimal, dim), ctx: ctx}, nil
}

// FromCoord converts a go-geom coordinate into a Vector. Each float64 is
// taken at its shortest decimal representation.
//
// Errors:
//   - ErrInvalidArgument for an empty coordinate or NaN/±Inf components.
func FromCoord(c geom.Coord) (Vector, error) {
	values := make([]any, len(c))
	for i, f := range c {
		values[i] = f
	}

	return Parse(values...)
}

// Coord returns the coordinates as a go-geom float64 coordinate. The
// conversion is lossy beyond float64 precision.
func (v Vector) Coord() geom.Coord {
	c := make(geom.Coord, len(v.coords))
	for i, x := range v.coords {
		c[i] = x.InexactFloat64()
	}

	return c
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// At returns the i-th coordinate (0-based). Panics when i is out of range,
// like slice indexing.
func (v Vector) At(i int) decimal.Decimal { return v.coords[i] }

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	cp := make([]decimal.Decimal, len(v.coords))
	copy(cp, v.coords)

	return cp
}

// Context returns the numeric policy the vector was built with.
func (v Vector) Context() numeric.Context { return v.ctx }

// Equal reports exact element-wise decimal equality (1.0 equals 1).
// Vectors of different dimension are never equal.
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}

	return true
}

// String renders the vector as "Vector(x1, x2, ...)".
func (v Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, x := range v.coords {
		parts[i] = x.String()
	}

	return "Vector(" + strings.Join(parts, ", ") + ")"
}

// with builds a result vector sharing the receiver's context.
func (v Vector) with(coords []decimal.Decimal) Vector {
	return Vector{coords: coords, ctx: v.ctx}
}

// sameDimension fails with ErrDimensionMismatch unless v and w agree.
func (v Vector) sameDimension(w Vector) error {
	if len(v.coords) != len(w.coords) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.coords), len(w.coords))
	}

	return nil
}
