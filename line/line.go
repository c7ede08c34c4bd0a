// SPDX-License-Identifier: MIT

package line

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/vecline/numeric"
	"github.com/katalvlaran/vecline/vector"
)

// Line is the set of points x in the plane with normal·x = constant.
// Lines are immutable; the basepoint is computed once by New.
type Line struct {
	normal       vector.Vector
	constant     decimal.Decimal
	basepoint    vector.Vector
	hasBasepoint bool
}

// New builds a Line from options. With no options it returns the
// degenerate line 0 = 0, which has no basepoint.
//
// Errors:
//   - ErrNotPlanar (also matching vector.ErrUnsupportedDimension) if the
//     normal vector is not 2D.
func New(opts ...Option) (Line, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Line{}, err
	}
	if o.normal.Dimension() != Dimension {
		return Line{}, fmt.Errorf("%w: got %d: %w", ErrNotPlanar, o.normal.Dimension(), vector.ErrUnsupportedDimension)
	}
	l := Line{normal: o.normal, constant: o.constant}
	if err := l.setBasepoint(); err != nil {
		return Line{}, err
	}

	return l, nil
}

// FromCoefficients builds the line a·x_1 + b·x_2 = c from numeric-like
// values (see numeric.Parse).
//
// Errors:
//   - vector.ErrInvalidArgument / numeric.ErrNotNumeric for bad input.
func FromCoefficients(a, b, c any) (Line, error) {
	n, err := vector.Parse(a, b)
	if err != nil {
		return Line{}, err
	}
	k, err := numeric.Parse(c)
	if err != nil {
		return Line{}, fmt.Errorf("%w: constant term: %w", vector.ErrInvalidArgument, err)
	}

	return New(WithNormal(n), WithConstant(k))
}

// Through builds the line passing through the distinct points p and q.
// Only the first two ordinates of each coordinate are used.
//
// The normal is (p_y - q_y, q_x - p_x) and the constant term is normal·p.
//
// Errors:
//   - ErrNotPlanar if either coordinate has fewer than two ordinates.
//   - ErrCoincidentPoints if p and q coincide.
//   - numeric.ErrNotNumeric for NaN/±Inf ordinates.
func Through(p, q geom.Coord) (Line, error) {
	if len(p) < Dimension || len(q) < Dimension {
		return Line{}, fmt.Errorf("%w: points need x and y", ErrNotPlanar)
	}
	pv, err := vector.FromCoord(p[:Dimension])
	if err != nil {
		return Line{}, err
	}
	qv, err := vector.FromCoord(q[:Dimension])
	if err != nil {
		return Line{}, err
	}
	if pv.Equal(qv) {
		return Line{}, ErrCoincidentPoints
	}
	ctx := pv.Context()
	n, err := vector.NewIn(ctx,
		ctx.Sub(pv.At(1), qv.At(1)),
		ctx.Sub(qv.At(0), pv.At(0)),
	)
	if err != nil {
		return Line{}, err
	}
	c, err := n.Dot(pv)
	if err != nil {
		return Line{}, err
	}

	return New(WithNormal(n), WithConstant(c))
}

// FirstNonzeroIndex returns the index of the first coordinate of v whose
// magnitude is not within v's context tolerance of zero.
//
// Errors:
//   - ErrNoNonzeroElementsFound if every coordinate is near zero.
func FirstNonzeroIndex(v vector.Vector) (int, error) {
	ctx := v.Context()
	for i := 0; i < v.Dimension(); i++ {
		if !ctx.IsNearZero(v.At(i)) {
			return i, nil
		}
	}

	return -1, ErrNoNonzeroElementsFound
}

// setBasepoint places the basepoint on the first non-zero axis of the
// normal: zero everywhere except constant/normal[i] at index i. A
// degenerate normal leaves the line without a basepoint.
func (l *Line) setBasepoint() error {
	i, err := FirstNonzeroIndex(l.normal)
	if errors.Is(err, ErrNoNonzeroElementsFound) {
		return nil
	}
	if err != nil {
		return err
	}
	ctx := l.normal.Context()
	coords := make([]decimal.Decimal, Dimension)
	coords[i], err = ctx.Quo(l.constant, l.normal.At(i))
	if err != nil {
		return err
	}
	l.basepoint, err = vector.NewIn(ctx, coords...)
	if err != nil {
		return err
	}
	l.hasBasepoint = true

	return nil
}

// Normal returns the normal vector.
func (l Line) Normal() vector.Vector { return l.normal }

// Constant returns the constant term.
func (l Line) Constant() decimal.Decimal { return l.constant }

// Basepoint returns a point on the line; ok is false for a degenerate line.
func (l Line) Basepoint() (bp vector.Vector, ok bool) { return l.basepoint, l.hasBasepoint }

// Dimension returns 2.
func (l Line) Dimension() int { return Dimension }
