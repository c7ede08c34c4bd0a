// SPDX-License-Identifier: MIT

package line

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/vecline/vector"
)

// Kind classifies the relationship between two lines.
type Kind int

const (
	// Parallel lines never meet.
	Parallel Kind = iota
	// Coincident lines are the same line: infinitely many common points.
	Coincident
	// Point lines meet at exactly one point.
	Point
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Parallel:
		return "parallel"
	case Coincident:
		return "coincident"
	case Point:
		return "point"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Intersection is the result of Line.Intersect. At is only set when
// Kind == Point.
type Intersection struct {
	Kind Kind
	At   vector.Vector
}

// Coord returns the intersection point as a go-geom coordinate, or nil
// when the lines do not meet at a single point.
func (in Intersection) Coord() geom.Coord {
	if in.Kind != Point {
		return nil
	}

	return in.At.Coord()
}

// String describes the intersection.
func (in Intersection) String() string {
	switch in.Kind {
	case Parallel:
		return "no intersection: lines are parallel"
	case Coincident:
		return "infinitely many intersections: lines coincide"
	default:
		return "intersection at " + in.At.String()
	}
}

// IsParallelTo reports whether the normals of l and other are parallel.
// The relation is symmetric; a degenerate line is parallel to every line.
func (l Line) IsParallelTo(other Line) (bool, error) {
	return l.normal.IsParallel(other.normal)
}

// Equal reports whether l and other describe the same line: their normals
// are parallel and the vector between their basepoints is orthogonal to
// the normal.
//
// Errors:
//   - ErrUndefinedBasepoint if the lines are parallel and either one is
//     degenerate.
func (l Line) Equal(other Line) (bool, error) {
	parallel, err := l.IsParallelTo(other)
	if err != nil || !parallel {
		return false, err
	}
	if !l.hasBasepoint || !other.hasBasepoint {
		return false, ErrUndefinedBasepoint
	}
	diff, err := l.basepoint.Subtract(other.basepoint)
	if err != nil {
		return false, err
	}

	return diff.IsOrthogonal(l.normal)
}

// Intersect classifies how l and other meet.
//
// Algorithm:
//  1. Parallel normals: Coincident if Equal, else Parallel.
//  2. Otherwise solve the 2×2 system by Cramer's rule:
//     den = a1·b2 - b1·a2
//     x   = (b2·c1 - b1·c2) / den
//     y   = (a1·c2 - a2·c1) / den
//
// Errors:
//   - ErrUndefinedBasepoint if the normals are parallel and either line is
//     degenerate.
func (l Line) Intersect(other Line) (Intersection, error) {
	parallel, err := l.IsParallelTo(other)
	if err != nil {
		return Intersection{}, err
	}
	if parallel {
		same, err := l.Equal(other)
		if err != nil {
			return Intersection{}, err
		}
		if same {
			return Intersection{Kind: Coincident}, nil
		}
		return Intersection{Kind: Parallel}, nil
	}

	ctx := l.normal.Context()
	a1, b1, c1 := l.normal.At(0), l.normal.At(1), l.constant
	a2, b2, c2 := other.normal.At(0), other.normal.At(1), other.constant

	den := ctx.Sub(ctx.Mul(a1, b2), ctx.Mul(b1, a2))
	x, err := ctx.Quo(ctx.Sub(ctx.Mul(b2, c1), ctx.Mul(b1, c2)), den)
	if err != nil {
		return Intersection{}, err
	}
	y, err := ctx.Quo(ctx.Sub(ctx.Mul(a1, c2), ctx.Mul(a2, c1)), den)
	if err != nil {
		return Intersection{}, err
	}
	at, err := vector.NewIn(ctx, x, y)
	if err != nil {
		return Intersection{}, err
	}

	return Intersection{Kind: Point, At: at}, nil
}
