// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Project returns the component of v parallel to base: b̂·(v·b̂).
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
//   - ErrNoUniqueParallelComponent (also matching ErrZeroVector) if base is
//     the zero vector.
func (v Vector) Project(base Vector) (Vector, error) {
	if err := v.sameDimension(base); err != nil {
		return Vector{}, err
	}
	unit, err := base.Normalize()
	if err != nil {
		return Vector{}, fmt.Errorf("%w: %w", ErrNoUniqueParallelComponent, err)
	}

	return unit.Scale(v.dot(unit)), nil
}

// OrthogonalComponent returns v - Project(base), the component of v
// orthogonal to base.
//
// Errors:
//   - ErrDimensionMismatch if the dimensions differ.
//   - ErrNoUniqueOrthogonalComponent (also matching the projection errors)
//     if base is the zero vector.
func (v Vector) OrthogonalComponent(base Vector) (Vector, error) {
	p, err := v.Project(base)
	if err != nil {
		if errors.Is(err, ErrNoUniqueParallelComponent) {
			return Vector{}, fmt.Errorf("%w: %w", ErrNoUniqueOrthogonalComponent, err)
		}
		return Vector{}, err
	}

	return v.Subtract(p)
}
