// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrInvalidArgument indicates empty or non-numeric coordinate input.
	ErrInvalidArgument = errors.New("vector: coordinates must be non-empty and numeric")

	// ErrDimensionMismatch indicates operands of different dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector indicates normalization of a zero-magnitude vector.
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrNoUniqueParallelComponent indicates projection onto the zero vector.
	ErrNoUniqueParallelComponent = errors.New("vector: no unique parallel component")

	// ErrNoUniqueOrthogonalComponent indicates an orthogonal decomposition
	// against the zero vector.
	ErrNoUniqueOrthogonalComponent = errors.New("vector: no unique orthogonal component")

	// ErrUnsupportedDimension indicates a 2D/3D-only operation on another
	// dimension.
	ErrUnsupportedDimension = errors.New("vector: only defined in 2 or 3 dimensions")
)
