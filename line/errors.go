// SPDX-License-Identifier: MIT

package line

import "errors"

var (
	// ErrNoNonzeroElementsFound indicates that every component of a vector
	// is within tolerance of zero where a pivot was required.
	ErrNoNonzeroElementsFound = errors.New("line: no nonzero elements found")

	// ErrUndefinedBasepoint indicates a relationship query on a line whose
	// normal vector is (near) zero.
	ErrUndefinedBasepoint = errors.New("line: basepoint is undefined")

	// ErrNotPlanar indicates a normal vector or point that is not 2D.
	ErrNotPlanar = errors.New("line: normal vector must be 2-dimensional")

	// ErrCoincidentPoints indicates that Through received the same point twice.
	ErrCoincidentPoints = errors.New("line: points must be distinct")
)
