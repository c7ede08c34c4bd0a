// SPDX-License-Identifier: MIT

// Package line models a line in the plane by its normal vector n and
// constant term c, i.e. the set of points x with n·x = c.
//
// A Line precomputes a basepoint (a point on the line) at construction.
// When every component of n is within tolerance of zero the line is
// degenerate and has no basepoint; relationship queries that need one fail
// with ErrUndefinedBasepoint.
//
// Relationships:
//
//	IsParallelTo – normals are parallel (a zero normal is parallel to all)
//	Equal        – parallel and the basepoint difference is orthogonal to n
//	Intersect    – Parallel, Coincident, or a unique Point (Cramer's rule)
//
// Example:
//
//	a, _ := line.FromCoefficients(1, 1, 1)  // x_1 + x_2 = 1
//	b, _ := line.FromCoefficients(1, -1, 1) // x_1 - x_2 = 1
//	in, _ := a.Intersect(b)                 // Point (1, 0)
package line
