// SPDX-License-Identifier: MIT

// Package vector provides an immutable, fixed-dimension vector of decimal
// coordinates.
//
// What it offers:
//   - arithmetic: Add, Subtract, Scale, Dot (exact decimal, rounded to the
//     numeric.Context precision);
//   - metrics: Magnitude, Normalize, Angle (float-backed square root and
//     arccos);
//   - predicates: IsZero, IsOrthogonal, IsParallel (tolerance-based);
//   - decomposition: Project, OrthogonalComponent;
//   - 2D/3D only: To3D, Cross, ParallelogramArea, TriangleArea.
//
// Every operation returns a new Vector; no method mutates its receiver, so
// a Vector is safe for concurrent use. Operations between vectors of
// different dimension fail with ErrDimensionMismatch.
//
// Each Vector carries the numeric.Context it was built with; binary
// operations use the receiver's context.
//
//	v := vector.MustParse("8.218", "-9.341")
//	w := vector.MustParse("-1.129", "2.111")
//	sum, _ := v.Add(w) // Vector(7.089, -7.23)
package vector
