// SPDX-License-Identifier: MIT

// Package vecline is a small analytic-geometry toolkit: decimal vectors and
// lines in the plane.
//
// What is in the box?
//
//	numeric/   explicit decimal Context: precision, near-zero tolerance,
//	           parsing of string and numeric input
//	vector/    immutable Vector: Add, Subtract, Scale, Dot, Magnitude,
//	           Normalize, Angle, IsParallel, IsOrthogonal, Project,
//	           OrthogonalComponent, Cross, ParallelogramArea, TriangleArea
//	line/      Line n·x = c: basepoint, IsParallelTo, Equal, Intersect
//	examples/  runnable demo
//
// Why decimals?
//
//   - 8.218 + (-1.129) is 7.089, not 7.0889999999999995.
//   - Arithmetic keeps 30 significant digits by default; only square roots
//     and arccos fall back to float64.
//   - Precision and tolerance are explicit values, never global state.
//
// Every failure is a sentinel error matched with errors.Is, e.g.
// vector.ErrZeroVector or line.ErrUndefinedBasepoint.
//
// Quick example:
//
//	a, _ := line.FromCoefficients(1, 1, 1)  // x_1 + x_2 = 1
//	b, _ := line.FromCoefficients(1, -1, 1) // x_1 - x_2 = 1
//	in, _ := a.Intersect(b)
//	fmt.Println(in) // intersection at Vector(1, 0)
//
//	go get github.com/katalvlaran/vecline
package vecline
