// SPDX-License-Identifier: MIT

// Package numeric holds the decimal policy shared by vectors and lines.
//
// A Context bundles the two knobs every computation depends on:
//
//   - precision: number of significant digits kept after each decimal
//     operation (DefaultPrecision = 30);
//   - tolerance: near-zero threshold used by pivot and degeneracy checks
//     (DefaultTolerance = 1e-10).
//
// Contexts are plain values built with NewContext and functional options.
// There is no process-wide precision setting: every Vector carries the
// Context it was built with and every operation reads it from there.
//
// Add, Sub and Mul are exact decimal operations followed by rounding to the
// configured precision. Quo rounds the quotient to the same precision. Sqrt
// and Hypot are the only finite-precision steps: they go through float64.
//
//	ctx := numeric.NewContext(numeric.WithPrecision(40))
//	q, err := ctx.Quo(decimal.NewFromInt(1), decimal.NewFromInt(3))
package numeric
