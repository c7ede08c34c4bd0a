// SPDX-License-Identifier: MIT

// Package numeric: functional configuration of the decimal policy.
// This file defines:
//   - documented defaults (constants),
//   - Option and its WithX constructors (panic on nonsensical values),
//   - gatherOptions, the single place where defaults and setters meet.
package numeric

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits kept after each
	// decimal operation.
	DefaultPrecision int32 = 30

	// DefaultTolerance is the near-zero threshold used by IsNearZero and by
	// every tolerance-based predicate built on top of it.
	DefaultTolerance = 1e-10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "numeric: WithPrecision: precision must be > 0"
	panicToleranceInvalid = "numeric: WithTolerance: tolerance must be finite, non-negative"
)

// Option mutates a Context under construction. Safe to apply repeatedly.
type Option func(*Context)

// WithPrecision sets the number of significant digits kept after each
// decimal operation.
//
// Inputs:
//   - p: strictly positive digit count.
//
// Errors:
//   - Panics with a stable message when p <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPrecision(p int32) Option {
	if p <= 0 {
		panic(panicPrecisionInvalid)
	}

	return func(c *Context) { c.precision = p }
}

// WithTolerance sets the near-zero threshold.
//
// Inputs:
//   - eps: finite, non-negative tolerance. eps == 0 means "exactly zero".
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// Notes:
//   - Larger eps relaxes zero, orthogonality and parallelism checks.
//
// AI-Hints:
//   - Keep the default 1e-10 unless inputs are measured data with known noise.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(c *Context) { c.tolerance = eps }
}

// gatherOptions applies user setters on top of the documented defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Context {
	c := Context{
		precision: DefaultPrecision,
		tolerance: DefaultTolerance,
	}
	for _, set := range user {
		set(&c)
	}

	return c
}
