// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrNotNumeric indicates a value that cannot be converted to a decimal
	// (unsupported type, malformed string, NaN or ±Inf).
	ErrNotNumeric = errors.New("numeric: value is not numeric")

	// ErrDivisionByZero is returned by Quo when the divisor is zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrNegativeSqrt is returned by Sqrt for negative input.
	ErrNegativeSqrt = errors.New("numeric: square root of a negative number")
)
