// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a numeric-like value into a decimal.
//
// Accepted inputs:
//   - decimal.Decimal and *decimal.Decimal (non-nil);
//   - string in plain or scientific notation ("1.5", "-2e-3"), surrounding
//     whitespace ignored;
//   - every signed and unsigned integer kind;
//   - float32 and float64 (finite only), converted via their shortest
//     decimal representation.
//
// Errors:
//   - ErrNotNumeric for any other type, malformed strings, NaN and ±Inf.
func Parse(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, fmt.Errorf("%w: nil *decimal.Decimal", ErrNotNumeric)
		}
		return *x, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, x)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		if isNonFinite(float64(x)) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, x)
		}
		return decimal.NewFromFloat32(x), nil
	case float64:
		if isNonFinite(x) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, x)
		}
		return decimal.NewFromFloat(x), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrNotNumeric, v)
	}
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(v any) decimal.Decimal {
	d, err := Parse(v)
	if err != nil {
		panic(err)
	}

	return d
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
