// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/vecline/numeric"
	"github.com/katalvlaran/vecline/vector"
)

// TestNew_Empty verifies that empty input is rejected.
func TestNew_Empty(t *testing.T) {
	_, err := vector.New()
	assert.ErrorIs(t, err, vector.ErrInvalidArgument)

	_, err = vector.Parse()
	assert.ErrorIs(t, err, vector.ErrInvalidArgument)

	_, err = vector.Zero(0)
	assert.ErrorIs(t, err, vector.ErrInvalidArgument)
}

// TestParse_MixedInput accepts strings and numbers in one call.
func TestParse_MixedInput(t *testing.T) {
	v, err := vector.Parse("1.5", 2, 0.25, decimal.NewFromInt(-4))
	require.NoError(t, err)
	assert.Equal(t, 4, v.Dimension())
	assert.Equal(t, "Vector(1.5, 2, 0.25, -4)", v.String())
}

// TestParse_NotNumeric wraps both sentinels so callers can match either.
func TestParse_NotNumeric(t *testing.T) {
	_, err := vector.Parse("1", "x")
	assert.ErrorIs(t, err, vector.ErrInvalidArgument)
	assert.ErrorIs(t, err, numeric.ErrNotNumeric)

	assert.Panics(t, func() { vector.MustParse(struct{}{}) })
}

// TestVector_Immutability checks that neither input slices nor Coordinates
// results alias the vector's storage.
func TestVector_Immutability(t *testing.T) {
	coords := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2)}
	v, err := vector.New(coords...)
	require.NoError(t, err)

	coords[0] = decimal.NewFromInt(99)
	got := v.Coordinates()
	got[1] = decimal.NewFromInt(99)

	assert.True(t, v.Equal(vector.MustParse(1, 2)))
	assert.True(t, v.At(0).Equal(decimal.NewFromInt(1)))
}

// TestVector_Equal covers exact decimal equality.
func TestVector_Equal(t *testing.T) {
	assert.True(t, vector.MustParse("1.0", "2.50").Equal(vector.MustParse(1, 2.5)))
	assert.False(t, vector.MustParse(1, 2).Equal(vector.MustParse(1, 2, 0)))
	assert.False(t, vector.MustParse("0.1").Equal(vector.MustParse("0.1000000000001")))
}

// TestVector_Zero builds the zero vector.
func TestVector_Zero(t *testing.T) {
	z, err := vector.Zero(3)
	require.NoError(t, err)
	assert.True(t, z.Equal(vector.MustParse(0, 0, 0)))
	assert.True(t, z.IsZero())
}

// TestVector_Context verifies that an explicit context is carried along.
func TestVector_Context(t *testing.T) {
	ctx := numeric.NewContext(numeric.WithPrecision(4))
	v, err := vector.ParseIn(ctx, "1", "3")
	require.NoError(t, err)

	u, err := v.Normalize()
	require.NoError(t, err)
	assert.Equal(t, int32(4), u.Context().Precision())
	assert.True(t, u.At(0).Equal(decimal.RequireFromString("0.3162")), "got %s", u.At(0))
}

// TestVector_CoordRoundTrip exercises the go-geom interop.
func TestVector_CoordRoundTrip(t *testing.T) {
	v, err := vector.FromCoord(geom.Coord{8.218, -9.341, 0.5})
	require.NoError(t, err)
	assert.True(t, v.Equal(vector.MustParse("8.218", "-9.341", "0.5")))
	assert.Equal(t, geom.Coord{8.218, -9.341, 0.5}, v.Coord())

	_, err = vector.FromCoord(geom.Coord{})
	assert.ErrorIs(t, err, vector.ErrInvalidArgument)

	_, err = vector.FromCoord(geom.Coord{1, math.NaN()})
	assert.ErrorIs(t, err, numeric.ErrNotNumeric)
}
