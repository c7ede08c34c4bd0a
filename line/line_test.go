// SPDX-License-Identifier: MIT

package line_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/vecline/line"
	"github.com/katalvlaran/vecline/numeric"
	"github.com/katalvlaran/vecline/vector"
)

// mustLine builds a·x_1 + b·x_2 = c or fails the test.
func mustLine(t *testing.T, a, b, c any) line.Line {
	t.Helper()
	l, err := line.FromCoefficients(a, b, c)
	require.NoError(t, err)

	return l
}

// TestNew_Defaults verifies the degenerate default line.
func TestNew_Defaults(t *testing.T) {
	l, err := line.New()
	require.NoError(t, err)

	assert.True(t, l.Normal().Equal(vector.MustParse(0, 0)))
	assert.True(t, l.Constant().IsZero())
	assert.Equal(t, 2, l.Dimension())
	_, ok := l.Basepoint()
	assert.False(t, ok, "zero normal has no basepoint")
	assert.Equal(t, "0 = 0", l.String())

	l, err = line.New(line.WithConstant(decimal.NewFromInt(4)))
	require.NoError(t, err)
	assert.Equal(t, "0 = 4", l.String())
}

// TestNew_NotPlanar rejects non-2D normals.
func TestNew_NotPlanar(t *testing.T) {
	_, err := line.New(line.WithNormal(vector.MustParse(1, 2, 3)))
	assert.ErrorIs(t, err, line.ErrNotPlanar)
	assert.ErrorIs(t, err, vector.ErrUnsupportedDimension)
}

// TestFromCoefficients_BadInput surfaces the parse sentinels.
func TestFromCoefficients_BadInput(t *testing.T) {
	_, err := line.FromCoefficients("x", 1, 1)
	assert.ErrorIs(t, err, numeric.ErrNotNumeric)

	_, err = line.FromCoefficients(1, 1, "y")
	assert.ErrorIs(t, err, vector.ErrInvalidArgument)
	assert.ErrorIs(t, err, numeric.ErrNotNumeric)
}

// TestBasepoint checks placement on the first non-zero axis.
func TestBasepoint(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c any
		want    vector.Vector
	}{
		{"first axis", 2, 3, 6, vector.MustParse(3, 0)},
		{"second axis", 0, 4, 2, vector.MustParse(0, "0.5")},
		{"near-zero first", "1e-11", 5, 10, vector.MustParse(0, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := mustLine(t, tc.a, tc.b, tc.c)
			bp, ok := l.Basepoint()
			require.True(t, ok)
			assert.True(t, bp.Equal(tc.want), "got %s", bp)

			onLine, err := l.Normal().Dot(bp)
			require.NoError(t, err)
			assert.True(t, onLine.Sub(l.Constant()).Abs().LessThan(decimal.RequireFromString("1e-10")))
		})
	}

	_, ok := mustLine(t, "1e-12", "-1e-12", 3).Basepoint()
	assert.False(t, ok, "near-zero normal has no basepoint")
}

// TestFirstNonzeroIndex covers the pivot search.
func TestFirstNonzeroIndex(t *testing.T) {
	i, err := line.FirstNonzeroIndex(vector.MustParse(0, "1e-11", 3))
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = line.FirstNonzeroIndex(vector.MustParse(-4, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = line.FirstNonzeroIndex(vector.MustParse(0, "-1e-11"))
	assert.ErrorIs(t, err, line.ErrNoNonzeroElementsFound)
}

// TestString covers the formatting rules.
func TestString(t *testing.T) {
	tests := []struct {
		a, b, c any
		want    string
	}{
		{3, 2, 5, "3x_1 + 2x_2 = 5"},
		{1, -1, 1, "x_1 - x_2 = 1"},
		{-1, 0, -2, "-x_1 = -2"},
		{0, -1.5, 0.25, "-1.500x_2 = 0.250"},
		{4.046, 2.836, 1.21, "4.046x_1 + 2.836x_2 = 1.210"},
		{"1.23456", 0, 7, "1.235x_1 = 7"},
		{"0.0001", 2, 3, "2x_2 = 3"},
		{"2.0", "-1.0", "0.0", "2x_1 - x_2 = 0"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mustLine(t, tc.a, tc.b, tc.c).String())
	}
}

// TestThrough builds lines from two points.
func TestThrough(t *testing.T) {
	l, err := line.Through(geom.Coord{1, 1}, geom.Coord{4, 3})
	require.NoError(t, err)
	assert.Equal(t, "-2x_1 + 3x_2 = 1", l.String())

	// Extra ordinates (e.g. XYZ layouts) are ignored.
	l, err = line.Through(geom.Coord{0, 0, 9}, geom.Coord{1, 1, 9})
	require.NoError(t, err)
	assert.Equal(t, "-x_1 + x_2 = 0", l.String())

	_, err = line.Through(geom.Coord{1, 1}, geom.Coord{1, 1})
	assert.ErrorIs(t, err, line.ErrCoincidentPoints)

	_, err = line.Through(geom.Coord{1}, geom.Coord{1, 1})
	assert.ErrorIs(t, err, line.ErrNotPlanar)
}
