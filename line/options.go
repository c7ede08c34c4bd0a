// SPDX-License-Identifier: MIT

package line

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/vecline/vector"
)

// Dimension is the fixed dimension of every Line.
const Dimension = 2

// Option configures New. Unset fields fall back to the defaults: the 2D
// zero normal vector and a zero constant term.
type Option func(*options)

type options struct {
	normal    vector.Vector
	hasNormal bool
	constant  decimal.Decimal
}

// WithNormal sets the normal vector. Its numeric.Context becomes the
// line's context. The dimension is validated by New.
func WithNormal(n vector.Vector) Option {
	return func(o *options) {
		o.normal = n
		o.hasNormal = true
	}
}

// WithConstant sets the constant term c in n·x = c.
func WithConstant(c decimal.Decimal) Option {
	return func(o *options) { o.constant = c }
}

// gatherOptions applies setters in order (last-writer-wins) on top of the
// defaults.
func gatherOptions(user ...Option) (options, error) {
	o := options{constant: decimal.Zero}
	for _, set := range user {
		set(&o)
	}
	if !o.hasNormal {
		zero, err := vector.Zero(Dimension)
		if err != nil {
			return options{}, err
		}
		o.normal = zero
	}

	return o, nil
}
