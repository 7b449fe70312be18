// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"github.com/katalvlaran/axiscale/format"
	"github.com/katalvlaran/axiscale/scale"
)

// MaxGridValues bounds the number of values a single Grid call may produce.
const MaxGridValues = 10000

// Options configure a numeric Strategy.
type Options struct {
	logarithmic  bool
	maxPrecision int
	formatter    scale.Formatter
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a linear scale with scale.DefaultMaxPrecision and
// plain number labels.
func DefaultOptions() Options {
	return Options{
		maxPrecision: scale.DefaultMaxPrecision,
		formatter:    format.Number{},
	}
}

// WithLogarithmic switches the scale to log10 interpolation.
func WithLogarithmic() Option {
	return func(o *Options) { o.logarithmic = true }
}

// WithMaxPrecision caps the decimals of a step.
// Panics if p is negative.
func WithMaxPrecision(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf("numeric: WithMaxPrecision(%d): precision must be >= 0", p))
	}
	return func(o *Options) { o.maxPrecision = p }
}

// WithFormatter replaces the label formatter.
// Panics if f is nil.
func WithFormatter(f scale.Formatter) Option {
	if f == nil {
		panic("numeric: WithFormatter(nil)")
	}
	return func(o *Options) { o.formatter = f }
}
