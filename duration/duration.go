// SPDX-License-Identifier: MIT

package duration

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/format"
	"github.com/katalvlaran/axiscale/numeric"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/timeunit"
)

// ErrNonFinite indicates NaN or ±Inf extremes passed to AdjustMinMax.
var ErrNonFinite = errors.New("duration: min and max must be finite")

var (
	clockDivisors = []float64{60, 30, 20, 15, 10, 2, 1}
	hourDivisors  = []float64{24, 12, 6, 4, 2, 1}
)

// Options configure a duration Strategy.
type Options struct {
	baseUnit     timeunit.Unit
	maxPrecision int
	formatter    scale.Formatter
}

// Option mutates Options.
type Option func(*Options)

// WithBaseUnit sets the unit values are counted in (default: second).
// Panics if u is not a valid unit.
func WithBaseUnit(u timeunit.Unit) Option {
	if !u.Valid() {
		panic(fmt.Sprintf("duration: WithBaseUnit(%v): %v", u, timeunit.ErrUnknownUnit))
	}
	return func(o *Options) { o.baseUnit = u }
}

// WithMaxPrecision caps the decimals of the fallback numeric step.
// Panics if p is negative.
func WithMaxPrecision(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf("duration: WithMaxPrecision(%d): precision must be >= 0", p))
	}
	return func(o *Options) { o.maxPrecision = p }
}

// WithFormatter replaces the duration labels.
// Panics if f is nil.
func WithFormatter(f scale.Formatter) Option {
	if f == nil {
		panic("duration: WithFormatter(nil)")
	}
	return func(o *Options) { o.formatter = f }
}

// Strategy is the duration scale.Strategy.
type Strategy struct {
	base         timeunit.Unit
	maxPrecision int
	formatter    scale.Formatter
	linear       *numeric.Strategy
}

// New returns a duration strategy counting seconds unless configured
// otherwise.
func New(opts ...Option) *Strategy {
	o := Options{baseUnit: timeunit.Second, maxPrecision: scale.DefaultMaxPrecision}
	for _, fn := range opts {
		fn(&o)
	}
	if o.formatter == nil {
		o.formatter = format.Duration{Base: o.baseUnit}
	}

	return &Strategy{
		base:         o.baseUnit,
		maxPrecision: o.maxPrecision,
		formatter:    o.formatter,
		linear:       numeric.New(numeric.WithMaxPrecision(o.maxPrecision), numeric.WithFormatter(o.formatter)),
	}
}

// Kind implements scale.Strategy.
func (s *Strategy) Kind() scale.Kind { return scale.Duration }

// BaseUnit returns the unit values are counted in.
func (s *Strategy) BaseUnit() timeunit.Unit { return s.base }

// Format implements scale.Formatter.
func (s *Strategy) Format(v float64, r scale.Range) string { return s.formatter.Format(v, r) }

// AdjustMinMax implements scale.Strategy.
//
// For sub-day base units:
//  1. the divisor is the first of the unit's divisor list that still splits
//     difference into more than gridCount parts;
//  2. count = ceil(difference/divisor/gridCount), snapped to the clock divisor
//     closest to its two leading digits;
//  3. step = divisor·count; bounds are rounded outward to multiples of step
//     unless strict.
//
// Other base units use numeric.AdjustMinMax.
func (s *Strategy) AdjustMinMax(min, max, difference float64, gridCount int, strict bool) (scale.Range, error) {
	if !scale.IsFinite(min) || !scale.IsFinite(max) {
		return scale.Range{}, fmt.Errorf("[%g, %g]: %w", min, max, ErrNonFinite)
	}
	if min > max {
		min, max = max, min
	}
	if s.base > timeunit.Hour {
		return numeric.AdjustMinMax(min, max, difference, gridCount, strict, s.maxPrecision), nil
	}

	step := Step(s.base, min, max, difference, gridCount)
	if strict {
		return scale.Range{Min: min, Max: max, Step: step}, nil
	}
	lo := math.Floor(min/step) * step
	hi := math.Ceil(max/step) * step
	if hi == lo {
		hi += step
	}

	return scale.Range{Min: lo, Max: hi, Step: step}, nil
}

// Step returns the clock-friendly step for a sub-day base unit.
func Step(base timeunit.Unit, min, max, difference float64, gridCount int) float64 {
	if gridCount < 1 {
		gridCount = 1
	}
	if difference == 0 || !scale.IsFinite(difference) {
		difference = math.Abs(max)
	}
	if difference == 0 {
		difference = 1
	}
	difference = math.Abs(difference)

	divisors := clockDivisors
	if base == timeunit.Hour {
		divisors = hourDivisors
	}
	divisor := 1.0
	for _, d := range divisors {
		if difference/d > float64(gridCount) {
			divisor = d
			break
		}
	}

	count := math.Ceil(difference / divisor / float64(gridCount))
	if count < 1 {
		count = 1
	}
	power := scale.Power(count) / 10
	count = scale.RoundTo(closest(clockDivisors, count/power)*power, 10)
	if count <= 0 {
		count = 1
	}

	return divisor * count
}

// closest returns the element of values nearest to ref, the first on ties.
func closest(values []float64, ref float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if math.Abs(v-ref) < math.Abs(best-ref) {
			best = v
		}
	}
	return best
}

// ValueToPosition implements scale.Strategy.
func (s *Strategy) ValueToPosition(v float64, r scale.Range, b *breaks.Set) float64 {
	return s.linear.ValueToPosition(v, r, b)
}

// PositionToValue implements scale.Strategy.
func (s *Strategy) PositionToValue(p float64, r scale.Range, b *breaks.Set) float64 {
	return s.linear.PositionToValue(p, r, b)
}

// Grid implements scale.Strategy: multiples of r.Step labelled as durations.
func (s *Strategy) Grid(r scale.Range, from, to float64, gridCount int, b *breaks.Set) []scale.Tick {
	return s.linear.Grid(r, from, to, gridCount, b)
}
