// SPDX-License-Identifier: MIT
//
// numeric.go: the value scale (linear and logarithmic).
//
// Purpose:
//   • Turn folded data extremes into "nice" bounds and a step whose leading
//     digit is 1, 2 or 5, for a given grid-line budget.
//   • Map values to positions through the axis breaks; log scales work in log10.
//
// Contract:
//   • AdjustMinMax never panics; non-finite input is reported as ErrNonFinite and
//     non-positive input on a log scale as ErrNonPositiveLog.
//   • The step is capped at maxPrecision decimals; strict mode keeps the bounds
//     and only derives the step.
//   • ValueToPosition and PositionToValue are inverses within 1e-5 relative.
//
// Determinism:
//   • Pure functions of their arguments and the strategy options; no state is
//     kept between calls.

package numeric

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/scale"
)

// slack absorbs floating-point residue in quotients such as 0.12/0.01.
const slack = 1e-9

// Strategy is the numeric scale.Strategy.
type Strategy struct {
	logarithmic  bool
	maxPrecision int
	formatter    scale.Formatter
}

// -----------------------------------------------------------------------------
// Construction and accessors.
// -----------------------------------------------------------------------------

// New returns a numeric strategy configured by opts.
func New(opts ...Option) *Strategy {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Strategy{
		logarithmic:  o.logarithmic,
		maxPrecision: o.maxPrecision,
		formatter:    o.formatter,
	}
}

// Kind implements scale.Strategy.
func (s *Strategy) Kind() scale.Kind { return scale.Value }

// Logarithmic reports whether the scale interpolates log10(v).
func (s *Strategy) Logarithmic() bool { return s.logarithmic }

// MaxPrecision returns the decimal cap of steps.
func (s *Strategy) MaxPrecision() int { return s.maxPrecision }

// Format implements scale.Formatter.
func (s *Strategy) Format(v float64, r scale.Range) string {
	return s.formatter.Format(v, r)
}

// CheckValue reports ErrNonPositiveLog for v ≤ 0 on a logarithmic scale.
func (s *Strategy) CheckValue(v float64) error {
	if s.logarithmic && !(v > 0) {
		return fmt.Errorf("value %g: %w", v, ErrNonPositiveLog)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Range adjustment.
// -----------------------------------------------------------------------------

// AdjustMinMax implements scale.Strategy.
func (s *Strategy) AdjustMinMax(min, max, difference float64, gridCount int, strict bool) (scale.Range, error) {
	if !scale.IsFinite(min) || !scale.IsFinite(max) {
		return scale.Range{}, fmt.Errorf("[%g, %g]: %w", min, max, ErrNonFinite)
	}
	if min > max {
		min, max = max, min
	}
	if s.logarithmic {
		return adjustLog(min, max, gridCount, strict)
	}

	return AdjustMinMax(min, max, difference, gridCount, strict, s.maxPrecision), nil
}

// AdjustMinMax computes nice bounds and a step for [min, max].
//
// Steps:
//  1. difference == 0 falls back to |max|, then to 1.
//  2. power = 10^floor(log10|difference|) / 10.
//  3. Bounds are rounded inward to multiples of power and padded by one
//     power. A non-negative minimum never crosses 0, neither does a
//     non-positive maximum.
//  4. step = ceil(difference/gridCount/power)·power with its leading digit
//     snapped to {1, 2, 5, 10} and at most maxPrecision decimals.
//  5. Bounds become integer multiples of step, widened by one step wherever
//     they would cut the data.
//
// In strict mode the returned bounds are the input bounds; only the step is
// derived.
//
// Complexity: O(1).
func AdjustMinMax(min, max, difference float64, gridCount int, strict bool, maxPrecision int) scale.Range {
	if gridCount < 1 {
		gridCount = 1
	}
	initialMin, initialMax := min, max

	if difference == 0 || !scale.IsFinite(difference) {
		difference = math.Abs(max)
	}
	if difference == 0 {
		difference = 1
	}
	difference = math.Abs(difference)

	step := NiceStep(difference, gridCount, maxPrecision)
	if strict {
		return scale.Range{Min: initialMin, Max: initialMax, Step: step}
	}

	power := scale.Power(difference) / 10
	min = math.Ceil(min/power-slack)*power - power
	max = math.Floor(max/power+slack)*power + power
	if min < 0 && initialMin >= 0 {
		min = 0
	}
	if max > 0 && initialMax <= 0 {
		max = 0
	}

	dec := 0
	if sp := scale.Power(step); sp < 1 {
		dec = int(math.Round(math.Abs(math.Log10(sp)))) + 1
	}

	minCount := math.Floor(min/step + slack)
	min = scale.RoundTo(step*minCount, dec)
	maxCount := math.Ceil(max/step - slack)
	if maxCount == minCount {
		maxCount++
	}
	max = scale.RoundTo(step*maxCount, dec)
	if max < initialMax {
		max = scale.RoundTo(max+step, dec)
	}
	if min > initialMin {
		min = scale.RoundTo(min-step, dec)
	}

	return scale.Range{Min: min, Max: max, Step: step}
}

// NiceStep returns the grid step for a span of difference split into about
// gridCount intervals. The leading digit is one of 1, 2, 5 (a 10 rolls over
// into the next power).
func NiceStep(difference float64, gridCount int, maxPrecision int) float64 {
	if gridCount < 1 {
		gridCount = 1
	}
	difference = math.Abs(difference)
	if difference == 0 || !scale.IsFinite(difference) {
		return 1
	}
	power := scale.Power(difference) / 10

	step := math.Ceil(difference/float64(gridCount)/power-slack) * power
	stepPower := scale.Power(step)
	divisor := math.Ceil(step/stepPower - slack)
	switch {
	case divisor > 5:
		divisor = 10
	case divisor > 2:
		divisor = 5
	}
	step = math.Ceil(step/(stepPower*divisor)-slack) * stepPower * divisor

	if maxPrecision >= 0 {
		if capped := scale.CeilTo(step, maxPrecision); capped != step && capped > 0 {
			step = capped
		}
	}
	if stepPower < 1 {
		dec := int(math.Round(math.Abs(math.Log10(stepPower)))) + 1
		step = scale.RoundTo(step, dec)
	}

	return step
}

// -----------------------------------------------------------------------------
// Mapping and grid.
// -----------------------------------------------------------------------------

// ValueToPosition implements scale.Strategy.
func (s *Strategy) ValueToPosition(v float64, r scale.Range, b *breaks.Set) float64 {
	if s.logarithmic {
		if !(v > 0) || !(r.Min > 0) || !(r.Max > 0) {
			return math.NaN()
		}
		return b.Transformed(math.Log10).ValueToPosition(math.Log10(v), math.Log10(r.Min), math.Log10(r.Max))
	}
	return b.ValueToPosition(v, r.Min, r.Max)
}

// PositionToValue implements scale.Strategy.
func (s *Strategy) PositionToValue(p float64, r scale.Range, b *breaks.Set) float64 {
	if s.logarithmic {
		if !(r.Min > 0) || !(r.Max > 0) {
			return math.NaN()
		}
		lv := b.Transformed(math.Log10).PositionToValue(p, math.Log10(r.Min), math.Log10(r.Max))
		return math.Pow(10, lv)
	}
	return b.PositionToValue(p, r.Min, r.Max)
}

// Grid implements scale.Strategy: multiples of r.Step within [from, to],
// skipping values strictly inside a break.
func (s *Strategy) Grid(r scale.Range, from, to float64, gridCount int, b *breaks.Set) []scale.Tick {
	if from > to {
		from, to = to, from
	}
	if s.logarithmic {
		return s.logGrid(r, from, to, b)
	}
	step := r.Step
	if !(step > 0) || !scale.IsFinite(step) || !scale.IsFinite(from) || !scale.IsFinite(to) {
		return nil
	}

	firstN := math.Ceil(from/step - slack)
	lastN := math.Floor(to/step + slack)
	n := int(lastN-firstN) + 1
	if n < 1 {
		return nil
	}
	if n > MaxGridValues {
		n = MaxGridValues
		lastN = firstN + float64(n-1)
	}

	dec := scale.Decimals(step)
	values := vec.Linspace(firstN*step, lastN*step, n)
	ticks := make([]scale.Tick, 0, len(values))
	for _, v := range values {
		v = scale.RoundTo(v, dec)
		if b.ContainsStrict(v) {
			continue
		}
		ticks = append(ticks, scale.Tick{
			Value:   v,
			End:     scale.RoundTo(v+step, dec),
			Label:   s.Format(v, r),
			Visible: true,
			Kind:    scale.GridTick,
		})
	}

	return ticks
}

// logGrid emits powers of ten every r.Step decades.
func (s *Strategy) logGrid(r scale.Range, from, to float64, b *breaks.Set) []scale.Tick {
	if !(from > 0) || !(to > 0) {
		return nil
	}
	step := math.Max(1, math.Round(r.Step))
	lo := math.Ceil(math.Log10(from)/step-slack) * step
	hi := math.Floor(math.Log10(to)/step+slack) * step
	if hi < lo {
		return nil
	}
	n := int((hi-lo)/step) + 1
	if n > MaxGridValues {
		n = MaxGridValues
		hi = lo + float64(n-1)*step
	}

	values := vec.Logspace(lo, hi, n, 10)
	ticks := make([]scale.Tick, 0, len(values))
	for _, v := range values {
		if b.ContainsStrict(v) {
			continue
		}
		// labels of sub-unit decades need their own precision
		lr := scale.Range{Min: r.Min, Max: r.Max, Step: math.Min(v, 1)}
		ticks = append(ticks, scale.Tick{
			Value:   v,
			End:     v * math.Pow(10, step),
			Label:   s.Format(v, lr),
			Visible: true,
			Kind:    scale.GridTick,
		})
	}

	return ticks
}

// -----------------------------------------------------------------------------
// Logarithmic range.
// -----------------------------------------------------------------------------

// adjustLog snaps [min, max] to the enclosing powers of ten (strict mode
// keeps the bounds) and counts the step in decades.
func adjustLog(min, max float64, gridCount int, strict bool) (scale.Range, error) {
	if !(min > 0) {
		return scale.Range{}, fmt.Errorf("min %g: %w", min, ErrNonPositiveLog)
	}
	if gridCount < 1 {
		gridCount = 1
	}
	lmin, lmax := math.Log10(min), math.Log10(max)
	if !strict {
		lmin = math.Floor(lmin + slack)
		lmax = math.Ceil(lmax - slack)
	}
	if lmax <= lmin {
		lmax = math.Floor(lmin) + 1
	}
	step := math.Max(1, math.Ceil((lmax-lmin)/float64(gridCount)-slack))

	r := scale.Range{Min: math.Pow(10, lmin), Max: math.Pow(10, lmax), Step: step}
	if strict {
		r.Min = min
		if max > min {
			r.Max = max
		}
	}

	return r, nil
}
