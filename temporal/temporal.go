// SPDX-License-Identifier: MIT
//
// temporal.go: the date scale over Unix milliseconds.
//
// Purpose:
//   • Round folded extremes to the base interval and pick a calendar grid
//     interval (ChooseInterval) that fits the grid-line budget.
//   • Produce grid instants aligned in the strategy location, labelled with the
//     per-unit pattern, or the period-change pattern when a larger unit rolls over.
//
// Contract:
//   • Values are float64 milliseconds; calendar arithmetic happens on time.Time
//     in Location() so month lengths and DST are honoured.
//   • Grid never yields more than MaxGridValues instants and skips instants
//     that fall strictly inside a break.
//   • Breaks compress the difference the interval is chosen for.

package temporal

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/format"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/timeunit"
)

// MaxGridValues bounds the number of instants a single Grid call may produce.
const MaxGridValues = 10000

// Strategy is the date scale.Strategy.
type Strategy struct {
	opts Options
}

// -----------------------------------------------------------------------------
// Construction and accessors.
// -----------------------------------------------------------------------------

// New returns a date strategy configured by opts.
func New(opts ...Option) *Strategy {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Strategy{opts: o}
}

// Kind implements scale.Strategy.
func (s *Strategy) Kind() scale.Kind { return scale.Date }

// BaseInterval returns the data granularity.
func (s *Strategy) BaseInterval() timeunit.Granularity { return s.opts.baseInterval }

// SetBaseInterval replaces the data granularity; invalid values are rejected.
func (s *Strategy) SetBaseInterval(g timeunit.Granularity) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.opts.baseInterval = g
	return nil
}

// GridIntervals returns a copy of the candidate granularities.
func (s *Strategy) GridIntervals() []timeunit.Granularity {
	out := make([]timeunit.Granularity, len(s.opts.gridIntervals))
	copy(out, s.opts.gridIntervals)
	return out
}

// Location returns the zone grid instants are rounded in.
func (s *Strategy) Location() *time.Location { return s.opts.location }

// Interval returns the grid granularity for a visible duration (ms).
func (s *Strategy) Interval(duration float64, gridCount int) timeunit.Granularity {
	return ChooseInterval(s.opts.gridIntervals, 0, duration, gridCount)
}

// -----------------------------------------------------------------------------
// Range adjustment and mapping.
// -----------------------------------------------------------------------------

// AdjustMinMax implements scale.Strategy.
//
// Unless strict, min is rounded down to the base interval and max is rounded
// down and advanced by one base interval, so the last data cell is whole.
// The step is the duration of the chosen grid interval.
func (s *Strategy) AdjustMinMax(min, max, difference float64, gridCount int, strict bool) (scale.Range, error) {
	if !scale.IsFinite(min) || !scale.IsFinite(max) {
		return scale.Range{}, fmt.Errorf("[%g, %g]: %w", min, max, ErrNonFinite)
	}
	if min > max {
		min, max = max, min
	}
	compressed := (max - min) - difference
	if !scale.IsFinite(compressed) {
		compressed = 0
	}

	base := s.opts.baseInterval
	if !strict {
		lo := s.round(timeunit.FromMillis(min, s.opts.location), base)
		hi := timeunit.Add(s.round(timeunit.FromMillis(max, s.opts.location), base), base)
		min, max = timeunit.Millis(lo), timeunit.Millis(hi)
	}
	if max <= min {
		max = timeunit.Millis(timeunit.Add(timeunit.FromMillis(min, s.opts.location), base))
	}

	g := s.Interval(max-min-compressed, gridCount)

	return scale.Range{Min: min, Max: max, Step: g.Duration()}, nil
}

// ValueToPosition implements scale.Strategy.
func (s *Strategy) ValueToPosition(v float64, r scale.Range, b *breaks.Set) float64 {
	return b.ValueToPosition(v, r.Min, r.Max)
}

// PositionToValue implements scale.Strategy.
func (s *Strategy) PositionToValue(p float64, r scale.Range, b *breaks.Set) float64 {
	return b.PositionToValue(p, r.Min, r.Max)
}

// -----------------------------------------------------------------------------
// Grid and labels.
// -----------------------------------------------------------------------------

// Grid implements scale.Strategy.
//
// The granularity is chosen for the break-compressed length of [from, to].
// The first instant is from rounded down to it, so the first cell may start
// before from.
func (s *Strategy) Grid(r scale.Range, from, to float64, gridCount int, b *breaks.Set) []scale.Tick {
	if from > to {
		from, to = to, from
	}
	if !scale.IsFinite(from) || !scale.IsFinite(to) {
		return nil
	}
	g := s.Interval(b.AdjustDifference(from, to), gridCount)
	lr := scale.Range{Min: r.Min, Max: r.Max, Step: g.Duration()}

	var ticks []scale.Tick
	t := s.round(timeunit.FromMillis(from, s.opts.location), g)
	prev := t.Add(-time.Millisecond)
	for len(ticks) < MaxGridValues {
		ms := timeunit.Millis(t)
		if ms > to {
			break
		}
		if br, ok := b.Find(ms); ok && ms > br.AdjustedStart() && ms < br.AdjustedEnd() {
			t = s.afterBreak(t, br.AdjustedEnd(), g)
			continue
		}

		next := s.advance(t, g)
		ticks = append(ticks, scale.Tick{
			Value:   ms,
			End:     timeunit.Millis(next),
			Label:   s.label(prev, t, g, lr),
			Visible: true,
			Kind:    scale.GridTick,
		})
		prev, t = t, next
	}

	return ticks
}

// Format implements scale.Formatter. The pattern follows the unit of r.Step.
func (s *Strategy) Format(v float64, r scale.Range) string {
	if s.opts.formatter != nil {
		return s.opts.formatter.Format(v, r)
	}
	return format.FormatDate(s.pattern(s.unitForStep(r.Step), false), v, s.opts.location)
}

// label renders t, substituting the period-change pattern on a rollover
// into the unit containing g.Unit.
func (s *Strategy) label(prev, t time.Time, g timeunit.Granularity, r scale.Range) string {
	if s.opts.formatter != nil {
		return s.opts.formatter.Format(timeunit.Millis(t), r)
	}
	change := s.opts.markUnitChange && g.Unit != timeunit.Year &&
		timeunit.CheckChange(prev, t, g.Unit.Next(), s.opts.firstDay)

	return format.FormatDate(s.pattern(g.Unit, change), timeunit.Millis(t), s.opts.location)
}

func (s *Strategy) pattern(u timeunit.Unit, change bool) string {
	if change {
		if p, ok := s.opts.changeFormats[u]; ok {
			return p
		}
	}
	if p, ok := s.opts.dateFormats[u]; ok {
		return p
	}
	return format.DefaultDatePattern
}

// -----------------------------------------------------------------------------
// Calendar helpers.
// -----------------------------------------------------------------------------

// unitForStep returns the unit of the grid interval whose duration equals
// step, or the largest unit not longer than step.
func (s *Strategy) unitForStep(step float64) timeunit.Unit {
	for _, g := range s.opts.gridIntervals {
		if math.Abs(g.Duration()-step) < 0.5 {
			return g.Unit
		}
	}
	u := timeunit.Millisecond
	for c := timeunit.Millisecond; c <= timeunit.Year; c++ {
		if c.Millis() <= step {
			u = c
		}
	}
	return u
}

func (s *Strategy) round(t time.Time, g timeunit.Granularity) time.Time {
	return timeunit.Round(t, g, s.opts.firstDay)
}

// advance adds g to t and re-rounds, guaranteeing progress.
func (s *Strategy) advance(t time.Time, g timeunit.Granularity) time.Time {
	next := s.round(timeunit.Add(t, g), g)
	if !next.After(t) {
		next = timeunit.Add(t, g)
	}
	return next
}

// afterBreak returns the first grid instant at or after end.
func (s *Strategy) afterBreak(t time.Time, end float64, g timeunit.Granularity) time.Time {
	n := s.round(timeunit.FromMillis(end, s.opts.location), g)
	if timeunit.Millis(n) < end {
		n = s.advance(n, g)
	}
	if !n.After(t) {
		n = s.advance(t, g)
	}
	return n
}
