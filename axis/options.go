// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/zoom"
	"github.com/sirupsen/logrus"
)

// Defaults for Options.
const (
	// DefaultName is the name series see in Ref.Name.
	DefaultName = "x"

	// DefaultGridCount is used while no renderer is attached.
	DefaultGridCount = 5

	// DefaultAnimationDuration of extremum transitions.
	DefaultAnimationDuration = 0 * time.Millisecond
)

// Options configure an Axis.
type Options struct {
	name           string
	logger         logrus.FieldLogger
	clock          func() time.Time
	renderer       Renderer
	formatter      scale.Formatter
	animation      time.Duration
	maxZoomFactor  float64
	gridCount      int
	strict         bool
	min, max       float64
	hasMin, hasMax bool
	skipEmpty      bool
	emptyBreakSize float64
	detectBase     bool
	initialBreaks  []*breaks.Break
	initialStart   float64
	initialEnd     float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: name "x", a discarding logger, the
// wall clock, no renderer, five grid lines, no animation, the default
// maximum zoom factor and a full zoom window.
func DefaultOptions() Options {
	l := logrus.New()
	l.Out = io.Discard

	return Options{
		name:          DefaultName,
		logger:        l,
		clock:         time.Now,
		gridCount:     DefaultGridCount,
		animation:     DefaultAnimationDuration,
		maxZoomFactor: zoom.DefaultMaxZoomFactor,
		initialStart:  0,
		initialEnd:    1,
	}
}

// WithName sets the name passed to series in Ref.Name.
func WithName(name string) Option {
	return func(o *Options) { o.name = name }
}

// WithLogger routes validation logs to l.
// Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("axis: WithLogger(nil)")
	}
	return func(o *Options) { o.logger = l }
}

// WithClock replaces time.Now for transition timing.
// Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("axis: WithClock(nil)")
	}
	return func(o *Options) { o.clock = now }
}

// WithRenderer attaches the geometry the grid count and coordinates come from.
func WithRenderer(r Renderer) Option {
	return func(o *Options) { o.renderer = r }
}

// WithFormatter overrides the strategy's label formatting.
// Panics if f is nil.
func WithFormatter(f scale.Formatter) Option {
	if f == nil {
		panic("axis: WithFormatter(nil)")
	}
	return func(o *Options) { o.formatter = f }
}

// WithAnimationDuration animates extremum changes after the first
// validation. Zero snaps.
// Panics if d is negative.
func WithAnimationDuration(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("axis: WithAnimationDuration(%v): duration must be >= 0", d))
	}
	return func(o *Options) { o.animation = d }
}

// WithMaxZoomFactor bounds how far the window may shrink (width >= 1/f).
// Panics if f < 1.
func WithMaxZoomFactor(f float64) Option {
	if !(f >= 1) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("axis: WithMaxZoomFactor(%g): %v", f, zoom.ErrZoomFactor))
	}
	return func(o *Options) { o.maxZoomFactor = f }
}

// WithGridCount sets the grid-line budget used while no renderer is attached.
// Panics if n < 1.
func WithGridCount(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("axis: WithGridCount(%d): count must be >= 1", n))
	}
	return func(o *Options) { o.gridCount = n }
}

// WithStrictMinMax keeps the folded bounds instead of padding them to nice
// numbers.
func WithStrictMinMax(on bool) Option {
	return func(o *Options) { o.strict = on }
}

// WithMin overrides the folded minimum.
// Panics if v is not finite.
func WithMin(v float64) Option {
	if !scale.IsFinite(v) {
		panic(fmt.Sprintf("axis: WithMin(%g): value must be finite", v))
	}
	return func(o *Options) { o.min, o.hasMin = v, true }
}

// WithMax overrides the folded maximum.
// Panics if v is not finite.
func WithMax(v float64) Option {
	if !scale.IsFinite(v) {
		panic(fmt.Sprintf("axis: WithMax(%g): value must be finite", v))
	}
	return func(o *Options) { o.max, o.hasMax = v, true }
}

// WithSkipEmptyPeriods makes a date axis compress every run of base periods
// that holds no data into a break of the given size. Series must implement
// ValueSeries for their timestamps to be seen.
// Panics if size is outside [0, 1].
func WithSkipEmptyPeriods(size float64) Option {
	if !(size >= 0 && size <= 1) {
		panic(fmt.Sprintf("axis: WithSkipEmptyPeriods(%g): %v", size, breaks.ErrBreakSize))
	}
	return func(o *Options) { o.skipEmpty, o.emptyBreakSize = true, size }
}

// WithDetectBaseInterval makes a date axis derive its base interval from the
// spacing of series timestamps on every data pass.
func WithDetectBaseInterval() Option {
	return func(o *Options) { o.detectBase = true }
}

// WithBreaks seeds the axis with breaks.
func WithBreaks(bs ...*breaks.Break) Option {
	cp := append([]*breaks.Break(nil), bs...)
	return func(o *Options) { o.initialBreaks = append(o.initialBreaks, cp...) }
}

// WithZoom sets the initial window.
// Panics if either bound is NaN.
func WithZoom(start, end float64) Option {
	if math.IsNaN(start) || math.IsNaN(end) {
		panic(fmt.Sprintf("axis: WithZoom(%g, %g): %v", start, end, ErrInvalidZoom))
	}
	return func(o *Options) { o.initialStart, o.initialEnd = start, end }
}
