// SPDX-License-Identifier: MIT

package axis

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/category"
	"github.com/katalvlaran/axiscale/duration"
	"github.com/katalvlaran/axiscale/numeric"
	"github.com/katalvlaran/axiscale/renderer"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/temporal"
	"github.com/katalvlaran/axiscale/zoom"
	"github.com/sirupsen/logrus"
)

// Fallback extremes used when no series proposes a finite value.
const (
	DefaultMin = -1.0
	DefaultMax = 1.0

	// degenerateNudge is the fraction of |v| a zero-width span is widened by
	// on each side.
	degenerateNudge = 0.01
)

// ErrSeriesNotFound indicates RemoveSeries with a series that is not registered.
var ErrSeriesNotFound = errors.New("axis: series not found")

// Ref identifies the axis a series is being asked about.
type Ref struct {
	Name string
	Kind scale.Kind
}

// Series proposes extremes for the axes it is plotted against. Series only
// read; they never mutate the axis.
//
// Implementations must be comparable (pointer types are) so that
// RemoveSeries can find them.
type Series interface {
	// MinMax returns the extremes of the series along ref. ok is false
	// when the series has no data for that axis.
	MinMax(ref Ref) (min, max float64, ok bool)

	// IgnoreMinMax excludes the series from the fold.
	IgnoreMinMax() bool
}

// ValueSeries additionally exposes the raw values along an axis. Date axes
// use them to find empty periods and to detect the base interval.
type ValueSeries interface {
	Series
	Values(ref Ref) []float64
}

// Renderer is the geometry an axis consumes. renderer.Linear implements it.
type Renderer interface {
	AxisLength() float64
	MinGridDistance() float64
	PositionToPoint(pos float64) renderer.Point
	PointToPosition(p renderer.Point) float64
	PositionToCoordinate(pos float64) float64
}

// valueChecker is implemented by strategies that reject part of the real
// line (logarithmic numeric scales).
type valueChecker interface {
	CheckValue(v float64) error
}

type logScale interface {
	Logarithmic() bool
}

type state int

const (
	stateDirtyData state = iota
	stateDirtyZoom
	stateValid
)

// SelectionEvent reports a change of the zoomed bounds.
type SelectionEvent struct {
	Axis                 *Axis
	OldMin, OldMax       float64
	MinZoomed, MaxZoomed float64
	Start, End           float64
}

// ExtremesEvent reports a change of the adjusted bounds. Animated is true
// when the axis transitions towards New instead of snapping to it.
type ExtremesEvent struct {
	Axis     *Axis
	Old, New scale.Range
	Animated bool
}

// Axis is the axis core. Create one with New or NewOfKind.
type Axis struct {
	mu sync.Mutex

	opts     Options
	log      logrus.FieldLogger
	strategy scale.Strategy
	series   []Series
	breaks   *breaks.Set
	window   zoom.Window
	tween    zoom.Tween

	state       state
	err         error
	initialized bool

	target  scale.Range // adjusted bounds
	current scale.Range // displayed bounds, trails target during a transition

	zoomed               bool
	minZoomed, maxZoomed float64
	step                 float64
	gridCount            int

	items   []*DataItem
	pool    []*DataItem
	longest string

	selectionListeners []func(SelectionEvent)
	extremesListeners  []func(ExtremesEvent)
	pending            []func()
}

// New returns an axis over strategy. The first read validates it.
func New(strategy scale.Strategy, opts ...Option) (*Axis, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w, err := zoom.NewWindow(o.maxZoomFactor)
	if err != nil {
		return nil, fmt.Errorf("axis: %w", err)
	}
	w.Set(o.initialStart, o.initialEnd)

	set := breaks.NewSet()
	for _, b := range o.initialBreaks {
		if err := set.Add(b); err != nil {
			return nil, fmt.Errorf("axis %q: initial break: %w", o.name, err)
		}
	}

	return &Axis{
		opts:      o,
		log:       o.logger.WithField("axis", o.name),
		strategy:  strategy,
		breaks:    set,
		window:    w,
		state:     stateDirtyData,
		gridCount: o.gridCount,
	}, nil
}

// NewOfKind builds an axis with the default strategy of kind.
func NewOfKind(kind scale.Kind, opts ...Option) (*Axis, error) {
	var s scale.Strategy
	switch kind {
	case scale.Value:
		s = numeric.New()
	case scale.Date:
		s = temporal.New()
	case scale.Category:
		s = category.New()
	case scale.Duration:
		s = duration.New()
	default:
		return nil, fmt.Errorf("axis: kind %v: %w", kind, scale.ErrUnknownKind)
	}
	return New(s, opts...)
}

// run executes fn under the lock and then delivers the events fn queued.
func (a *Axis) run(fn func() error) error {
	a.mu.Lock()
	err := fn()
	pending := a.pending
	a.pending = nil
	a.mu.Unlock()

	for _, deliver := range pending {
		deliver()
	}
	return err
}

// Validate runs whatever passes are outstanding and returns the sticky error.
func (a *Axis) Validate() error { return a.run(a.validate) }

// InvalidateData schedules a data pass: extremes are folded again.
func (a *Axis) InvalidateData() {
	a.mu.Lock()
	a.invalidateData()
	a.mu.Unlock()
}

// Invalidate schedules a zoom pass: zoomed bounds and data items are rebuilt.
func (a *Axis) Invalidate() {
	a.mu.Lock()
	a.invalidateZoom()
	a.mu.Unlock()
}

func (a *Axis) invalidateData() {
	a.state = stateDirtyData
	a.err = nil
}

func (a *Axis) invalidateZoom() {
	if a.state == stateValid && a.err == nil {
		a.state = stateDirtyZoom
	}
}

func (a *Axis) validate() error {
	if a.state == stateDirtyData {
		a.dataPass()
	}
	if a.state == stateDirtyZoom {
		a.zoomPass()
	}
	return a.err
}

// fail records err as the sticky error and parks the axis until the next
// configuration change.
func (a *Axis) fail(err error) {
	a.err = err
	a.state = stateValid
	a.log.WithError(err).Error("axis: validation failed")
}

func (a *Axis) ref() Ref { return Ref{Name: a.opts.name, Kind: a.strategy.Kind()} }

func (a *Axis) dataPass() {
	a.err = nil
	a.gridCount = a.computeGridCount()

	min, max := a.fold()
	a.prepareDates(min, max)

	diff := a.breaks.AdjustDifference(min, max)
	r, err := a.strategy.AdjustMinMax(min, max, diff, a.gridCount, a.opts.strict)
	if err != nil {
		a.fail(fmt.Errorf("axis %q: adjust [%g, %g]: %w", a.opts.name, min, max, err))
		return
	}
	a.log.WithFields(logrus.Fields{
		"kind": a.strategy.Kind().String(),
		"min":  r.Min,
		"max":  r.Max,
		"step": r.Step,
		"grid": a.gridCount,
	}).Debug("axis: data pass")

	a.setTarget(r)
	a.state = stateDirtyZoom
}

// fold reduces the series extremes to one (min, max) and applies the user
// overrides. Strategies that own their domain skip the series.
func (a *Axis) fold() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)

	if dp, ok := a.strategy.(scale.DomainProvider); ok {
		if lo, hi, ok := dp.Domain(); ok {
			min, max = lo, hi
		}
	} else {
		ref := a.ref()
		for _, s := range a.series {
			if s.IgnoreMinMax() {
				continue
			}
			lo, hi, ok := s.MinMax(ref)
			if !ok {
				continue
			}
			for _, v := range [2]float64{lo, hi} {
				if scale.IsFinite(v) {
					min, max = math.Min(min, v), math.Max(max, v)
				}
			}
		}
	}

	if min > max {
		min, max = DefaultMin, DefaultMax
		if ls, ok := a.strategy.(logScale); ok && ls.Logarithmic() {
			min, max = 1, 10
		}
		if len(a.series) > 0 {
			a.log.Warn("axis: no finite extremes, using the default range")
		}
	}
	if a.opts.hasMin {
		min = a.opts.min
	}
	if a.opts.hasMax {
		max = a.opts.max
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		eps := math.Abs(min) * degenerateNudge
		if eps == 0 {
			eps = 1
		}
		min, max = min-eps, max+eps
		a.log.WithField("value", max-eps).Warn("axis: degenerate span widened")
	}

	return min, max
}

// prepareDates detects the base interval and regenerates the empty-period
// breaks of a date axis.
func (a *Axis) prepareDates(min, max float64) {
	if !a.opts.skipEmpty && !a.opts.detectBase {
		return
	}
	ts, ok := a.strategy.(*temporal.Strategy)
	if !ok {
		return
	}
	values := a.values()

	if a.opts.detectBase {
		if g, ok := temporal.DetectBaseInterval(values, ts.GridIntervals()); ok {
			if err := ts.SetBaseInterval(g); err != nil {
				a.log.WithError(err).Warn("axis: detected base interval rejected")
			} else {
				a.log.WithField("base", g.String()).Debug("axis: base interval detected")
			}
		}
	}

	if a.opts.skipEmpty {
		a.breaks.RemoveAuto()
		auto, err := ts.EmptyPeriodBreaks(values, min, max, a.opts.emptyBreakSize)
		if err != nil {
			a.log.WithError(err).Warn("axis: empty period scan failed")
			return
		}
		for _, b := range auto {
			if err := a.breaks.Add(b); err != nil {
				a.log.WithError(err).Warn("axis: empty period break rejected")
			}
		}
	}
}

func (a *Axis) values() []float64 {
	ref := a.ref()
	var out []float64
	for _, s := range a.series {
		if vs, ok := s.(ValueSeries); ok {
			out = append(out, vs.Values(ref)...)
		}
	}
	return out
}

func (a *Axis) computeGridCount() int {
	r := a.opts.renderer
	if r == nil {
		return a.opts.gridCount
	}
	d := r.MinGridDistance()
	if !(d > 0) {
		return a.opts.gridCount
	}
	n := int(math.Round(r.AxisLength() / d))
	if n < 1 {
		return 1
	}
	return n
}

// setTarget installs new adjusted bounds, animating towards them when the
// axis has been validated before and a duration is configured.
func (a *Axis) setTarget(r scale.Range) {
	if a.initialized && r == a.target {
		return
	}
	old := a.target
	a.target = r

	animated := false
	if a.initialized && a.opts.animation > 0 {
		from := zoom.Extent{Min: a.current.Min, Max: a.current.Max}
		to := zoom.Extent{Min: r.Min, Max: r.Max}
		a.tween.Start(from, to, a.opts.clock(), a.opts.animation)
		a.current.Step = r.Step
		animated = a.tween.Active()
		if !animated {
			a.current = r
		}
	} else {
		a.tween.Stop()
		a.current = r
	}

	ev := ExtremesEvent{Axis: a, Old: old, New: r, Animated: animated}
	listeners := append(([]func(ExtremesEvent))(nil), a.extremesListeners...)
	a.pending = append(a.pending, func() {
		for _, fn := range listeners {
			fn(ev)
		}
	})
}

func (a *Axis) zoomPass() {
	r := a.current
	lo, hi, step := r.Min, r.Max, r.Step
	if !a.window.IsFull() {
		lo = a.strategy.PositionToValue(a.window.Start(), r, a.breaks)
		hi = a.strategy.PositionToValue(a.window.End(), r, a.breaks)
		zr, err := a.strategy.AdjustMinMax(lo, hi, a.breaks.AdjustDifference(lo, hi), a.gridCount, true)
		if err != nil {
			a.fail(fmt.Errorf("axis %q: zoom [%g, %g]: %w", a.opts.name, lo, hi, err))
			return
		}
		step = zr.Step
	}

	changed := !a.zoomed || lo != a.minZoomed || hi != a.maxZoomed
	oldLo, oldHi := a.minZoomed, a.maxZoomed
	a.minZoomed, a.maxZoomed, a.step = lo, hi, step
	a.zoomed = true

	a.rebuildItems()
	a.state = stateValid
	a.initialized = true

	if changed {
		ev := SelectionEvent{
			Axis:      a,
			OldMin:    oldLo,
			OldMax:    oldHi,
			MinZoomed: lo,
			MaxZoomed: hi,
			Start:     a.window.Start(),
			End:       a.window.End(),
		}
		listeners := append(([]func(SelectionEvent))(nil), a.selectionListeners...)
		a.pending = append(a.pending, func() {
			for _, fn := range listeners {
				fn(ev)
			}
		})
	}
}

// OnSelectionChanged registers fn for zoomed-bound changes.
func (a *Axis) OnSelectionChanged(fn func(SelectionEvent)) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	a.selectionListeners = append(a.selectionListeners, fn)
	a.mu.Unlock()
}

// OnExtremesChanged registers fn for adjusted-bound changes.
func (a *Axis) OnExtremesChanged(fn func(ExtremesEvent)) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	a.extremesListeners = append(a.extremesListeners, fn)
	a.mu.Unlock()
}

// AddSeries registers s and validates.
func (a *Axis) AddSeries(s Series) error {
	if s == nil {
		return ErrNilSeries
	}
	return a.run(func() error {
		a.series = append(a.series, s)
		a.invalidateData()
		return a.validate()
	})
}

// RemoveSeries unregisters s and validates.
func (a *Axis) RemoveSeries(s Series) error {
	if s == nil {
		return ErrNilSeries
	}
	return a.run(func() error {
		for i, cur := range a.series {
			if cur == s {
				a.series = append(a.series[:i:i], a.series[i+1:]...)
				a.invalidateData()
				return a.validate()
			}
		}
		return ErrSeriesNotFound
	})
}

// reconfigure applies fn and runs a full validation.
func (a *Axis) reconfigure(fn func()) error {
	return a.run(func() error {
		fn()
		a.invalidateData()
		return a.validate()
	})
}

// SetMin overrides the folded minimum.
func (a *Axis) SetMin(v float64) error {
	if !scale.IsFinite(v) {
		return fmt.Errorf("axis: min %g: %w", v, numeric.ErrNonFinite)
	}
	return a.reconfigure(func() { a.opts.min, a.opts.hasMin = v, true })
}

// SetMax overrides the folded maximum.
func (a *Axis) SetMax(v float64) error {
	if !scale.IsFinite(v) {
		return fmt.Errorf("axis: max %g: %w", v, numeric.ErrNonFinite)
	}
	return a.reconfigure(func() { a.opts.max, a.opts.hasMax = v, true })
}

// ClearMin drops the minimum override.
func (a *Axis) ClearMin() error { return a.reconfigure(func() { a.opts.hasMin = false }) }

// ClearMax drops the maximum override.
func (a *Axis) ClearMax() error { return a.reconfigure(func() { a.opts.hasMax = false }) }

// SetStrictMinMax toggles strict bounds.
func (a *Axis) SetStrictMinMax(on bool) error {
	return a.reconfigure(func() { a.opts.strict = on })
}

// SetRenderer attaches r (nil detaches) and validates.
func (a *Axis) SetRenderer(r Renderer) error {
	return a.reconfigure(func() { a.opts.renderer = r })
}

// SetFormatter overrides label formatting; nil restores the strategy's.
func (a *Axis) SetFormatter(f scale.Formatter) error {
	return a.run(func() error {
		a.opts.formatter = f
		a.invalidateZoom()
		return a.validate()
	})
}
