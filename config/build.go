// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/axiscale/axis"
	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/category"
	"github.com/katalvlaran/axiscale/duration"
	"github.com/katalvlaran/axiscale/format"
	"github.com/katalvlaran/axiscale/numeric"
	"github.com/katalvlaran/axiscale/renderer"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/series"
	"github.com/katalvlaran/axiscale/temporal"
	"github.com/katalvlaran/axiscale/timeunit"
	"github.com/sirupsen/logrus"
)

// Chart is a built File: axes by name, in file order, plus the series
// registered on them.
type Chart struct {
	Axes   []*axis.Axis
	Series []axis.Series

	byName map[string]*axis.Axis
}

// Axis returns the axis with the given name.
func (c *Chart) Axis(name string) (*axis.Axis, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// BuildAll builds every axis and series of f and registers every series on
// every axis. A nil logger discards.
func BuildAll(f *File, logger logrus.FieldLogger) (*Chart, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := &Chart{byName: make(map[string]*axis.Axis, len(f.Axes))}
	for i := range f.Axes {
		a, err := Build(&f.Axes[i], logger)
		if err != nil {
			return nil, err
		}
		c.Axes = append(c.Axes, a)
		c.byName[a.Name()] = a
	}
	for i := range f.Series {
		s, err := BuildSeries(&f.Series[i])
		if err != nil {
			return nil, err
		}
		c.Series = append(c.Series, s)
	}
	for _, a := range c.Axes {
		for _, s := range c.Series {
			if err := a.AddSeries(s); err != nil {
				return nil, fmt.Errorf("config: axis %q: %w", a.Name(), err)
			}
		}
	}
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"axes":   len(c.Axes),
			"series": len(c.Series),
		}).Debug("chart built")
	}
	return c, nil
}

// Build turns one axis description into an axis: it picks the scale
// strategy by Kind and translates the shared fields into axis options.
func Build(spec *AxisSpec, logger logrus.FieldLogger) (*axis.Axis, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	kind, _ := spec.ScaleKind()

	var (
		strategy scale.Strategy
		err      error
	)
	switch kind {
	case scale.Value:
		strategy = buildNumeric(spec)
	case scale.Date:
		strategy, err = buildTemporal(spec)
	case scale.Category:
		strategy = buildCategory(spec)
	case scale.Duration:
		strategy, err = buildDuration(spec)
	}
	if err != nil {
		return nil, fmt.Errorf("config: axis %q: %w", spec.Name, err)
	}

	opts, err := axisOptions(spec, kind)
	if err != nil {
		return nil, fmt.Errorf("config: axis %q: %w", spec.Name, err)
	}
	if logger != nil {
		opts = append(opts, axis.WithLogger(logger))
	}
	return axis.New(strategy, opts...)
}

// -----------------------------------------------------------------------------
// Strategies.
// -----------------------------------------------------------------------------

func buildNumeric(spec *AxisSpec) *numeric.Strategy {
	var opts []numeric.Option
	if spec.Logarithmic {
		opts = append(opts, numeric.WithLogarithmic())
	}
	precision := 0
	if spec.MaxPrecision != nil {
		precision = *spec.MaxPrecision
		opts = append(opts, numeric.WithMaxPrecision(precision))
	}
	if spec.NumberStyle != "" || spec.Unit != "" {
		opts = append(opts, numeric.WithFormatter(format.Number{
			Style:        format.ParseNumberStyle(spec.NumberStyle),
			Unit:         spec.Unit,
			MaxPrecision: precision,
		}))
	}
	return numeric.New(opts...)
}

func buildTemporal(spec *AxisSpec) (*temporal.Strategy, error) {
	var opts []temporal.Option
	if spec.BaseInterval != "" {
		g, err := ParseGranularity(spec.BaseInterval)
		if err != nil {
			return nil, err
		}
		opts = append(opts, temporal.WithBaseInterval(g))
	}
	if len(spec.GridIntervals) > 0 {
		gs := make([]timeunit.Granularity, 0, len(spec.GridIntervals))
		for _, s := range spec.GridIntervals {
			g, err := ParseGranularity(s)
			if err != nil {
				return nil, err
			}
			gs = append(gs, g)
		}
		opts = append(opts, temporal.WithGridIntervals(gs...))
	}
	for name, pattern := range spec.DateFormats {
		u, err := timeunit.ParseUnit(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, temporal.WithDateFormat(u, pattern))
	}
	for name, pattern := range spec.PeriodChangeFormats {
		u, err := timeunit.ParseUnit(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, temporal.WithPeriodChangeDateFormat(u, pattern))
	}
	if spec.MarkUnitChange != nil {
		opts = append(opts, temporal.WithMarkUnitChange(*spec.MarkUnitChange))
	}
	if spec.Location != "" {
		loc, err := time.LoadLocation(spec.Location)
		if err != nil {
			return nil, err
		}
		opts = append(opts, temporal.WithLocation(loc))
	}
	return temporal.New(opts...), nil
}

func buildCategory(spec *AxisSpec) *category.Strategy {
	opts := []category.Option{category.WithCategories(spec.Categories...)}
	if spec.StartLocation != nil || spec.EndLocation != nil {
		start, end := 0.0, 1.0
		if spec.StartLocation != nil {
			start = *spec.StartLocation
		}
		if spec.EndLocation != nil {
			end = *spec.EndLocation
		}
		opts = append(opts, category.WithLocations(start, end))
	}
	return category.New(opts...)
}

func buildDuration(spec *AxisSpec) (*duration.Strategy, error) {
	var opts []duration.Option
	if spec.BaseUnit != "" {
		u, err := timeunit.ParseUnit(spec.BaseUnit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, duration.WithBaseUnit(u))
	}
	if spec.MaxPrecision != nil {
		opts = append(opts, duration.WithMaxPrecision(*spec.MaxPrecision))
	}
	return duration.New(opts...), nil
}

// -----------------------------------------------------------------------------
// Axis options.
// -----------------------------------------------------------------------------

// bound resolves a numeric or date override.
func bound(v *float64, date string) (float64, bool, error) {
	if date != "" {
		t, err := ParseTime(date)
		if err != nil {
			return 0, false, err
		}
		return timeunit.Millis(t), true, nil
	}
	if v != nil {
		return *v, true, nil
	}
	return 0, false, nil
}

func axisOptions(spec *AxisSpec, kind scale.Kind) ([]axis.Option, error) {
	opts := []axis.Option{axis.WithName(spec.Name)}

	if v, ok, err := bound(spec.Min, spec.MinDate); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, axis.WithMin(v))
	}
	if v, ok, err := bound(spec.Max, spec.MaxDate); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, axis.WithMax(v))
	}
	if spec.Strict {
		opts = append(opts, axis.WithStrictMinMax(true))
	}
	if spec.GridCount > 0 {
		opts = append(opts, axis.WithGridCount(spec.GridCount))
	}
	if spec.MaxZoomFactor > 0 {
		opts = append(opts, axis.WithMaxZoomFactor(spec.MaxZoomFactor))
	}
	if spec.AnimationMs > 0 {
		opts = append(opts, axis.WithAnimationDuration(time.Duration(spec.AnimationMs)*time.Millisecond))
	}
	if len(spec.Zoom) == 2 {
		opts = append(opts, axis.WithZoom(spec.Zoom[0], spec.Zoom[1]))
	}

	if len(spec.Breaks) > 0 {
		bs := make([]*breaks.Break, 0, len(spec.Breaks))
		for _, b := range spec.Breaks {
			start, end := b.Start, b.End
			if b.StartDate != "" || b.EndDate != "" {
				s, _, err := bound(nil, b.StartDate)
				if err != nil {
					return nil, err
				}
				e, _, err := bound(nil, b.EndDate)
				if err != nil {
					return nil, err
				}
				start, end = s, e
			}
			br, err := breaks.New(start, end, b.Size)
			if err != nil {
				return nil, err
			}
			bs = append(bs, br)
		}
		opts = append(opts, axis.WithBreaks(bs...))
	}

	if kind == scale.Date {
		if spec.SkipEmptyPeriods != nil {
			opts = append(opts, axis.WithSkipEmptyPeriods(*spec.SkipEmptyPeriods))
		}
		if spec.DetectBaseInterval {
			opts = append(opts, axis.WithDetectBaseInterval())
		}
	}

	if r := spec.Renderer; r != nil {
		var ropts []renderer.Option
		if r.Length > 0 {
			ropts = append(ropts, renderer.WithLength(r.Length))
		}
		if r.MinGridDistance > 0 {
			ropts = append(ropts, renderer.WithMinGridDistance(r.MinGridDistance))
		}
		or, err := renderer.ParseOrientation(strings.ToLower(r.Orientation))
		if err != nil {
			return nil, err
		}
		ropts = append(ropts, renderer.WithOrientation(or), renderer.WithInversed(r.Inversed))
		opts = append(opts, axis.WithRenderer(renderer.NewLinear(ropts...)))
	}
	return opts, nil
}

// -----------------------------------------------------------------------------
// Series.
// -----------------------------------------------------------------------------

// BuildSeries generates or wraps the data of one series description.
//
// pulse and chirp produce y values over sample indices, dated produces a
// pulse over generated timestamps, ohlc produces candles and xy wraps the
// literal columns.
func BuildSeries(spec *SeriesSpec) (axis.Series, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	opts, err := seriesOptions(spec)
	if err != nil {
		return nil, err
	}

	var s axis.Series
	switch strings.ToLower(spec.Kind) {
	case "xy":
		xy, err := series.NewXY(spec.Name, spec.X, spec.Y)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		bind(xy, spec)
		s = xy
	case "pulse", "chirp", "dated":
		y, err := generate(spec, opts)
		if err != nil {
			return nil, fmt.Errorf("config: series %q: %w", spec.Name, err)
		}
		x := series.Index(spec.N)
		if strings.EqualFold(spec.Kind, "dated") {
			if x, err = series.Dated(spec.N, opts...); err != nil {
				return nil, fmt.Errorf("config: series %q: %w", spec.Name, err)
			}
		}
		xy, err := series.NewXY(spec.Name, x, y)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		bind(xy, spec)
		s = xy
	case "ohlc":
		c, err := series.NewCandles(spec.Name, spec.N, opts...)
		if err != nil {
			return nil, fmt.Errorf("config: series %q: %w", spec.Name, err)
		}
		if spec.XAxis != "" {
			c.TimeAxis = spec.XAxis
		}
		if spec.YAxis != "" {
			c.PriceAxis = spec.YAxis
		}
		c.Ignore = spec.Ignore
		s = c
	}
	return s, nil
}

func generate(spec *SeriesSpec, opts []series.Option) ([]float64, error) {
	if strings.EqualFold(spec.Kind, "chirp") {
		return series.Chirp(spec.N, opts...)
	}
	return series.Pulse(spec.N, opts...)
}

func bind(xy *series.XY, spec *SeriesSpec) {
	if spec.XAxis != "" {
		xy.XAxis = spec.XAxis
	}
	if spec.YAxis != "" {
		xy.YAxis = spec.YAxis
	}
	xy.Ignore = spec.Ignore
}

func seriesOptions(spec *SeriesSpec) ([]series.Option, error) {
	opts := []series.Option{series.WithTrend(spec.Trend)}
	if spec.Seed != 0 {
		opts = append(opts, series.WithSeed(spec.Seed))
	}
	if spec.Amplitude > 0 {
		opts = append(opts, series.WithAmplitude(spec.Amplitude))
	}
	if spec.Noise > 0 {
		opts = append(opts, series.WithNoise(spec.Noise))
	}
	if spec.Start != "" {
		t, err := ParseTime(spec.Start)
		if err != nil {
			return nil, err
		}
		opts = append(opts, series.WithStart(t))
	}
	if spec.Interval != "" {
		g, err := ParseGranularity(spec.Interval)
		if err != nil {
			return nil, err
		}
		opts = append(opts, series.WithInterval(g))
	}
	if spec.GapRate > 0 {
		length := spec.GapLength
		if length < 1 {
			length = series.DefaultGapLen
		}
		opts = append(opts, series.WithGaps(spec.GapRate, length))
	}
	return opts, nil
}
