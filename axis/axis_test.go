package axis_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/axiscale/axis"
	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/category"
	"github.com/katalvlaran/axiscale/numeric"
	"github.com/katalvlaran/axiscale/renderer"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/temporal"
	"github.com/katalvlaran/axiscale/timeunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeries struct {
	min, max float64
	ok       bool
	ignore   bool
	values   []float64
}

func span(min, max float64) *fakeSeries { return &fakeSeries{min: min, max: max, ok: true} }

func (f *fakeSeries) MinMax(axis.Ref) (float64, float64, bool) { return f.min, f.max, f.ok }
func (f *fakeSeries) IgnoreMinMax() bool                        { return f.ignore }
func (f *fakeSeries) Values(axis.Ref) []float64                 { return f.values }

func newValueAxis(t *testing.T, opts ...axis.Option) *axis.Axis {
	t.Helper()
	a, err := axis.New(numeric.New(), opts...)
	require.NoError(t, err)
	return a
}

func TestNew_Errors(t *testing.T) {
	_, err := axis.New(nil)
	require.ErrorIs(t, err, axis.ErrNilStrategy)

	_, err = axis.NewOfKind(scale.Kind(42))
	require.ErrorIs(t, err, scale.ErrUnknownKind)

	for _, k := range []scale.Kind{scale.Value, scale.Date, scale.Category, scale.Duration} {
		a, err := axis.NewOfKind(k)
		require.NoError(t, err)
		assert.Equal(t, k, a.Kind())
	}
}

func TestFold_DefaultRange(t *testing.T) {
	a := newValueAxis(t)
	require.NoError(t, a.Validate())
	assert.InDelta(t, -1.5, a.Min(), 1e-12)
	assert.InDelta(t, 1.5, a.Max(), 1e-12)
	assert.InDelta(t, 0.5, a.Step(), 1e-12)
}

func TestFold_NiceBounds(t *testing.T) {
	a := newValueAxis(t)
	require.NoError(t, a.AddSeries(span(0, 100)))

	r := a.Range()
	assert.InDelta(t, 0.0, r.Min, 1e-12)
	assert.InDelta(t, 120.0, r.Max, 1e-12)
	assert.InDelta(t, 20.0, r.Step, 1e-12)
	assert.Equal(t, 5, a.GridCount())
	assert.Equal(t, "120", a.LongestLabel())

	items, err := a.DataItems()
	require.NoError(t, err)
	require.Len(t, items, 7)
	for i, it := range items {
		assert.Equal(t, float64(i*20), it.Value)
		assert.InDelta(t, float64(i)/6, it.Position, 1e-12)
		assert.Equal(t, it.Position, it.ZoomedPosition)
	}
}

func TestFold_SkipsNonFiniteAndIgnored(t *testing.T) {
	a := newValueAxis(t, axis.WithStrictMinMax(true))
	require.NoError(t, a.AddSeries(&fakeSeries{min: math.NaN(), max: 50, ok: true}))
	require.NoError(t, a.AddSeries(span(10, 20)))
	ignored := span(-1000, 1000)
	ignored.ignore = true
	require.NoError(t, a.AddSeries(ignored))
	require.NoError(t, a.AddSeries(&fakeSeries{min: -5, max: 500, ok: false}))

	assert.Equal(t, 10.0, a.Min())
	assert.Equal(t, 50.0, a.Max())

	require.ErrorIs(t, a.RemoveSeries(span(1, 2)), axis.ErrSeriesNotFound)
	require.ErrorIs(t, a.AddSeries(nil), axis.ErrNilSeries)
}

func TestFold_DegenerateSpanAndOverrides(t *testing.T) {
	a := newValueAxis(t)
	require.NoError(t, a.AddSeries(span(5, 5)))
	assert.Less(t, a.Min(), 5.0)
	assert.Greater(t, a.Max(), 5.0)

	s := newValueAxis(t, axis.WithStrictMinMax(true), axis.WithMin(-10))
	require.NoError(t, s.AddSeries(span(0, 40)))
	assert.Equal(t, -10.0, s.Min())
	assert.Equal(t, 40.0, s.Max())

	require.NoError(t, s.SetMax(90))
	assert.Equal(t, 90.0, s.Max())
	require.NoError(t, s.ClearMin())
	require.NoError(t, s.ClearMax())
	assert.Equal(t, 0.0, s.Min())
	assert.Equal(t, 40.0, s.Max())

	require.Error(t, s.SetMin(math.Inf(-1)))
}

func TestLogarithmic_StickyDomainError(t *testing.T) {
	a, err := axis.New(numeric.New(numeric.WithLogarithmic()))
	require.NoError(t, err)
	neg := span(-5, 100)
	require.ErrorIs(t, a.AddSeries(neg), numeric.ErrNonPositiveLog)

	_, err = a.ValueToPosition(10)
	require.ErrorIs(t, err, numeric.ErrNonPositiveLog, "conversions report the sticky error")
	_, err = a.DataItems()
	require.ErrorIs(t, err, numeric.ErrNonPositiveLog)

	require.NoError(t, a.RemoveSeries(neg))
	require.NoError(t, a.AddSeries(span(1, 1000)))
	p, err := a.ValueToPosition(10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, p, 1e-12)

	_, err = a.ValueToPosition(0)
	require.ErrorIs(t, err, numeric.ErrNonPositiveLog)
}

func TestZoom_WindowAndStep(t *testing.T) {
	a := newValueAxis(t)
	require.NoError(t, a.AddSeries(span(0, 100)))

	require.NoError(t, a.Zoom(0.25, 0.75))
	assert.InDelta(t, 30.0, a.MinZoomed(), 1e-9)
	assert.InDelta(t, 90.0, a.MaxZoomed(), 1e-9)
	assert.InDelta(t, 20.0, a.Step(), 1e-12)

	items, err := a.DataItems()
	require.NoError(t, err)
	var values []float64
	for _, it := range items {
		values = append(values, it.Value)
	}
	assert.Equal(t, []float64{40, 60, 80}, values)
	assert.InDelta(t, (40.0/120-0.25)/0.5, items[0].ZoomedPosition, 1e-12)

	v, err := a.PositionToValue(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, v, 1e-12)

	require.NoError(t, a.ZoomToValues(20, 80))
	assert.InDelta(t, 20.0, a.MinZoomed(), 1e-9)
	assert.InDelta(t, 80.0, a.MaxZoomed(), 1e-9)
	assert.InDelta(t, 1.0/6, a.Start(), 1e-12)

	require.ErrorIs(t, a.Zoom(math.NaN(), 1), axis.ErrInvalidZoom)
	require.ErrorIs(t, a.ZoomToValues(0, math.Inf(1)), axis.ErrInvalidZoom)

	require.NoError(t, a.ZoomOut())
	assert.True(t, a.Window().IsFull())
	assert.InDelta(t, 0.5, a.ToZoomedPosition(0.5), 1e-12)
}

func TestZoom_SelectionChangedOnlyOnChange(t *testing.T) {
	a := newValueAxis(t)
	var events []axis.SelectionEvent
	a.OnSelectionChanged(func(ev axis.SelectionEvent) { events = append(events, ev) })

	require.NoError(t, a.AddSeries(span(0, 100)))
	require.Len(t, events, 1)

	require.NoError(t, a.Zoom(0.5, 1))
	require.Len(t, events, 2)
	assert.InDelta(t, 60.0, events[1].MinZoomed, 1e-9)
	assert.Equal(t, 0.0, events[1].OldMin)

	require.NoError(t, a.Zoom(0.5, 1))
	a.Invalidate()
	require.NoError(t, a.Validate())
	assert.Len(t, events, 2, "same window, same bounds")
}

func TestZoom_MaxZoomFactor(t *testing.T) {
	a := newValueAxis(t, axis.WithMaxZoomFactor(10))
	require.NoError(t, a.AddSeries(span(0, 100)))
	require.NoError(t, a.Zoom(0.5, 0.5))
	assert.InDelta(t, 0.1, a.End()-a.Start(), 1e-12)
}

func TestRenderer_Coordinates(t *testing.T) {
	r := renderer.NewLinear(renderer.WithLength(600), renderer.WithMinGridDistance(120))
	a := newValueAxis(t, axis.WithRenderer(r))
	require.NoError(t, a.AddSeries(span(0, 100)))
	assert.Equal(t, 5, a.GridCount())

	c, err := a.ValueToCoordinate(60)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, c, 1e-9)

	v, err := a.PointToValue(renderer.Point{X: 150})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, v, 1e-9)

	items, err := a.DataItems()
	require.NoError(t, err)
	assert.InDelta(t, 100.0, items[1].Coordinate, 1e-9)

	require.NoError(t, a.SetRenderer(nil))
	_, err = a.ValueToCoordinate(60)
	require.ErrorIs(t, err, axis.ErrNoRenderer)
}

func TestBreaks_CRUD(t *testing.T) {
	a := newValueAxis(t, axis.WithStrictMinMax(true), axis.WithMin(0), axis.WithMax(30))

	id, err := a.AddBreak(10, 20, 0.1)
	require.NoError(t, err)
	p, err := a.ValueToPosition(25)
	require.NoError(t, err)
	assert.InDelta(t, 16.0/21, p, 1e-12)

	b, ok := a.Break(id)
	require.True(t, ok)
	assert.Equal(t, 0.1, b.BreakSize)

	require.NoError(t, a.UpdateBreak(id, 20, 10, 1))
	p, err = a.ValueToPosition(25)
	require.NoError(t, err)
	assert.InDelta(t, 25.0/30, p, 1e-12)

	require.NoError(t, a.RemoveBreak(id))
	require.ErrorIs(t, a.RemoveBreak(id), axis.ErrBreakNotFound)
	assert.Empty(t, a.Breaks())

	_, err = a.AddBreak(0, 1, 2)
	require.ErrorIs(t, err, breaks.ErrBreakSize)

	_, err = a.AddBreak(1, 2, 0)
	require.NoError(t, err)
	require.NoError(t, a.ClearBreaks())
	assert.Empty(t, a.Breaks())
}

func TestBreaks_RemoveOverlapping(t *testing.T) {
	a := newValueAxis(t, axis.WithStrictMinMax(true), axis.WithMin(0), axis.WithMax(30))

	first, err := a.AddBreak(0, 10, 0.5)
	require.NoError(t, err)
	_, err = a.AddBreak(5, 15, 0.5)
	require.NoError(t, err)
	require.NoError(t, a.RemoveBreak(first))

	bs := a.Breaks()
	require.Len(t, bs, 1)
	assert.Equal(t, 5.0, bs[0].AdjustedStart())

	// 5 uncompressed plus 2 at half width over an effective span of 25.
	p, err := a.ValueToPosition(7)
	require.NoError(t, err)
	assert.InDelta(t, 0.24, p, 1e-12)

	v, err := a.PositionToValue(p)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, v, 1e-9)
}

func TestKindMismatch(t *testing.T) {
	a := newValueAxis(t)
	_, err := a.DateToPosition(time.Now())
	require.ErrorIs(t, err, axis.ErrKindMismatch)
	_, err = a.CategoryToPosition("x", 0.5)
	require.ErrorIs(t, err, axis.ErrKindMismatch)
	_, err = a.DurationToPosition(time.Second)
	require.ErrorIs(t, err, axis.ErrKindMismatch)
	require.ErrorIs(t, a.ZoomToCategories("a", "b"), axis.ErrKindMismatch)
	require.ErrorIs(t, a.ZoomToDates(time.Now(), time.Now()), axis.ErrKindMismatch)
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A'+i/26)) + string(rune('a'+i%26))
	}
	return out
}

func TestCategory_FrequencyWhenZoomed(t *testing.T) {
	cs := category.New(category.WithCategories(names(100)...))
	a, err := axis.New(cs, axis.WithGridCount(4))
	require.NoError(t, err)

	p, err := a.CategoryToPosition("Af", 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.5/100, p, 1e-12)

	require.NoError(t, a.ZoomToIndexes(0, 10))
	assert.InDelta(t, 10.0, a.MaxZoomed(), 1e-9)

	items, err := a.DataItems()
	require.NoError(t, err)
	var visible []float64
	for _, it := range items {
		if it.Visible && it.Kind == scale.GridTick {
			visible = append(visible, it.Value)
		}
	}
	assert.Equal(t, []float64{0, 3, 6, 9}, visible)

	name, err := a.PositionToCategory(0.5)
	require.NoError(t, err)
	assert.Equal(t, "By", name, "positions are whole-scale, not zoomed")

	require.NoError(t, a.ZoomToCategories("Ba", "Bj"))
	assert.InDelta(t, 26.0, a.MinZoomed(), 1e-9)
	assert.InDelta(t, 36.0, a.MaxZoomed(), 1e-9)

	_, err = a.CategoryToPosition("nope", 0)
	require.ErrorIs(t, err, axis.ErrUnknownCategory)
	require.ErrorIs(t, a.ZoomToCategories("nope", "Aa"), axis.ErrUnknownCategory)
}

func day(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }

func TestDate_SkipEmptyPeriods(t *testing.T) {
	var ts []float64
	for _, d := range []int{1, 2, 3, 7, 8} {
		ts = append(ts, timeunit.Millis(day(d)))
	}
	s := &fakeSeries{min: ts[0], max: ts[len(ts)-1], ok: true, values: ts}

	a, err := axis.New(temporal.New(), axis.WithSkipEmptyPeriods(0))
	require.NoError(t, err)
	require.NoError(t, a.AddSeries(s))

	bs := a.Breaks()
	require.Len(t, bs, 1)
	assert.True(t, bs[0].Auto)
	assert.Equal(t, timeunit.Millis(day(4)), bs[0].AdjustedStart())
	assert.Equal(t, timeunit.Millis(day(7)), bs[0].AdjustedEnd())

	p4, err := a.DateToPosition(day(4))
	require.NoError(t, err)
	p7, err := a.DateToPosition(day(7))
	require.NoError(t, err)
	assert.InDelta(t, 0.6, p4, 1e-12)
	assert.InDelta(t, p4, p7, 1e-12)

	got, err := a.PositionToDate(0.2)
	require.NoError(t, err)
	assert.True(t, got.Equal(day(2)), "got %v", got)

	// regenerated, not accumulated
	a.InvalidateData()
	assert.Len(t, a.Breaks(), 1)
}

func TestDate_DetectBaseInterval(t *testing.T) {
	var ts []float64
	for h := 0; h < 12; h++ {
		ts = append(ts, timeunit.Millis(day(1).Add(time.Duration(h)*time.Hour)))
	}
	ds := temporal.New()
	a, err := axis.New(ds, axis.WithDetectBaseInterval())
	require.NoError(t, err)
	require.NoError(t, a.AddSeries(&fakeSeries{min: ts[0], max: ts[11], ok: true, values: ts}))
	assert.Equal(t, timeunit.Of(timeunit.Hour, 1), ds.BaseInterval())
	assert.Equal(t, timeunit.Millis(day(1).Add(12*time.Hour)), a.Max())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { axis.WithLogger(nil) })
	assert.Panics(t, func() { axis.WithClock(nil) })
	assert.Panics(t, func() { axis.WithFormatter(nil) })
	assert.Panics(t, func() { axis.WithAnimationDuration(-time.Second) })
	assert.Panics(t, func() { axis.WithMaxZoomFactor(0.5) })
	assert.Panics(t, func() { axis.WithGridCount(0) })
	assert.Panics(t, func() { axis.WithMin(math.NaN()) })
	assert.Panics(t, func() { axis.WithMax(math.Inf(1)) })
	assert.Panics(t, func() { axis.WithSkipEmptyPeriods(1.5) })
	assert.Panics(t, func() { axis.WithZoom(math.NaN(), 1) })
}
