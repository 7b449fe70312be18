package series_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/axiscale/axis"
	"github.com/katalvlaran/axiscale/series"
	"github.com/katalvlaran/axiscale/temporal"
	"github.com/katalvlaran/axiscale/timeunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulse_Shapes(t *testing.T) {
	rect, err := series.Pulse(8)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, rect)

	tri, err := series.Pulse(5, series.WithPulse(0.25, 0.5, true), series.WithAmplitude(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 1, 0}, tri)

	trend, err := series.Pulse(3, series.WithPulse(0.125, 0, false), series.WithTrend(0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, trend)

	_, err = series.Pulse(0)
	require.ErrorIs(t, err, series.ErrLength)
}

func TestChirp_BoundedAndDeterministic(t *testing.T) {
	a, err := series.Chirp(256, series.WithNoise(0.1), series.WithSeed(7))
	require.NoError(t, err)
	b, err := series.Chirp(256, series.WithNoise(0.1), series.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	clean, err := series.Chirp(256, series.WithAmplitude(3))
	require.NoError(t, err)
	for _, v := range clean {
		require.LessOrEqual(t, math.Abs(v), 3.0+1e-12)
	}
}

func TestOHLC_Envelope(t *testing.T) {
	open, high, low, close, err := series.OHLC(30, series.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, open, 30)
	assert.Equal(t, series.DefaultPrice, open[0])
	for d := range open {
		require.GreaterOrEqual(t, high[d], math.Max(open[d], close[d]))
		require.LessOrEqual(t, low[d], math.Min(open[d], close[d]))
		require.Greater(t, low[d], 0.0)
		if d > 0 {
			require.Equal(t, close[d-1], open[d])
		}
	}
}

func TestDated_Gaps(t *testing.T) {
	ts, err := series.Dated(10)
	require.NoError(t, err)
	for i := 1; i < len(ts); i++ {
		require.Equal(t, timeunit.Millis(series.DefaultStart.AddDate(0, 0, i)), ts[i])
	}

	gappy, err := series.Dated(50, series.WithGaps(0.3, 2), series.WithRand(rand.New(rand.NewSource(11))))
	require.NoError(t, err)
	require.Len(t, gappy, 50)
	dayMs := timeunit.Day.Millis()
	gaps := 0
	for i := 1; i < len(gappy); i++ {
		switch d := gappy[i] - gappy[i-1]; d {
		case dayMs:
		case 3 * dayMs:
			gaps++
		default:
			t.Fatalf("unexpected spacing %v at %d", d, i)
		}
	}
	assert.Positive(t, gaps)
	assert.Equal(t, dayMs, gappy[49]-gappy[48])
}

func TestXY_MinMaxByAxisName(t *testing.T) {
	s, err := series.NewXY("s", []float64{3, 1, 2}, []float64{-5, math.NaN(), 9})
	require.NoError(t, err)

	lo, hi, ok := s.MinMax(axis.Ref{Name: "x"})
	require.True(t, ok)
	assert.Equal(t, [2]float64{1, 3}, [2]float64{lo, hi})

	lo, hi, ok = s.MinMax(axis.Ref{Name: "y"})
	require.True(t, ok)
	assert.Equal(t, [2]float64{-5, 9}, [2]float64{lo, hi})

	_, _, ok = s.MinMax(axis.Ref{Name: "z"})
	assert.False(t, ok)
	assert.Nil(t, s.Values(axis.Ref{Name: "z"}))

	_, err = series.NewXY("bad", []float64{1}, nil)
	require.ErrorIs(t, err, series.ErrLength)
}

func TestCandles_OnDateAxis(t *testing.T) {
	c, err := series.NewCandles("btc", 20, series.WithSeed(5), series.WithGaps(0.2, 2), series.WithInterval(timeunit.Of(timeunit.Day, 1)))
	require.NoError(t, err)

	x, err := axis.New(temporal.New(), axis.WithSkipEmptyPeriods(0))
	require.NoError(t, err)
	require.NoError(t, x.AddSeries(c))

	first := time.UnixMilli(int64(c.Time[0])).UTC()
	assert.True(t, first.Equal(series.DefaultStart))
	p, err := x.DateToPosition(first)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p, 1e-12)

	lo, hi, ok := c.MinMax(axis.Ref{Name: series.DefaultYAxis})
	require.True(t, ok)
	assert.Less(t, lo, hi)
	assert.Nil(t, c.Values(axis.Ref{Name: series.DefaultYAxis}))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2}, series.Index(3))
	assert.Nil(t, series.Index(0))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { series.WithRand(nil) })
	assert.Panics(t, func() { series.WithAmplitude(0) })
	assert.Panics(t, func() { series.WithNoise(-1) })
	assert.Panics(t, func() { series.WithPulse(0, 0.5, false) })
	assert.Panics(t, func() { series.WithChirp(0.1, -1) })
	assert.Panics(t, func() { series.WithMarket(0, 0, 0.1) })
	assert.Panics(t, func() { series.WithGaps(2, 1) })
	assert.Panics(t, func() { series.WithInterval(timeunit.Of(timeunit.Day, 0)) })
}
