package numeric_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/numeric"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isNice reports whether step = d·10^n with d ∈ {1,2,5}.
func isNice(step float64) bool {
	p := scale.Power(step)
	d := math.Round(step / p)
	return math.Abs(step/p-d) < 1e-9 && (d == 1 || d == 2 || d == 5)
}

func TestAdjustMinMax_Table(t *testing.T) {
	cases := []struct {
		name           string
		min, max, diff float64
		grid           int
		strict         bool
		want           scale.Range
	}{
		{"zero to hundred", 0, 100, 100, 5, false, scale.Range{Min: 0, Max: 120, Step: 20}},
		{"inner data", 3, 97, 94, 5, false, scale.Range{Min: 0, Max: 100, Step: 20}},
		{"crosses zero", -7.3, 42, 49.3, 5, false, scale.Range{Min: -10, Max: 50, Step: 10}},
		{"sub-unit", 0.12, 0.57, 0.45, 5, false, scale.Range{Min: 0.1, Max: 0.6, Step: 0.1}},
		{"degenerate span", 5, 5, 0, 5, false, scale.Range{Min: 4, Max: 6, Step: 1}},
		{"strict keeps bounds", 0, 100, 100, 5, true, scale.Range{Min: 0, Max: 100, Step: 20}},
		{"grid count floor", 0, 10, 10, 0, false, scale.Range{Min: 0, Max: 20, Step: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := numeric.AdjustMinMax(tc.min, tc.max, tc.diff, tc.grid, tc.strict, scale.DefaultMaxPrecision)
			assert.InDelta(t, tc.want.Min, got.Min, 1e-12, "min")
			assert.InDelta(t, tc.want.Max, got.Max, 1e-12, "max")
			assert.InDelta(t, tc.want.Step, got.Step, 1e-12, "step")
		})
	}
}

// TestAdjustMinMax_NiceAndCovering checks random spans: the step is always
// {1,2,5}×10^n and the adjusted bounds always contain the data.
func TestAdjustMinMax_NiceAndCovering(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(8)-3))
		b := a + rng.Float64()*math.Pow(10, float64(rng.Intn(8)-3))
		grid := 1 + rng.Intn(12)
		r := numeric.AdjustMinMax(a, b, b-a, grid, false, scale.DefaultMaxPrecision)

		require.True(t, isNice(r.Step), "step %v for [%v,%v]", r.Step, a, b)
		require.LessOrEqual(t, r.Min, a, "min for [%v,%v]", a, b)
		require.GreaterOrEqual(t, r.Max, b, "max for [%v,%v]", a, b)
		require.Less(t, r.Min, r.Max)
		if a >= 0 {
			require.GreaterOrEqual(t, r.Min, 0.0, "non-negative data never crosses zero")
		}
	}
}

func TestNiceStep_Precision(t *testing.T) {
	assert.Equal(t, 20.0, numeric.NiceStep(100, 5, scale.DefaultMaxPrecision))
	assert.Equal(t, 0.5, numeric.NiceStep(2, 5, scale.DefaultMaxPrecision))
	assert.Equal(t, 1.0, numeric.NiceStep(0, 5, 2))
	// A cap of 1 decimal lifts a 0.02 step to 0.1.
	assert.Equal(t, 0.1, numeric.NiceStep(0.1, 5, 1))
}

func TestStrategy_AdjustErrors(t *testing.T) {
	s := numeric.New()
	_, err := s.AdjustMinMax(math.NaN(), 1, 1, 5, false)
	require.ErrorIs(t, err, numeric.ErrNonFinite)

	r, err := s.AdjustMinMax(100, 0, 100, 5, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Min, "inverted input is swapped")
}

func TestLogarithmic_DomainError(t *testing.T) {
	s := numeric.New(numeric.WithLogarithmic())
	require.True(t, s.Logarithmic())

	_, err := s.AdjustMinMax(0, 1000, 1000, 5, false)
	require.ErrorIs(t, err, numeric.ErrNonPositiveLog)
	_, err = s.AdjustMinMax(-5, 1000, 1005, 5, false)
	require.ErrorIs(t, err, numeric.ErrNonPositiveLog)

	require.ErrorIs(t, s.CheckValue(-1), numeric.ErrNonPositiveLog)
	require.NoError(t, s.CheckValue(3))
	require.NoError(t, numeric.New().CheckValue(-1))
}

func TestLogarithmic_AdjustAndPositions(t *testing.T) {
	s := numeric.New(numeric.WithLogarithmic())
	r, err := s.AdjustMinMax(5, 5000, 4995, 5, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Min)
	assert.Equal(t, 10000.0, r.Max)
	assert.Equal(t, 1.0, r.Step)

	assert.InDelta(t, 0.5, s.ValueToPosition(100, r, nil), 1e-12)
	assert.InDelta(t, 100.0, s.PositionToValue(0.5, r, nil), 1e-9)
	assert.True(t, math.IsNaN(s.ValueToPosition(0, r, nil)))

	rs, err := s.AdjustMinMax(5, 5000, 4995, 2, true)
	require.NoError(t, err)
	assert.Equal(t, 5.0, rs.Min)
	assert.Equal(t, 5000.0, rs.Max)
	assert.Equal(t, 2.0, rs.Step)

	ticks := s.Grid(r, r.Min, r.Max, 5, nil)
	var values []float64
	for _, tk := range ticks {
		values = append(values, tk.Value)
	}
	assert.InDeltaSlice(t, []float64{1, 10, 100, 1000, 10000}, values, 1e-9)
	assert.Equal(t, "1000", ticks[3].Label)
}

func TestLogarithmic_BreaksInLogSpace(t *testing.T) {
	s := numeric.New(numeric.WithLogarithmic())
	r := scale.Range{Min: 1, Max: 10000, Step: 1}
	b, err := breaks.New(10, 1000, 0)
	require.NoError(t, err)
	set := breaks.NewSet(b)

	// Two of four decades are hidden: 10 and 1000 sit at the same place.
	assert.InDelta(t, 0.5, s.ValueToPosition(10, r, set), 1e-12)
	assert.InDelta(t, 0.5, s.ValueToPosition(1000, r, set), 1e-12)
	assert.InDelta(t, 1.0, s.ValueToPosition(10000, r, set), 1e-12)

	var values []float64
	for _, tk := range s.Grid(r, 1, 10000, 5, set) {
		values = append(values, tk.Value)
	}
	assert.InDeltaSlice(t, []float64{1, 10, 1000, 10000}, values, 1e-9)
}

// TestRoundTrip covers positionToValue(valueToPosition(v)) ≈ v for values
// outside breaks.
func TestRoundTrip(t *testing.T) {
	s := numeric.New()
	r := scale.Range{Min: -50, Max: 250, Step: 50}
	b1, _ := breaks.New(20, 40, 0.2)
	b2, _ := breaks.New(100, 180, 0.05)
	set := breaks.NewSet(b1, b2)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v := r.Min + rng.Float64()*r.Span()
		if set.Contains(v) {
			continue
		}
		got := s.PositionToValue(s.ValueToPosition(v, r, set), r, set)
		require.InDelta(t, v, got, 1e-5*math.Max(1, math.Abs(v)))
	}

	log := numeric.New(numeric.WithLogarithmic())
	lr := scale.Range{Min: 0.01, Max: 1e6, Step: 1}
	for i := 0; i < 1000; i++ {
		v := math.Pow(10, -2+rng.Float64()*8)
		got := log.PositionToValue(log.ValueToPosition(v, lr, nil), lr, nil)
		require.InDelta(t, v, got, 1e-5*v)
	}
}

func TestGrid_LinearSkipsBreakInterior(t *testing.T) {
	s := numeric.New()
	r := scale.Range{Min: 0, Max: 120, Step: 20}

	ticks := s.Grid(r, 0, 120, 6, nil)
	require.Len(t, ticks, 7)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, 20.0, ticks[0].End)
	assert.Equal(t, "120", ticks[6].Label)

	b, _ := breaks.New(30, 70, 0.1)
	ticks = s.Grid(r, 0, 120, 6, breaks.NewSet(b))
	var values []float64
	for _, tk := range ticks {
		values = append(values, tk.Value)
		assert.True(t, tk.Visible)
	}
	assert.Equal(t, []float64{0, 20, 80, 100, 120}, values)
}

func TestGrid_DecimalResidue(t *testing.T) {
	s := numeric.New()
	r := scale.Range{Min: 0, Max: 1, Step: 0.1}
	ticks := s.Grid(r, 0.05, 0.75, 5, nil)
	require.Len(t, ticks, 7)
	assert.Equal(t, 0.1, ticks[0].Value)
	assert.Equal(t, 0.3, ticks[2].Value)
	assert.Equal(t, "0.3", ticks[2].Label)
	assert.Equal(t, 0.7, ticks[6].Value)

	assert.Nil(t, s.Grid(scale.Range{Step: 0}, 0, 1, 5, nil))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { numeric.WithMaxPrecision(-1) })
	assert.Panics(t, func() { numeric.WithFormatter(nil) })
	assert.Equal(t, 3, numeric.New(numeric.WithMaxPrecision(3)).MaxPrecision())
}
