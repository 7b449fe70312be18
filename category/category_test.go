package category_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/category"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("c%02d", i)
	}
	return out
}

func TestCategories_Management(t *testing.T) {
	s := category.New(category.WithCategories("a", "b", "c"))
	require.Equal(t, 3, s.Len())

	i, err := s.Index("b")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = s.Index("zz")
	require.ErrorIs(t, err, category.ErrUnknownCategory)

	_, err = s.AddCategory("a")
	require.ErrorIs(t, err, category.ErrDuplicateCategory)

	i, err = s.AddCategory("d")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	name, ok := s.Category(3)
	assert.True(t, ok)
	assert.Equal(t, "d", name)
	_, ok = s.Category(4)
	assert.False(t, ok)

	err = s.SetCategories([]string{"x", "y", "x"})
	require.ErrorIs(t, err, category.ErrDuplicateCategory)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Categories(), "failed replace keeps old list")

	require.NoError(t, s.SetCategories([]string{"x", "y"}))
	lo, hi, ok := s.Domain()
	assert.True(t, ok)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
}

func TestFrequency(t *testing.T) {
	// 100 categories zoomed to 10 visible with room for 4 labels.
	assert.Equal(t, 3, category.Frequency(0, 10, 4))
	assert.Equal(t, 1, category.Frequency(0, 3, 10))
	assert.Equal(t, 1, category.Frequency(5, 5, 4))
	assert.Equal(t, 10, category.Frequency(0, 10, 0))
}

func TestGrid_FrequencyThinning(t *testing.T) {
	s := category.New(category.WithCategories(names(100)...))
	r, err := s.AdjustMinMax(0, 100, 100, 4, false)
	require.NoError(t, err)

	ticks := s.Grid(r, 0, 10, 4, nil)
	require.Len(t, ticks, 10, "hidden ticks are still emitted")

	var visible []float64
	for _, tk := range ticks {
		if tk.Visible {
			visible = append(visible, tk.Value)
		}
		assert.Equal(t, tk.Value+1, tk.End)
		assert.Equal(t, scale.GridTick, tk.Kind)
	}
	assert.Equal(t, []float64{0, 3, 6, 9}, visible)
	assert.Equal(t, "c03", ticks[3].Label)
}

func TestGrid_ClosingTick(t *testing.T) {
	s := category.New(category.WithCategories("a", "b", "c"))
	r, err := s.AdjustMinMax(0, 3, 3, 10, false)
	require.NoError(t, err)

	ticks := s.Grid(r, 0, 3, 10, nil)
	require.Len(t, ticks, 4)
	last := ticks[3]
	assert.Equal(t, scale.ClosingTick, last.Kind)
	assert.Equal(t, 3.0, last.Value)
	assert.Empty(t, last.Label)

	// zoomed away from the end: no closing tick
	ticks = s.Grid(r, 0, 2, 10, nil)
	require.Len(t, ticks, 2)
	assert.Equal(t, scale.GridTick, ticks[1].Kind)

	assert.Nil(t, category.New().Grid(r, 0, 3, 10, nil))
}

func TestGrid_SkipsIndicesInsideBreaks(t *testing.T) {
	s := category.New(category.WithCategories(names(10)...))
	r := scale.Range{Min: 0, Max: 10, Step: 1}
	b, err := breaks.New(2, 6, 0)
	require.NoError(t, err)

	var got []float64
	for _, tk := range s.Grid(r, 0, 10, 20, breaks.NewSet(b)) {
		if tk.Kind == scale.GridTick {
			got = append(got, tk.Value)
		}
	}
	assert.Equal(t, []float64{0, 1, 2, 6, 7, 8, 9}, got)
}

func TestPositions_Locations(t *testing.T) {
	s := category.New(category.WithCategories("a", "b", "c", "d"))
	r := scale.Range{Min: 0, Max: 4, Step: 1}

	assert.InDelta(t, 0.125, s.IndexToPosition(0, 0.5, r, nil), 1e-12)
	assert.InDelta(t, 0.875, s.IndexToPosition(3, 0.5, r, nil), 1e-12)

	require.NoError(t, s.SetLocations(0.5, 0.5))
	// effective span 3: first centre at 0, last centre at 1
	assert.InDelta(t, 0.0, s.IndexToPosition(0, 0.5, r, nil), 1e-12)
	assert.InDelta(t, 1.0, s.IndexToPosition(3, 0.5, r, nil), 1e-12)
	assert.InDelta(t, 1.5, s.PositionToValue(1.0/3, r, nil), 1e-12)
	assert.Equal(t, 1, s.PositionToIndex(1.0/3, r, nil))
	assert.Equal(t, 0, s.PositionToIndex(-5, r, nil))
	assert.Equal(t, 3, s.PositionToIndex(5, r, nil))

	require.ErrorIs(t, s.SetLocations(-0.1, 1), category.ErrLocation)
	assert.Equal(t, -1, category.New().PositionToIndex(0.5, r, nil))
}

func TestPositions_WithBreaks(t *testing.T) {
	s := category.New(category.WithCategories(names(30)...))
	r := scale.Range{Min: 0, Max: 30, Step: 1}
	b, err := breaks.New(10, 20, 0.1)
	require.NoError(t, err)
	set := breaks.NewSet(b)

	assert.InDelta(t, 16.0/21, s.ValueToPosition(25, r, set), 1e-12)
	for _, v := range []float64{0.5, 9.5, 12.3, 19.9, 25.5, 29.5} {
		p := s.ValueToPosition(v, r, set)
		assert.InDelta(t, v, s.PositionToValue(p, r, set), 1e-9)
	}
}

func TestFormat(t *testing.T) {
	s := category.New(category.WithCategories("north", "south"))
	assert.Equal(t, "south", s.Format(1.7, scale.Range{}))
	assert.Equal(t, "", s.Format(2, scale.Range{}))
	assert.Equal(t, "", s.Format(-0.5, scale.Range{}))

	upper := category.New(
		category.WithCategories("north"),
		category.WithFormatter(scale.FormatterFunc(func(v float64, _ scale.Range) string { return "N" })),
	)
	assert.Equal(t, "N", upper.Format(0, scale.Range{}))
	assert.Equal(t, scale.Category, upper.Kind())
}

func TestVisibleMask(t *testing.T) {
	m := category.VisibleMask(4, 14, 3)
	var got []uint
	for i := uint(0); i < 15; i++ {
		if m.Test(i) {
			got = append(got, i)
		}
	}
	assert.Equal(t, []uint{6, 9, 12}, got)
	assert.Equal(t, uint(3), m.Count())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { category.WithLocations(2, 0) })
	assert.Panics(t, func() { category.WithFormatter(nil) })
	assert.NotPanics(t, func() { category.WithLocations(0, 1) })
}
