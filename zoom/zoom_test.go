package zoom_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/axiscale/zoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow_Validation(t *testing.T) {
	_, err := zoom.NewWindow(0.5)
	require.ErrorIs(t, err, zoom.ErrZoomFactor)
	_, err = zoom.NewWindow(math.Inf(1))
	require.ErrorIs(t, err, zoom.ErrZoomFactor)

	w, err := zoom.NewWindow(10)
	require.NoError(t, err)
	assert.True(t, w.IsFull())
	assert.Equal(t, 10.0, w.MaxZoomFactor())
}

func TestWindow_SetClampsAndSwaps(t *testing.T) {
	w := zoom.Full()

	assert.True(t, w.Set(0.8, 0.2))
	assert.Equal(t, 0.2, w.Start())
	assert.Equal(t, 0.8, w.End())

	assert.False(t, w.Set(0.2, 0.8), "same window is not a change")

	assert.True(t, w.Set(-1, 2))
	assert.True(t, w.IsFull())

	assert.False(t, w.Set(math.NaN(), 0.5))
	assert.True(t, w.IsFull())
}

func TestWindow_MinimumWidth(t *testing.T) {
	w, err := zoom.NewWindow(10)
	require.NoError(t, err)

	w.Set(0.5, 0.5)
	assert.InDelta(t, 0.45, w.Start(), 1e-12)
	assert.InDelta(t, 0.55, w.End(), 1e-12)

	// Grows inside [0,1] at the edges.
	w.Set(0, 0.01)
	assert.Equal(t, 0.0, w.Start())
	assert.InDelta(t, 0.1, w.End(), 1e-12)

	w.Set(0.99, 1)
	assert.InDelta(t, 0.9, w.Start(), 1e-12)
	assert.Equal(t, 1.0, w.End())
}

func TestWindow_ZoomedRoundTrip(t *testing.T) {
	w := zoom.Full()
	w.Set(0.25, 0.75)

	assert.Equal(t, 0.0, w.ToZoomed(0.25))
	assert.Equal(t, 1.0, w.ToZoomed(0.75))
	assert.Equal(t, 0.5, w.ToZoomed(0.5))
	assert.Equal(t, -0.5, w.ToZoomed(0))

	for p := 0.0; p <= 1; p += 0.05 {
		assert.InDelta(t, p, w.FromZoomed(w.ToZoomed(p)), 1e-12)
	}
	assert.True(t, w.Contains(0.3))
	assert.False(t, w.Contains(0.9))
	assert.Equal(t, "[0.25, 0.75]", w.String())
}

func TestTween_LinearProgress(t *testing.T) {
	var tw zoom.Tween
	t0 := time.Unix(0, 0)
	from := zoom.Extent{Min: 0, Max: 100}
	to := zoom.Extent{Min: 10, Max: 200}

	require.True(t, tw.Start(from, to, t0, time.Second))
	assert.True(t, tw.Active())
	assert.Equal(t, zoom.Running, tw.State())

	e, done := tw.Advance(t0.Add(500 * time.Millisecond))
	assert.False(t, done)
	assert.InDelta(t, 5.0, e.Min, 1e-9)
	assert.InDelta(t, 150.0, e.Max, 1e-9)
	assert.InDelta(t, 0.5, tw.Progress(t0.Add(500*time.Millisecond)), 1e-9)

	e, done = tw.Advance(t0.Add(2 * time.Second))
	assert.True(t, done)
	assert.Equal(t, to, e)
	assert.Equal(t, zoom.Done, tw.State())
	assert.False(t, tw.Active())
}

func TestTween_DuplicateTargetIsNoop(t *testing.T) {
	var tw zoom.Tween
	t0 := time.Unix(0, 0)
	to := zoom.Extent{Min: 1, Max: 2}

	require.True(t, tw.Start(zoom.Extent{}, to, t0, time.Second))
	tw.Advance(t0.Add(300 * time.Millisecond))
	assert.False(t, tw.Start(zoom.Extent{Min: 5, Max: 5}, to, t0.Add(300*time.Millisecond), time.Second))
	assert.InDelta(t, 0.3, tw.Progress(t0.Add(300*time.Millisecond)), 1e-9, "clock not restarted")

	// A different target restarts from the supplied origin.
	other := zoom.Extent{Min: 3, Max: 4}
	require.True(t, tw.Start(tw.Current(), other, t0.Add(300*time.Millisecond), time.Second))
	assert.Equal(t, other, tw.Target())
}

func TestTween_ZeroDurationAndStop(t *testing.T) {
	var tw zoom.Tween
	t0 := time.Unix(0, 0)
	to := zoom.Extent{Min: -1, Max: 1}

	require.True(t, tw.Start(zoom.Extent{}, to, t0, 0))
	assert.Equal(t, zoom.Done, tw.State())
	assert.Equal(t, to, tw.Current())

	require.True(t, tw.Start(zoom.Extent{}, zoom.Extent{Min: 10, Max: 10}, t0, time.Second))
	mid, _ := tw.Advance(t0.Add(250 * time.Millisecond))
	tw.Stop()
	assert.Equal(t, zoom.Idle, tw.State())
	e, done := tw.Advance(t0.Add(time.Hour))
	assert.False(t, done)
	assert.Equal(t, mid, e, "stopped tween keeps its last value")
}
