// SPDX-License-Identifier: MIT

package zoom

import (
	"errors"
	"fmt"
	"math"
)

// ErrZoomFactor indicates a maximum zoom factor below 1 or not finite.
var ErrZoomFactor = errors.New("zoom: max zoom factor must be a finite number >= 1")

// DefaultMaxZoomFactor bounds how far a window can be narrowed: the window is
// never thinner than 1/DefaultMaxZoomFactor of the whole scale.
const DefaultMaxZoomFactor = 1000.0

// Window is a normalized zoom window. The zero value is not usable; build one
// with NewWindow or Full.
type Window struct {
	start    float64
	end      float64
	minWidth float64
}

// Full returns the un-zoomed window [0, 1] with DefaultMaxZoomFactor.
func Full() Window {
	return Window{start: 0, end: 1, minWidth: 1 / DefaultMaxZoomFactor}
}

// NewWindow returns the un-zoomed window limited by maxZoomFactor.
func NewWindow(maxZoomFactor float64) (Window, error) {
	if math.IsNaN(maxZoomFactor) || math.IsInf(maxZoomFactor, 0) || maxZoomFactor < 1 {
		return Window{}, fmt.Errorf("%g: %w", maxZoomFactor, ErrZoomFactor)
	}

	return Window{start: 0, end: 1, minWidth: 1 / maxZoomFactor}, nil
}

// Start returns the lower window bound.
func (w Window) Start() float64 { return w.start }

// End returns the upper window bound.
func (w Window) End() float64 { return w.end }

// Width returns end - start.
func (w Window) Width() float64 { return w.end - w.start }

// MaxZoomFactor returns the inverse of the minimum window width.
func (w Window) MaxZoomFactor() float64 {
	if w.minWidth == 0 {
		return math.Inf(1)
	}
	return 1 / w.minWidth
}

// IsFull reports whether the whole scale is visible.
func (w Window) IsFull() bool { return w.start <= 0 && w.end >= 1 }

// Set moves the window and reports whether it changed.
//
// Bounds are swapped if inverted and clamped to [0, 1]. A window thinner than
// the minimum width grows symmetrically around its centre and is then shifted
// back inside [0, 1]. NaN bounds leave the window untouched.
func (w *Window) Set(start, end float64) bool {
	if math.IsNaN(start) || math.IsNaN(end) {
		return false
	}
	if start > end {
		start, end = end, start
	}
	start, end = clamp01(start), clamp01(end)

	if end-start < w.minWidth {
		mid := (start + end) / 2
		start, end = mid-w.minWidth/2, mid+w.minWidth/2
		if start < 0 {
			start, end = 0, w.minWidth
		}
		if end > 1 {
			start, end = 1-w.minWidth, 1
		}
	}

	if start == w.start && end == w.end {
		return false
	}
	w.start, w.end = start, end

	return true
}

// Reset restores the full window and reports whether it changed.
func (w *Window) Reset() bool { return w.Set(0, 1) }

// ToZoomed maps a whole-scale position into the window's coordinate space.
// Positions outside the window map outside [0, 1].
func (w Window) ToZoomed(pos float64) float64 {
	width := w.end - w.start
	if width == 0 {
		return 0
	}
	return (pos - w.start) / width
}

// FromZoomed maps a window position back onto the whole scale.
func (w Window) FromZoomed(pos float64) float64 {
	return w.start + pos*(w.end-w.start)
}

// Contains reports whether a whole-scale position is visible.
func (w Window) Contains(pos float64) bool {
	return pos >= w.start && pos <= w.end
}

// String renders the window as "[start, end]".
func (w Window) String() string {
	return fmt.Sprintf("[%g, %g]", w.start, w.end)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
