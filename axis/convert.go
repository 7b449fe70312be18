// SPDX-License-Identifier: MIT

package axis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/axiscale/category"
	"github.com/katalvlaran/axiscale/duration"
	"github.com/katalvlaran/axiscale/renderer"
	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/temporal"
	"github.com/katalvlaran/axiscale/timeunit"
)

// ErrNoRenderer indicates a pixel conversion on an axis without a renderer.
var ErrNoRenderer = errors.New("axis: no renderer attached")

// read validates and runs fn under the lock.
func (a *Axis) read(fn func() error) error {
	return a.run(func() error {
		if err := a.validate(); err != nil {
			return err
		}
		return fn()
	})
}

func (a *Axis) checkValue(v float64) error {
	if c, ok := a.strategy.(valueChecker); ok {
		if err := c.CheckValue(v); err != nil {
			return fmt.Errorf("axis %q: %w", a.opts.name, err)
		}
	}
	return nil
}

func (a *Axis) mismatch(want scale.Kind) error {
	return fmt.Errorf("axis %q is %v, not %v: %w", a.opts.name, a.strategy.Kind(), want, ErrKindMismatch)
}

// ValueToPosition maps a domain value to its position on the whole scale.
func (a *Axis) ValueToPosition(v float64) (float64, error) {
	var p float64
	err := a.read(func() error {
		if err := a.checkValue(v); err != nil {
			return err
		}
		p = a.strategy.ValueToPosition(v, a.current, a.breaks)
		return nil
	})
	return p, err
}

// PositionToValue maps a whole-scale position back to a domain value.
func (a *Axis) PositionToValue(p float64) (float64, error) {
	var v float64
	err := a.read(func() error {
		v = a.strategy.PositionToValue(p, a.current, a.breaks)
		return nil
	})
	return v, err
}

// ToZoomedPosition converts a whole-scale position into the zoom window.
func (a *Axis) ToZoomedPosition(p float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window.ToZoomed(p)
}

// FromZoomedPosition converts a zoom-window position to the whole scale.
func (a *Axis) FromZoomedPosition(p float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window.FromZoomed(p)
}

// ValueToCoordinate maps v to the renderer's pixel offset, honouring zoom.
func (a *Axis) ValueToCoordinate(v float64) (float64, error) {
	var c float64
	err := a.read(func() error {
		if a.opts.renderer == nil {
			return ErrNoRenderer
		}
		if err := a.checkValue(v); err != nil {
			return err
		}
		p := a.strategy.ValueToPosition(v, a.current, a.breaks)
		c = a.opts.renderer.PositionToCoordinate(a.window.ToZoomed(p))
		return nil
	})
	return c, err
}

// PointToValue maps a renderer point back to a domain value.
func (a *Axis) PointToValue(pt renderer.Point) (float64, error) {
	var v float64
	err := a.read(func() error {
		if a.opts.renderer == nil {
			return ErrNoRenderer
		}
		p := a.window.FromZoomed(a.opts.renderer.PointToPosition(pt))
		v = a.strategy.PositionToValue(p, a.current, a.breaks)
		return nil
	})
	return v, err
}

// DateToPosition maps t on a date axis.
func (a *Axis) DateToPosition(t time.Time) (float64, error) {
	if _, ok := a.strategy.(*temporal.Strategy); !ok {
		return 0, a.mismatch(scale.Date)
	}
	return a.ValueToPosition(timeunit.Millis(t))
}

// PositionToDate maps a position on a date axis back to an instant in the
// axis location.
func (a *Axis) PositionToDate(p float64) (time.Time, error) {
	ts, ok := a.strategy.(*temporal.Strategy)
	if !ok {
		return time.Time{}, a.mismatch(scale.Date)
	}
	v, err := a.PositionToValue(p)
	if err != nil {
		return time.Time{}, err
	}
	return timeunit.FromMillis(v, ts.Location()), nil
}

// DurationToPosition maps d on a duration axis, converting it to the axis
// base unit first.
func (a *Axis) DurationToPosition(d time.Duration) (float64, error) {
	ds, ok := a.strategy.(*duration.Strategy)
	if !ok {
		return 0, a.mismatch(scale.Duration)
	}
	ms := float64(d) / float64(time.Millisecond)
	return a.ValueToPosition(ms / ds.BaseUnit().Millis())
}

// CategoryToPosition maps the point at location (0 cell start, 0.5 centre,
// 1 cell end) of the named category.
func (a *Axis) CategoryToPosition(name string, location float64) (float64, error) {
	cs, ok := a.strategy.(*category.Strategy)
	if !ok {
		return 0, a.mismatch(scale.Category)
	}
	var p float64
	err := a.read(func() error {
		i, err := cs.Index(name)
		if err != nil {
			return fmt.Errorf("axis %q: %q: %w", a.opts.name, name, ErrUnknownCategory)
		}
		p = cs.IndexToPosition(i, location, a.current, a.breaks)
		return nil
	})
	return p, err
}

// PositionToCategory returns the category whose cell contains p.
func (a *Axis) PositionToCategory(p float64) (string, error) {
	cs, ok := a.strategy.(*category.Strategy)
	if !ok {
		return "", a.mismatch(scale.Category)
	}
	var name string
	err := a.read(func() error {
		i := cs.PositionToIndex(p, a.current, a.breaks)
		if n, ok := cs.Category(i); ok {
			name = n
			return nil
		}
		return fmt.Errorf("axis %q: position %g: %w", a.opts.name, p, ErrUnknownCategory)
	})
	return name, err
}

// Zoom sets the normalized window. Bounds are clamped to [0,1], swapped when
// inverted and widened to the minimum width.
func (a *Axis) Zoom(start, end float64) error {
	if math.IsNaN(start) || math.IsNaN(end) {
		return fmt.Errorf("axis %q: [%g, %g]: %w", a.opts.name, start, end, ErrInvalidZoom)
	}
	return a.run(func() error { return a.zoom(start, end) })
}

func (a *Axis) zoom(start, end float64) error {
	if a.window.Set(start, end) {
		a.invalidateZoom()
	}
	return a.validate()
}

// ZoomOut restores the full window.
func (a *Axis) ZoomOut() error { return a.Zoom(0, 1) }

// ZoomToValues zooms so that [lo, hi] fills the axis.
func (a *Axis) ZoomToValues(lo, hi float64) error {
	if !scale.IsFinite(lo) || !scale.IsFinite(hi) {
		return fmt.Errorf("axis %q: [%g, %g]: %w", a.opts.name, lo, hi, ErrInvalidZoom)
	}
	return a.run(func() error {
		if err := a.validate(); err != nil {
			return err
		}
		p1 := a.strategy.ValueToPosition(lo, a.current, a.breaks)
		p2 := a.strategy.ValueToPosition(hi, a.current, a.breaks)
		if math.IsNaN(p1) || math.IsNaN(p2) {
			return fmt.Errorf("axis %q: [%g, %g]: %w", a.opts.name, lo, hi, ErrInvalidZoom)
		}
		return a.zoom(p1, p2)
	})
}

// ZoomToDates zooms a date axis to [from, to].
func (a *Axis) ZoomToDates(from, to time.Time) error {
	if _, ok := a.strategy.(*temporal.Strategy); !ok {
		return a.mismatch(scale.Date)
	}
	return a.ZoomToValues(timeunit.Millis(from), timeunit.Millis(to))
}

// ZoomToIndexes zooms a category axis to the cells [start, end).
func (a *Axis) ZoomToIndexes(start, end int) error {
	if _, ok := a.strategy.(*category.Strategy); !ok {
		return a.mismatch(scale.Category)
	}
	return a.ZoomToValues(float64(start), float64(end))
}

// ZoomToCategories zooms a category axis so that the cells from first to
// last, both included, fill it.
func (a *Axis) ZoomToCategories(first, last string) error {
	cs, ok := a.strategy.(*category.Strategy)
	if !ok {
		return a.mismatch(scale.Category)
	}
	i, err := cs.Index(first)
	if err != nil {
		return fmt.Errorf("axis %q: %q: %w", a.opts.name, first, ErrUnknownCategory)
	}
	j, err := cs.Index(last)
	if err != nil {
		return fmt.Errorf("axis %q: %q: %w", a.opts.name, last, ErrUnknownCategory)
	}
	if j < i {
		i, j = j, i
	}
	return a.ZoomToIndexes(i, j+1)
}
