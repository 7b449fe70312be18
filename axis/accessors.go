// SPDX-License-Identifier: MIT

package axis

import (
	"time"

	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/zoom"
)

// snapshot validates and copies a value out under the lock. The sticky
// error is reported by Err.
func snapshot[T any](a *Axis, get func() T) T {
	var v T
	_ = a.run(func() error {
		_ = a.validate()
		v = get()
		return nil
	})
	return v
}

// Name returns the name series see in Ref.Name.
func (a *Axis) Name() string { return a.opts.name }

// Kind returns the scale kind of the strategy.
func (a *Axis) Kind() scale.Kind { return a.strategy.Kind() }

// Strategy returns the scale strategy. Changing its configuration requires
// InvalidateData.
func (a *Axis) Strategy() scale.Strategy { return a.strategy }

// Err validates and returns the sticky error, if any.
func (a *Axis) Err() error { return a.Validate() }

// Min returns the displayed minimum (the adjusted one unless a transition is
// running).
func (a *Axis) Min() float64 { return snapshot(a, func() float64 { return a.current.Min }) }

// Max returns the displayed maximum.
func (a *Axis) Max() float64 { return snapshot(a, func() float64 { return a.current.Max }) }

// Step returns the grid step of the zoomed range.
func (a *Axis) Step() float64 { return snapshot(a, func() float64 { return a.step }) }

// Range returns the displayed bounds with the zoomed step.
func (a *Axis) Range() scale.Range {
	return snapshot(a, func() scale.Range {
		return scale.Range{Min: a.current.Min, Max: a.current.Max, Step: a.step}
	})
}

// Target returns the adjusted bounds a transition converges to.
func (a *Axis) Target() scale.Range { return snapshot(a, func() scale.Range { return a.target }) }

// MinZoomed returns the domain value at the window start.
func (a *Axis) MinZoomed() float64 { return snapshot(a, func() float64 { return a.minZoomed }) }

// MaxZoomed returns the domain value at the window end.
func (a *Axis) MaxZoomed() float64 { return snapshot(a, func() float64 { return a.maxZoomed }) }

// Start returns the normalized window start.
func (a *Axis) Start() float64 { return snapshot(a, func() float64 { return a.window.Start() }) }

// End returns the normalized window end.
func (a *Axis) End() float64 { return snapshot(a, func() float64 { return a.window.End() }) }

// Window returns a copy of the zoom window.
func (a *Axis) Window() zoom.Window { return snapshot(a, func() zoom.Window { return a.window }) }

// GridCount returns the grid-line budget of the last data pass.
func (a *Axis) GridCount() int { return snapshot(a, func() int { return a.gridCount }) }

// Animating reports whether an extremum transition is running.
func (a *Axis) Animating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tween.Active()
}

// Tick advances a running transition to now, rebuilds the zoom state and
// reports whether the transition is still running.
func (a *Axis) Tick(now time.Time) bool {
	running := false
	_ = a.run(func() error {
		if err := a.validate(); err != nil {
			return err
		}
		if !a.tween.Active() {
			return nil
		}
		ext, done := a.tween.Advance(now)
		a.current = scale.Range{Min: ext.Min, Max: ext.Max, Step: a.target.Step}
		if done {
			a.current = a.target
		}
		a.state = stateDirtyZoom
		running = !done
		return a.validate()
	})
	return running
}

// StopAnimation cancels a running transition and snaps to its target.
func (a *Axis) StopAnimation() error {
	return a.run(func() error {
		if !a.tween.Active() {
			return a.validate()
		}
		a.tween.Stop()
		a.current = a.target
		a.invalidateZoom()
		return a.validate()
	})
}
