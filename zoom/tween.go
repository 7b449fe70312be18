// SPDX-License-Identifier: MIT

package zoom

import (
	"fmt"
	"time"
)

// Extent is a (min, max) pair of domain values.
type Extent struct {
	Min float64
	Max float64
}

// Lerp interpolates linearly between e and to; t is not clamped.
func (e Extent) Lerp(to Extent, t float64) Extent {
	return Extent{
		Min: e.Min + (to.Min-e.Min)*t,
		Max: e.Max + (to.Max-e.Max)*t,
	}
}

// String renders the extent as "min..max".
func (e Extent) String() string { return fmt.Sprintf("%g..%g", e.Min, e.Max) }

// State is the lifecycle of a Tween.
type State int

const (
	// Idle: never started or stopped.
	Idle State = iota
	// Running: converging towards the target.
	Running
	// Done: the target has been reached.
	Done
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Tween animates an Extent from one value to another over a fixed duration.
//
// The zero value is an idle tween.
type Tween struct {
	from     Extent
	to       Extent
	current  Extent
	start    time.Time
	duration time.Duration
	state    State
}

// Start begins a transition from → to at now and reports whether a new
// transition was started.
//
// While Running towards the same target Start is a no-op and returns false.
// A non-positive duration completes immediately (state Done, Current == to).
func (tw *Tween) Start(from, to Extent, now time.Time, d time.Duration) bool {
	if tw.state == Running && tw.to == to {
		return false
	}
	tw.from, tw.to, tw.current = from, to, from
	tw.start, tw.duration = now, d
	if d <= 0 {
		tw.current = to
		tw.state = Done
		return true
	}
	tw.state = Running

	return true
}

// Advance moves the tween to now and returns the interpolated extent and
// whether the tween has finished. Advancing a non-running tween returns the
// current extent unchanged.
func (tw *Tween) Advance(now time.Time) (Extent, bool) {
	if tw.state != Running {
		return tw.current, tw.state == Done
	}
	elapsed := now.Sub(tw.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= tw.duration {
		tw.current = tw.to
		tw.state = Done
		return tw.current, true
	}
	tw.current = tw.from.Lerp(tw.to, float64(elapsed)/float64(tw.duration))

	return tw.current, false
}

// Stop cancels a running tween, keeping the last interpolated extent.
func (tw *Tween) Stop() {
	if tw.state == Running {
		tw.state = Idle
	}
}

// Active reports whether the tween is running.
func (tw *Tween) Active() bool { return tw.state == Running }

// State returns the lifecycle state.
func (tw *Tween) State() State { return tw.state }

// Target returns the extent the tween converges to.
func (tw *Tween) Target() Extent { return tw.to }

// Current returns the last interpolated extent.
func (tw *Tween) Current() Extent { return tw.current }

// Progress returns the completed fraction in [0, 1] at now.
func (tw *Tween) Progress(now time.Time) float64 {
	switch tw.state {
	case Done:
		return 1
	case Idle:
		return 0
	}
	p := float64(now.Sub(tw.start)) / float64(tw.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
