// Package zoom tracks the visible part of an axis and animates changes of its
// extremes.
//
// A Window is the normalized [start, end] ⊆ [0, 1] sub-range of the whole
// scale currently on screen. Positions computed over the whole scale are
// mapped into the window with ToZoomed and back with FromZoomed:
//
//	zoomed = (pos - start) / (end - start)
//
// A Tween is the explicit state machine behind animated extremum changes:
// (from, to, startTime, duration) advanced by an external per-frame driver
// calling Advance(now). Interpolation is linear. Starting a tween towards the
// target it is already converging to is a no-op.
//
// Neither type is safe for concurrent use; the owning axis serializes access.
package zoom
