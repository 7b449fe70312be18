// Package axis implements the axis core: it owns one scale.Strategy, the
// axis breaks and the zoom window, folds the extremes proposed by registered
// series into "nice" bounds and maps domain values to positions and back.
//
// # Lifecycle
//
// An Axis moves through three states:
//
//	dirtyData -> dirtyZoom -> valid
//
// Data changes (series, user min/max, strictness, breaks, renderer) mark it
// dirtyData; zoom changes mark it dirtyZoom. Every public read validates
// synchronously first, so callers never observe a half-adjusted axis.
//
// The data pass asks every series not flagged IgnoreMinMax for its extremes,
// drops non-finite candidates, falls back to [-1, 1] when nothing is left,
// applies the user overrides, nudges a degenerate span apart and hands the
// result to the strategy together with the break-compressed difference. A
// strategy error (for instance a logarithmic axis over non-positive data)
// becomes sticky: conversions return it until the configuration changes.
//
// The zoom pass maps the window (start, end) to (MinZoomed, MaxZoomed),
// re-derives the step over the zoomed span, rebuilds the data items and
// notifies SelectionChanged listeners when the zoomed bounds moved.
//
// # Transitions
//
// Once an axis has been validated, a change of its adjusted bounds is
// animated when an animation duration is configured: Tick(now) advances the
// transition and re-runs the zoom pass. Starting a transition towards the
// target already being approached is a no-op.
//
// # Concurrency
//
// An Axis serializes its own methods with a mutex. Listeners run after the
// lock is released and may call back into the axis.
package axis
