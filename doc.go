// Package axiscale is a headless axis engine for charts: it turns the data
// extremes of a set of series into nicely rounded ranges, grid lines, labels
// and pixel coordinates.
//
// What is axiscale?
//
//	A thread-safe, renderer-agnostic library that brings together:
//		• Scale strategies: value (linear/log), date, category, duration
//		• Nice ranges: grid-aligned min/max and steps for any budget
//		• Breaks: compressed value ranges, incl. empty date periods
//		• Zoom: normalized windows with a zoom-factor limit
//		• Transitions: clock-driven animation of range changes
//		• Formatting: grouped/SI numbers, strftime dates, durations
//
// Under the hood, everything is organized in small packages:
//
//	axis/      — the Axis state machine: series fold, zoom, data items, events
//	scale/     — the Strategy contract, Range, Tick and precision helpers
//	numeric/   — value scales (linear & logarithmic)
//	temporal/  — date scales over Unix milliseconds
//	category/  — ordinal scales with label thinning
//	duration/  — time-span scales in a base unit
//	breaks/    — break sets and the value↔position mapping around them
//	zoom/      — the zoom window and its animation tween
//	format/    — label formatters
//	timeunit/  — calendar units, granularities and arithmetic
//	renderer/  — a headless linear renderer (pixels ↔ positions)
//	series/    — XY and OHLC series plus deterministic generators
//	config/    — YAML/TOML axis descriptions and their factory
//
// Quick ASCII example (value axis, 600px, data 0..100):
//
//	0       20      40      60      80      100     120
//	├───────┼───────┼───────┼───────┼───────┼───────┤
//	0px                                             600px
//
// The command in cmd/axiscale prints the same for a configuration file:
//
//	go run ./cmd/axiscale ticks --config chart.yaml
package axiscale
