// Package temporal implements the date scale.
//
// Dates travel as Unix milliseconds. The scale is linear in time; what makes
// it a date scale is the choice of grid instants:
//
//  1. ChooseInterval walks an ordered list of candidate granularities
//     (1 ms … 100000 years) and returns the finest one whose interval count
//     over the visible duration fits the grid-count budget. The walk
//     saturates at the largest candidate.
//  2. Grid rounds the visible start down to that granularity and repeatedly
//     advances by its count, re-rounding with calendar arithmetic so that
//     ticks land on month starts, midnights, and so on. Instants strictly
//     inside a break jump to the first grid instant at or after the break end.
//  3. Labels use a strftime pattern per unit. The first label after a rollover
//     into the containing unit (a new day on an hourly grid, a new year on a
//     monthly grid) uses the period-change pattern instead, unless
//     WithMarkUnitChange(false) is set.
//
// EmptyPeriodBreaks scans a span at the base interval and reports every
// contiguous stretch without data as a zero-size break; axes use it for
// "skip empty periods". DetectBaseInterval guesses the base interval from
// data spacing.
package temporal
