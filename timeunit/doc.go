// Package timeunit defines calendar time units and granularities (unit + count)
// used by the date and duration scales of github.com/katalvlaran/axiscale.
//
// A Granularity such as {Minute, 5} names a candidate grid interval. The
// package knows three things about it:
//
//   - its nominal length in milliseconds (Duration), used when comparing a
//     visible span against a grid-count budget;
//   - how to floor an instant to it (Round), e.g. 10:37 → 10:35 for {Minute, 5};
//   - how to advance an instant by it (Add), calendar-aware for days and above.
//
// Nominal lengths follow the usual charting conventions: a month is 30 days,
// a year 365 days. They are only used to rank and count intervals; actual
// grid instants are always produced with calendar arithmetic.
//
// Dates travel through the scales as Unix milliseconds (float64); Millis and
// FromMillis convert at the boundary.
package timeunit
