// Package duration implements the duration scale: a linear scale over a
// count of a base time unit (milliseconds, seconds, minutes, ...).
//
// For sub-day base units the step is not a plain 1-2-5 number but a multiple
// of a clock-friendly divisor: 60, 30, 20, 15, 10, 2 or 1 for seconds and
// minutes, 24, 12, 6, 4, 2 or 1 for hours. Ninety minutes split in three
// becomes 30-minute steps rather than 50. Days and larger units fall back to
// the numeric nice rounding.
//
// Labels come from format.Duration and follow the magnitude of the range and
// step: "5d", "1:30", "0:00.250".
package duration
