// Package format implements the label formatters of the axis scales.
//
// Every formatter satisfies scale.Formatter, so any of them can be swapped
// into an axis with axis.WithFormatter:
//
//   - Number renders plain, grouped ("12,345.5") or SI ("1.5k") numbers with
//     as many decimals as the current step needs;
//   - Date renders Unix milliseconds through strftime patterns, extended with
//     %L for milliseconds;
//   - Duration renders counts of a base time unit as "5d", "1:30" or
//     "0:00.250" depending on the magnitude of the range and the step.
//
// Localization is out of scope: month and weekday names are English.
package format
