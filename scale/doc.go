// Package scale holds the types shared by every scale strategy of
// github.com/katalvlaran/axiscale and the Strategy interface the axis core is
// parameterized by.
//
// A Strategy owns the variant-only math of one scale kind:
//
//   - AdjustMinMax turns raw data extremes into "nice" bounds and a step;
//   - ValueToPosition / PositionToValue map domain values onto [0, 1] over a
//     Range, honouring breaks;
//   - Grid lists the tick values between two domain values;
//   - Format renders a label for one value.
//
// Everything else (series folding, zoom, animation, data items) lives in the
// axis package and is identical for all kinds.
//
// Domain values are float64 throughout: plain numbers, Unix milliseconds,
// duration base units or category indices depending on Kind.
package scale
