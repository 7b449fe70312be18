// Package series provides deterministic synthetic data series that plug into
// an axis: sequence generators (pulse, chirp, OHLC candles, dated samples
// with gaps) and two Series implementations, XY and Candles.
//
// Generators are pure: for a fixed (n, options) they return the same values
// on every run, which makes them suitable for golden tests, examples and the
// command line demo. Randomness (noise, OHLC paths, gap placement) comes from
// a seeded math/rand source, shared when WithRand is given.
//
// Series answer Ref queries by axis name: XY reports X along XAxis and Y
// along YAxis; Candles report timestamps along TimeAxis and the low/high
// envelope along PriceAxis.
package series
