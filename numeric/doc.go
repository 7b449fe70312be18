// Package numeric implements the linear and logarithmic value scales.
//
// 🚀 Nice rounding
//
// AdjustMinMax turns raw data extremes into bounds and a step whose leading
// digit is 1, 2 or 5 (times a power of ten), so grid lines fall on readable
// numbers:
//
//	AdjustMinMax(0, 100, 100, 5, false) → [0, 120] step 20
//	AdjustMinMax(3, 97, 94, 5, false)   → [0, 100] step 20
//
// Steps are capped at MaxPrecision decimals; the rounding goes through
// github.com/shopspring/decimal so that 0.1+0.2 style residue never reaches a
// label.
//
// ✨ Logarithmic mode
//
// With WithLogarithmic the bounds snap to the enclosing powers of ten, the
// step is counted in decades and positions interpolate log10(v). Breaks are
// applied in log10 space. A minimum ≤ 0 cannot be represented and is
// reported as ErrNonPositiveLog instead of producing NaN positions.
//
// Grid values are generated with go-moremath's vec.Linspace/vec.Logspace;
// values strictly inside a break are skipped.
package numeric
