// SPDX-License-Identifier: MIT

package scale

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultMaxPrecision caps the number of decimals a step may carry.
const DefaultMaxPrecision = 15

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Power returns 10^floor(log10(|v|)), the power of ten with as many digits
// as v. Power(0) is 0.
func Power(v float64) float64 {
	if v == 0 || !IsFinite(v) {
		return 0
	}
	abs := math.Abs(v)
	p := math.Pow(10, math.Floor(math.Log10(abs)))
	// Log10 may land just beside an exact power of ten.
	switch {
	case p*10 <= abs:
		p *= 10
	case p > abs:
		p /= 10
	}
	return p
}

// Decimals returns the number of significant decimals of v in its shortest
// decimal representation (0.05 → 2, 120 → 0).
func Decimals(v float64) int {
	if !IsFinite(v) {
		return 0
	}
	exp := decimal.NewFromFloat(v).Exponent()
	if exp >= 0 {
		return 0
	}
	return int(-exp)
}

// RoundTo rounds v half away from zero to the given number of decimals.
// Non-finite values and negative places return v unchanged.
func RoundTo(v float64, places int) float64 {
	if !IsFinite(v) || places < 0 {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(int32(places)).Float64()
	return f
}

// CeilTo rounds v up to the given number of decimals (0.123, 2 → 0.13).
func CeilTo(v float64, places int) float64 {
	if !IsFinite(v) || places < 0 {
		return v
	}
	shift := decimal.New(1, int32(places))
	f, _ := decimal.NewFromFloat(v).Mul(shift).Ceil().Div(shift).Float64()
	return f
}

// FloorTo rounds v down to the given number of decimals.
func FloorTo(v float64, places int) float64 {
	if !IsFinite(v) || places < 0 {
		return v
	}
	shift := decimal.New(1, int32(places))
	f, _ := decimal.NewFromFloat(v).Mul(shift).Floor().Div(shift).Float64()
	return f
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
