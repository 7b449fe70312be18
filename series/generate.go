// SPDX-License-Identifier: MIT
//
// generate.go: deterministic sample generators.
//
// Purpose:
//   • Provide reproducible data for tests, examples and the CLI: pulse trains,
//     linear chirps, OHLC candles and dated timestamps with optional gaps.
//
// Contract:
//   • Every generator returns exactly n values or an ErrLength error; none panic.
//   • Output is a pure function of n and the options (seed included); no global
//     random state is touched.
//   • Dated timestamps are strictly increasing whole intervals from the start;
//     gaps never follow the last sample.
//
// Complexity:
//   • O(n) time and memory; OHLC is O(days·steps).

package series

import (
	"fmt"
	"math"

	"github.com/katalvlaran/axiscale/timeunit"
)

const tau = 2 * math.Pi

// -----------------------------------------------------------------------------
// Waveforms.
// -----------------------------------------------------------------------------

// Pulse returns n samples of a rectangular (or triangular) pulse train with
// optional trend and noise.
//
//	rectangular: y = A when frac(i·f) < duty, else 0
//	triangular:  y = A·(1 - |2·frac(i·f) - 1|)
//
// Complexity: O(n).
func Pulse(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("pulse n=%d: %w", n, ErrLength)
	}
	o := newOptions(opts...)
	rng := o.rand()

	out := make([]float64, n)
	for i := range out {
		frac := math.Mod(float64(i)*o.frequency, 1)
		var y float64
		switch {
		case o.triangular:
			y = o.amplitude * (1 - math.Abs(2*frac-1))
		case frac < o.duty:
			y = o.amplitude
		}
		y += o.trend * float64(i)
		if o.noise > 0 {
			y += o.noise * rng.NormFloat64()
		}
		out[i] = y
	}

	return out, nil
}

// Chirp returns n samples of a linear chirp sweeping from the start to the
// end frequency:
//
//	f_i = f0 + (f1-f0)·i/(n-1);  θ_{i+1} = θ_i + 2π·f_i;  y_i = A·sin(θ_i)
//
// Complexity: O(n).
func Chirp(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("chirp n=%d: %w", n, ErrLength)
	}
	o := newOptions(opts...)
	rng := o.rand()

	out := make([]float64, n)
	theta := 0.0
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (o.chirpStart + (o.chirpEnd-o.chirpStart)*t)
		y := o.amplitude*math.Sin(theta) + o.trend*float64(i)
		if o.noise > 0 {
			y += o.noise * rng.NormFloat64()
		}
		out[i] = y
	}

	return out, nil
}

// -----------------------------------------------------------------------------
// Market data.
// -----------------------------------------------------------------------------

// OHLC simulates days of prices as a geometric Brownian motion sampled at a
// fixed number of intraday steps:
//
//	S_{t+1} = S_t · exp((μ - σ²/2)Δt + σ√Δt·Z),  Z ~ N(0,1)
//
// High and low are the extremes of the intraday path including open and
// close.
//
// Complexity: O(days·steps).
func OHLC(days int, opts ...Option) (open, high, low, close []float64, err error) {
	if days < 1 {
		return nil, nil, nil, nil, fmt.Errorf("ohlc days=%d: %w", days, ErrLength)
	}
	o := newOptions(opts...)
	rng := o.rand()

	open = make([]float64, days)
	high = make([]float64, days)
	low = make([]float64, days)
	close = make([]float64, days)

	dt := 1 / float64(o.steps)
	drift := (o.drift - 0.5*o.volatility*o.volatility) * dt
	scale := o.volatility * math.Sqrt(dt)

	s := o.price
	for d := 0; d < days; d++ {
		open[d], high[d], low[d] = s, s, s
		for k := 0; k < o.steps; k++ {
			s *= math.Exp(drift + scale*rng.NormFloat64())
			high[d] = math.Max(high[d], s)
			low[d] = math.Min(low[d], s)
		}
		close[d] = s
	}

	return open, high, low, close, nil
}

// -----------------------------------------------------------------------------
// Time axes.
// -----------------------------------------------------------------------------

// Dated returns n timestamps (Unix ms) starting at the configured instant
// and spaced by the configured interval. With gaps enabled, each emitted
// period is followed by a run of skipped periods with the configured
// probability. The last two timestamps are always one interval apart.
//
// Complexity: O(n + skipped periods).
func Dated(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("dated n=%d: %w", n, ErrLength)
	}
	o := newOptions(opts...)
	rng := o.rand()

	out := make([]float64, 0, n)
	t := o.start
	for len(out) < n {
		out = append(out, timeunit.Millis(t))
		t = timeunit.Add(t, o.interval)
		if o.gapRate > 0 && len(out) < n-1 && rng.Float64() < o.gapRate {
			for k := 0; k < o.gapLen; k++ {
				t = timeunit.Add(t, o.interval)
			}
		}
	}

	return out, nil
}

// Index returns 0, 1, ..., n-1 as float64, the x values of a category or
// plain index axis.
func Index(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
