// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/axiscale/timeunit"
)

// -----------------------------------------------------------------------------
// Shared defaults.
// -----------------------------------------------------------------------------

const (
	DefaultSeed      = int64(1)
	DefaultAmplitude = 1.0 // Pulse/Chirp amplitude (>0)
	DefaultNoise     = 0.0 // Gaussian sigma; 0 disables noise
	DefaultTrend     = 0.0 // linear increment per sample

	DefaultFrequency  = 0.125 // pulse base frequency, cycles/sample
	DefaultDuty       = 0.5   // rectangular pulse duty cycle
	DefaultChirpStart = 0.02  // chirp start frequency, cycles/sample
	DefaultChirpEnd   = 0.25  // chirp end frequency, cycles/sample

	DefaultPrice      = 100.0  // OHLC initial price
	DefaultDrift      = 0.0005 // OHLC daily drift
	DefaultVolatility = 0.02   // OHLC daily volatility
	DefaultSteps      = 8      // OHLC intraday steps

	DefaultGapRate = 0.0 // probability that a dated period starts a gap
	DefaultGapLen  = 3   // periods skipped per gap
)

// DefaultStart is the first instant of dated generators.
var DefaultStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options configure the generators.
type Options struct {
	seed       int64
	rng        *rand.Rand
	amplitude  float64
	noise      float64
	trend      float64
	frequency  float64
	duty       float64
	triangular bool
	chirpStart float64
	chirpEnd   float64
	price      float64
	drift      float64
	volatility float64
	steps      int
	start      time.Time
	interval   timeunit.Granularity
	gapRate    float64
	gapLen     int
}

// Option mutates Options.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	o := Options{
		seed:       DefaultSeed,
		amplitude:  DefaultAmplitude,
		noise:      DefaultNoise,
		trend:      DefaultTrend,
		frequency:  DefaultFrequency,
		duty:       DefaultDuty,
		chirpStart: DefaultChirpStart,
		chirpEnd:   DefaultChirpEnd,
		price:      DefaultPrice,
		drift:      DefaultDrift,
		volatility: DefaultVolatility,
		steps:      DefaultSteps,
		start:      DefaultStart,
		interval:   timeunit.Of(timeunit.Day, 1),
		gapRate:    DefaultGapRate,
		gapLen:     DefaultGapLen,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// rand returns the shared source if one was given, else a fresh one seeded
// with the configured seed.
func (o Options) rand() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}
	return rand.New(rand.NewSource(o.seed))
}

// WithSeed sets the seed of the private random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand shares r across generator calls; it takes precedence over WithSeed.
// Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}
	return func(o *Options) { o.rng = r }
}

// WithAmplitude sets the pulse/chirp amplitude.
// Panics if a is not positive and finite.
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic(fmt.Sprintf("series: WithAmplitude(%g): %v", a, ErrParam))
	}
	return func(o *Options) { o.amplitude = a }
}

// WithNoise adds Gaussian noise with standard deviation sigma.
// Panics if sigma is negative.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) {
		panic(fmt.Sprintf("series: WithNoise(%g): %v", sigma, ErrParam))
	}
	return func(o *Options) { o.noise = sigma }
}

// WithTrend adds slope·i to sample i.
func WithTrend(slope float64) Option {
	return func(o *Options) { o.trend = slope }
}

// WithPulse shapes Pulse: base frequency f (cycles/sample), duty cycle and
// triangular instead of rectangular.
// Panics if f <= 0 or duty is outside [0, 1].
func WithPulse(f, duty float64, triangular bool) Option {
	if !(f > 0) || !(duty >= 0 && duty <= 1) {
		panic(fmt.Sprintf("series: WithPulse(%g, %g): %v", f, duty, ErrParam))
	}
	return func(o *Options) { o.frequency, o.duty, o.triangular = f, duty, triangular }
}

// WithChirp sets the start and end frequency of Chirp.
// Panics if either is not positive.
func WithChirp(f0, f1 float64) Option {
	if !(f0 > 0) || !(f1 > 0) {
		panic(fmt.Sprintf("series: WithChirp(%g, %g): %v", f0, f1, ErrParam))
	}
	return func(o *Options) { o.chirpStart, o.chirpEnd = f0, f1 }
}

// WithMarket sets the OHLC initial price, daily drift and volatility.
// Panics if price <= 0 or vol < 0.
func WithMarket(price, drift, vol float64) Option {
	if !(price > 0) || !(vol >= 0) {
		panic(fmt.Sprintf("series: WithMarket(%g, %g, %g): %v", price, drift, vol, ErrParam))
	}
	return func(o *Options) { o.price, o.drift, o.volatility = price, drift, vol }
}

// WithStart sets the first instant of dated generators.
func WithStart(t time.Time) Option {
	return func(o *Options) { o.start = t }
}

// WithInterval sets the spacing of dated generators.
// Panics if g is invalid.
func WithInterval(g timeunit.Granularity) Option {
	if err := g.Validate(); err != nil {
		panic(fmt.Sprintf("series: WithInterval(%v): %v", g, err))
	}
	return func(o *Options) { o.interval = g }
}

// WithGaps makes Dated skip length periods after any period with
// probability rate.
// Panics if rate is outside [0, 1] or length < 1.
func WithGaps(rate float64, length int) Option {
	if !(rate >= 0 && rate <= 1) || length < 1 {
		panic(fmt.Sprintf("series: WithGaps(%g, %d): %v", rate, length, ErrParam))
	}
	return func(o *Options) { o.gapRate, o.gapLen = rate, length }
}
