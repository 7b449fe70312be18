// SPDX-License-Identifier: MIT

package temporal

import (
	"math"
	"sort"

	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/timeunit"
)

// MaxScanPeriods bounds the number of base periods EmptyPeriodBreaks visits.
const MaxScanPeriods = 1000000

// EmptyPeriodBreaks scans [min, max] at the base interval and returns one
// Auto break of the given size per contiguous run of periods holding no
// timestamp. A run is reported only once data follows it, so leading and
// trailing empty space never becomes a break.
//
// The break spans [first empty period start, next non-empty period start],
// which keeps the cells on both sides adjacent when size is 0.
//
// Complexity: O(p + n log n) for p scanned periods and n timestamps.
func (s *Strategy) EmptyPeriodBreaks(timestamps []float64, min, max, size float64) ([]*breaks.Break, error) {
	if min > max {
		min, max = max, min
	}
	ts := make([]float64, 0, len(timestamps))
	for _, v := range timestamps {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			ts = append(ts, v)
		}
	}
	if len(ts) == 0 {
		return nil, nil
	}
	sort.Float64s(ts)

	base := s.opts.baseInterval
	t := s.round(timeunit.FromMillis(min, s.opts.location), base)
	i := 0
	gapStart := math.NaN()
	seenData := false
	var out []*breaks.Break

	for n := 0; n < MaxScanPeriods; n++ {
		start := timeunit.Millis(t)
		if start >= max {
			break
		}
		next := s.advance(t, base)
		end := timeunit.Millis(next)

		for i < len(ts) && ts[i] < start {
			i++
		}
		has := i < len(ts) && ts[i] < end

		switch {
		case has && !math.IsNaN(gapStart):
			b, err := breaks.New(gapStart, start, size)
			if err != nil {
				return nil, err
			}
			b.Auto = true
			out = append(out, b)
			gapStart = math.NaN()
		case !has && seenData && math.IsNaN(gapStart):
			gapStart = start
		}
		if has {
			seenData = true
		}
		t = next
	}

	return out, nil
}
