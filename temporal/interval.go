// SPDX-License-Identifier: MIT

package temporal

import (
	"math"
	"sort"

	"github.com/katalvlaran/axiscale/timeunit"
)

// DefaultGridIntervals returns the candidate grid granularities, finest first.
func DefaultGridIntervals() []timeunit.Granularity {
	out := make([]timeunit.Granularity, 0, 48)
	add := func(u timeunit.Unit, counts ...int) {
		for _, c := range counts {
			out = append(out, timeunit.Of(u, c))
		}
	}
	add(timeunit.Millisecond, 1, 5, 10, 50, 100, 500)
	add(timeunit.Second, 1, 5, 10, 30)
	add(timeunit.Minute, 1, 5, 10, 15, 30)
	add(timeunit.Hour, 1, 3, 6, 12)
	add(timeunit.Day, 1, 2, 3, 4, 5)
	add(timeunit.Week, 1)
	add(timeunit.Month, 1, 2, 3, 6)
	add(timeunit.Year, 1, 2, 5, 10, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 100000)

	return out
}

// ChooseInterval returns the granularity to draw a duration (ms) with at
// most gridCount intervals, starting the search at intervals[index].
//
// Walk, for each candidate from index on:
//   - at or past the last candidate: return the last one (saturation);
//   - duration shorter than the candidate and index > 0: back off to the
//     previous candidate;
//   - ceil(duration/candidate) ≤ gridCount: accept;
//   - otherwise try the next candidate.
//
// intervals must be sorted by ascending duration. An empty list yields one
// millisecond.
//
// Complexity: O(len(intervals)).
func ChooseInterval(intervals []timeunit.Granularity, index int, duration float64, gridCount int) timeunit.Granularity {
	if len(intervals) == 0 {
		return timeunit.Of(timeunit.Millisecond, 1)
	}
	if gridCount < 1 {
		gridCount = 1
	}
	if index < 0 {
		index = 0
	}
	last := len(intervals) - 1
	duration = math.Abs(duration)

	for ; ; index++ {
		if index >= last {
			return intervals[last]
		}
		d := intervals[index].Duration()
		if duration < d && index > 0 {
			return intervals[index-1]
		}
		if math.Ceil(duration/d) <= float64(gridCount) {
			return intervals[index]
		}
	}
}

// DetectBaseInterval guesses the data granularity from sorted or unsorted
// timestamps (ms): the largest candidate whose nominal duration does not
// exceed the smallest positive spacing by more than 10%. Calendar units vary
// in length (February is shorter than the nominal 30-day month), hence the
// tolerance. With fewer than two distinct timestamps ok is false.
func DetectBaseInterval(timestamps []float64, candidates []timeunit.Granularity) (g timeunit.Granularity, ok bool) {
	if len(candidates) == 0 {
		return timeunit.Granularity{}, false
	}
	ts := make([]float64, 0, len(timestamps))
	for _, v := range timestamps {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			ts = append(ts, v)
		}
	}
	sort.Float64s(ts)
	spacing := math.Inf(1)
	for i := 1; i < len(ts); i++ {
		if d := ts[i] - ts[i-1]; d > 0 && d < spacing {
			spacing = d
		}
	}
	if math.IsInf(spacing, 1) {
		return timeunit.Granularity{}, false
	}

	g = candidates[0]
	for _, c := range candidates {
		if c.Duration() <= spacing*1.1 {
			g = c
		}
	}
	return g, true
}

// sortIntervals orders intervals by nominal duration, keeping the first of
// equal durations.
func sortIntervals(in []timeunit.Granularity) []timeunit.Granularity {
	out := make([]timeunit.Granularity, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Duration() < out[j].Duration() })

	return out
}
