// SPDX-License-Identifier: MIT

package breaks

import "math"

// AdjustDifference returns the apparent length of [min, max]: the naive span
// minus, for every break intersecting it, (end-start)·(1-BreakSize) over the
// intersected part.
//
// Example: break [10,20]@0.1 on [0,30] → 30 - 10·0.9 = 21.
func (s *Set) AdjustDifference(min, max float64) float64 {
	diff := max - min
	if s == nil || math.IsNaN(diff) {
		return diff
	}
	for _, b := range s.items {
		bs, be := b.adjustedStart, b.adjustedEnd
		if bs > max {
			break
		}
		if be < min {
			continue
		}
		bs, be = math.Max(bs, min), math.Min(be, max)
		diff -= (be - bs) * (1 - b.BreakSize)
	}
	return diff
}

// Compress returns the distance of v from min in compressed space.
//
// Breaks are walked in sorted order and the walk stops at the first break
// starting after v:
//   - a break entirely left of v shifts min forward by its compressed width;
//   - a break containing v scales the part of v inside it by BreakSize.
//
// Compress(max, min, max) == AdjustDifference(min, max).
func (s *Set) Compress(v, min, max float64) float64 {
	if s == nil {
		return v - min
	}
	shift := 0.0
	x := v
	for _, b := range s.items {
		bs, be := b.adjustedStart, b.adjustedEnd
		if v < bs {
			break
		}
		if bs > max || be < min {
			continue
		}
		bs, be = math.Max(bs, min), math.Min(be, max)
		switch {
		case v > be:
			shift += (be - bs) * (1 - b.BreakSize)
		case v >= bs:
			x = bs + (v-bs)*b.BreakSize
		}
		if v <= be {
			break
		}
	}
	return x - min - shift
}

// Expand is the inverse of Compress: it maps a compressed distance d from
// min back to a domain value. Inside a break of size 0 every distance maps to
// the break start.
func (s *Set) Expand(d, min, max float64) float64 {
	target := min + d
	if s == nil {
		return target
	}
	shift := 0.0
	for _, b := range s.items {
		bs, be := b.adjustedStart, b.adjustedEnd
		if bs > max || be < min {
			continue
		}
		bs, be = math.Max(bs, min), math.Min(be, max)
		vs := bs - shift
		if target < vs {
			break
		}
		ve := vs + (be-bs)*b.BreakSize
		if target <= ve {
			if b.BreakSize == 0 {
				return bs
			}
			return bs + (target-vs)/b.BreakSize
		}
		shift += (be - bs) * (1 - b.BreakSize)
	}
	return target + shift
}

// ValueToPosition maps v onto [0,1] over [min, max] honouring breaks.
// A zero apparent length maps everything to 0.
func (s *Set) ValueToPosition(v, min, max float64) float64 {
	diff := s.AdjustDifference(min, max)
	if diff == 0 || math.IsNaN(diff) {
		return 0
	}
	return s.Compress(v, min, max) / diff
}

// PositionToValue is the inverse of ValueToPosition.
func (s *Set) PositionToValue(p, min, max float64) float64 {
	diff := s.AdjustDifference(min, max)
	if math.IsNaN(diff) {
		return math.NaN()
	}
	return s.Expand(p*diff, min, max)
}
