// Package breaks implements axis breaks: configured sub-ranges of a scale's
// domain that are drawn at a fraction (BreakSize) of their natural width.
//
// 🚀 What is a break?
//
//	A break over [10, 20] with BreakSize 0.1 on a [0, 30] axis hides 90% of
//	that range. The apparent scale length becomes
//
//	    30 - (20-10)·(1-0.1) = 21
//
//	values left of the break keep their place, values right of it slide
//	left by the compressed width, values inside it are squeezed by 0.1.
//
// ✨ Key pieces:
//   - Break  — user range (StartValue/EndValue, any order) plus the adjusted,
//     non-overlapping range produced by Set.Fix.
//   - Set    — a sorted collection owned by one axis. Every mutation re-runs
//     Fix on a snapshot and swaps the fresh slice in, so readers never see a
//     half-sorted collection.
//   - Compress / Expand — the linear-space arithmetic the scale strategies
//     build their value↔position conversions on.
//
// Invariant after Fix (tested for arbitrary input orderings and overlaps):
//
//	b[i].AdjustedStart() ≤ b[i].AdjustedEnd() ≤ b[i+1].AdjustedStart()
//
// Complexity:
//   - Fix: O(n log n) for the sort, O(n) for the overlap clamp.
//   - Compress/Expand/AdjustDifference: O(k) where k is the number of breaks
//     starting at or before the queried value (sorted short-circuit).
//   - Find: O(log n).
//
// A nil *Set behaves as an empty set, so strategies can be called without
// breaks.
package breaks
