// Package category implements the discrete category scale.
//
// Categories are ordered; their ordinal index is the domain value. A
// category occupies the cell [i, i+1) and a value i+location addresses a
// point inside it (location 0.5 is the cell centre).
//
// StartLocation and EndLocation trim the first and last cells: with
// StartLocation 0.5 the axis starts at the centre of the first cell.
// Positions are
//
//	pos = (Compress(v) - startLocation) / (AdjustDifference - startLocation - (1 - endLocation))
//
// so breaks over index ranges compress cells the same way they compress
// numbers.
//
// Grid emits one tick per index of the visible range. Only indices divisible
// by the frequency max(1, ceil(visibleSpan / gridCount)) are visible; the
// others are still emitted, hidden, so that layout keeps a slot for them. A
// closing tick at index = length marks the trailing cell boundary.
package category
