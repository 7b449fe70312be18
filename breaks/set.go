// SPDX-License-Identifier: MIT
//
// set.go: the break collection of one axis.
//
// Purpose:
//   • Hold the user and generated breaks of an axis, addressable by ID.
//   • Keep them sorted by adjusted start with no two adjusted ranges overlapping.
//
// Contract:
//   • Every mutation (Add, Update, Remove, RemoveAuto) re-runs Fix before returning,
//     so AdjustedStart/AdjustedEnd always reflect the current membership.
//   • Fix copies breaks before adjusting them; Break values handed out earlier
//     never change underneath their holder.
//   • Raw StartValue/EndValue are never rewritten; only the adjusted bounds move.
//   • A nil *Set behaves as an empty set for every read.
//
// Complexity:
//   • Add/Update/Remove: O(n log n) (the fix-up sort); Get/Find: O(n).

package breaks

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

// Set is the sorted, non-overlapping break collection of one axis.
// It is not safe for concurrent mutation; the owning axis serializes access.
type Set struct {
	items []*Break
}

// -----------------------------------------------------------------------------
// Construction and CRUD.
// -----------------------------------------------------------------------------

// NewSet returns an empty Set, optionally seeded with breaks.
// Nil entries are skipped.
func NewSet(bs ...*Break) *Set {
	s := &Set{}
	for _, b := range bs {
		if b != nil {
			s.items = append(s.items, b)
		}
	}
	s.Fix()

	return s
}

// Len returns the number of breaks.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Add inserts b and re-fixes the collection.
func (s *Set) Add(b *Break) error {
	if b == nil {
		return ErrNilBreak
	}
	if err := validate(b.StartValue, b.EndValue, b.BreakSize); err != nil {
		return err
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if s.indexOf(b.ID) >= 0 {
		return fmt.Errorf("%s: %w", b.ID, ErrDuplicateID)
	}
	s.items = append(s.items, b)
	s.Fix()

	return nil
}

// Update replaces the raw bounds and size of the break with the given ID.
func (s *Set) Update(id uuid.UUID, start, end, size float64) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err := validate(start, end, size); err != nil {
		return err
	}
	next := *s.items[i]
	next.StartValue, next.EndValue, next.BreakSize = start, end, size
	s.items[i] = &next
	s.Fix()

	return nil
}

// Remove deletes the break with the given ID.
func (s *Set) Remove(id uuid.UUID) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	fresh := make([]*Break, 0, len(s.items)-1)
	fresh = append(fresh, s.items[:i]...)
	fresh = append(fresh, s.items[i+1:]...)
	s.items = fresh
	s.Fix()

	return nil
}

// RemoveAuto drops every break flagged Auto and returns how many were removed.
func (s *Set) RemoveAuto() int {
	if s == nil {
		return 0
	}
	fresh := make([]*Break, 0, len(s.items))
	for _, b := range s.items {
		if !b.Auto {
			fresh = append(fresh, b)
		}
	}
	removed := len(s.items) - len(fresh)
	s.items = fresh
	s.Fix()

	return removed
}

// Clear removes all breaks.
func (s *Set) Clear() { s.items = nil }

// -----------------------------------------------------------------------------
// Reads.
// -----------------------------------------------------------------------------

// Get returns a copy of the break with the given ID.
func (s *Set) Get(id uuid.UUID) (Break, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Break{}, false
	}
	return *s.items[i], true
}

// All returns copies of the breaks in adjusted order.
func (s *Set) All() []Break {
	if s == nil {
		return nil
	}
	out := make([]Break, len(s.items))
	for i, b := range s.items {
		out[i] = *b
	}
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	if s == nil {
		return &Set{}
	}
	c := &Set{items: make([]*Break, len(s.items))}
	for i, b := range s.items {
		cp := *b
		c.items[i] = &cp
	}
	return c
}

// -----------------------------------------------------------------------------
// Fix-up and lookup.
// -----------------------------------------------------------------------------

// Fix recomputes adjusted bounds for every break.
//
// Algorithm:
//  1. Snapshot the current breaks into fresh copies with
//     adjusted = (min(start,end), max(start,end)).
//  2. Stable-sort the copies by adjusted start.
//  3. Walk in order keeping the previous adjusted end: a start earlier than
//     it is clamped up to it, and so is an end that falls behind it.
//  4. Swap the fresh slice in.
//
// The original slice is never mutated while it is being traversed.
func (s *Set) Fix() {
	if s == nil || len(s.items) == 0 {
		return
	}
	fresh := make([]*Break, len(s.items))
	for i, b := range s.items {
		cp := *b
		cp.adjustedStart = math.Min(b.StartValue, b.EndValue)
		cp.adjustedEnd = math.Max(b.StartValue, b.EndValue)
		fresh[i] = &cp
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].adjustedStart < fresh[j].adjustedStart
	})

	prevEnd := fresh[0].adjustedStart
	for _, b := range fresh {
		if b.adjustedStart < prevEnd {
			b.adjustedStart = prevEnd
			if b.adjustedEnd < prevEnd {
				b.adjustedEnd = prevEnd
			}
		}
		prevEnd = b.adjustedEnd
	}
	s.items = fresh
}

// Find returns a copy of the break whose adjusted range contains v.
// Complexity: O(log n).
func (s *Set) Find(v float64) (Break, bool) {
	if s == nil || math.IsNaN(v) {
		return Break{}, false
	}
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i].adjustedEnd >= v })
	if i < len(s.items) && s.items[i].adjustedStart <= v {
		return *s.items[i], true
	}
	return Break{}, false
}

// Contains reports whether v lies inside any break.
func (s *Set) Contains(v float64) bool {
	_, ok := s.Find(v)
	return ok
}

// ContainsStrict reports whether v lies strictly inside a break, excluding
// its endpoints. Grid generation uses it so that break edges keep their ticks.
func (s *Set) ContainsStrict(v float64) bool {
	b, ok := s.Find(v)
	return ok && v > b.adjustedStart && v < b.adjustedEnd
}

// Transformed returns a snapshot whose adjusted bounds are mapped through fn,
// which must be monotonically increasing (e.g. math.Log10 for logarithmic
// scales). Breaks whose mapped bounds are not finite are dropped.
func (s *Set) Transformed(fn func(float64) float64) *Set {
	out := &Set{}
	if s == nil {
		return out
	}
	for _, b := range s.items {
		cp := *b
		cp.adjustedStart = fn(b.adjustedStart)
		cp.adjustedEnd = fn(b.adjustedEnd)
		if isNonFinite(cp.adjustedStart) || isNonFinite(cp.adjustedEnd) {
			continue
		}
		out.items = append(out.items, &cp)
	}
	return out
}

func (s *Set) indexOf(id uuid.UUID) int {
	if s == nil {
		return -1
	}
	for i, b := range s.items {
		if b.ID == id {
			return i
		}
	}
	return -1
}
