// SPDX-License-Identifier: MIT

package breaks

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Sentinel errors for break construction and collection management.
var (
	// ErrNonFinite indicates a NaN or ±Inf start/end value.
	ErrNonFinite = errors.New("breaks: start and end must be finite")

	// ErrBreakSize indicates a BreakSize outside [0, 1].
	ErrBreakSize = errors.New("breaks: break size must be within [0, 1]")

	// ErrNilBreak indicates a nil *Break passed to a Set.
	ErrNilBreak = errors.New("breaks: break is nil")

	// ErrNotFound indicates that no break with the requested ID exists in the Set.
	ErrNotFound = errors.New("breaks: break not found")

	// ErrDuplicateID indicates an Add with an ID already present in the Set.
	ErrDuplicateID = errors.New("breaks: duplicate break id")
)

// DefaultSize is the compression factor used by NewDefault: 1% of the
// natural width stays visible.
const DefaultSize = 0.01

// Break is a compressed sub-range of an axis domain.
//
// StartValue and EndValue are the user-supplied bounds in any order.
// BreakSize is the fraction of the natural width kept on screen: 0 hides the
// range entirely, 1 leaves it uncompressed. Auto marks breaks generated by the
// axis itself (empty-period detection); those are regenerated on every data pass.
//
// The adjusted bounds are only meaningful once the break has been fixed by a Set.
type Break struct {
	ID         uuid.UUID
	StartValue float64
	EndValue   float64
	BreakSize  float64
	Auto       bool

	adjustedStart float64
	adjustedEnd   float64
}

// New validates the bounds and size and returns a break with a fresh ID.
// Inverted bounds are accepted; Set.Fix swaps them.
func New(start, end, size float64) (*Break, error) {
	if err := validate(start, end, size); err != nil {
		return nil, err
	}
	lo, hi := math.Min(start, end), math.Max(start, end)

	return &Break{
		ID:            uuid.New(),
		StartValue:    start,
		EndValue:      end,
		BreakSize:     size,
		adjustedStart: lo,
		adjustedEnd:   hi,
	}, nil
}

// NewDefault is New with DefaultSize.
func NewDefault(start, end float64) (*Break, error) {
	return New(start, end, DefaultSize)
}

// AdjustedStart returns the lower bound after swap and overlap resolution.
func (b *Break) AdjustedStart() float64 { return b.adjustedStart }

// AdjustedEnd returns the upper bound after swap and overlap resolution.
func (b *Break) AdjustedEnd() float64 { return b.adjustedEnd }

// Width returns the adjusted natural width of the break.
func (b *Break) Width() float64 { return b.adjustedEnd - b.adjustedStart }

// Contains reports whether v lies within the adjusted range (inclusive).
func (b *Break) Contains(v float64) bool {
	return v >= b.adjustedStart && v <= b.adjustedEnd
}

// String renders the adjusted range and size.
func (b *Break) String() string {
	return fmt.Sprintf("break[%g..%g]@%g", b.adjustedStart, b.adjustedEnd, b.BreakSize)
}

func validate(start, end, size float64) error {
	if isNonFinite(start) || isNonFinite(end) {
		return ErrNonFinite
	}
	if math.IsNaN(size) || size < 0 || size > 1 {
		return fmt.Errorf("size %g: %w", size, ErrBreakSize)
	}

	return nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
