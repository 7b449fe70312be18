// SPDX-License-Identifier: MIT

package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/axiscale/breaks"
)

// ErrUnknownKind indicates a scale kind name that is not recognized.
var ErrUnknownKind = errors.New("scale: unknown scale kind")

// Kind tags the scale variant of an axis.
type Kind int

const (
	// Value is a continuous numeric scale (linear or logarithmic).
	Value Kind = iota
	// Date is a time scale over Unix milliseconds.
	Date
	// Category is a discrete scale over ordinal indices.
	Category
	// Duration is a numeric scale over a count of a base time unit.
	Duration
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Value:
		return "value"
	case Date:
		return "date"
	case Category:
		return "category"
	case Duration:
		return "duration"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps "value", "date", "category" or "duration" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value", "numeric", "number":
		return Value, nil
	case "date", "time", "datetime":
		return Date, nil
	case "category", "categories":
		return Category, nil
	case "duration":
		return Duration, nil
	}
	return Value, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Range is an adjusted scale extent.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// String renders the range as "[min, max] step s".
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g] step %g", r.Min, r.Max, r.Step)
}

// TickKind distinguishes ordinary grid ticks from the closing tick of a
// category axis.
type TickKind int

const (
	// GridTick is an ordinary grid line / label.
	GridTick TickKind = iota
	// ClosingTick closes the trailing cell of a category axis at index = length.
	ClosingTick
)

// String returns "grid" or "closing".
func (k TickKind) String() string {
	if k == ClosingTick {
		return "closing"
	}
	return "grid"
}

// Tick is one grid value produced by a Strategy.
//
// End is the end of the cell the tick opens (next grid value for dates,
// index+1 for categories); it equals Value when meaningless. Hidden ticks
// (Visible == false) are still emitted so that layout stays stable.
type Tick struct {
	Value   float64
	End     float64
	Label   string
	Visible bool
	Kind    TickKind
}

// Formatter renders a label for one domain value. r is the current zoomed
// range; its Step lets formatters pick a precision.
type Formatter interface {
	Format(v float64, r Range) string
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(v float64, r Range) string

// Format calls f.
func (f FormatterFunc) Format(v float64, r Range) string { return f(v, r) }

// Strategy is the variant-only math of one scale kind.
//
// Implementations must be deterministic and must not retain b.
type Strategy interface {
	Formatter

	// Kind reports the scale variant.
	Kind() Kind

	// AdjustMinMax turns raw extremes into nice bounds and a step.
	// difference is max-min after break compression; gridCount is the
	// target number of grid lines (>= 1). In strict mode the bounds are not
	// padded beyond the data.
	AdjustMinMax(min, max, difference float64, gridCount int, strict bool) (Range, error)

	// ValueToPosition maps v onto [0, 1] over r.
	ValueToPosition(v float64, r Range, b *breaks.Set) float64

	// PositionToValue is the inverse of ValueToPosition.
	PositionToValue(p float64, r Range, b *breaks.Set) float64

	// Grid lists tick values covering [from, to] with step r.Step.
	Grid(r Range, from, to float64, gridCount int, b *breaks.Set) []Tick
}

// DomainProvider is implemented by strategies that own their domain instead
// of folding it from series extremes (categories: [0, length]).
type DomainProvider interface {
	Domain() (min, max float64, ok bool)
}
