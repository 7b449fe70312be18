// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/axiscale/scale"
)

// NumberStyle selects how Number renders values.
type NumberStyle int

const (
	// Plain renders "12345.5".
	Plain NumberStyle = iota
	// Grouped renders "12,345.5".
	Grouped
	// SI renders "12.3k".
	SI
)

// String returns the style name.
func (s NumberStyle) String() string {
	switch s {
	case Grouped:
		return "grouped"
	case SI:
		return "si"
	}
	return "plain"
}

// ParseNumberStyle maps "plain", "grouped" or "si" to a NumberStyle; unknown
// names fall back to Plain.
func ParseNumberStyle(s string) NumberStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grouped", "comma":
		return Grouped
	case "si":
		return SI
	}
	return Plain
}

// Number formats numeric values.
//
// The number of decimals follows the step of the range (a step of 0.05
// prints two decimals), capped at MaxPrecision. Unit is appended verbatim.
type Number struct {
	Style        NumberStyle
	Unit         string
	MaxPrecision int
}

// Format implements scale.Formatter.
func (n Number) Format(v float64, r scale.Range) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return "∞"
		}
		return "-∞"
	}
	dec := scale.Decimals(r.Step)
	maxPrec := n.MaxPrecision
	if maxPrec <= 0 {
		maxPrec = scale.DefaultMaxPrecision
	}
	if dec > maxPrec {
		dec = maxPrec
	}
	v = scale.RoundTo(v, dec)
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	var s string
	switch n.Style {
	case Grouped:
		s = humanize.Commaf(v)
	case SI:
		val, prefix := humanize.ComputeSI(v)
		s = strconv.FormatFloat(scale.RoundTo(val, 2), 'f', -1, 64) + prefix
	default:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return s + n.Unit
}

// FormatNumber formats v with the Plain style for the given range.
func FormatNumber(v float64, r scale.Range) string {
	return Number{}.Format(v, r)
}
