// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/timeunit"
)

// duration fields, largest first.
const (
	fDay = iota
	fHour
	fMinute
	fSecond
	fMilli
)

var (
	fieldMillis = [...]float64{86400000, 3600000, 60000, 1000, 1}
	fieldSuffix = [...]string{"d", "h", "min", "s", "ms"}
)

// fieldOf returns the largest field not exceeding ms.
func fieldOf(ms float64) int {
	for i, unit := range fieldMillis {
		if ms >= unit {
			return i
		}
	}
	return fMilli
}

// FormatDuration renders v (a count of base) for range r.
//
// The largest field shown follows the magnitude of r, the smallest follows
// r.Step:
//
//	one field      → "5d", "12min", "250ms"
//	several fields → "[Nd ]h:mm", "m:ss", "m:ss.SSS"
func FormatDuration(v float64, base timeunit.Unit, r scale.Range) string {
	if !scale.IsFinite(v) {
		return fmt.Sprint(v)
	}
	unit := base.Millis()
	if math.IsNaN(unit) {
		unit = 1
	}
	ms := math.Round(math.Abs(v) * unit)
	sign := ""
	if v < 0 && ms > 0 {
		sign = "-"
	}

	top := fieldOf(math.Max(math.Abs(r.Min), math.Abs(r.Max)) * unit)
	low := fieldOf(math.Abs(r.Step) * unit)
	if r.Step == 0 {
		low = top
	}
	if low < top {
		low = top
	}

	if top == low {
		return fmt.Sprintf("%s%d%s", sign, int64(ms/fieldMillis[top]), fieldSuffix[top])
	}

	var b strings.Builder
	b.WriteString(sign)
	rest := ms
	if top == fDay {
		days := math.Floor(rest / fieldMillis[fDay])
		rest -= days * fieldMillis[fDay]
		fmt.Fprintf(&b, "%dd ", int64(days))
	}

	start := top
	if start < fHour {
		start = fHour
	}
	if start > fMinute {
		start = fMinute
	}
	end := low
	if end < start+1 {
		end = start + 1
	}
	if end > fSecond {
		end = fSecond
	}

	for f := start; f <= end; f++ {
		n := math.Floor(rest / fieldMillis[f])
		rest -= n * fieldMillis[f]
		if f == start {
			fmt.Fprintf(&b, "%d", int64(n))
		} else {
			fmt.Fprintf(&b, ":%02d", int64(n))
		}
	}
	if low == fMilli {
		fmt.Fprintf(&b, ".%03d", int64(rest))
	}

	return b.String()
}

// Duration formats counts of a base time unit.
type Duration struct {
	Base timeunit.Unit
}

// Format implements scale.Formatter.
func (d Duration) Format(v float64, r scale.Range) string {
	return FormatDuration(v, d.Base, r)
}
