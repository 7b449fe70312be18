// SPDX-License-Identifier: MIT

package timeunit

import "time"

// Round floors t to the start of the g period that contains it, in t's location.
//
// Sub-day units floor the corresponding clock field to a multiple of g.Count
// (10:37 with {Minute,5} → 10:35). Days floor the day of month
// ((day-1)/count*count+1), weeks go back to firstDay, months floor the month
// number, years floor the year number. Counts below one are treated as one.
//
// Complexity: O(1).
func Round(t time.Time, g Granularity, firstDay time.Weekday) time.Time {
	count := g.Count
	if count < 1 {
		count = 1
	}
	loc := t.Location()
	y, mo, d := t.Date()
	h, mi, s := t.Clock()

	switch g.Unit {
	case Millisecond:
		ms := t.Nanosecond() / int(time.Millisecond)
		ms = ms / count * count
		return time.Date(y, mo, d, h, mi, s, ms*int(time.Millisecond), loc)
	case Second:
		return time.Date(y, mo, d, h, mi, s/count*count, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi/count*count, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h/count*count, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, (d-1)/count*count+1, 0, 0, 0, 0, loc)
	case Week:
		back := (int(t.Weekday()) - int(firstDay) + 7) % 7
		return time.Date(y, mo, d-back, 0, 0, 0, 0, loc)
	case Month:
		m := (int(mo)-1)/count*count + 1
		return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, loc)
	case Year:
		yy := floorDiv(y, count) * count
		return time.Date(yy, time.January, 1, 0, 0, 0, 0, loc)
	}

	return t
}

// Add advances t by g. Days and larger use calendar arithmetic so that DST
// shifts and month lengths are honoured.
func Add(t time.Time, g Granularity) time.Time {
	count := g.Count
	if count < 1 {
		count = 1
	}
	switch g.Unit {
	case Millisecond:
		return t.Add(time.Duration(count) * time.Millisecond)
	case Second:
		return t.Add(time.Duration(count) * time.Second)
	case Minute:
		return t.Add(time.Duration(count) * time.Minute)
	case Hour:
		return t.Add(time.Duration(count) * time.Hour)
	case Day:
		return t.AddDate(0, 0, count)
	case Week:
		return t.AddDate(0, 0, 7*count)
	case Month:
		return t.AddDate(0, count, 0)
	case Year:
		return t.AddDate(count, 0, 0)
	}

	return t
}

// CheckChange reports whether a and b fall into different periods of u,
// e.g. CheckChange(Jan 31, Feb 1, Month) is true.
func CheckChange(a, b time.Time, u Unit, firstDay time.Weekday) bool {
	g := Granularity{Unit: u, Count: 1}
	return !Round(a, g, firstDay).Equal(Round(b.In(a.Location()), g, firstDay))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
