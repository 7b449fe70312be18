// SPDX-License-Identifier: MIT

package timeunit

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Sentinel errors for unit parsing and granularity validation.
var (
	// ErrUnknownUnit indicates a unit name that is not one of the supported units.
	ErrUnknownUnit = errors.New("timeunit: unknown time unit")

	// ErrBadCount indicates a granularity count that is not positive.
	ErrBadCount = errors.New("timeunit: granularity count must be positive")
)

// Unit is a calendar time unit, ordered from the smallest to the largest.
type Unit int

const (
	// Millisecond is one thousandth of a second.
	Millisecond Unit = iota
	// Second unit.
	Second
	// Minute unit.
	Minute
	// Hour unit.
	Hour
	// Day is a calendar day in the location of the instant.
	Day
	// Week starts on a configurable weekday.
	Week
	// Month is a calendar month.
	Month
	// Year is a calendar year.
	Year
)

// Nominal unit lengths in milliseconds.
const (
	msSecond = 1000.0
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
	msMonth  = 30 * msDay
	msYear   = 365 * msDay
)

var unitNames = [...]string{"millisecond", "second", "minute", "hour", "day", "week", "month", "year"}

// String returns the lower-case unit name.
func (u Unit) String() string {
	if u < Millisecond || u > Year {
		return fmt.Sprintf("unit(%d)", int(u))
	}

	return unitNames[u]
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool { return u >= Millisecond && u <= Year }

// Millis returns the nominal length of one u in milliseconds.
func (u Unit) Millis() float64 {
	switch u {
	case Millisecond:
		return 1
	case Second:
		return msSecond
	case Minute:
		return msMinute
	case Hour:
		return msHour
	case Day:
		return msDay
	case Week:
		return msWeek
	case Month:
		return msMonth
	case Year:
		return msYear
	}

	return math.NaN()
}

// Next returns the unit that contains u, used to detect period rollovers
// (a new day for hours, a new month for days and weeks, and so on).
// Year is its own container.
func (u Unit) Next() Unit {
	switch u {
	case Millisecond:
		return Second
	case Second:
		return Minute
	case Minute:
		return Hour
	case Hour:
		return Day
	case Day, Week:
		return Month
	}

	return Year
}

// ParseUnit maps a unit name ("minute", "min", "h", "days", ...) to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "millisecond", "milliseconds", "ms":
		return Millisecond, nil
	case "second", "seconds", "sec", "s":
		return Second, nil
	case "minute", "minutes", "min", "m":
		return Minute, nil
	case "hour", "hours", "h":
		return Hour, nil
	case "day", "days", "d":
		return Day, nil
	case "week", "weeks", "w":
		return Week, nil
	case "month", "months", "mo":
		return Month, nil
	case "year", "years", "y":
		return Year, nil
	}

	return Millisecond, fmt.Errorf("%q: %w", s, ErrUnknownUnit)
}

// Granularity is a time unit together with a count, e.g. "5 minutes".
type Granularity struct {
	Unit  Unit
	Count int
}

// Of is shorthand for Granularity{Unit: u, Count: count}.
func Of(u Unit, count int) Granularity { return Granularity{Unit: u, Count: count} }

// Validate checks that the unit is defined and the count is positive.
func (g Granularity) Validate() error {
	if !g.Unit.Valid() {
		return fmt.Errorf("%v: %w", g.Unit, ErrUnknownUnit)
	}
	if g.Count < 1 {
		return fmt.Errorf("%d %v: %w", g.Count, g.Unit, ErrBadCount)
	}

	return nil
}

// Duration returns the nominal length of g in milliseconds.
func (g Granularity) Duration() float64 {
	return g.Unit.Millis() * float64(g.Count)
}

// String renders g as "5 minute".
func (g Granularity) String() string {
	return fmt.Sprintf("%d %s", g.Count, g.Unit)
}

// Millis converts t to Unix milliseconds.
func Millis(t time.Time) float64 {
	return float64(t.Unix())*1000 + float64(t.Nanosecond())/1e6
}

// FromMillis converts Unix milliseconds to a time in loc (UTC when loc is nil).
func FromMillis(ms float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	sec := math.Floor(ms / 1000)
	nsec := math.Round((ms - sec*1000) * 1e6)

	return time.Unix(int64(sec), int64(nsec)).In(loc)
}
