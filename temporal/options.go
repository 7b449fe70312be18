// SPDX-License-Identifier: MIT

package temporal

import (
	"fmt"
	"time"

	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/timeunit"
)

// Defaults.
const (
	// DefaultFirstDayOfWeek anchors weekly rounding.
	DefaultFirstDayOfWeek = time.Monday

	// DefaultMarkUnitChange enables period-change label patterns.
	DefaultMarkUnitChange = true
)

// DefaultBaseInterval is the data granularity assumed when none is given.
var DefaultBaseInterval = timeunit.Of(timeunit.Day, 1)

// DefaultDateFormats returns the strftime label pattern of each unit.
func DefaultDateFormats() map[timeunit.Unit]string {
	return map[timeunit.Unit]string{
		timeunit.Millisecond: ":%S.%L",
		timeunit.Second:      "%H:%M:%S",
		timeunit.Minute:      "%H:%M",
		timeunit.Hour:        "%H:%M",
		timeunit.Day:         "%d",
		timeunit.Week:        "%d",
		timeunit.Month:       "%b",
		timeunit.Year:        "%Y",
	}
}

// DefaultPeriodChangeDateFormats returns the patterns used for the first
// label after a rollover into the containing unit.
func DefaultPeriodChangeDateFormats() map[timeunit.Unit]string {
	return map[timeunit.Unit]string{
		timeunit.Millisecond: "%H:%M:%S.%L",
		timeunit.Second:      "%H:%M:%S",
		timeunit.Minute:      "%H:%M",
		timeunit.Hour:        "%b %d",
		timeunit.Day:         "%b %d",
		timeunit.Week:        "%b %d",
		timeunit.Month:       "%b %Y",
		timeunit.Year:        "%Y",
	}
}

// Options configure a temporal Strategy.
type Options struct {
	baseInterval   timeunit.Granularity
	gridIntervals  []timeunit.Granularity
	dateFormats    map[timeunit.Unit]string
	changeFormats  map[timeunit.Unit]string
	markUnitChange bool
	location       *time.Location
	firstDay       time.Weekday
	formatter      scale.Formatter
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a daily base interval in UTC with the default
// intervals and patterns.
func DefaultOptions() Options {
	return Options{
		baseInterval:   DefaultBaseInterval,
		gridIntervals:  DefaultGridIntervals(),
		dateFormats:    DefaultDateFormats(),
		changeFormats:  DefaultPeriodChangeDateFormats(),
		markUnitChange: DefaultMarkUnitChange,
		location:       time.UTC,
		firstDay:       DefaultFirstDayOfWeek,
	}
}

// WithBaseInterval sets the data granularity.
// Panics if g is invalid.
func WithBaseInterval(g timeunit.Granularity) Option {
	if err := g.Validate(); err != nil {
		panic(fmt.Sprintf("temporal: WithBaseInterval: %v", err))
	}
	return func(o *Options) { o.baseInterval = g }
}

// WithGridIntervals replaces the candidate grid granularities; they are
// sorted by duration.
// Panics if the list is empty or holds an invalid granularity.
func WithGridIntervals(gs ...timeunit.Granularity) Option {
	if len(gs) == 0 {
		panic(fmt.Sprintf("temporal: WithGridIntervals: %v", ErrNoIntervals))
	}
	for _, g := range gs {
		if err := g.Validate(); err != nil {
			panic(fmt.Sprintf("temporal: WithGridIntervals: %v", err))
		}
	}
	sorted := sortIntervals(gs)
	return func(o *Options) { o.gridIntervals = sorted }
}

// WithDateFormat overrides the label pattern of one unit.
func WithDateFormat(u timeunit.Unit, pattern string) Option {
	if !u.Valid() {
		panic(fmt.Sprintf("temporal: WithDateFormat: unit %v: %v", u, timeunit.ErrUnknownUnit))
	}
	return func(o *Options) { o.dateFormats[u] = pattern }
}

// WithPeriodChangeDateFormat overrides the period-change pattern of one unit.
func WithPeriodChangeDateFormat(u timeunit.Unit, pattern string) Option {
	if !u.Valid() {
		panic(fmt.Sprintf("temporal: WithPeriodChangeDateFormat: unit %v: %v", u, timeunit.ErrUnknownUnit))
	}
	return func(o *Options) { o.changeFormats[u] = pattern }
}

// WithMarkUnitChange toggles period-change patterns.
func WithMarkUnitChange(on bool) Option {
	return func(o *Options) { o.markUnitChange = on }
}

// WithLocation sets the zone grid instants are rounded in.
// Panics if loc is nil.
func WithLocation(loc *time.Location) Option {
	if loc == nil {
		panic("temporal: WithLocation(nil)")
	}
	return func(o *Options) { o.location = loc }
}

// WithFirstDayOfWeek anchors weekly rounding.
func WithFirstDayOfWeek(d time.Weekday) Option {
	if d < time.Sunday || d > time.Saturday {
		panic(fmt.Sprintf("temporal: WithFirstDayOfWeek(%d)", int(d)))
	}
	return func(o *Options) { o.firstDay = d }
}

// WithFormatter replaces pattern-based labels entirely.
// Panics if f is nil.
func WithFormatter(f scale.Formatter) Option {
	if f == nil {
		panic("temporal: WithFormatter(nil)")
	}
	return func(o *Options) { o.formatter = f }
}
