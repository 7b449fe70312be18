package timeunit_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/axiscale/timeunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	cases := map[string]timeunit.Unit{
		"ms":     timeunit.Millisecond,
		"Second": timeunit.Second,
		"min":    timeunit.Minute,
		"hours":  timeunit.Hour,
		"d":      timeunit.Day,
		"week":   timeunit.Week,
		"month":  timeunit.Month,
		"y":      timeunit.Year,
	}
	for in, want := range cases {
		got, err := timeunit.ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := timeunit.ParseUnit("fortnight")
	require.ErrorIs(t, err, timeunit.ErrUnknownUnit)
}

func TestGranularity_DurationAndValidate(t *testing.T) {
	assert.Equal(t, 5*60*1000.0, timeunit.Of(timeunit.Minute, 5).Duration())
	assert.Equal(t, 30*24*3600*1000.0, timeunit.Of(timeunit.Month, 1).Duration())
	assert.Equal(t, "2 day", timeunit.Of(timeunit.Day, 2).String())

	require.NoError(t, timeunit.Of(timeunit.Hour, 3).Validate())
	require.ErrorIs(t, timeunit.Of(timeunit.Hour, 0).Validate(), timeunit.ErrBadCount)
	require.ErrorIs(t, timeunit.Of(timeunit.Unit(42), 1).Validate(), timeunit.ErrUnknownUnit)
}

func TestRound(t *testing.T) {
	ts := time.Date(2024, time.March, 14, 10, 37, 42, 123456789, time.UTC) // Thursday

	cases := []struct {
		g    timeunit.Granularity
		want time.Time
	}{
		{timeunit.Of(timeunit.Millisecond, 50), time.Date(2024, 3, 14, 10, 37, 42, 100*int(time.Millisecond), time.UTC)},
		{timeunit.Of(timeunit.Second, 10), time.Date(2024, 3, 14, 10, 37, 40, 0, time.UTC)},
		{timeunit.Of(timeunit.Minute, 5), time.Date(2024, 3, 14, 10, 35, 0, 0, time.UTC)},
		{timeunit.Of(timeunit.Hour, 6), time.Date(2024, 3, 14, 6, 0, 0, 0, time.UTC)},
		{timeunit.Of(timeunit.Day, 1), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{timeunit.Of(timeunit.Day, 5), time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{timeunit.Of(timeunit.Week, 1), time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{timeunit.Of(timeunit.Month, 3), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{timeunit.Of(timeunit.Year, 10), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := timeunit.Round(ts, c.g, time.Monday)
		assert.True(t, c.want.Equal(got), "%v: got %v want %v", c.g, got, c.want)
	}
}

func TestAddAndCheckChange(t *testing.T) {
	jan31 := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	feb1 := timeunit.Add(jan31, timeunit.Of(timeunit.Day, 1))
	assert.Equal(t, time.February, feb1.Month())
	assert.True(t, timeunit.CheckChange(jan31, feb1, timeunit.Month, time.Monday))
	assert.False(t, timeunit.CheckChange(jan31, feb1, timeunit.Year, time.Monday))

	assert.Equal(t, 2025, timeunit.Add(jan31, timeunit.Of(timeunit.Year, 2)).Year())
	assert.Equal(t, 90*time.Minute, timeunit.Add(jan31, timeunit.Of(timeunit.Minute, 90)).Sub(jan31))
}

func TestMillisRoundTrip(t *testing.T) {
	ts := time.Date(2021, time.July, 4, 12, 0, 0, 250*int(time.Millisecond), time.UTC)
	ms := timeunit.Millis(ts)
	assert.True(t, ts.Equal(timeunit.FromMillis(ms, nil)))
	assert.Equal(t, timeunit.Year, timeunit.Month.Next())
	assert.Equal(t, timeunit.Month, timeunit.Week.Next())
}
