// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"

	"github.com/katalvlaran/axiscale/axis"
)

// Default axis names the series answer to.
const (
	DefaultXAxis = axis.DefaultName
	DefaultYAxis = "y"
)

// XY is a series of (x, y) pairs.
type XY struct {
	Name         string
	X, Y         []float64
	XAxis, YAxis string
	Ignore       bool
}

// NewXY pairs x and y, bound to the default axis names.
func NewXY(name string, x, y []float64) (*XY, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("xy %q: %d x vs %d y: %w", name, len(x), len(y), ErrLength)
	}
	return &XY{Name: name, X: x, Y: y, XAxis: DefaultXAxis, YAxis: DefaultYAxis}, nil
}

// column returns the values the series exposes along ref.
func (s *XY) column(ref axis.Ref) ([]float64, bool) {
	switch ref.Name {
	case s.XAxis:
		return s.X, true
	case s.YAxis:
		return s.Y, true
	}
	return nil, false
}

// MinMax implements axis.Series.
func (s *XY) MinMax(ref axis.Ref) (min, max float64, ok bool) {
	col, ok := s.column(ref)
	if !ok {
		return 0, 0, false
	}
	return Extremes(col)
}

// IgnoreMinMax implements axis.Series.
func (s *XY) IgnoreMinMax() bool { return s.Ignore }

// Values implements axis.ValueSeries.
func (s *XY) Values(ref axis.Ref) []float64 {
	col, _ := s.column(ref)
	return col
}

// Candles is an OHLC series over timestamps.
type Candles struct {
	Name                   string
	Time                   []float64
	Open, High, Low, Close []float64
	TimeAxis, PriceAxis    string
	Ignore                 bool
}

// NewCandles generates days of OHLC candles on dated timestamps.
func NewCandles(name string, days int, opts ...Option) (*Candles, error) {
	ts, err := Dated(days, opts...)
	if err != nil {
		return nil, err
	}
	open, high, low, close, err := OHLC(days, opts...)
	if err != nil {
		return nil, err
	}
	return &Candles{
		Name:      name,
		Time:      ts,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		TimeAxis:  DefaultXAxis,
		PriceAxis: DefaultYAxis,
	}, nil
}

// MinMax implements axis.Series: the time span along TimeAxis, the low/high
// envelope along PriceAxis.
func (c *Candles) MinMax(ref axis.Ref) (min, max float64, ok bool) {
	switch ref.Name {
	case c.TimeAxis:
		return Extremes(c.Time)
	case c.PriceAxis:
		lo, _, okLo := Extremes(c.Low)
		_, hi, okHi := Extremes(c.High)
		return lo, hi, okLo && okHi
	}
	return 0, 0, false
}

// IgnoreMinMax implements axis.Series.
func (c *Candles) IgnoreMinMax() bool { return c.Ignore }

// Values implements axis.ValueSeries; only the time axis exposes values.
func (c *Candles) Values(ref axis.Ref) []float64 {
	if ref.Name == c.TimeAxis {
		return c.Time
	}
	return nil
}

// Extremes returns the finite minimum and maximum of vs.
// ok is false when vs holds no finite value.
func Extremes(vs []float64) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		min, max = math.Min(min, v), math.Max(max, v)
	}
	if min > max {
		return 0, 0, false
	}
	return min, max, true
}
