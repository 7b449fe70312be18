// SPDX-License-Identifier: MIT

package renderer

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for renderer construction.
var (
	// ErrLength indicates a non-positive or non-finite axis length.
	ErrLength = errors.New("renderer: axis length must be positive and finite")

	// ErrGridDistance indicates a non-positive minimum grid distance.
	ErrGridDistance = errors.New("renderer: min grid distance must be positive")
)

// Defaults for Linear.
const (
	DefaultLength          = 600.0
	DefaultMinGridDistance = 120.0
)

// Point is a pixel location.
type Point struct {
	X, Y float64
}

// String renders the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Orientation selects the direction positions grow in.
type Orientation int

const (
	// Horizontal grows from left to right along X.
	Horizontal Orientation = iota
	// Vertical grows from bottom to top, i.e. towards smaller Y.
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "horizontal", "h", "x":
		return Horizontal, nil
	case "vertical", "v", "y":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("renderer: unknown orientation %q", s)
}

// Options configure a Linear renderer.
type Options struct {
	length          float64
	minGridDistance float64
	orientation     Orientation
	inversed        bool
	origin          Point
}

// Option mutates Options.
type Option func(*Options)

// WithLength sets the axis length in pixels.
// Panics if px is not positive and finite.
func WithLength(px float64) Option {
	if !(px > 0) || math.IsInf(px, 0) {
		panic(fmt.Sprintf("renderer: WithLength(%g): %v", px, ErrLength))
	}
	return func(o *Options) { o.length = px }
}

// WithMinGridDistance sets the minimum pixel gap between grid lines.
// Panics if px is not positive.
func WithMinGridDistance(px float64) Option {
	if !(px > 0) {
		panic(fmt.Sprintf("renderer: WithMinGridDistance(%g): %v", px, ErrGridDistance))
	}
	return func(o *Options) { o.minGridDistance = px }
}

// WithOrientation sets horizontal or vertical layout.
func WithOrientation(or Orientation) Option {
	return func(o *Options) { o.orientation = or }
}

// WithInversed flips the direction positions grow in.
func WithInversed(on bool) Option {
	return func(o *Options) { o.inversed = on }
}

// WithOrigin places the axis start (before inversion) at p.
func WithOrigin(p Point) Option {
	return func(o *Options) { o.origin = p }
}

// Linear is a straight-line axis layout.
type Linear struct {
	opts Options
}

// NewLinear returns a horizontal, non-inverted 600px renderer with a 120px
// minimum grid distance unless configured otherwise.
func NewLinear(opts ...Option) *Linear {
	o := Options{
		length:          DefaultLength,
		minGridDistance: DefaultMinGridDistance,
		orientation:     Horizontal,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &Linear{opts: o}
}

// AxisLength returns the length in pixels.
func (l *Linear) AxisLength() float64 { return l.opts.length }

// MinGridDistance returns the minimum pixel gap between grid lines.
func (l *Linear) MinGridDistance() float64 { return l.opts.minGridDistance }

// Orientation returns the layout direction.
func (l *Linear) Orientation() Orientation { return l.opts.orientation }

// Inversed reports whether the direction is flipped.
func (l *Linear) Inversed() bool { return l.opts.inversed }

// PositionToCoordinate returns the pixel offset of pos from the axis start.
// Vertical axes grow upwards, so offsets are measured from the bottom.
func (l *Linear) PositionToCoordinate(pos float64) float64 {
	if l.opts.inversed {
		pos = 1 - pos
	}
	return pos * l.opts.length
}

// PositionToPoint returns the pixel location of pos.
func (l *Linear) PositionToPoint(pos float64) Point {
	c := l.PositionToCoordinate(pos)
	if l.opts.orientation == Vertical {
		return Point{X: l.opts.origin.X, Y: l.opts.origin.Y + l.opts.length - c}
	}
	return Point{X: l.opts.origin.X + c, Y: l.opts.origin.Y}
}

// PointToPosition is the inverse of PositionToPoint; the coordinate across
// the axis is ignored.
func (l *Linear) PointToPosition(p Point) float64 {
	var c float64
	if l.opts.orientation == Vertical {
		c = l.opts.origin.Y + l.opts.length - p.Y
	} else {
		c = p.X - l.opts.origin.X
	}
	pos := c / l.opts.length
	if l.opts.inversed {
		pos = 1 - pos
	}
	return pos
}

// GridCount returns how many grid lines fit: max(1, round(length/minGridDistance)).
func (l *Linear) GridCount() int {
	n := int(math.Round(l.opts.length / l.opts.minGridDistance))
	if n < 1 {
		return 1
	}
	return n
}
