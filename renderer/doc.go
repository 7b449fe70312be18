// Package renderer provides a headless implementation of the geometry an
// axis consumes from its renderer: the pixel length of the axis, the minimum
// spacing between grid lines and conversions between normalized positions
// and points.
//
// Linear lays the axis out along a straight line, horizontally (left to
// right) or vertically (bottom to top), optionally inverted. It draws
// nothing; tests and the command line tool use it to get pixel coordinates
// and a grid-line budget.
package renderer
