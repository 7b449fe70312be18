// SPDX-License-Identifier: MIT

package axis

import (
	"errors"

	"github.com/katalvlaran/axiscale/breaks"
)

// Sentinel errors for axis operations.
var (
	// ErrNilStrategy indicates New was called without a scale strategy.
	ErrNilStrategy = errors.New("axis: strategy is nil")

	// ErrNilSeries indicates a nil series passed to AddSeries or RemoveSeries.
	ErrNilSeries = errors.New("axis: series is nil")

	// ErrKindMismatch indicates a conversion for a kind the axis does not have,
	// e.g. DateToPosition on a value axis.
	ErrKindMismatch = errors.New("axis: conversion does not match axis kind")

	// ErrUnknownCategory indicates a category name not present on the axis.
	ErrUnknownCategory = errors.New("axis: unknown category")

	// ErrInvalidZoom indicates NaN zoom bounds or a non-finite zoom target.
	ErrInvalidZoom = errors.New("axis: invalid zoom")

	// ErrBreakNotFound indicates a break ID not present on the axis.
	ErrBreakNotFound = breaks.ErrNotFound
)
