// SPDX-License-Identifier: MIT

package series

import "errors"

// Sentinel errors for generators and series construction.
var (
	// ErrLength indicates a non-positive sample count or mismatched slices.
	ErrLength = errors.New("series: invalid length")

	// ErrParam indicates a generator parameter outside its domain.
	ErrParam = errors.New("series: invalid parameter")
)
