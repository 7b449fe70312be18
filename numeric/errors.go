// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrNonPositiveLog indicates a logarithmic scale asked to represent a
	// value ≤ 0. It is a configuration error: the axis stays in error state
	// until its data or bounds change.
	ErrNonPositiveLog = errors.New("numeric: logarithmic scale requires values > 0")

	// ErrNonFinite indicates NaN or ±Inf extremes passed to AdjustMinMax.
	ErrNonFinite = errors.New("numeric: min and max must be finite")
)
