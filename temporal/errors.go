// SPDX-License-Identifier: MIT

package temporal

import "errors"

var (
	// ErrNonFinite indicates NaN or ±Inf extremes passed to AdjustMinMax.
	ErrNonFinite = errors.New("temporal: min and max must be finite")

	// ErrNoIntervals indicates an empty grid interval list.
	ErrNoIntervals = errors.New("temporal: grid interval list is empty")
)
