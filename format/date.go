// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/axiscale/scale"
	"github.com/katalvlaran/axiscale/timeunit"
	"github.com/tebeka/strftime"
)

// DefaultDatePattern is used by Date when Pattern is empty.
const DefaultDatePattern = "%Y-%m-%d %H:%M:%S"

// FormatDate renders Unix milliseconds with a strftime pattern in loc (UTC
// when nil). %L expands to the zero-padded millisecond of the second.
// An invalid pattern falls back to RFC 3339.
func FormatDate(pattern string, ms float64, loc *time.Location) string {
	t := timeunit.FromMillis(ms, loc)
	if strings.Contains(pattern, "%L") {
		pattern = strings.ReplaceAll(pattern, "%L", fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)))
	}
	s, err := strftime.Format(pattern, t)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	return s
}

// Date formats Unix milliseconds with a fixed strftime pattern.
type Date struct {
	Pattern  string
	Location *time.Location
}

// Format implements scale.Formatter.
func (d Date) Format(v float64, _ scale.Range) string {
	p := d.Pattern
	if p == "" {
		p = DefaultDatePattern
	}
	return FormatDate(p, v, d.Location)
}
