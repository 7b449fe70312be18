// SPDX-License-Identifier: MIT

package category

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/axiscale/breaks"
	"github.com/katalvlaran/axiscale/scale"
)

// Sentinel errors for category management.
var (
	// ErrDuplicateCategory indicates a category name already present.
	ErrDuplicateCategory = errors.New("category: duplicate category")

	// ErrUnknownCategory indicates a lookup of a name that is not registered.
	ErrUnknownCategory = errors.New("category: unknown category")

	// ErrLocation indicates a start/end location outside [0, 1].
	ErrLocation = errors.New("category: location must be within [0, 1]")
)

// Options configure a category Strategy.
type Options struct {
	categories    []string
	startLocation float64
	endLocation   float64
	formatter     scale.Formatter
}

// Option mutates Options.
type Option func(*Options)

// WithCategories seeds the ordered category list. Repeated names after the
// first occurrence are dropped; use SetCategories to have them reported.
func WithCategories(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(o *Options) { o.categories = cp }
}

// WithLocations sets how much of the first and last cell is visible.
// Panics if either value is outside [0, 1].
func WithLocations(start, end float64) Option {
	if err := checkLocations(start, end); err != nil {
		panic(fmt.Sprintf("category: WithLocations(%g, %g): %v", start, end, err))
	}
	return func(o *Options) { o.startLocation, o.endLocation = start, end }
}

// WithFormatter replaces the category-name labels.
// Panics if f is nil.
func WithFormatter(f scale.Formatter) Option {
	if f == nil {
		panic("category: WithFormatter(nil)")
	}
	return func(o *Options) { o.formatter = f }
}

// Strategy is the category scale.Strategy.
type Strategy struct {
	names         []string
	index         map[string]int
	startLocation float64
	endLocation   float64
	formatter     scale.Formatter
}

// New returns a category strategy with full first and last cells.
func New(opts ...Option) *Strategy {
	o := Options{startLocation: 0, endLocation: 1}
	for _, fn := range opts {
		fn(&o)
	}
	s := &Strategy{
		index:         make(map[string]int),
		startLocation: o.startLocation,
		endLocation:   o.endLocation,
		formatter:     o.formatter,
	}
	for _, n := range o.categories {
		_, _ = s.AddCategory(n)
	}

	return s
}

// Kind implements scale.Strategy.
func (s *Strategy) Kind() scale.Kind { return scale.Category }

// Len returns the number of categories.
func (s *Strategy) Len() int { return len(s.names) }

// Categories returns a copy of the ordered names.
func (s *Strategy) Categories() []string { return append([]string(nil), s.names...) }

// SetCategories replaces all categories. On a duplicate nothing changes.
func (s *Strategy) SetCategories(names []string) error {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := idx[n]; dup {
			return fmt.Errorf("%q: %w", n, ErrDuplicateCategory)
		}
		idx[n] = i
	}
	s.names = append([]string(nil), names...)
	s.index = idx

	return nil
}

// AddCategory appends a category and returns its index.
func (s *Strategy) AddCategory(name string) (int, error) {
	if _, dup := s.index[name]; dup {
		return -1, fmt.Errorf("%q: %w", name, ErrDuplicateCategory)
	}
	s.names = append(s.names, name)
	s.index[name] = len(s.names) - 1

	return len(s.names) - 1, nil
}

// Index returns the ordinal of name.
func (s *Strategy) Index(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownCategory)
	}
	return i, nil
}

// Category returns the name at index i.
func (s *Strategy) Category(i int) (string, bool) {
	if i < 0 || i >= len(s.names) {
		return "", false
	}
	return s.names[i], true
}

// StartLocation returns the visible fraction offset of the first cell.
func (s *Strategy) StartLocation() float64 { return s.startLocation }

// EndLocation returns the visible fraction of the last cell.
func (s *Strategy) EndLocation() float64 { return s.endLocation }

// SetLocations updates both locations.
func (s *Strategy) SetLocations(start, end float64) error {
	if err := checkLocations(start, end); err != nil {
		return err
	}
	s.startLocation, s.endLocation = start, end
	return nil
}

// Domain implements scale.DomainProvider: [0, Len()].
func (s *Strategy) Domain() (min, max float64, ok bool) {
	return 0, float64(len(s.names)), len(s.names) > 0
}

// AdjustMinMax implements scale.Strategy. Bounds are kept (they are cell
// boundaries already); the step is the label frequency.
func (s *Strategy) AdjustMinMax(min, max, difference float64, gridCount int, strict bool) (scale.Range, error) {
	if min > max {
		min, max = max, min
	}
	if max <= min {
		max = min + 1
	}
	return scale.Range{Min: min, Max: max, Step: float64(Frequency(min, max, gridCount))}, nil
}

// Frequency returns max(1, ceil((to-from)/gridCount)).
func Frequency(from, to float64, gridCount int) int {
	if gridCount < 1 {
		gridCount = 1
	}
	f := math.Ceil(math.Abs(to-from) / float64(gridCount))
	if f < 1 || math.IsNaN(f) {
		return 1
	}
	return int(f)
}

// effective returns the denominator of the position formula.
func (s *Strategy) effective(r scale.Range, b *breaks.Set) float64 {
	return b.AdjustDifference(r.Min, r.Max) - s.startLocation - (1 - s.endLocation)
}

// ValueToPosition implements scale.Strategy; v is index+location.
func (s *Strategy) ValueToPosition(v float64, r scale.Range, b *breaks.Set) float64 {
	d := s.effective(r, b)
	if d == 0 {
		return 0
	}
	return (b.Compress(v, r.Min, r.Max) - s.startLocation) / d
}

// PositionToValue implements scale.Strategy.
func (s *Strategy) PositionToValue(p float64, r scale.Range, b *breaks.Set) float64 {
	return b.Expand(p*s.effective(r, b)+s.startLocation, r.Min, r.Max)
}

// IndexToPosition returns the position of index+location.
func (s *Strategy) IndexToPosition(index int, location float64, r scale.Range, b *breaks.Set) float64 {
	return s.ValueToPosition(float64(index)+location, r, b)
}

// PositionToIndex returns the index whose cell contains p, clamped to
// [0, Len()-1]. With no categories it returns -1.
func (s *Strategy) PositionToIndex(p float64, r scale.Range, b *breaks.Set) int {
	if len(s.names) == 0 {
		return -1
	}
	v := s.PositionToValue(p, r, b)
	if math.IsNaN(v) {
		return 0
	}
	i := int(math.Floor(v))
	if i < 0 {
		return 0
	}
	if i >= len(s.names) {
		return len(s.names) - 1
	}
	return i
}

// VisibleMask marks the indices of [first, last) that carry a visible label
// at the given frequency.
func VisibleMask(first, last, frequency int) *bitset.BitSet {
	if last < first {
		last = first
	}
	if frequency < 1 {
		frequency = 1
	}
	mask := bitset.New(uint(last + 1))
	start := first
	if rem := start % frequency; rem != 0 {
		start += frequency - rem
	}
	for i := start; i < last; i += frequency {
		mask.Set(uint(i))
	}
	return mask
}

// Grid implements scale.Strategy. from and to are zoomed domain values.
func (s *Strategy) Grid(r scale.Range, from, to float64, gridCount int, b *breaks.Set) []scale.Tick {
	n := len(s.names)
	if n == 0 {
		return nil
	}
	if from > to {
		from, to = to, from
	}
	first := int(math.Max(0, math.Floor(from)))
	last := int(math.Min(float64(n), math.Ceil(to)))
	if last <= first {
		return nil
	}

	freq := Frequency(from, to, gridCount)
	mask := VisibleMask(first, last, freq)
	lr := scale.Range{Min: r.Min, Max: r.Max, Step: float64(freq)}

	ticks := make([]scale.Tick, 0, last-first+1)
	for i := first; i < last; i++ {
		if b.ContainsStrict(float64(i)) {
			continue
		}
		ticks = append(ticks, scale.Tick{
			Value:   float64(i),
			End:     float64(i + 1),
			Label:   s.Format(float64(i), lr),
			Visible: mask.Test(uint(i)),
			Kind:    scale.GridTick,
		})
	}
	if last == n {
		ticks = append(ticks, scale.Tick{
			Value:   float64(n),
			End:     float64(n),
			Visible: true,
			Kind:    scale.ClosingTick,
		})
	}

	return ticks
}

// Format implements scale.Formatter: the name of the category whose cell
// contains v.
func (s *Strategy) Format(v float64, r scale.Range) string {
	if s.formatter != nil {
		return s.formatter.Format(v, r)
	}
	name, _ := s.Category(int(math.Floor(v)))
	return name
}

func checkLocations(start, end float64) error {
	if !(start >= 0 && start <= 1) || !(end >= 0 && end <= 1) {
		return fmt.Errorf("start %g end %g: %w", start, end, ErrLocation)
	}
	return nil
}
