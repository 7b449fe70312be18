// SPDX-License-Identifier: MIT

package axis

import (
	"unicode/utf8"

	"github.com/katalvlaran/axiscale/scale"
)

// DataItem is one materialized grid line or label of the current pass.
type DataItem struct {
	// Value is the domain value of the grid line; End closes its cell.
	Value, End float64

	// Position is the position on the whole scale, ZoomedPosition the one
	// inside the zoom window (outside [0,1] when off screen).
	Position, ZoomedPosition float64

	// Coordinate is the renderer pixel offset of ZoomedPosition; 0 without
	// a renderer.
	Coordinate float64

	Label   string
	Visible bool
	Kind    scale.TickKind
}

// acquire takes an item from the pool or allocates one.
func (a *Axis) acquire() *DataItem {
	if n := len(a.pool); n > 0 {
		it := a.pool[n-1]
		a.pool = a.pool[:n-1]
		return it
	}
	return &DataItem{}
}

// releaseItems returns every active item to the pool.
func (a *Axis) releaseItems() {
	a.pool = append(a.pool, a.items...)
	for i := range a.items {
		a.items[i] = nil
	}
	a.items = a.items[:0]
}

func (a *Axis) format(v float64, r scale.Range) string {
	if a.opts.formatter != nil {
		return a.opts.formatter.Format(v, r)
	}
	return a.strategy.Format(v, r)
}

// rebuildItems materializes the grid of the zoomed range into pooled items.
func (a *Axis) rebuildItems() {
	r := scale.Range{Min: a.current.Min, Max: a.current.Max, Step: a.step}
	ticks := a.strategy.Grid(r, a.minZoomed, a.maxZoomed, a.gridCount, a.breaks)

	a.releaseItems()
	for _, tk := range ticks {
		it := a.acquire()
		pos := a.strategy.ValueToPosition(tk.Value, a.current, a.breaks)
		*it = DataItem{
			Value:          tk.Value,
			End:            tk.End,
			Position:       pos,
			ZoomedPosition: a.window.ToZoomed(pos),
			Label:          tk.Label,
			Visible:        tk.Visible,
			Kind:           tk.Kind,
		}
		if a.opts.formatter != nil && tk.Kind == scale.GridTick {
			it.Label = a.opts.formatter.Format(tk.Value, r)
		}
		if a.opts.renderer != nil {
			it.Coordinate = a.opts.renderer.PositionToCoordinate(it.ZoomedPosition)
		}
		a.items = append(a.items, it)
	}

	a.longest = a.format(a.minZoomed, r)
	if s := a.format(a.maxZoomed, r); longer(s, a.longest) {
		a.longest = s
	}
	for _, it := range a.items {
		if longer(it.Label, a.longest) {
			a.longest = it.Label
		}
	}
}

func longer(s, than string) bool {
	return utf8.RuneCountInString(s) > utf8.RuneCountInString(than)
}

// DataItems returns copies of the items of the current pass.
func (a *Axis) DataItems() ([]DataItem, error) {
	var out []DataItem
	err := a.run(func() error {
		if err := a.validate(); err != nil {
			return err
		}
		out = make([]DataItem, len(a.items))
		for i, it := range a.items {
			out[i] = *it
		}
		return nil
	})
	return out, err
}

// LongestLabel returns the longest formatted label among the grid labels
// and the zoomed bounds, so layout can reserve room for it.
func (a *Axis) LongestLabel() string {
	var s string
	_ = a.run(func() error {
		if err := a.validate(); err != nil {
			return err
		}
		s = a.longest
		return nil
	})
	return s
}
