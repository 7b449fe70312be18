// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/axiscale/breaks"
)

// AddBreak compresses [start, end] to size of its natural width and returns
// the new break's ID.
func (a *Axis) AddBreak(start, end, size float64) (uuid.UUID, error) {
	b, err := breaks.New(start, end, size)
	if err != nil {
		return uuid.Nil, fmt.Errorf("axis %q: %w", a.opts.name, err)
	}
	err = a.run(func() error {
		if err := a.breaks.Add(b); err != nil {
			return fmt.Errorf("axis %q: %w", a.opts.name, err)
		}
		a.invalidateData()
		return a.validate()
	})
	return b.ID, err
}

// UpdateBreak changes the bounds and size of the break with the given ID.
func (a *Axis) UpdateBreak(id uuid.UUID, start, end, size float64) error {
	return a.run(func() error {
		if err := a.breaks.Update(id, start, end, size); err != nil {
			return fmt.Errorf("axis %q: %w", a.opts.name, err)
		}
		a.invalidateData()
		return a.validate()
	})
}

// RemoveBreak deletes the break with the given ID.
func (a *Axis) RemoveBreak(id uuid.UUID) error {
	return a.run(func() error {
		if err := a.breaks.Remove(id); err != nil {
			return fmt.Errorf("axis %q: %w", a.opts.name, err)
		}
		a.invalidateData()
		return a.validate()
	})
}

// ClearBreaks removes every break. Empty-period breaks come back on the next
// data pass while skipping is enabled.
func (a *Axis) ClearBreaks() error {
	return a.reconfigure(a.breaks.Clear)
}

// Break returns a copy of the break with the given ID.
func (a *Axis) Break(id uuid.UUID) (breaks.Break, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.breaks.Get(id)
}

// Breaks returns copies of all breaks in adjusted order, including the
// generated empty-period ones.
func (a *Axis) Breaks() []breaks.Break {
	_ = a.Validate()
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.breaks.All()
}
