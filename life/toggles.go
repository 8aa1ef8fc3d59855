package life

import "uk.ac.bris.cs/torusoflife/util"

// Toggles is the ordered list of cells that must flip to reach the next
// generation. It lives for a single step.
type Toggles struct {
	cells []util.Cell
}

// Add appends c. Duplicates are kept.
func (t *Toggles) Add(c util.Cell) {
	t.cells = append(t.cells, c)
}

// Len returns the number of entries not yet consumed.
func (t *Toggles) Len() int {
	return len(t.cells)
}

// ForEach hands every entry to apply in insertion order and leaves t empty.
func (t *Toggles) ForEach(apply func(util.Cell)) {
	cells := t.cells
	t.cells = nil
	for _, c := range cells {
		apply(c)
	}
}

func (t *Toggles) extend(other *Toggles) {
	t.cells = append(t.cells, other.cells...)
}
