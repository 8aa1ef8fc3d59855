// Package life holds the generation-advancement engine: the grid, the toroidal
// neighbour count, the Conway rule and the deferred toggle pass that turns
// generation N into generation N+1.
package life

import (
	"errors"
	"fmt"

	"uk.ac.bris.cs/torusoflife/util"
)

// ErrOutOfBounds is returned by Grid accessors for coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid is a fixed-size buffer of alive/dead cells stored row by row.
// It never wraps coordinates; that is the neighbour counter's job.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid returns an all-dead grid. Dimensions must be positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width is the number of columns, fixed at construction.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows, fixed at construction.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(c util.Cell) (int, error) {
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	return c.Y*g.width + c.X, nil
}

// Get reports whether the cell at c is alive.
func (g *Grid) Get(c util.Cell) (bool, error) {
	i, err := g.index(c)
	if err != nil {
		return false, err
	}
	return g.cells[i], nil
}

// Set marks the cell at c alive or dead.
func (g *Grid) Set(c util.Cell, alive bool) error {
	i, err := g.index(c)
	if err != nil {
		return err
	}
	g.cells[i] = alive
	return nil
}

// Toggle flips the cell at c.
func (g *Grid) Toggle(c util.Cell) error {
	i, err := g.index(c)
	if err != nil {
		return err
	}
	g.cells[i] = !g.cells[i]
	return nil
}

// AliveCells lists live cells in row-major order.
func (g *Grid) AliveCells() []util.Cell {
	var alive []util.Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] {
				alive = append(alive, util.Cell{X: x, Y: y})
			}
		}
	}
	return alive
}

// AliveCount returns the number of live cells.
func (g *Grid) AliveCount() int {
	count := 0
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return count
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
