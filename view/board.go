package view

import "uk.ac.bris.cs/torusoflife/util"

// Board is the front end's copy of the world, kept up to date from flipped
// cell events.
type Board struct {
	Width, Height int
	cells         []bool
}

// NewBoard returns an all-dead board.
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

// Flip toggles the cell at c.
func (b *Board) Flip(c util.Cell) {
	b.cells[c.Y*b.Width+c.X] = !b.cells[c.Y*b.Width+c.X]
}

// Alive reports whether the cell in column x, row y is alive.
func (b *Board) Alive(x, y int) bool {
	return b.cells[y*b.Width+x]
}
