package life

import "uk.ac.bris.cs/torusoflife/util"

// Moore neighbourhood offsets as {dx, dy}.
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1}, // Top-left, Top, Top-right
	{-1, 0}, {1, 0}, // Left, Right
	{-1, 1}, {0, 1}, {1, 1}, // Bottom-left, Bottom, Bottom-right
}

// wrap maps v onto [0, n) for any v, negative or not.
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Neighbour returns the cell at offset (dx, dy) from c with the grid's edges
// joined to the opposite edges.
func Neighbour(g *Grid, c util.Cell, dx, dy int) util.Cell {
	return util.Cell{
		X: wrap(c.X+dx, g.width),
		Y: wrap(c.Y+dy, g.height),
	}
}

// CountLiveNeighbours counts the live cells among the 8 wrapped neighbours of c.
func CountLiveNeighbours(g *Grid, c util.Cell) (int, error) {
	liveNeighbours := 0
	for _, o := range offsets {
		alive, err := g.Get(Neighbour(g, c, o[0], o[1]))
		if err != nil {
			return 0, err
		}
		if alive {
			liveNeighbours++
		}
	}
	return liveNeighbours, nil
}
