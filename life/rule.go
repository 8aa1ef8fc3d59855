package life

// NextState applies Conway's rule to a single cell.
func NextState(alive bool, liveNeighbours int) bool {
	if alive {
		// dies from under- or overpopulation
		return liveNeighbours == 2 || liveNeighbours == 3
	}
	return liveNeighbours == 3
}
