package util

import "fmt"

// Cell is a grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
