package life

import (
	"math/rand"
	"testing"

	"uk.ac.bris.cs/torusoflife/util"
)

func TestWrapNeverLeavesRange(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for v := -3 * n; v <= 3*n; v++ {
			got := wrap(v, n)
			if got < 0 || got >= n {
				t.Fatalf("wrap(%d, %d) = %d, out of range", v, n, got)
			}
			if (got-v)%n != 0 {
				t.Fatalf("wrap(%d, %d) = %d, not congruent", v, n, got)
			}
		}
	}
}

func TestNeighbourWrapsEdgesAndCorners(t *testing.T) {
	const w, h = 5, 4
	g := NewGrid(w, h)
	tests := []struct {
		name   string
		from   util.Cell
		dx, dy int
		want   util.Cell
	}{
		{"left edge", util.Cell{X: 0, Y: 2}, -1, 0, util.Cell{X: w - 1, Y: 2}},
		{"right edge", util.Cell{X: w - 1, Y: 2}, 1, 0, util.Cell{X: 0, Y: 2}},
		{"top edge", util.Cell{X: 3, Y: 0}, 0, -1, util.Cell{X: 3, Y: h - 1}},
		{"bottom edge", util.Cell{X: 3, Y: h - 1}, 0, 1, util.Cell{X: 3, Y: 0}},
		{"top-left corner", util.Cell{X: 0, Y: 0}, -1, -1, util.Cell{X: w - 1, Y: h - 1}},
		{"top-right corner", util.Cell{X: w - 1, Y: 0}, 1, -1, util.Cell{X: 0, Y: h - 1}},
		{"bottom-left corner", util.Cell{X: 0, Y: h - 1}, -1, 1, util.Cell{X: w - 1, Y: 0}},
		{"bottom-right corner", util.Cell{X: w - 1, Y: h - 1}, 1, 1, util.Cell{X: 0, Y: 0}},
		{"interior", util.Cell{X: 2, Y: 1}, 1, 1, util.Cell{X: 3, Y: 2}},
		{"far offset", util.Cell{X: 0, Y: 0}, -7, -9, util.Cell{X: 3, Y: 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Neighbour(g, test.from, test.dx, test.dy); got != test.want {
				t.Errorf("Neighbour(%v, %d, %d) = %v, want %v", test.from, test.dx, test.dy, got, test.want)
			}
		})
	}
}

func TestCountLiveNeighboursAcrossCorners(t *testing.T) {
	g := gridFrom(t,
		"....#",
		".....",
		".....",
		"#...#",
	)
	// (0,0) touches (4,0), (0,3) and (4,3) through the seams.
	n, err := CountLiveNeighbours(g, util.Cell{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("CountLiveNeighbours((0,0)) = %d, want 3", n)
	}
	// the cell itself is never counted
	n, err = CountLiveNeighbours(g, util.Cell{X: 4, Y: 3})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("CountLiveNeighbours((4,3)) = %d, want 2", n)
	}
}

func TestCountLiveNeighboursRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sizes := [][2]int{{1, 1}, {2, 2}, {3, 1}, {5, 4}, {16, 9}}
	for _, size := range sizes {
		g := randomGrid(rng, size[0], size[1])
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				n, err := CountLiveNeighbours(g, util.Cell{X: x, Y: y})
				if err != nil {
					t.Fatal(err)
				}
				if n < 0 || n > 8 {
					t.Fatalf("%dx%d grid: count at (%d,%d) = %d", size[0], size[1], x, y, n)
				}
			}
		}
	}

	full := NewGrid(4, 4)
	for i := range full.cells {
		full.cells[i] = true
	}
	n, err := CountLiveNeighbours(full, util.Cell{X: 0, Y: 3})
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("full grid count = %d, want 8", n)
	}
}
