package life

import (
	"math/rand"
	"strings"
	"testing"

	"uk.ac.bris.cs/torusoflife/util"
)

// gridFrom builds a grid from rows of '#' (alive) and '.' (dead).
func gridFrom(t testing.TB, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width() {
			t.Fatalf("row %d has width %d, want %d", y, len(row), g.Width())
		}
		for x, ch := range row {
			if ch == '#' {
				mustSet(t, g, util.Cell{X: x, Y: y}, true)
			}
		}
	}
	return g
}

func gridString(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func mustSet(t testing.TB, g *Grid, c util.Cell, alive bool) {
	t.Helper()
	if err := g.Set(c, alive); err != nil {
		t.Fatal(err)
	}
}

func mustGet(t testing.TB, g *Grid, c util.Cell) bool {
	t.Helper()
	alive, err := g.Get(c)
	if err != nil {
		t.Fatal(err)
	}
	return alive
}

func randomGrid(rng *rand.Rand, width, height int) *Grid {
	g := NewGrid(width, height)
	for i := range g.cells {
		g.cells[i] = rng.Intn(2) == 1
	}
	return g
}

func cloneGrid(g *Grid) *Grid {
	c := NewGrid(g.width, g.height)
	copy(c.cells, g.cells)
	return c
}

func assertGrid(t *testing.T, got, want *Grid) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("grid mismatch\ngot:\n%swant:\n%s", gridString(got), gridString(want))
	}
}

// referenceStep is a plain double-buffered step used as the golden result.
func referenceStep(g *Grid) *Grid {
	w, h := g.width, g.height
	next := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if g.cells[ny*w+nx] {
						count++
					}
				}
			}
			alive := g.cells[y*w+x]
			next.cells[y*w+x] = (alive && (count == 2 || count == 3)) || (!alive && count == 3)
		}
	}
	return next
}
