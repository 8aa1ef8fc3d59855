package life

import (
	"golang.org/x/sync/errgroup"

	"uk.ac.bris.cs/torusoflife/util"
)

// Advance turns g into the next generation in place.
func Advance(g *Grid) {
	_, err := Step(g, 1)
	util.Check(err)
}

// Step advances g by one generation and returns the cells it flipped, in the
// order they were applied. With threads > 1 the read-only scan is split into
// horizontal bands that run concurrently; the toggles are still applied in
// row-major order, so the result is the same for any thread count.
func Step(g *Grid, threads int) ([]util.Cell, error) {
	toggles, err := scanBands(g, threads)
	if err != nil {
		return nil, err
	}
	return apply(g, toggles)
}

// rowMajor lists the coordinates of rows [startY, endY).
func rowMajor(g *Grid, startY, endY int) []util.Cell {
	order := make([]util.Cell, 0, (endY-startY)*g.width)
	for y := startY; y < endY; y++ {
		for x := 0; x < g.width; x++ {
			order = append(order, util.Cell{X: x, Y: y})
		}
	}
	return order
}

// scan visits the cells in order and records those whose state must change.
// g is only read here.
func scan(g *Grid, order []util.Cell) (*Toggles, error) {
	toggles := &Toggles{}
	for _, c := range order {
		liveNeighbours, err := CountLiveNeighbours(g, c)
		if err != nil {
			return nil, err
		}
		current, err := g.Get(c)
		if err != nil {
			return nil, err
		}
		if NextState(current, liveNeighbours) != current {
			toggles.Add(c)
		}
	}
	return toggles, nil
}

func scanBands(g *Grid, threads int) (*Toggles, error) {
	if threads > g.height {
		threads = g.height
	}
	if threads <= 1 {
		return scan(g, rowMajor(g, 0, g.height))
	}

	bands := make([]*Toggles, threads)
	heightPerThread := g.height / threads

	var eg errgroup.Group
	for i := 0; i < threads; i++ {
		i := i
		startY := i * heightPerThread
		endY := startY + heightPerThread
		// last band picks up the remainder rows
		if i == threads-1 {
			endY = g.height
		}
		eg.Go(func() error {
			toggles, err := scan(g, rowMajor(g, startY, endY))
			if err != nil {
				return err
			}
			bands[i] = toggles
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := &Toggles{}
	for _, band := range bands {
		merged.extend(band)
	}
	return merged, nil
}

// apply drains toggles into g.
func apply(g *Grid, toggles *Toggles) ([]util.Cell, error) {
	flipped := make([]util.Cell, 0, toggles.Len())
	var err error
	toggles.ForEach(func(c util.Cell) {
		if err != nil {
			return
		}
		if err = g.Toggle(c); err == nil {
			flipped = append(flipped, c)
		}
	})
	return flipped, err
}
