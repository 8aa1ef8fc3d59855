// Package view drives a front end from the distributor's events.
package view

import (
	"fmt"
	"time"

	"uk.ac.bris.cs/torusoflife/gol"
)

// Backend is a platform window or screen. Run calls Init once, then
// HandleEvents and Draw once per refresh, then Quit once at exit.
type Backend interface {
	Init() error
	// HandleEvents polls pending input and returns the key presses to
	// forward. Closing the window reports 'q'.
	HandleEvents() []rune
	Draw(b *Board) error
	Quit()
}

const refreshRate = 60

// Run drives backend until events is closed.
func Run(backend Backend, p gol.Params, events <-chan gol.Event, keyPresses chan<- rune) error {
	if err := backend.Init(); err != nil {
		return fmt.Errorf("initialising front end: %w", err)
	}
	defer backend.Quit()

	board := NewBoard(p.ImageWidth, p.ImageHeight)
	dirty := false

	refresh := time.NewTicker(time.Second / refreshRate)
	defer refresh.Stop()

	for {
		select {
		case <-refresh.C:
			for _, key := range backend.HandleEvents() {
				select {
				case keyPresses <- key:
				default:
					fmt.Printf("Dropped key press %q\n", key)
				}
			}
			if dirty {
				if err := backend.Draw(board); err != nil {
					return err
				}
				dirty = false
			}
		case event, ok := <-events:
			if !ok {
				if dirty {
					return backend.Draw(board)
				}
				return nil
			}
			switch e := event.(type) {
			case gol.CellFlipped:
				board.Flip(e.Cell)
				dirty = true
			case gol.CellsFlipped:
				for _, c := range e.Cells {
					board.Flip(c)
				}
				dirty = true
			default:
				Log(event)
			}
		}
	}
}

// Log prints events that carry a message.
func Log(event gol.Event) {
	if event.String() != "" {
		fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
	}
}
