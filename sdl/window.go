package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/torusoflife/config"
	"uk.ac.bris.cs/torusoflife/view"
)

// Window renders the board as filled rectangles in an SDL window.
type Window struct {
	Width, Height int32
	title         string
	cellSize      int32
	background    config.Colour
	alive         config.Colour
	window        *sdl.Window
	renderer      *sdl.Renderer
}

// NewWindow sizes a window from c. Nothing is opened until Init.
func NewWindow(c config.Config) *Window {
	scale := int32(c.Screen.Scale)
	return &Window{
		Width:      int32(c.Screen.Width) * scale,
		Height:     int32(c.Screen.Height) * scale,
		title:      c.Screen.Title,
		cellSize:   int32(c.CellSize) * scale,
		background: c.Background,
		alive:      c.Alive,
	}
}

// Init opens the window and its renderer.
func (w *Window) Init() error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(w.title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, w.Width, w.Height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}

	w.window = window
	w.renderer = renderer
	fmt.Println("Window", w.title, "opened")
	return nil
}

// HandleEvents drains the SDL event queue.
func (w *Window) HandleEvents() []rune {
	var keys []rune
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			keys = append(keys, 'q')
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_q, sdl.K_ESCAPE:
				keys = append(keys, 'q')
			case sdl.K_p:
				keys = append(keys, 'p')
			case sdl.K_s:
				keys = append(keys, 's')
			}
		}
	}
	return keys
}

// Draw clears to the background colour and fills every live cell.
func (w *Window) Draw(b *view.Board) error {
	if err := w.renderer.SetDrawColor(w.background.R, w.background.G, w.background.B, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.SetDrawColor(w.alive.R, w.alive.G, w.alive.B, 255); err != nil {
		return err
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.Alive(x, y) {
				continue
			}
			r := sdl.Rect{
				X: int32(x) * w.cellSize,
				Y: int32(y) * w.cellSize,
				W: w.cellSize,
				H: w.cellSize,
			}
			if err := w.renderer.FillRect(&r); err != nil {
				return err
			}
		}
	}
	w.renderer.Present()
	return nil
}

// Quit destroys the renderer and window and shuts SDL down.
func (w *Window) Quit() {
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	w.renderer = nil
	w.window = nil
	sdl.Quit()
	fmt.Println("Window closed")
}
