// Package term renders the board in a terminal, two columns per cell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"uk.ac.bris.cs/torusoflife/config"
	"uk.ac.bris.cs/torusoflife/view"
)

// Screen is a tcell terminal front end.
type Screen struct {
	newScreen  func() (tcell.Screen, error)
	screen     tcell.Screen
	keys       chan rune
	background tcell.Style
	alive      tcell.Style
}

// NewScreen prepares a terminal front end. The terminal is taken over by Init.
func NewScreen(c config.Config) *Screen {
	return &Screen{
		newScreen:  tcell.NewScreen,
		background: tcell.StyleDefault.Background(colour(c.Background)),
		alive:      tcell.StyleDefault.Background(colour(c.Alive)),
	}
}

func colour(c config.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Init takes over the terminal and starts reading keys.
func (s *Screen) Init() error {
	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s.screen = screen
	s.keys = make(chan rune, 16)
	go s.pollKeys()
	return nil
}

// pollKeys runs until the screen is finalised, at which point PollEvent
// returns nil.
func (s *Screen) pollKeys() {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			close(s.keys)
			return
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				s.queueKey('q')
			case ev.Key() == tcell.KeyRune:
				s.queueKey(ev.Rune())
			}
		}
	}
}

// queueKey drops the key when nobody is draining s.keys, so pollKeys always
// gets back to PollEvent and sees the screen being finalised.
func (s *Screen) queueKey(key rune) {
	select {
	case s.keys <- key:
	default:
	}
}

// HandleEvents returns the keys read since the last call.
func (s *Screen) HandleEvents() []rune {
	var keys []rune
	for {
		select {
		case key, ok := <-s.keys:
			if !ok {
				return keys
			}
			keys = append(keys, key)
		default:
			return keys
		}
	}
}

// Draw paints every cell as two terminal columns.
func (s *Screen) Draw(b *view.Board) error {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			style := s.background
			if b.Alive(x, y) {
				style = s.alive
			}
			s.screen.SetContent(x*2, y, ' ', nil, style)
			s.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Quit gives the terminal back.
func (s *Screen) Quit() {
	s.screen.Fini()
}
