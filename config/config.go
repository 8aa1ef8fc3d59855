// Package config loads the simulation settings. Defaults come first, a YAML
// file may override them, and command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Colour is an RGB triple.
type Colour struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

type Screen struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

type Config struct {
	Screen     Screen `yaml:"screen"`
	CellSize   int    `yaml:"cell_size"`
	FPS        int    `yaml:"fps"`
	Turns      int    `yaml:"turns"`
	Threads    int    `yaml:"threads"`
	Backend    string `yaml:"backend"`
	Seed       int64  `yaml:"seed"`
	Image      bool   `yaml:"image"`
	Background Colour `yaml:"background"`
	Alive      Colour `yaml:"alive"`
}

// Backends understood by main.
const (
	BackendSDL  = "sdl"
	BackendTerm = "term"
	BackendNone = "none"
)

func Default() Config {
	return Config{
		Screen: Screen{
			Width:  640,
			Height: 480,
			Scale:  1,
			Title:  "Game Of Life",
		},
		CellSize:   10,
		FPS:        10,
		Threads:    1,
		Backend:    BackendSDL,
		Background: Colour{R: 0, G: 0, B: 255},
		Alive:      Colour{R: 0, G: 255, B: 0},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, c.Validate()
}

// GridWidth is the number of cell columns that fit on the screen.
func (c Config) GridWidth() int {
	return c.Screen.Width / c.CellSize
}

// GridHeight is the number of cell rows that fit on the screen.
func (c Config) GridHeight() int {
	return c.Screen.Height / c.CellSize
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.Screen.Scale <= 0 {
		return fmt.Errorf("screen.scale must be positive, got %d", c.Screen.Scale)
	}
	if c.GridWidth() <= 0 || c.GridHeight() <= 0 {
		return fmt.Errorf("screen %dx%d holds no %dpx cells", c.Screen.Width, c.Screen.Height, c.CellSize)
	}
	switch c.Backend {
	case BackendSDL, BackendTerm, BackendNone:
	default:
		return errors.New("backend must be one of sdl, term, none")
	}
	return nil
}
