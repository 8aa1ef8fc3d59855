package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"uk.ac.bris.cs/torusoflife/config"
	"uk.ac.bris.cs/torusoflife/gol"
	"uk.ac.bris.cs/torusoflife/sdl"
	"uk.ac.bris.cs/torusoflife/term"
	"uk.ac.bris.cs/torusoflife/view"
)

// SDL must be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML configuration file.")
		backend    = flag.String("backend", config.BackendSDL, "Front end: sdl, term or none.")
		threads    = flag.Int("t", 1, "Number of bands the generation scan is split into.")
		turns      = flag.Int("turns", 0, "Number of generations to run, 0 runs until 'q'.")
		fps        = flag.Int("fps", 10, "Generations per second, 0 runs unpaced.")
		width      = flag.Int("w", 64, "Grid width in cells.")
		height     = flag.Int("h", 48, "Grid height in cells.")
		cellSize   = flag.Int("cell", 10, "Cell size in pixels.")
		seed       = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock.")
		image      = flag.Bool("image", false, "Load images/<w>x<h>.pgm instead of a random world.")
	)
	flag.Parse()

	c, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			c.Backend = *backend
		case "t":
			c.Threads = *threads
		case "turns":
			c.Turns = *turns
		case "fps":
			c.FPS = *fps
		case "cell":
			c.CellSize = *cellSize
		case "seed":
			c.Seed = *seed
		case "image":
			c.Image = *image
		}
	})
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			c.Screen.Width = *width * c.CellSize
		case "h":
			c.Screen.Height = *height * c.CellSize
		}
	})
	if err := c.Validate(); err != nil {
		log.Fatal(err)
	}

	p := gol.Params{
		Turns:       c.Turns,
		Threads:     c.Threads,
		ImageWidth:  c.GridWidth(),
		ImageHeight: c.GridHeight(),
		FPS:         c.FPS,
		Seed:        c.Seed,
		Image:       c.Image,
	}

	fmt.Println("Threads:", p.Threads)
	fmt.Println("Width:", p.ImageWidth)
	fmt.Println("Height:", p.ImageHeight)

	keyPresses := make(chan rune, 10)
	events := make(chan gol.Event, 1000)

	gol.Run(p, events, keyPresses)

	switch c.Backend {
	case config.BackendSDL:
		err = view.Run(sdl.NewWindow(c), p, events, keyPresses)
	case config.BackendTerm:
		err = view.Run(term.NewScreen(c), p, events, keyPresses)
	default:
		headless(events, keyPresses)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// headless prints events until the simulation quits. An interrupt asks the
// distributor to quit the same way 'q' does.
func headless(events <-chan gol.Event, keyPresses chan<- rune) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	for {
		select {
		case <-interrupts:
			keyPresses <- 'q'
		case event, ok := <-events:
			if !ok {
				return
			}
			view.Log(event)
		}
	}
}
