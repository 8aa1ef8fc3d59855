package gol

// Params provides the details of how to run the Game of Life and where its
// initial state comes from.
type Params struct {
	Turns       int // generations to run, 0 runs until 'q'
	Threads     int
	ImageWidth  int
	ImageHeight int
	FPS         int   // generations per second, 0 runs unpaced
	Seed        int64 // random seed for the coin toss, 0 picks one from the clock
	Image       bool  // load images/<w>x<h>.pgm instead of seeding at random
	InDir       string
	OutDir      string
}

func (p Params) inDir() string {
	if p.InDir == "" {
		return "images"
	}
	return p.InDir
}

func (p Params) outDir() string {
	if p.OutDir == "" {
		return "out"
	}
	return p.OutDir
}

// Run starts the distributor and io goroutines and returns immediately.
// events is closed once the simulation has quit.
func Run(p Params, events chan<- Event, keyPresses <-chan rune) {
	ioCommand := make(chan ioCommand)
	ioIdle := make(chan bool)
	ioFilename := make(chan string)
	ioOutput := make(chan uint8)
	ioInput := make(chan uint8)

	go startIo(p, ioChannels{
		command:  ioCommand,
		idle:     ioIdle,
		filename: ioFilename,
		output:   ioOutput,
		input:    ioInput,
	})

	go distributor(p, distributorChannels{
		events:     events,
		ioCommand:  ioCommand,
		ioIdle:     ioIdle,
		ioFilename: ioFilename,
		ioOutput:   ioOutput,
		ioInput:    ioInput,
		keyPresses: keyPresses,
	})
}
