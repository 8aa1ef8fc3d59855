package gol

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"uk.ac.bris.cs/torusoflife/life"
	"uk.ac.bris.cs/torusoflife/util"
)

type distributorChannels struct {
	events     chan<- Event
	ioCommand  chan<- ioCommand
	ioIdle     <-chan bool
	ioFilename chan<- string
	ioOutput   chan<- uint8
	ioInput    <-chan uint8
	keyPresses <-chan rune
}

// seedWorld tosses a coin for every cell.
func seedWorld(p Params, seed int64) *life.Grid {
	rng := rand.New(rand.NewSource(seed))
	world := life.NewGrid(p.ImageWidth, p.ImageHeight)
	for y := 0; y < p.ImageHeight; y++ {
		for x := 0; x < p.ImageWidth; x++ {
			util.Check(world.Set(util.Cell{X: x, Y: y}, rng.Intn(2) == 1))
		}
	}
	return world
}

// inputImage asks the io goroutine for images/<w>x<h>.pgm.
func inputImage(c distributorChannels, p Params) *life.Grid {
	c.ioCommand <- ioInput
	c.ioFilename <- strings.Join([]string{strconv.Itoa(p.ImageWidth), strconv.Itoa(p.ImageHeight)}, "x")

	world := life.NewGrid(p.ImageWidth, p.ImageHeight)
	for y := 0; y < p.ImageHeight; y++ {
		for x := 0; x < p.ImageWidth; x++ {
			if <-c.ioInput == alive {
				util.Check(world.Set(util.Cell{X: x, Y: y}, true))
			}
		}
	}
	return world
}

// outputImage sends the world to the io goroutine as out/<w>x<h>x<turn>.pgm.
func outputImage(c distributorChannels, p Params, world *life.Grid, turn int) {
	c.ioCommand <- ioOutput
	filename := strings.Join([]string{strconv.Itoa(p.ImageWidth), strconv.Itoa(p.ImageHeight), strconv.Itoa(turn)}, "x")
	c.ioFilename <- filename
	for y := 0; y < p.ImageHeight; y++ {
		for x := 0; x < p.ImageWidth; x++ {
			cell, err := world.Get(util.Cell{X: x, Y: y})
			util.Check(err)
			if cell {
				c.ioOutput <- alive
			} else {
				c.ioOutput <- dead
			}
		}
	}
	c.ioCommand <- ioCheckIdle
	<-c.ioIdle
	c.events <- ImageOutputComplete{turn, filename}
}

// aliveReportInterval is how often AliveCellsCount is sent while executing.
var aliveReportInterval = 2 * time.Second

// frameTicks paces generations at fps. With fps <= 0 the returned channel is
// closed, so it is always ready.
func frameTicks(fps int) (<-chan time.Time, func()) {
	if fps <= 0 {
		always := make(chan time.Time)
		close(always)
		return always, func() {}
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	return ticker.C, ticker.Stop
}

// distributor owns the world. It advances one generation per frame and
// reacts to key presses until the turns run out or 'q' is pressed.
func distributor(p Params, c distributorChannels) {
	var world *life.Grid
	if p.Image {
		world = inputImage(c, p)
	} else {
		seed := p.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		world = seedWorld(p, seed)
	}

	for _, cell := range world.AliveCells() {
		c.events <- CellFlipped{CompletedTurns: 0, Cell: cell}
	}

	turn := 0
	c.events <- StateChange{turn, Executing}

	frame, stopFrames := frameTicks(p.FPS)
	defer stopFrames()
	ticker := time.NewTicker(aliveReportInterval)
	defer ticker.Stop()

	paused := false
loop:
	for p.Turns <= 0 || turn < p.Turns {
		next := frame
		if paused {
			next = nil
		}

		select {
		case <-next:
			flipped, err := life.Step(world, p.Threads)
			util.Check(err)
			turn++
			c.events <- CellsFlipped{CompletedTurns: turn, Cells: flipped}
			c.events <- TurnComplete{CompletedTurns: turn}
		case <-ticker.C:
			if !paused {
				c.events <- AliveCellsCount{turn, world.AliveCount()}
			}
		case key := <-c.keyPresses:
			switch key {
			case 's':
				outputImage(c, p, world, turn)
			case 'q':
				break loop
			case 'p':
				paused = !paused
				if paused {
					fmt.Println("Paused at turn", turn)
					c.events <- StateChange{turn, Paused}
				} else {
					fmt.Println("Continuing")
					c.events <- StateChange{turn, Executing}
				}
			}
		}
	}

	outputImage(c, p, world, turn)
	c.events <- FinalTurnComplete{CompletedTurns: turn, Alive: world.AliveCells()}

	// Make sure that the Io has finished any output before exiting.
	c.ioCommand <- ioCheckIdle
	<-c.ioIdle
	close(c.ioCommand)

	c.events <- StateChange{turn, Quitting}

	// Close the channel to stop the front end gracefully.
	close(c.events)
}
