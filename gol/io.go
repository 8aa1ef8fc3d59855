package gol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"uk.ac.bris.cs/torusoflife/util"
)

type ioChannels struct {
	command  <-chan ioCommand
	idle     chan<- bool
	filename <-chan string
	output   <-chan uint8
	input    chan<- uint8
}

// ioState is the internal ioState of the io goroutine.
type ioState struct {
	params   Params
	channels ioChannels
}

// ioCommand allows requesting behaviour from the io (pgm) goroutine.
type ioCommand uint8

const (
	ioOutput ioCommand = iota
	ioInput
	ioCheckIdle
)

const (
	alive byte = 255
	dead  byte = 0
)

// writePgmImage receives an array of bytes and writes it to a pgm file.
func (io *ioState) writePgmImage() {
	util.Check(os.MkdirAll(io.params.outDir(), os.ModePerm))

	filename := <-io.channels.filename
	file, ioError := os.Create(filepath.Join(io.params.outDir(), filename+".pgm"))
	util.Check(ioError)
	defer file.Close()

	w := bufio.NewWriter(file)
	_, _ = w.WriteString("P5\n")
	_, _ = w.WriteString(strconv.Itoa(io.params.ImageWidth))
	_, _ = w.WriteString(" ")
	_, _ = w.WriteString(strconv.Itoa(io.params.ImageHeight))
	_, _ = w.WriteString("\n")
	_, _ = w.WriteString(strconv.Itoa(255))
	_, _ = w.WriteString("\n")

	for y := 0; y < io.params.ImageHeight; y++ {
		for x := 0; x < io.params.ImageWidth; x++ {
			util.Check(w.WriteByte(<-io.channels.output))
		}
	}

	util.Check(w.Flush())
	util.Check(file.Sync())

	fmt.Println("File", filename, "output done!")
}

// readPgmImage opens a pgm file and sends its data one byte at a time.
func (io *ioState) readPgmImage() {
	filename := <-io.channels.filename
	file, ioError := os.Open(filepath.Join(io.params.inDir(), filename+".pgm"))
	util.Check(ioError)
	defer file.Close()

	image, err := decodePgm(bufio.NewReader(file), io.params.ImageWidth, io.params.ImageHeight)
	util.Check(err)

	for _, b := range image {
		io.channels.input <- b
	}

	fmt.Println("File", filename, "input done!")
}

// decodePgm reads a binary (P5) pgm image of the expected size.
func decodePgm(r *bufio.Reader, width, height int) ([]byte, error) {
	var magic string
	var w, h, maxval int
	if _, err := fmt.Fscan(r, &magic, &w, &h, &maxval); err != nil {
		return nil, fmt.Errorf("reading pgm header: %w", err)
	}
	if magic != "P5" {
		return nil, fmt.Errorf("not a pgm file: magic %q", magic)
	}
	if w != width || h != height {
		return nil, fmt.Errorf("incorrect size %dx%d, want %dx%d", w, h, width, height)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("incorrect maxval/bit depth %d", maxval)
	}
	// single whitespace byte between header and pixels
	if _, err := r.ReadByte(); err != nil {
		return nil, fmt.Errorf("reading pgm header: %w", err)
	}
	image := make([]byte, width*height)
	if _, err := io.ReadFull(r, image); err != nil {
		return nil, fmt.Errorf("reading pgm pixels: %w", err)
	}
	return image, nil
}

// startIo should be the entrypoint of the io goroutine. It returns once the
// command channel is closed.
func startIo(p Params, c ioChannels) {
	io := ioState{
		params:   p,
		channels: c,
	}

	for command := range io.channels.command {
		switch command {
		case ioInput:
			io.readPgmImage()
		case ioOutput:
			io.writePgmImage()
		case ioCheckIdle:
			io.channels.idle <- true
		}
	}
}
