package gol

import (
	"fmt"

	"uk.ac.bris.cs/torusoflife/util"
)

// Event represents any Game of Life event that needs to be communicated to
// the front end.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent whenever the simulation starts, pauses, resumes or quits.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// AliveCellsCount is sent every 2 seconds while executing, never while paused.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// ImageOutputComplete is sent once a PGM snapshot has been written.
type ImageOutputComplete struct {
	CompletedTurns int
	Filename       string
}

// CellFlipped announces a single live cell of the initial state.
type CellFlipped struct {
	CompletedTurns int
	Cell           util.Cell
}

// CellsFlipped lists every cell that flipped during one generation.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

// TurnComplete is sent after every generation, once its CellsFlipped has been sent.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete carries the live cells of the last generation.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %v", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event ImageOutputComplete) String() string {
	return fmt.Sprintf("File %v Output Done", event.Filename)
}

func (event ImageOutputComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event CellFlipped) String() string {
	return ""
}

func (event CellFlipped) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event CellsFlipped) String() string {
	return ""
}

func (event CellsFlipped) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return ""
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final Turn Complete, %v cells alive", len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
