package life

import (
	"reflect"
	"testing"

	"uk.ac.bris.cs/torusoflife/util"
)

func TestTogglesForEachDrainsInOrder(t *testing.T) {
	var toggles Toggles
	in := []util.Cell{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}}
	for _, c := range in {
		toggles.Add(c)
	}
	if toggles.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", toggles.Len())
	}

	var got []util.Cell
	toggles.ForEach(func(c util.Cell) { got = append(got, c) })
	if !reflect.DeepEqual(got, in) {
		t.Errorf("ForEach order = %v, want %v", got, in)
	}
	if toggles.Len() != 0 {
		t.Errorf("Len() after ForEach = %d, want 0", toggles.Len())
	}

	calls := 0
	toggles.ForEach(func(util.Cell) { calls++ })
	if calls != 0 {
		t.Errorf("second ForEach visited %d entries", calls)
	}
}
