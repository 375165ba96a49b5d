package hint

import (
	"testing"

	"github.com/gridden/sudoku/internal/domain"
)

func TestPickSingleCell(t *testing.T) {
	var remaining domain.Grid
	remaining[4][4] = 5
	for seed := int64(1); seed <= 20; seed++ {
		cell, v, ok := NewRandomScan(seed).Pick(&remaining)
		if !ok {
			t.Fatalf("seed %d: no cell found", seed)
		}
		if cell != (domain.CellCoord{Row: 4, Col: 4}) || v != 5 {
			t.Fatalf("seed %d: got (%v, %d), want ({4 4}, 5)", seed, cell, v)
		}
	}
}

func TestPickNothingRemaining(t *testing.T) {
	remaining := domain.NewGrid()
	if _, _, ok := NewRandomScan(1).Pick(&remaining); ok {
		t.Fatal("found a cell in an empty remaining grid")
	}
}

func TestPickRowEndpoints(t *testing.T) {
	// Row 3 holds cells at columns 2 and 6; a directional scan must stop
	// at one of the two endpoints, never in between.
	var remaining domain.Grid
	remaining[3][2] = 8
	remaining[3][6] = 2
	for seed := int64(1); seed <= 20; seed++ {
		cell, v, ok := NewRandomScan(seed).Pick(&remaining)
		if !ok {
			t.Fatalf("seed %d: no cell found", seed)
		}
		switch {
		case cell == (domain.CellCoord{Row: 3, Col: 2}) && v == 8:
		case cell == (domain.CellCoord{Row: 3, Col: 6}) && v == 2:
		default:
			t.Fatalf("seed %d: got (%v, %d), want an endpoint of row 3", seed, cell, v)
		}
	}
}
