package solver

import (
	"context"
	"testing"
	"time"

	"github.com/gridden/sudoku/internal/domain"
	"github.com/gridden/sudoku/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// unsolvable pins row 1 to 1..8 while 9 is taken in column 9, leaving no
// candidate for the first empty cell.
var unsolvable = domain.Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 0},
	{},
	{0, 0, 0, 0, 0, 0, 0, 0, 9},
}

func TestSolveSample(t *testing.T) {
	g := sample
	out, st := NewBacktracker().Solve(context.Background(), &g)
	if out != domain.Solved {
		t.Fatalf("Solve() = %v (nodes=%d dur=%v)", out, st.Nodes, st.Duration)
	}
	if g != sampleSolution {
		t.Fatalf("wrong solution:\ngot  %v\nwant %v", g.Rows(), sampleSolution.Rows())
	}
	if ok, msg := validator.CompleteAndValid(&g); !ok {
		t.Fatalf("solution not complete and valid: %s", msg)
	}
}

func TestSolveKeepsGivens(t *testing.T) {
	g := sample
	out, _ := NewBacktracker().Solve(context.Background(), &g)
	if out != domain.Solved {
		t.Fatalf("Solve() = %v", out)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != domain.Empty && g[r][c] != sample[r][c] {
				t.Fatalf("given at r=%d c=%d changed from %d to %d", r, c, sample[r][c], g[r][c])
			}
		}
	}
}

func TestSolveRefusesInvalidGrid(t *testing.T) {
	g := domain.NewGrid()
	g[0][0], g[0][4] = 5, 5
	out, st := NewBacktracker().Solve(context.Background(), &g)
	if out != domain.Unsolvable {
		t.Fatalf("Solve() = %v, want unsolvable", out)
	}
	if st.Nodes != 0 {
		t.Fatalf("search ran on an invalid grid: %d nodes", st.Nodes)
	}
}

func TestSolveUnsolvableTerminates(t *testing.T) {
	g := unsolvable
	out, st := NewBacktracker().Solve(context.Background(), &g)
	if out != domain.Unsolvable {
		t.Fatalf("Solve() = %v, want unsolvable", out)
	}
	if st.Duration > DefaultBudget {
		t.Fatalf("took %v, longer than the %v budget", st.Duration, DefaultBudget)
	}
}

func TestSolveTimeout(t *testing.T) {
	g := unsolvable
	s := &Backtracker{Budget: time.Nanosecond}
	out, _ := s.Solve(context.Background(), &g)
	if out != domain.TimedOut {
		t.Fatalf("Solve() = %v, want timed out", out)
	}
}

func TestSolveHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := sample
	out, _ := NewBacktracker().Solve(ctx, &g)
	if out != domain.TimedOut {
		t.Fatalf("Solve() = %v, want timed out on a canceled context", out)
	}
}
