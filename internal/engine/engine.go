package engine

import (
	"context"

	"github.com/gridden/sudoku/internal/domain"
	"github.com/gridden/sudoku/internal/ports"
)

// Status messages surfaced through HintResult.Status.
const (
	StatusComplete = "board is complete and valid"
	StatusUnknown  = "unknown error"
)

// Engine is the session facade over the solver, generator, validator and
// hinter. One Engine serves one game session: it retains the active
// puzzle, the solution snapshot for that puzzle, and the last diagnostic
// message. No internal locking; a concurrent host serializes calls or
// runs one Engine per session.
//
// Every Grid crossing the Engine boundary is passed and returned by
// value, so callers never share storage with the retained state.
type Engine struct {
	solver    ports.Solver
	generator ports.Generator
	validator ports.Validator
	hinter    ports.Hinter

	puzzle      domain.Grid
	solution    domain.Grid
	hasSolution bool
	lastMessage string
}

func New(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Engine {
	return &Engine{solver: s, generator: g, validator: v, hinter: h}
}

// NewPuzzle generates a fresh puzzle and retains both it and its
// solution, overwriting whatever the previous generation left behind.
func (e *Engine) NewPuzzle(ctx context.Context) (domain.Grid, error) {
	puzzle, solution, _, err := e.generator.Generate(ctx)
	if err != nil {
		return domain.Grid{}, err
	}
	e.puzzle = puzzle
	e.solution = solution
	e.hasSolution = true
	return puzzle, nil
}

// Validate reports rule violations on a possibly partial grid. The
// diagnostic, success included, replaces the last message.
func (e *Engine) Validate(g domain.Grid) bool {
	ok, msg := e.validator.Validate(&g)
	e.lastMessage = msg
	return ok
}

// CompleteAndValid reports whether g is fully filled with no rule
// violation. The diagnostic, success included, replaces the last message.
func (e *Engine) CompleteAndValid(g domain.Grid) bool {
	ok, msg := e.validator.CompleteAndValid(&g)
	e.lastMessage = msg
	return ok
}

// LastMessage returns the diagnostic recorded by the most recent
// validation or completeness check.
func (e *Engine) LastMessage() string { return e.lastMessage }

// Solve returns the completion of g. On a non-Solved outcome the input
// grid is returned unchanged alongside the outcome.
func (e *Engine) Solve(ctx context.Context, g domain.Grid) (domain.Grid, domain.Outcome, ports.Stats) {
	work := g
	out, st := e.solver.Solve(ctx, &work)
	if out != domain.Solved {
		return g, out, st
	}
	return work, out, st
}

// Hint suggests one concealed digit for the player's current grid: a cell
// the player has not filled, revealed from the retained solution. Without
// a snapshot it falls back to solving the player's grid directly. An
// invalid grid yields a failure result carrying the diagnostic; a grid
// with nothing left to reveal is confirmed by a fresh solve and reported
// as complete.
func (e *Engine) Hint(ctx context.Context, g domain.Grid) domain.HintResult {
	ok, msg := e.validator.Validate(&g)
	e.lastMessage = msg
	if !ok {
		return domain.HintResult{Status: msg}
	}
	solution := e.solution
	if !e.hasSolution {
		work := g
		if out, _ := e.solver.Solve(ctx, &work); out != domain.Solved {
			return domain.HintResult{Status: StatusUnknown}
		}
		solution = work
	}
	// Mask the player's filled cells; what remains are exactly the cells
	// still to be revealed, paired with their solved values.
	var remaining domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == domain.Empty {
				remaining[r][c] = solution[r][c]
			}
		}
	}
	if cell, v, found := e.hinter.Pick(&remaining); found {
		return domain.HintResult{Found: true, Row: cell.Row + 1, Col: cell.Col + 1, Value: v}
	}
	// Nothing left to reveal: presumptively complete. Confirm with a
	// fresh solve before announcing success.
	work := g
	if out, _ := e.solver.Solve(ctx, &work); out == domain.Solved {
		return domain.HintResult{Status: StatusComplete}
	}
	return domain.HintResult{Status: StatusUnknown}
}

// Board returns a copy of the retained puzzle state, for debugging and
// administrative use.
func (e *Engine) Board() domain.Grid { return e.puzzle }

// ClearedBoard returns an empty grid in the engine's canonical shape.
func (e *Engine) ClearedBoard() domain.Grid { return domain.NewGrid() }
