package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gridden/sudoku/internal/ports"
)

// DefaultPlacements is the number of random seed writes per attempt.
const DefaultPlacements = 20

// ErrGenerationFailed reports that MaxAttempts was exhausted without
// producing a solvable puzzle.
var ErrGenerationFailed = errors.New("failed to generate a solvable puzzle")

// Seeded builds puzzles by writing random digits into a cleared grid and
// keeping the first seeding that is both rule-valid and solvable.
type Seeded struct {
	Solver ports.Solver

	// Placements is the seed-write count per attempt. Writes may land on
	// the same cell and overwrite; this is a number of attempts, not of
	// distinct filled cells. Zero means DefaultPlacements.
	Placements int

	// MaxAttempts caps the generate-and-test loop. Zero means unbounded:
	// termination is then probabilistic, relying on most random seedings
	// being either quickly rejected as invalid or quickly solved.
	MaxAttempts int

	rng *rand.Rand
}

// NewSeeded wires a generator around the given solver. A zero seed uses
// the current time.
func NewSeeded(s ports.Solver, seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{
		Solver:     s,
		Placements: DefaultPlacements,
		rng:        rand.New(rand.NewSource(seed)),
	}
}
