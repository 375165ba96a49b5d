package generator

import (
	"context"
	"time"

	"github.com/gridden/sudoku/internal/domain"
	"github.com/gridden/sudoku/internal/ports"
	"github.com/gridden/sudoku/internal/validator"
)

// Generate runs the seed-validate-solve loop until a seeding survives it.
// The returned puzzle is the seeded grid as handed to the player and the
// returned solution is its first-found completion. Seedings that violate
// a rule or fail to solve within the solver's budget are discarded and
// the loop restarts from a cleared grid.
func (g *Seeded) Generate(ctx context.Context) (domain.Grid, domain.Grid, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}
	placements := g.Placements
	if placements <= 0 {
		placements = DefaultPlacements
	}
	for attempt := 0; g.MaxAttempts == 0 || attempt < g.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return domain.Grid{}, domain.Grid{}, st, err
		}
		work := domain.NewGrid()
		for i := 0; i < placements; i++ {
			work[g.rng.Intn(9)][g.rng.Intn(9)] = uint8(1 + g.rng.Intn(9))
		}
		if ok, _ := validator.Validate(&work); !ok {
			continue
		}
		puzzle := work // value copy taken before the solve mutates work
		out, sst := g.Solver.Solve(ctx, &work)
		st.Nodes += sst.Nodes
		if out != domain.Solved {
			continue
		}
		st.Duration = time.Since(start)
		return puzzle, work, st, nil
	}
	st.Duration = time.Since(start)
	return domain.Grid{}, domain.Grid{}, st, ErrGenerationFailed
}
