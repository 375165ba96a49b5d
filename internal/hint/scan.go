package hint

import (
	"math/rand"
	"time"

	"github.com/gridden/sudoku/internal/domain"
)

// RandomScan picks a revealable cell by walking the rows in a shuffled
// order and scanning each row in a random direction.
type RandomScan struct {
	rng *rand.Rand
}

// NewRandomScan builds a scanner. A zero seed uses the current time.
func NewRandomScan(seed int64) *RandomScan {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomScan{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns the first non-empty cell of the remaining grid found along
// a shuffled row permutation, each row scanned left-to-right or
// right-to-left at random. Rows are visited without replacement. False
// when the remaining grid holds nothing to reveal.
func (h *RandomScan) Pick(remaining *domain.Grid) (domain.CellCoord, uint8, bool) {
	order := [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	h.rng.Shuffle(9, func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, r := range order {
		leftToRight := h.rng.Intn(2) == 0
		for i := 0; i < 9; i++ {
			c := i
			if !leftToRight {
				c = 8 - i
			}
			if v := remaining[r][c]; v != domain.Empty {
				return domain.CellCoord{Row: r, Col: c}, v, true
			}
		}
	}
	return domain.CellCoord{}, 0, false
}
