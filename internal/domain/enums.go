package domain

// Outcome is the tri-state result of a solve.
type Outcome int

const (
	Solved Outcome = iota
	Unsolvable
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case TimedOut:
		return "timed out"
	}
	return "unknown"
}
