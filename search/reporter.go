package search

import (
	"time"

	"github.com/katalvlaran/ksolve-go/puzzle"
)

// Solution is one emitted move sequence, in the metric Options.HTM
// selects.
type Solution struct {
	Moves []puzzle.Move
	Depth int
}

// Reporter observes search progress; cmd/solver's implementation writes
// these events to standard output (the per-depth wall-clock log and
// per-solution lines). A nil Reporter is valid everywhere one is
// accepted — progress is simply not observed.
type Reporter interface {
	// DepthStart is called once the outer loop begins searching depth d.
	DepthStart(d int)

	// DepthDone is called once depth d's search (all of it, including
	// every solution found at that depth) has returned.
	DepthDone(d int, elapsed time.Duration)

	// Solution is called once per emitted solution, in discovery order.
	Solution(sol Solution)
}
