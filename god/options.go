package god

import "github.com/katalvlaran/ksolve-go/puzzle"

// Metric selects which per-move weight depths are measured in.
type Metric int

const (
	// HTM charges every move, of any QTM weight, exactly 1.
	HTM Metric = iota
	// QTM charges every move its own Move.QTM weight.
	QTM
)

// Options configures one full-space enumeration.
type Options struct {
	Metric Metric

	// MaxDepth stops enumeration once a position would be discovered past
	// this depth. 0 means unbounded (the caller is responsible for having
	// enough memory to hold the whole reachable space).
	MaxDepth int

	// Forbidden, when non-nil, skips expanding a move that may not
	// directly follow the move that reached a given position. This only
	// prunes redundant expansion work; it never changes which positions
	// are found or at what depth, since every position reachable via a
	// forbidden-then-move path is also reachable via some other path the
	// forbidden pair does not block.
	Forbidden *puzzle.ForbiddenPairs
}

// LevelCount is one emitted depth and the number of distinct positions
// first reached at that depth.
type LevelCount struct {
	Depth int
	Count int64
}

func moveCost(mv puzzle.Move, metric Metric) int {
	if metric == QTM {
		return mv.QTM
	}

	return 1
}
