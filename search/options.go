package search

import "github.com/katalvlaran/ksolve-go/puzzle"

// Options configures one Run: the scramble-file meta-commands that
// persist across scrambles until overwritten.
type Options struct {
	// MaxDepth bounds the outer depth-bound loop (scramble's MaxDepth,
	// default 999).
	MaxDepth int

	// Slack is how many depths past the first solution the outer loop
	// keeps searching, emitting every solution it finds along the way.
	Slack int

	// MaxResults caps the total number of solutions Run emits.
	MaxResults int

	// HTM selects the half-turn metric (weight 1 per move) when true;
	// false selects the quarter-turn metric (weight mv.QTM per move).
	HTM bool

	// Ignore masks which coordinates must match solved; a zero value
	// (len(Sets) == 0) means "ignore nothing".
	Ignore puzzle.Position

	// Limits caps how many times a move (or its whole parent group, when
	// IsGroup holds) may appear in one emitted solution.
	Limits []puzzle.MoveLimit

	// Blocks are bandaging constraints: a move that would carry a piece
	// across a block boundary is skipped entirely during search.
	Blocks []puzzle.Block
}
