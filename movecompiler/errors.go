package movecompiler

import "errors"

// Sentinel errors for the movecompiler package.
var (
	// ErrShapeMismatch indicates a generator's Action does not have one
	// Substate per declared Set, or a Substate's arrays disagree with that
	// Set's declared size.
	ErrShapeMismatch = errors.New("movecompiler: generator action shape mismatch")

	// ErrOrderNotFound indicates a generator's cyclic order was not reached
	// within orderSearchLimit self-compositions, almost always signalling a
	// malformed (non-bijective) Action rather than a legitimately huge
	// order.
	ErrOrderNotFound = errors.New("movecompiler: generator cyclic order exceeds search limit")

	// ErrUnknownMove indicates a move name or id referenced by a later
	// command (e.g. ForbiddenPairs) was never compiled.
	ErrUnknownMove = errors.New("movecompiler: unknown move")
)

// orderSearchLimit bounds the self-composition search for a generator's
// cyclic order. No realistic puzzle generator exceeds a few hundred;
// anything beyond this is a malformed definition, not a slow puzzle.
const orderSearchLimit = 100000
