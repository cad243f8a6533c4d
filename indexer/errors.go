package indexer

import "errors"

// Sentinel errors for the indexer package, following the project-wide
// policy: package-prefixed, never wrapped with fmt.Errorf at the
// definition site, matched by callers via errors.Is.
var (
	// ErrLengthMismatch indicates a permutation or orientation slice whose
	// length disagrees with the Set it is being ranked against.
	ErrLengthMismatch = errors.New("indexer: length mismatch")

	// ErrIndexOutOfRange indicates an Unrank call with an index outside
	// [0, domain size) for the requested index family.
	ErrIndexOutOfRange = errors.New("indexer: index out of range")

	// ErrEmptyPositionSet indicates a partial index was requested over an
	// empty position subset P.
	ErrEmptyPositionSet = errors.New("indexer: empty position subset")

	// ErrPositionOutOfRange indicates a position subset P contains an index
	// outside [0, n) for the owning set's size n.
	ErrPositionOutOfRange = errors.New("indexer: position subset index out of range")
)
