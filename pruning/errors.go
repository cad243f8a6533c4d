package pruning

import "errors"

// Sentinel errors for the pruning package.
var (
	// ErrNoCandidateTable indicates every table kind was rejected for a
	// set (e.g. a non-unique permutation with too large an orientation
	// domain and no byte budget left for a partial table).
	ErrNoCandidateTable = errors.New("pruning: no candidate table for set")

	// ErrTableKindMismatch indicates a Kind the called builder or ranker
	// does not handle (BuildFull given a partial kind, BuildPartial given a
	// full kind), or, from Table.Lookup, a substate whose permutation lacks
	// one of the table's tracked labels.
	ErrTableKindMismatch = errors.New("pruning: position does not match table's set")
)

// DefaultMaxFullTable bounds the domain size a full-permutation or full-
// orientation table may occupy before the builder falls back to a partial
// table, keeping a single full table under 50 MB (about 48 MiB) at one
// byte per entry.
const DefaultMaxFullTable int64 = 50_000_000

// unreached is the depth-array sentinel meaning "no path found yet";
// truncated entries are left at this value and the heuristic reads them
// as 0, preserving admissibility.
const unreached byte = 255
