package pruning

import (
	"github.com/katalvlaran/ksolve-go/indexer"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// Table is a pattern-database heuristic for one set: Depth[rank] is the
// number of moves from solved to the coset (or label-tracked tuple) that
// rank names, truncated to unreached (255) once a value would overflow a
// byte, or once construction stopped early under a memory budget.
type Table struct {
	Kind   Kind
	Set    puzzle.Set
	Labels indexer.LabelSet // nil for the two full kinds
	Domain int64
	Depth  []byte
}

// newTable allocates an all-unreached Table of the given domain.
func newTable(kind Kind, set puzzle.Set, labels indexer.LabelSet, domain int64) *Table {
	depth := make([]byte, domain)
	for i := range depth {
		depth[i] = unreached
	}

	return &Table{Kind: kind, Set: set, Labels: labels, Domain: domain, Depth: depth}
}

// Bytes returns the table's memory footprint (one byte per entry).
func (t *Table) Bytes() int64 {
	return t.Domain
}

// rank computes this table's index for sub, the full Substate of t.Set
// taken from the position currently under search.
func (t *Table) rank(sub puzzle.Substate) (int64, error) {
	switch t.Kind {
	case KindFullPerm:
		return indexer.NewFullPermIndex(t.Set).Rank(sub)
	case KindFullOri:
		return indexer.NewFullOriIndex(t.Set).Rank(sub)
	case KindPartialPerm:
		positions, err := labelPositions(sub.Perm, t.Labels)
		if err != nil {
			return 0, err
		}

		return indexer.NewPartialPermIndex(t.Set.Size, t.Labels, true).Rank(positions)
	case KindPartialOri:
		positions, err := labelPositions(sub.Perm, t.Labels)
		if err != nil {
			return 0, err
		}
		orientations := make([]int, len(t.Labels))
		for i, pos := range positions {
			orientations[i] = sub.Ori[pos-1]
		}

		return indexer.NewPartialOriIndex(t.Set.Modulus, t.Labels).Rank(orientations)
	default:
		return 0, ErrTableKindMismatch
	}
}

// Lookup returns the table's depth estimate for sub, or 0 when the rank
// falls on a truncated (unreached) entry — the conservative value that
// keeps the heuristic admissible.
func (t *Table) Lookup(sub puzzle.Substate) (int, error) {
	r, err := t.rank(sub)
	if err != nil {
		return 0, err
	}
	d := t.Depth[r]
	if d == unreached {
		return 0, nil
	}

	return int(d), nil
}

// labelPositions returns, for each label in labels (in order), the 1-based
// position perm currently holds it at. perm must contain each label in
// labels exactly once (guaranteed when Set.UniquePerm holds, the
// precondition for every partial table — see indexer's LabelSet doc).
func labelPositions(perm []int, labels indexer.LabelSet) ([]int, error) {
	at := make(map[int]int, len(perm))
	for i, label := range perm {
		at[label] = i + 1
	}
	out := make([]int, len(labels))
	for i, label := range labels {
		pos, ok := at[label]
		if !ok {
			return nil, ErrTableKindMismatch
		}
		out[i] = pos
	}

	return out, nil
}
