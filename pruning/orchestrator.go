package pruning

import (
	"context"

	"github.com/katalvlaran/ksolve-go/puzzle"
)

// BuildAll builds, per set, an independent permutation-domain table and
// orientation-domain table (Select's two halves), spending the aggregate
// memory budget greedily in declaration order: each set's permutation
// table first, then its orientation table, then the next set, each
// consuming from whatever earlier construction left behind. A set for
// which Select finds no candidate in a domain (ErrNoCandidateTable, or a
// domain Select simply left nil) is left with a nil Table in that
// domain's slice; the caller's heuristic treats a nil Table as
// contributing 0, same as a truncated entry.
//
// ctx is checked once per BFS dequeue inside BuildFull/BuildPartial; a
// cancellation stops BuildAll from attempting any further set (the tables
// already built are returned as-is) rather than discarding everything
// built so far.
func BuildAll(ctx context.Context, sets []puzzle.Set, moves []puzzle.Move, budget puzzle.Budget) (perm, ori []*Table) {
	perm = make([]*Table, len(sets))
	ori = make([]*Table, len(sets))
	remaining := budget.MemoryBytes

	for id, set := range sets {
		select {
		case <-ctx.Done():
			return perm, ori
		default:
		}

		sel, err := Select(set, budget, remaining)
		if err != nil {
			continue
		}

		if t := buildFromPlan(ctx, sel.Perm, sets, id, moves); t != nil {
			perm[id] = t
			remaining -= t.Bytes()
			if remaining < 0 {
				remaining = 0
			}
		}
		if t := buildFromPlan(ctx, sel.Ori, sets, id, moves); t != nil {
			ori[id] = t
			remaining -= t.Bytes()
			if remaining < 0 {
				remaining = 0
			}
		}
	}

	return perm, ori
}
