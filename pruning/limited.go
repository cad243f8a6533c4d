package pruning

import (
	"context"

	"github.com/katalvlaran/ksolve-go/puzzle"
)

// BuildLimited builds, per set named in any of limits' Owned blocks, an
// independent permutation-domain and orientation-domain Limited table
// (mirroring BuildAll's Perm/Ori split), over the move subset that
// excludes the limit's own group (the generator named directly, or every
// power sharing its parent when IsGroup holds). These tables are only a
// valid lower bound once their owning limit is actually exhausted —
// Heuristic.Evaluate gates on that via its exhausted argument — since
// until then the excluded moves are still legal and a table built
// without them could overestimate the true remaining distance.
//
// BuildLimited spends its own independent slice of budget.MemoryBytes,
// separate from BuildAll's Perm/Ori allowance: a Limited table only ever
// narrows the heuristic further once consulted, so its construction is
// additive spend rather than competing with the unrestricted tables for
// the same budget line. ctx cancellation stops further construction the
// same way BuildAll handles it.
func BuildLimited(ctx context.Context, sets []puzzle.Set, moves []puzzle.Move, limits []puzzle.MoveLimit, budget puzzle.Budget) (perm, ori []*Table) {
	perm = make([]*Table, len(sets))
	ori = make([]*Table, len(sets))
	remaining := budget.MemoryBytes

	for _, lim := range limits {
		group := groupMoveIDs(moves, lim)
		reduced := excludeGroup(moves, group)

		for setID := range lim.Owned {
			select {
			case <-ctx.Done():
				return perm, ori
			default:
			}

			if setID >= len(sets) || perm[setID] != nil || ori[setID] != nil {
				continue
			}
			sel, err := Select(sets[setID], budget, remaining)
			if err != nil {
				continue
			}

			if t := buildFromPlan(ctx, sel.Perm, sets, setID, reduced); t != nil {
				perm[setID] = t
				remaining -= t.Bytes()
				if remaining < 0 {
					remaining = 0
				}
			}
			if t := buildFromPlan(ctx, sel.Ori, sets, setID, reduced); t != nil {
				ori[setID] = t
				remaining -= t.Bytes()
				if remaining < 0 {
					remaining = 0
				}
			}
		}
	}

	return perm, ori
}

// groupMoveIDs returns the set of move ids lim restricts: every power
// sharing lim.MoveOrGroupID as parent when lim.IsGroup, otherwise just
// that single move id.
func groupMoveIDs(moves []puzzle.Move, lim puzzle.MoveLimit) map[int]bool {
	group := make(map[int]bool)
	if !lim.IsGroup {
		group[lim.MoveOrGroupID] = true

		return group
	}
	for _, mv := range moves {
		if mv.ParentID == lim.MoveOrGroupID {
			group[mv.ID] = true
		}
	}

	return group
}

// excludeGroup returns moves with every id in group removed, preserving
// declaration order.
func excludeGroup(moves []puzzle.Move, group map[int]bool) []puzzle.Move {
	out := make([]puzzle.Move, 0, len(moves))
	for _, mv := range moves {
		if group[mv.ID] {
			continue
		}
		out = append(out, mv)
	}

	return out
}
