package pruning

import (
	"context"

	"github.com/katalvlaran/ksolve-go/indexer"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// Plan names the table kind and (for partial kinds) the tracked LabelSet
// Select chose for one set, without yet paying for construction.
type Plan struct {
	Kind   Kind
	Labels indexer.LabelSet
	Domain int64
}

// Selection is what Select found for one set: an independent plan for the
// permutation domain and one for the orientation domain. Either may be
// nil when no candidate fit; both may be non-nil, since the two domains
// are budgeted and built independently and the heuristic takes their max
// (plus whichever Limited variant applies) rather than picking only one.
type Selection struct {
	Perm *Plan
	Ori  *Plan
}

// Select picks, independently, a permutation-domain table (full-perm,
// falling back to partial-perm) and an orientation-domain table
// (full-ori, falling back to partial-ori) for set, under the remaining
// aggregate memory budget. remaining is Budget.MemoryBytes minus whatever
// earlier sets in declaration order — and, within one set, the
// permutation-domain plan itself — have already committed; Select never
// plans past it. Both domains may be satisfied for the same set: the two
// are not alternatives, they are the two axes spec's four-table model
// names (perm_full/perm_partial vs ori_full/ori_partial), and a set can
// legitimately carry one table from each.
//
// Label-tracked partial tables (see indexer's LabelSet) require every
// tracked label to be individually addressable, so they are only
// attempted when set.UniquePerm holds; a non-unique set can still receive
// a full-orientation table (which ranks the whole set, not per-label) but
// never a partial one of either domain.
func Select(set puzzle.Set, budget puzzle.Budget, remaining int64) (Selection, error) {
	var sel Selection
	r := remaining

	if set.UniquePerm {
		sel.Perm = selectPerm(set, budget, r)
	}
	if sel.Perm != nil {
		r -= sel.Perm.Domain
		if r < 0 {
			r = 0
		}
	}

	if set.Modulus > 1 {
		sel.Ori = selectOri(set, budget, r)
	}

	if sel.Perm == nil && sel.Ori == nil {
		return Selection{}, ErrNoCandidateTable
	}

	return sel, nil
}

// selectPerm attempts full-permutation, falling back to partial-
// permutation, under capBytes. Returns nil when neither fits.
func selectPerm(set puzzle.Set, budget puzzle.Budget, capBytes int64) *Plan {
	if domain := indexer.FullPermDomain(set.Size, set.PParity); domain <= DefaultMaxFullTable && domain <= capBytes {
		return &Plan{Kind: KindFullPerm, Domain: domain}
	}

	permCap := budget.PartialPermCap()
	if permCap > capBytes {
		permCap = capBytes
	}
	if labels, domain, ok := growLabelSet(set.Size, permCap, func(k int) int64 {
		return indexer.PartialPermDomain(set.Size, k, true)
	}); ok {
		return &Plan{Kind: KindPartialPerm, Labels: labels, Domain: domain}
	}

	return nil
}

// selectOri attempts full-orientation, falling back to partial-
// orientation (only when set.UniquePerm, since partial-orientation keys
// on tracked label positions), under capBytes. Returns nil when neither
// fits.
func selectOri(set puzzle.Set, budget puzzle.Budget, capBytes int64) *Plan {
	if domain := indexer.FullOriDomain(set.Size, set.Modulus, set.OParity); domain <= DefaultMaxFullTable && domain <= capBytes {
		return &Plan{Kind: KindFullOri, Domain: domain}
	}

	if !set.UniquePerm {
		return nil
	}

	oriCap := budget.PartialOriCap()
	if oriCap > capBytes {
		oriCap = capBytes
	}
	if labels, domain, ok := growLabelSet(set.Size, oriCap, func(k int) int64 {
		return indexer.PartialOriDomain(set.Modulus, k)
	}); ok {
		return &Plan{Kind: KindPartialOri, Labels: labels, Domain: domain}
	}

	return nil
}

// growLabelSet grows a tracked LabelSet over labels 1..maxLabel, in
// ascending order, stopping just before domainFn(k+1) would exceed
// capBytes. Returns false when not even one label fits.
func growLabelSet(maxLabel int, capBytes int64, domainFn func(k int) int64) (indexer.LabelSet, int64, bool) {
	k := 0
	for k < maxLabel {
		next := domainFn(k + 1)
		if next > capBytes {
			break
		}
		k++
	}
	if k == 0 {
		return nil, 0, false
	}
	ids := make([]int, k)
	for i := range ids {
		ids[i] = i + 1
	}
	labels, err := indexer.NewLabelSet(ids, maxLabel)
	if err != nil {
		return nil, 0, false
	}

	return labels, domainFn(k), true
}

// buildFromPlan dispatches to BuildFull or BuildPartial per plan.Kind,
// returning nil for a nil plan or a kind the builder rejects. On ctx
// cancellation it returns the table as built so far, which BuildFull/
// BuildPartial hand back alongside ctx.Err(); that error is dropped here.
func buildFromPlan(ctx context.Context, plan *Plan, sets []puzzle.Set, setID int, moves []puzzle.Move) *Table {
	if plan == nil {
		return nil
	}

	var t *Table
	switch plan.Kind {
	case KindFullPerm, KindFullOri:
		t, _ = BuildFull(ctx, plan.Kind, sets, setID, moves)
	case KindPartialPerm, KindPartialOri:
		t, _ = BuildPartial(ctx, plan.Kind, sets[setID], setID, plan.Labels, moves)
	}

	return t
}
