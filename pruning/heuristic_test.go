package pruning_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ksolve-go/pruning"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

func TestHeuristic_EvaluateReadsThePermTableDepth(t *testing.T) {
	sets, moves := threeCycleSet(t)
	perm, err := pruning.BuildFull(context.Background(), pruning.KindFullPerm, sets, 0, moves)
	if err != nil {
		t.Fatalf("BuildFull: %v", err)
	}

	h := pruning.Heuristic{Perm: []*pruning.Table{perm}}

	solved := puzzle.Position{Sets: []puzzle.Substate{puzzle.NewSubstate(3)}}
	solved.Sets[0].Perm = []int{1, 2, 3}
	if v := h.Evaluate(solved, nil); v != 0 {
		t.Errorf("Evaluate(solved) = %d, want 0", v)
	}

	oneMove := puzzle.Position{Sets: []puzzle.Substate{puzzle.NewSubstate(3)}}
	oneMove.Sets[0].Perm = []int{2, 3, 1}
	if v := h.Evaluate(oneMove, nil); v != 1 {
		t.Errorf("Evaluate(oneMove) = %d, want 1", v)
	}
}

// TestHeuristic_EvaluateCombinesPermAndOriForTheSameSet covers that a set
// carrying both a permutation-domain and an orientation-domain table has
// both consulted, taking their max — the behavior Select's independence
// fix exists to feed.
func TestHeuristic_EvaluateCombinesPermAndOriForTheSameSet(t *testing.T) {
	sets, moves := threeCycleSet(t)
	perm, err := pruning.BuildFull(context.Background(), pruning.KindFullPerm, sets, 0, moves)
	if err != nil {
		t.Fatalf("BuildFull: %v", err)
	}
	// An empty move list can never leave the identity, so every non-
	// identity entry reads back as unreached (0) — a deliberately weaker
	// "orientation" table, to check that the stronger Perm table still
	// wins the max.
	ori, err := pruning.BuildFull(context.Background(), pruning.KindFullPerm, sets, 0, nil)
	if err != nil {
		t.Fatalf("BuildFull (ori stand-in): %v", err)
	}
	h := pruning.Heuristic{Perm: []*pruning.Table{perm}, Ori: []*pruning.Table{ori}}

	oneMove := puzzle.Position{Sets: []puzzle.Substate{puzzle.NewSubstate(3)}}
	oneMove.Sets[0].Perm = []int{2, 3, 1}
	if v := h.Evaluate(oneMove, nil); v != 1 {
		t.Errorf("Evaluate = %d, want 1 (max(Perm=1, Ori=0))", v)
	}
}

func TestHeuristic_EvaluateWithNoTablesIsZero(t *testing.T) {
	h := pruning.Heuristic{}
	p := puzzle.Position{Sets: []puzzle.Substate{puzzle.NewSubstate(3)}}
	if v := h.Evaluate(p, nil); v != 0 {
		t.Errorf("Evaluate = %d, want 0 with no tables configured", v)
	}
}

func TestHeuristic_LimitedTableOnlyUsedWhenExhausted(t *testing.T) {
	sets, moves := threeCycleSet(t)
	perm, err := pruning.BuildFull(context.Background(), pruning.KindFullPerm, sets, 0, moves)
	if err != nil {
		t.Fatalf("BuildFull: %v", err)
	}
	// An empty move list can never leave the identity, so every non-
	// identity entry reads back as unreached (0) — standing in for the
	// "this move is no longer available" restricted table.
	limited, err := pruning.BuildFull(context.Background(), pruning.KindFullPerm, sets, 0, nil)
	if err != nil {
		t.Fatalf("BuildFull (limited): %v", err)
	}
	h := pruning.Heuristic{Perm: []*pruning.Table{perm}, LimitedPerm: []*pruning.Table{limited}}

	oneMove := puzzle.Position{Sets: []puzzle.Substate{puzzle.NewSubstate(3)}}
	oneMove.Sets[0].Perm = []int{2, 3, 1}

	if v := h.Evaluate(oneMove, nil); v != 1 {
		t.Errorf("Evaluate with limit not exhausted = %d, want 1 (from Perm, LimitedPerm ignored)", v)
	}
	if v := h.Evaluate(oneMove, []bool{true}); v != 1 {
		t.Errorf("Evaluate with limit exhausted = %d, want 1 (Perm still contributes, LimitedPerm reads 0/unreached)", v)
	}
}
