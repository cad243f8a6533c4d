package pruning_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ksolve-go/indexer"
	"github.com/katalvlaran/ksolve-go/movecompiler"
	"github.com/katalvlaran/ksolve-go/pruning"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// threeCycleSet compiles a single 3-piece unique set with one even
// 3-cycle generator R (and its derived power R'), so the compiled move
// group generates exactly the alternating subgroup of S_3: identity, R,
// R^2, each reachable within one move of each other.
func threeCycleSet(t *testing.T) ([]puzzle.Set, []puzzle.Move) {
	t.Helper()
	set, err := puzzle.NewSet("A", 3, 0)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	if err := set.DeriveFromSolved([]int{1, 2, 3}); err != nil {
		t.Fatalf("DeriveFromSolved: %v", err)
	}

	c := movecompiler.NewCompiler([]puzzle.Set{set})
	action := puzzle.Identity([]puzzle.Set{set})
	action.Sets[0].Perm = []int{2, 3, 1}
	if _, err := c.AddGenerator("R", action); err != nil {
		t.Fatalf("AddGenerator: %v", err)
	}

	return c.Sets(), c.Moves()
}

func TestBuildFull_FullPermReachesExactlyTheGeneratedSubgroup(t *testing.T) {
	sets, moves := threeCycleSet(t)
	if !sets[0].PParity {
		t.Fatalf("PParity = false, want true for an even-only generator")
	}

	table, err := pruning.BuildFull(context.Background(), pruning.KindFullPerm, sets, 0, moves)
	if err != nil {
		t.Fatalf("BuildFull: %v", err)
	}
	if table.Domain != 3 {
		t.Fatalf("Domain = %d, want 3 (3!/2, PParity halves the range)", table.Domain)
	}

	idx := indexer.NewFullPermIndex(sets[0])
	identity := puzzle.NewSubstate(3)
	identity.Perm = []int{1, 2, 3}
	rank, err := idx.Rank(identity)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if table.Depth[rank] != 0 {
		t.Errorf("Depth[identity] = %d, want 0", table.Depth[rank])
	}

	for r := int64(0); r < table.Domain; r++ {
		if table.Depth[r] == 255 {
			t.Errorf("Depth[%d] unreached, want every entry reachable within the generated subgroup", r)
		}
		if table.Depth[r] > 1 {
			t.Errorf("Depth[%d] = %d, want <= 1 (group order 3, generator + its inverse power both one move)", r, table.Depth[r])
		}
	}
}

func TestBuildPartial_AdmissibleAgainstFullPermDistances(t *testing.T) {
	sets, moves := threeCycleSet(t)

	labels, err := indexer.NewLabelSet([]int{1, 2, 3}, sets[0].MaxLabel)
	if err != nil {
		t.Fatalf("NewLabelSet: %v", err)
	}
	partial, err := pruning.BuildPartial(context.Background(), pruning.KindPartialPerm, sets[0], 0, labels, moves)
	if err != nil {
		t.Fatalf("BuildPartial: %v", err)
	}

	full, err := pruning.BuildFull(context.Background(), pruning.KindFullPerm, sets, 0, moves)
	if err != nil {
		t.Fatalf("BuildFull: %v", err)
	}

	// Tracking every label keeps the partial index injective relative to
	// the full permutation, so the partial table reaches exactly as many
	// entries as the full table's generated subgroup has elements; the
	// remaining entries name the 3 odd permutations the PParity-reduced
	// full table's range drops entirely, and must stay unreached here too
	// (they are genuinely outside the generated subgroup).
	if partial.Domain != 6 {
		t.Fatalf("Domain = %d, want 6 = 3!/0! (falling(3,3), no parity reduction at the partial level)", partial.Domain)
	}
	reached := 0
	for _, d := range partial.Depth {
		if d != 255 {
			reached++
		}
	}
	if reached != int(full.Domain) {
		t.Errorf("partial table reached %d entries, want %d (the full table's generated-subgroup size)", reached, full.Domain)
	}
}

func TestBuildPartial_SingleLabelTracking(t *testing.T) {
	sets, moves := threeCycleSet(t)
	labels, err := indexer.NewLabelSet([]int{1}, sets[0].MaxLabel)
	if err != nil {
		t.Fatalf("NewLabelSet: %v", err)
	}
	table, err := pruning.BuildPartial(context.Background(), pruning.KindPartialPerm, sets[0], 0, labels, moves)
	if err != nil {
		t.Fatalf("BuildPartial: %v", err)
	}
	// tracking a single label among 3 positions: every position is
	// reachable within one move (order-3 group), domain falling(3,1)=3.
	if table.Domain != 3 {
		t.Fatalf("Domain = %d, want 3", table.Domain)
	}
	for _, d := range table.Depth {
		if d == 255 {
			t.Errorf("single-label partial table left a position unreached: %v", table.Depth)
		}
	}
}
