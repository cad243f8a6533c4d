package puzzle_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ksolve-go/puzzle"
)

func twoSet(t *testing.T) []puzzle.Set {
	t.Helper()
	corners, err := puzzle.NewSet("corners", 4, 3)
	if err != nil {
		t.Fatalf("NewSet(corners): %v", err)
	}
	edges, err := puzzle.NewSet("edges", 4, 2)
	if err != nil {
		t.Fatalf("NewSet(edges): %v", err)
	}

	return []puzzle.Set{corners, edges}
}

// cycleMove returns a move on the corners set only: a 3-cycle (1 2 3)(4)
// with orientation twist (+1, +2, 0, 0) mod 3, and identity on edges.
func cycleMove(sets []puzzle.Set) puzzle.Move {
	act := puzzle.Identity(sets)
	act.Sets[0] = puzzle.Substate{
		Perm: []int{2, 3, 1, 4},
		Ori:  []int{1, 2, 0, 0},
	}

	return puzzle.Move{Name: "R", ID: 0, ParentID: 0, QTM: 1, Action: act}
}

func TestCompose_IdentityIsNoOp(t *testing.T) {
	sets := twoSet(t)
	id := puzzle.Identity(sets)
	mv := puzzle.Move{Name: "id", Action: puzzle.Identity(sets)}

	got := puzzle.Compose(sets, id, mv)
	for s := range sets {
		for i := 0; i < sets[s].Size; i++ {
			if got.Sets[s].Perm[i] != id.Sets[s].Perm[i] {
				t.Errorf("set %d idx %d: Perm = %d, want %d", s, i, got.Sets[s].Perm[i], id.Sets[s].Perm[i])
			}
		}
	}
}

// TestCompose_OrderMatchesInverse checks the composition-identity
// property: applying a move its compiled order times returns to solved.
func TestCompose_OrderMatchesInverse(t *testing.T) {
	sets := twoSet(t)
	mv := cycleMove(sets)
	order := 3 // (1 2 3) has order 3; orientation twists also cancel mod 3

	pos := puzzle.Identity(sets)
	for i := 0; i < order; i++ {
		pos = puzzle.Compose(sets, pos, mv)
	}
	solved := puzzle.Identity(sets)
	if !puzzle.EqualModuloIgnore(pos, solved, puzzle.Position{}) {
		t.Errorf("after %d applications, position is not solved: %+v", order, pos)
	}

	inv := puzzle.Inverse(sets, mv, order)
	combined := puzzle.Compose(sets, mv.Action, puzzle.Move{Action: inv})
	if !puzzle.EqualModuloIgnore(combined, solved, puzzle.Position{}) {
		t.Errorf("mv composed with its Inverse is not solved: %+v", combined)
	}
}

func TestCompose_UnknownPermPropagates(t *testing.T) {
	sets := twoSet(t)
	pos := puzzle.Identity(sets)
	pos.Sets[0].Perm[0] = puzzle.UnknownPerm

	mv := cycleMove(sets)
	out := puzzle.Compose(sets, pos, mv)

	// mv's Perm maps destination index 2 <- source index 0 (Perm[2]==1),
	// so the unknown label should appear at destination index 2.
	if out.Sets[0].Perm[2] != puzzle.UnknownPerm {
		t.Errorf("Perm[2] = %d, want UnknownPerm", out.Sets[0].Perm[2])
	}
}

func TestEqualModuloIgnore(t *testing.T) {
	sets := twoSet(t)
	solved := puzzle.Identity(sets)
	scrambled := solved.Clone()
	scrambled.Sets[1].Perm[0] = 2
	scrambled.Sets[1].Perm[1] = 1

	if puzzle.EqualModuloIgnore(scrambled, solved, puzzle.Position{}) {
		t.Fatalf("scrambled position compared equal to solved with no ignore mask")
	}

	ignore := puzzle.ZeroMask(sets)
	ignore.Sets[1].Perm[0] = 1
	ignore.Sets[1].Perm[1] = 1
	if !puzzle.EqualModuloIgnore(scrambled, solved, ignore) {
		t.Errorf("scrambled position should compare equal once the swapped indices are ignored")
	}
}

func TestNewSet_Validation(t *testing.T) {
	if _, err := puzzle.NewSet("x", 0, 3); !errors.Is(err, puzzle.ErrBadSetSize) {
		t.Errorf("size 0: want ErrBadSetSize, got %v", err)
	}
	if _, err := puzzle.NewSet("x", 4, -1); !errors.Is(err, puzzle.ErrBadModulus) {
		t.Errorf("modulus -1: want ErrBadModulus, got %v", err)
	}
	s, err := puzzle.NewSet("x", 4, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.OParity || !s.PParity {
		t.Errorf("fresh set should start with OParity/PParity true, got %+v", s)
	}
}
