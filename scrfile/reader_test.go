package scrfile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/ksolve-go/deffile"
	"github.com/katalvlaran/ksolve-go/puzzle"
	"github.com/katalvlaran/ksolve-go/scrfile"
)

func tinyRuleset(t *testing.T) *deffile.Ruleset {
	t.Helper()
	src := `Set A 3 0
Move R
A
2 3 1
End
Solved
A
1 2 3
End
`
	rs, err := deffile.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("deffile.Read: %v", err)
	}

	return rs
}

// TestRead_ScrambleAppliesExplicitPosition covers a plain Scramble block
// with no "?" tokens, and confirms meta-command snapshotting works.
func TestRead_ScrambleAppliesExplicitPosition(t *testing.T) {
	rs := tinyRuleset(t)
	src := `MaxDepth 12
Slack 1
QTM
Scramble test
A
2 3 1
End
`
	defs, err := scrfile.Read(strings.NewReader(src), rs, 0, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("len(defs) = %d, want 1", len(defs))
	}
	d := defs[0]
	if d.Name != "test" {
		t.Errorf("Name = %q", d.Name)
	}
	if d.MaxDepth != 12 || d.Slack != 1 || d.HTM {
		t.Errorf("snapshot = %+v, want MaxDepth 12, Slack 1, HTM false", d)
	}
	if d.State.Sets[0].Perm[0] != 2 {
		t.Errorf("State = %+v", d.State)
	}
}

// TestRead_ScrambleQuestionTokensMaskIgnore covers "?" and "?N" entries:
// both mark that coordinate ignored, the bare "?" with an unknown label.
func TestRead_ScrambleQuestionTokensMaskIgnore(t *testing.T) {
	rs := tinyRuleset(t)
	src := `Scramble partial
A
? ?2 3
End
`
	defs, err := scrfile.Read(strings.NewReader(src), rs, 0, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	d := defs[0]
	if d.State.Sets[0].Perm[0] != puzzle.UnknownPerm {
		t.Errorf("Perm[0] = %d, want UnknownPerm", d.State.Sets[0].Perm[0])
	}
	if d.State.Sets[0].Perm[1] != 2 {
		t.Errorf("Perm[1] = %d, want 2", d.State.Sets[0].Perm[1])
	}
	if d.Ignore.Sets[0].Perm[0] != 1 || d.Ignore.Sets[0].Perm[1] != 1 {
		t.Errorf("Ignore = %+v, want first two masked", d.Ignore.Sets[0])
	}
	if d.Ignore.Sets[0].Perm[2] != 0 {
		t.Errorf("Ignore.Perm[2] = %d, want 0 (unmasked)", d.Ignore.Sets[0].Perm[2])
	}
}

// TestRead_ScrambleAlgComposesNamedMoves covers applying a sequence of
// named moves from solved.
func TestRead_ScrambleAlgComposesNamedMoves(t *testing.T) {
	rs := tinyRuleset(t)
	src := `ScrambleAlg doubled
R R
End
`
	defs, err := scrfile.Read(strings.NewReader(src), rs, 0, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	d := defs[0]
	if d.Name != "doubled" {
		t.Errorf("Name = %q, want unannotated since every move resolved", d.Name)
	}
	// R is the 3-cycle (2 3 1); applying it twice gives (3 1 2).
	if d.State.Sets[0].Perm[0] != 3 || d.State.Sets[0].Perm[1] != 1 || d.State.Sets[0].Perm[2] != 2 {
		t.Errorf("State = %+v, want {3 1 2}", d.State.Sets[0].Perm)
	}
}

// TestRead_ScrambleAlgSkipsUnknownMoveWithAnnotation covers the
// unknown-move tolerance: the move is skipped, not an error, and the
// scramble's name gets the skip annotation appended.
func TestRead_ScrambleAlgSkipsUnknownMoveWithAnnotation(t *testing.T) {
	rs := tinyRuleset(t)
	src := `ScrambleAlg partial
R Bogus R
End
`
	defs, err := scrfile.Read(strings.NewReader(src), rs, 0, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	d := defs[0]
	if !strings.Contains(d.Name, "(skipped some moves)") {
		t.Errorf("Name = %q, want skip annotation", d.Name)
	}
	if d.State.Sets[0].Perm[0] != 3 {
		t.Errorf("State = %+v, want R applied twice despite the skip", d.State.Sets[0].Perm)
	}
}

// TestRead_RandomScrambleProducesAReachablePosition covers the random-walk
// path: the block's own token list is discarded and a position is
// produced by a deterministic RNG seed.
func TestRead_RandomScrambleProducesAReachablePosition(t *testing.T) {
	rs := tinyRuleset(t)
	src := `RandomScramble shuffled
ignored tokens here
End
`
	defs, err := scrfile.Read(strings.NewReader(src), rs, 42, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("len(defs) = %d, want 1", len(defs))
	}
	if !defs[0].State.Sets[0].IsUniquePermutation() {
		t.Errorf("random scramble produced a non-permutation state: %+v", defs[0].State)
	}
}

// TestRead_MoveLimitsGroupSharesOneCount covers the "*" suffix sharing a
// single Remaining counter across every power of a generator.
func TestRead_MoveLimitsGroupSharesOneCount(t *testing.T) {
	rs := tinyRuleset(t)
	src := `MoveLimits
R* 4
End
Scramble afterLimits
End
`
	defs, err := scrfile.Read(strings.NewReader(src), rs, 0, 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	d := defs[0]
	if len(d.Limits) != 1 {
		t.Fatalf("Limits = %+v, want one entry", d.Limits)
	}
	if !d.Limits[0].IsGroup || d.Limits[0].Remaining != 4 {
		t.Errorf("Limits[0] = %+v, want IsGroup true, Remaining 4", d.Limits[0])
	}
}

// TestRead_UnknownCommandFails covers the default dispatch branch.
func TestRead_UnknownCommandFails(t *testing.T) {
	rs := tinyRuleset(t)
	_, err := scrfile.Read(strings.NewReader("Bogus\nEnd\n"), rs, 0, 0)
	if !errors.Is(err, scrfile.ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
}

// TestRead_UnknownSetInScrambleFails covers a Scramble block naming a set
// absent from the ruleset.
func TestRead_UnknownSetInScrambleFails(t *testing.T) {
	rs := tinyRuleset(t)
	src := `Scramble bad
Z
1
End
`
	_, err := scrfile.Read(strings.NewReader(src), rs, 0, 0)
	if !errors.Is(err, scrfile.ErrUnknownSet) {
		t.Fatalf("err = %v, want ErrUnknownSet", err)
	}
}
