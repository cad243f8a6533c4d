package deffile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ksolve-go/deffile"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// TestRead_SmallPuzzleRoundTrip covers a full small definition file: one
// set, two moves (one of which compiles a cyclic power closure), a
// Solved block, a ForbiddenPairs line, and a Block.
func TestRead_SmallPuzzleRoundTrip(t *testing.T) {
	src := `Name Tiny Test Puzzle
Set A 3 0
Move R
A
2 3 1
End
Move F
A
1 3 2
End
Solved
A
1 2 3
End
ForbiddenPairs
R F
End
Block
A
1 2
End
`
	rs, err := deffile.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "Tiny Test Puzzle", rs.Name)
	require.Len(t, rs.Sets, 1)
	require.Equal(t, 3, rs.Sets[0].Size)
	require.NotEmpty(t, rs.Moves)
	require.Len(t, rs.Solved.Sets, 1)
	require.Equal(t, 1, rs.Solved.Sets[0].Perm[0])
	require.Len(t, rs.Blocks, 1)
	require.True(t, rs.Blocks[0].Has(0, 0))
	require.True(t, rs.Blocks[0].Has(0, 1))

	var rMoveID, fMoveID int = -1, -1
	for _, mv := range rs.Moves {
		if mv.Name == "R" {
			rMoveID = mv.ID
		}
		if mv.Name == "F" {
			fMoveID = mv.ID
		}
	}
	require.GreaterOrEqual(t, rMoveID, 0, "expected R move to be compiled")
	require.GreaterOrEqual(t, fMoveID, 0, "expected F move to be compiled")
	require.True(t, rs.Forbidden.Forbids(rMoveID, fMoveID), "expected F forbidden after R")
}

// TestRead_ForbiddenGroupsClosesAllPairs covers the line-oriented
// ForbiddenGroups syntax: every move named on one line becomes mutually
// forbidden with every other move on that same line, including itself.
func TestRead_ForbiddenGroupsClosesAllPairs(t *testing.T) {
	src := `Set A 2 0
Move X
A
2 1
End
Move Y
A
2 1
End
Solved
A
1 2
End
ForbiddenGroups
X Y
End
`
	rs, err := deffile.Read(strings.NewReader(src))
	require.NoError(t, err)

	var xID, yID int = -1, -1
	for _, mv := range rs.Moves {
		if mv.Name == "X" {
			xID = mv.ID
		}
		if mv.Name == "Y" {
			yID = mv.ID
		}
	}
	require.GreaterOrEqual(t, xID, 0, "expected X move to be compiled")
	require.GreaterOrEqual(t, yID, 0, "expected Y move to be compiled")
	require.True(t, rs.Forbidden.Forbids(xID, yID), "expected Y forbidden after X")
	require.True(t, rs.Forbidden.Forbids(yID, xID), "expected X forbidden after Y")
}

// TestRead_DeprecatedCommandsAreSkipped covers ParallelMoves,
// Multiplicators, and MoveLimits: each is read token-by-token through its
// own End and has no effect on the resulting Ruleset.
func TestRead_DeprecatedCommandsAreSkipped(t *testing.T) {
	src := `Set A 2 0
Move X
A
2 1
End
Solved
A
1 2
End
ParallelMoves
X
End
Multiplicators
1 2 3
End
MoveLimits
X 5
End
`
	rs, err := deffile.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rs.Moves, 1)
	require.Equal(t, []string{"ParallelMoves", "Multiplicators", "MoveLimits"}, rs.Deprecated)
}

// TestRead_IgnoreDefaultsUnmentionedSetsToZero covers Ignore's "0 = not
// ignored" default, contrasted with Solved/Move's identity default.
func TestRead_IgnoreDefaultsUnmentionedSetsToZero(t *testing.T) {
	src := `Set A 2 0
Set B 2 0
Move X
A
2 1
B
1 2
End
Solved
A
1 2
B
1 2
End
Ignore
A
1 1
End
`
	rs, err := deffile.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, rs.Ignore.Sets[0].Perm[0])
	require.Equal(t, 1, rs.Ignore.Sets[0].Perm[1])
	require.Equal(t, 0, rs.Ignore.Sets[1].Perm[0])
	require.Equal(t, 0, rs.Ignore.Sets[1].Perm[1])
}

// TestRead_UnknownCommandFails covers the default branch of the top-level
// command dispatch.
func TestRead_UnknownCommandFails(t *testing.T) {
	_, err := deffile.Read(strings.NewReader("Bogus\nEnd\n"))
	require.ErrorIs(t, err, deffile.ErrUnknownCommand)
}

// TestRead_SetAfterMoveFails covers the ordering invariant: every Set
// must be declared before the first Move, Solved, or Ignore.
func TestRead_SetAfterMoveFails(t *testing.T) {
	src := `Set A 2 0
Move X
A
2 1
End
Set B 2 0
`
	_, err := deffile.Read(strings.NewReader(src))
	require.ErrorIs(t, err, deffile.ErrSetsMustComeFirst)
}

// TestRead_SetRedeclaredFails covers the duplicate-Set-name check.
func TestRead_SetRedeclaredFails(t *testing.T) {
	src := "Set A 2 0\nSet A 3 0\n"
	_, err := deffile.Read(strings.NewReader(src))
	require.ErrorIs(t, err, deffile.ErrSetRedeclared)
}

// TestRead_UnknownSetInMoveFails covers a position block naming a set
// that was never declared.
func TestRead_UnknownSetInMoveFails(t *testing.T) {
	src := `Set A 2 0
Move X
B
2 1
End
`
	_, err := deffile.Read(strings.NewReader(src))
	require.ErrorIs(t, err, deffile.ErrUnknownSet)
}

// TestRead_BadIntegerFails covers a malformed permutation token.
func TestRead_BadIntegerFails(t *testing.T) {
	src := `Set A 2 0
Move X
A
2 nope
End
`
	_, err := deffile.Read(strings.NewReader(src))
	require.ErrorIs(t, err, deffile.ErrBadInt)
}

// TestRead_NonUniqueSolvedPermutationFails covers Solved's uniqueness
// check, which Move's action positions do not enforce.
func TestRead_NonUniqueSolvedPermutationFails(t *testing.T) {
	src := `Set A 2 0
Move X
A
2 1
End
Solved
A
1 1
End
`
	_, err := deffile.Read(strings.NewReader(src))
	require.ErrorIs(t, err, puzzle.ErrInvalidPermutation, "expected an error for a non-unique Solved permutation")
}

// TestRead_UnexpectedEOFFails covers a position block that runs off the
// end of the file without an End token.
func TestRead_UnexpectedEOFFails(t *testing.T) {
	src := "Set A 2 0\nMove X\nA\n2 1\n"
	_, err := deffile.Read(strings.NewReader(src))
	require.ErrorIs(t, err, deffile.ErrUnexpectedEnd)
}
