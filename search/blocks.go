package search

import "github.com/katalvlaran/ksolve-go/puzzle"

// blockedMoves returns, indexed by move id, whether mv is illegal under
// any of blocks: applying mv would carry some piece currently inside a
// block to a position outside it (or vice versa).
//
// This only depends on the move's own action, not on the position it is
// applied to — a move's permutation array is fixed at compile time, so
// whether it keeps every block's index set closed under the move is a
// structural property decided once, not per search node.
func blockedMoves(moves []puzzle.Move, blocks []puzzle.Block) []bool {
	illegal := make([]bool, len(moves))
	for i, mv := range moves {
		for _, block := range blocks {
			if movesAcrossBlock(mv, block) {
				illegal[i] = true

				break
			}
		}
	}

	return illegal
}

// movesAcrossBlock reports whether mv's action moves any piece currently
// at a block-member position to a position outside the block. Since a
// move's inverse permutation is itself a bijection of the set's n slots,
// mapping every block index into the block forces the complement to map
// into the complement too — checking the "into" direction alone suffices.
func movesAcrossBlock(mv puzzle.Move, block puzzle.Block) bool {
	for setID, indices := range block {
		if setID >= len(mv.Action.Sets) {
			continue
		}
		inv := invertMovePerm(mv.Action.Sets[setID].Perm)
		for idx := range indices {
			if idx >= len(inv) {
				continue
			}
			if !block.Has(setID, inv[idx]) {
				return true
			}
		}
	}

	return false
}

// invertMovePerm returns the functional inverse of a move's 1-based
// permutation array: inv[j] is the 0-based destination a piece currently
// at 0-based position j moves to, derived from Compose's convention that
// perm[i]-1 names the source of destination i.
func invertMovePerm(perm []int) []int {
	inv := make([]int, len(perm))
	for i, v := range perm {
		inv[v-1] = i
	}

	return inv
}
