package scrfile

import (
	"math/rand"

	"github.com/katalvlaran/ksolve-go/puzzle"
)

// defaultRNGSeed mirrors the "seed == 0 means use a fixed stable seed"
// policy for reproducible random scrambles.
const defaultRNGSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// randomWalkLength is 10000 or 10001, picked by a coin flip of rng: an
// odd-vs-even walk length changes the parity of the final position
// relative to solved when every move is an odd permutation, so varying
// it keeps RandomScramble from only ever reaching half of a puzzle's
// reachable coset.
func randomWalkLength(rng *rand.Rand) int {
	return 10000 + rng.Intn(2)
}

// randomScramble walks randomWalkLength random legal moves from solved,
// re-rolling a pick that would cross a block boundary, and returns the
// resulting position.
func randomScramble(sets []puzzle.Set, moves []puzzle.Move, blocks []puzzle.Block, rng *rand.Rand) puzzle.Position {
	pos := puzzle.Identity(sets)
	if len(moves) == 0 {
		return pos
	}

	illegal := blockedByAny(moves, blocks)
	steps := randomWalkLength(rng)
	for i := 0; i < steps; i++ {
		mv := moves[rng.Intn(len(moves))]
		for illegal[mv.ID] {
			mv = moves[rng.Intn(len(moves))]
		}
		pos = puzzle.Compose(sets, pos, mv)
	}

	return pos
}

// blockedByAny returns, indexed by move id, whether mv would carry some
// piece across a block boundary in any of blocks. Duplicated from
// search's own blockedMoves: that helper is unexported and scrfile has no
// dependency on the search package otherwise.
func blockedByAny(moves []puzzle.Move, blocks []puzzle.Block) []bool {
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

func invertMovePerm(perm []int) []int {
	inv := make([]int, len(perm))
	for i, v := range perm {
		inv[v-1] = i
	}

	return inv
}
