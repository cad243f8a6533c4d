package scrfile

import "github.com/katalvlaran/ksolve-go/puzzle"

// ScrambleDef is one Scramble/ScrambleAlg/RandomScramble block: the
// scrambled position to search from, the ignore mask in effect (the
// ruleset's own Ignore block unioned with any "?"-prefixed entries read
// for this scramble specifically), and a snapshot of the meta-command
// values (MaxDepth, Slack, metric, move limits) active at the moment this
// block was read.
type ScrambleDef struct {
	Name     string
	State    puzzle.Position
	Ignore   puzzle.Position
	MaxDepth int
	Slack    int
	HTM      bool
	Limits   []puzzle.MoveLimit
}

// unionIgnore returns the coordinate-wise OR of a and b, shaped like
// sets. Either argument may be a zero Position (len(Sets) == 0).
func unionIgnore(sets []puzzle.Set, a, b puzzle.Position) puzzle.Position {
	out := puzzle.ZeroMask(sets)
	for i, set := range sets {
		for j := 0; j < set.Size; j++ {
			if maskAt(a, i, j) || maskAt(b, i, j) {
				out.Sets[i].Perm[j] = 1
			}
			for _, p := range []puzzle.Position{a, b} {
				if i < len(p.Sets) && j < len(p.Sets[i].Ori) && p.Sets[i].Ori[j] != 0 {
					out.Sets[i].Ori[j] = 1
				}
			}
		}
	}

	return out
}

func maskAt(p puzzle.Position, setID, idx int) bool {
	if setID >= len(p.Sets) {
		return false
	}
	sub := p.Sets[setID]
	if idx >= len(sub.Perm) {
		return false
	}

	return sub.Perm[idx] != 0
}

// ownedPieces returns the set of (setID, index) piece slots touched by
// some move in group and never touched by any move outside group: the
// pieces a move-limit group owns exclusively, used to gate pruning-table
// exhaustion overrides during search.
func ownedPieces(sets []puzzle.Set, moves []puzzle.Move, group map[int]bool) puzzle.Block {
	owned := puzzle.NewBlock()
	for si, set := range sets {
		byGroup := make(map[int]bool)
		byOther := make(map[int]bool)
		for _, mv := range moves {
			if si >= len(mv.Action.Sets) {
				continue
			}
			sub := mv.Action.Sets[si]
			for idx := 0; idx < set.Size; idx++ {
				if sub.Perm[idx] == idx+1 && sub.Ori[idx] == 0 {
					continue
				}
				if group[mv.ID] {
					byGroup[idx] = true
				} else {
					byOther[idx] = true
				}
			}
		}
		for idx := range byGroup {
			if !byOther[idx] {
				owned.Add(si, idx)
			}
		}
	}

	return owned
}
