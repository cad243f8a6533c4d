package movecompiler

import "github.com/katalvlaran/ksolve-go/puzzle"

// DetectParallel finds every pair of distinct generators whose actions
// commute (g1 then g2 reaches the same position as g2 then g1) and forbids
// one direction of every cross-pair drawn from their full power groups:
// applying a power of g1 immediately followed by a power of g2 is
// redundant work when the two generators commute, since the search would
// reach the same position either order.
//
// Only one direction is forbidden per pair, using the canonical tie-break
// from the original reader: forbid (a, b) only when (b, a) is not already
// forbidden (by an earlier pair's internal same-parent forbiddance, or by
// an earlier iteration of this same loop). Call once, after every
// generator has been compiled via AddGenerator.
func (c *Compiler) DetectParallel() {
	for i := 0; i < len(c.parents); i++ {
		for j := i + 1; j < len(c.parents); j++ {
			pi, pj := c.parents[i], c.parents[j]
			ij := puzzle.Compose(c.sets, c.moves[pi].Action, puzzle.Move{Action: c.moves[pj].Action})
			ji := puzzle.Compose(c.sets, c.moves[pj].Action, puzzle.Move{Action: c.moves[pi].Action})
			if !puzzle.EqualModuloIgnore(ij, ji, puzzle.Position{}) {
				continue
			}

			for _, a := range c.moves {
				if a.ParentID != pi {
					continue
				}
				for _, b := range c.moves {
					if b.ParentID != pj {
						continue
					}
					if c.forbidden.Forbids(b.ID, a.ID) {
						continue
					}
					c.forbidden.Add(a.ID, b.ID)
				}
			}
		}
	}
}
