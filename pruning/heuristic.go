package pruning

import "github.com/katalvlaran/ksolve-go/puzzle"

// Heuristic evaluates the admissible lower bound on moves-to-solved for a
// Position, given one Table per set (nil entries contribute 0) and,
// optionally, a move-limit-owned-piece variant table built over the move
// set with the limited moves removed.
//
// A Limited table is only a valid lower bound once its owning limit is
// actually exhausted (remaining == 0): while the limited move is still
// available, excluding it from the table can only overestimate the true
// remaining distance, which would make the search unsound. Evaluate takes
// the caller's current exhaustion state per set and only consults
// LimitedPerm[i]/LimitedOri[i] when exhausted[i] holds; otherwise it falls
// back to the unrestricted Perm/Ori tables, which remain valid regardless
// of any limit that has not yet run out.
//
// The scalar heuristic is the max over sets of each set's own table
// value; per set, the permutation-domain table and the orientation-domain
// table (when both exist) each contribute and the set's value is their
// max.
type Heuristic struct {
	Perm        []*Table // one permutation-domain table (full or partial) per set, or nil
	Ori         []*Table // one orientation-domain table (full or partial) per set, or nil
	LimitedPerm []*Table // move-limit-owned-piece permutation-domain variants, used only once exhausted
	LimitedOri  []*Table // move-limit-owned-piece orientation-domain variants, used only once exhausted
}

// Evaluate returns the admissible heuristic value for p. exhausted[i],
// when present and true, allows LimitedPerm[i]/LimitedOri[i] to be
// consulted for set i; a nil or short exhausted slice treats every set as
// not yet exhausted.
func (h Heuristic) Evaluate(p puzzle.Position, exhausted []bool) int {
	best := 0
	for i, sub := range p.Sets {
		v := h.tableValue(h.Perm, i, sub)
		if ov := h.tableValue(h.Ori, i, sub); ov > v {
			v = ov
		}
		// Limited*[i] only bounds the true distance once its owning move
		// limit has actually run out; before that, the move it excludes
		// is still usable and the restricted table would overestimate.
		if i < len(exhausted) && exhausted[i] {
			if lv := h.tableValue(h.LimitedPerm, i, sub); lv > v {
				v = lv
			}
			if lv := h.tableValue(h.LimitedOri, i, sub); lv > v {
				v = lv
			}
		}
		if v > best {
			best = v
		}
	}

	return best
}

// tableValue returns tables[i].Lookup(sub), or 0 when tables is nil, too
// short, holds no table for set i, or the lookup itself errors (shape
// mismatch never happens in practice here, since Evaluate is always
// called with the Position the tables were built from, but Lookup's
// error is still handled rather than ignored outright).
func (h Heuristic) tableValue(tables []*Table, i int, sub puzzle.Substate) int {
	if i >= len(tables) || tables[i] == nil {
		return 0
	}
	v, err := tables[i].Lookup(sub)
	if err != nil {
		return 0
	}

	return v
}
