package indexer

import "github.com/katalvlaran/ksolve-go/puzzle"

// FullPermIndex ranks and unranks a whole set's permutation, sized and
// parity-aware per the owning puzzle.Set.
type FullPermIndex struct {
	set puzzle.Set
}

// NewFullPermIndex returns a FullPermIndex for set. The caller is
// responsible for only using it when set.UniquePerm holds: a full
// permutation index requires distinct piece labels to be meaningful.
func NewFullPermIndex(set puzzle.Set) FullPermIndex {
	return FullPermIndex{set: set}
}

// Domain returns the number of distinct indices this index produces.
func (fp FullPermIndex) Domain() int64 {
	return FullPermDomain(fp.set.Size, fp.set.PParity)
}

// Rank returns the index for sub.Perm.
func (fp FullPermIndex) Rank(sub puzzle.Substate) (int64, error) {
	if len(sub.Perm) != fp.set.Size {
		return 0, ErrLengthMismatch
	}

	return RankFullPerm(sub.Perm, fp.set.PParity), nil
}

// Unrank reconstructs the Substate (permutation only, orientation zeroed)
// for index.
func (fp FullPermIndex) Unrank(index int64) (puzzle.Substate, error) {
	if index < 0 || index >= fp.Domain() {
		return puzzle.Substate{}, ErrIndexOutOfRange
	}
	sub := puzzle.NewSubstate(fp.set.Size)
	sub.Perm = UnrankFullPerm(index, fp.set.Size, fp.set.PParity)

	return sub, nil
}

// FullOriIndex ranks and unranks a whole set's orientation.
type FullOriIndex struct {
	set puzzle.Set
}

// NewFullOriIndex returns a FullOriIndex for set.
func NewFullOriIndex(set puzzle.Set) FullOriIndex {
	return FullOriIndex{set: set}
}

// Domain returns the number of distinct indices this index produces.
func (fo FullOriIndex) Domain() int64 {
	return FullOriDomain(fo.set.Size, fo.set.Modulus, fo.set.OParity)
}

// Rank returns the index for sub.Ori.
func (fo FullOriIndex) Rank(sub puzzle.Substate) (int64, error) {
	if len(sub.Ori) != fo.set.Size {
		return 0, ErrLengthMismatch
	}

	return RankFullOri(sub.Ori, fo.set.Modulus, fo.set.OParity), nil
}

// Unrank reconstructs the Substate (orientation only, permutation zeroed)
// for index.
func (fo FullOriIndex) Unrank(index int64) (puzzle.Substate, error) {
	if index < 0 || index >= fo.Domain() {
		return puzzle.Substate{}, ErrIndexOutOfRange
	}
	sub := puzzle.NewSubstate(fo.set.Size)
	sub.Ori = UnrankFullOri(index, fo.set.Size, fo.set.Modulus, fo.set.OParity)

	return sub, nil
}

// LabelSet is the distinguished subset of piece identities (1-based labels)
// that a partial index tracks. Tracking is by piece identity rather than by
// fixed board position: a move permutes positions, so a fixed position can
// receive a piece from outside any chosen position-subset, leaving the
// rank of that subset meaningless after one step. A tracked *piece*,
// however, is never lost — it always occupies exactly one position — so
// its position (and, for orientation, its own orientation value) can be
// followed losslessly across any number of moves. The pruning package's
// partial-table builder (partialEngine.run) applies the per-move update
// rule this enables.
type LabelSet = PositionSet

// NewLabelSet validates labels against a set's maxLabel (1..maxLabel) and
// returns them sorted and de-duplicated.
func NewLabelSet(labels []int, maxLabel int) (LabelSet, error) {
	shifted := make([]int, len(labels))
	for i, l := range labels {
		shifted[i] = l - 1
	}
	p, err := NewPositionSet(shifted, maxLabel)
	if err != nil {
		return nil, err
	}
	out := make(LabelSet, len(p))
	for i, v := range p {
		out[i] = v + 1
	}

	return out, nil
}

// PartialPermIndex ranks and unranks the current *positions* of a tracked
// LabelSet, the piece-identity reading of a partial permutation index (see
// LabelSet). Positions are 1-based, matching puzzle.Substate.Perm's label
// convention, ranked as a k-permutation of the set's n slots.
type PartialPermIndex struct {
	n      int
	labels LabelSet
	unique bool
}

// NewPartialPermIndex returns a PartialPermIndex over set.Size slots,
// tracking labels. unique should be set.UniquePerm.
func NewPartialPermIndex(n int, labels LabelSet, unique bool) PartialPermIndex {
	return PartialPermIndex{n: n, labels: labels, unique: unique}
}

// Domain returns the number of distinct indices this index produces.
func (pp PartialPermIndex) Domain() int64 {
	return PartialPermDomain(pp.n, len(pp.labels), pp.unique)
}

// Rank ranks positions (1-based, one per tracked label, in LabelSet order).
func (pp PartialPermIndex) Rank(positions []int) (int64, error) {
	if len(positions) != len(pp.labels) {
		return 0, ErrLengthMismatch
	}

	return RankPartialPerm(positions, pp.n, pp.unique), nil
}

// Unrank is the inverse of Rank.
func (pp PartialPermIndex) Unrank(index int64) ([]int, error) {
	if index < 0 || index >= pp.Domain() {
		return nil, ErrIndexOutOfRange
	}

	return UnrankPartialPerm(index, pp.n, len(pp.labels), pp.unique), nil
}

// PartialOriIndex ranks and unranks the current *orientations* of a tracked
// LabelSet, the piece-identity reading of a partial orientation index (see
// LabelSet).
type PartialOriIndex struct {
	modulus int
	labels  LabelSet
}

// NewPartialOriIndex returns a PartialOriIndex under modulus, tracking
// labels.
func NewPartialOriIndex(modulus int, labels LabelSet) PartialOriIndex {
	return PartialOriIndex{modulus: modulus, labels: labels}
}

// Domain returns the number of distinct indices this index produces.
func (po PartialOriIndex) Domain() int64 {
	return PartialOriDomain(po.modulus, len(po.labels))
}

// Rank ranks orientations (one per tracked label, in LabelSet order).
func (po PartialOriIndex) Rank(orientations []int) (int64, error) {
	if len(orientations) != len(po.labels) {
		return 0, ErrLengthMismatch
	}

	return RankPartialOri(orientations, po.modulus), nil
}

// Unrank is the inverse of Rank.
func (po PartialOriIndex) Unrank(index int64) ([]int, error) {
	if index < 0 || index >= po.Domain() {
		return nil, ErrIndexOutOfRange
	}

	return UnrankPartialOri(index, po.modulus, len(po.labels)), nil
}
