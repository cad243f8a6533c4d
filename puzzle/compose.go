package puzzle

// Compose applies mv to position a and returns a fresh Position: for
// each set s and index i,
//
//	new.Perm[i] = a.Perm[mv.Perm[i]-1]
//	new.Ori[i]  = (a.Ori[mv.Perm[i]-1] + mv.Ori[i]) mod modulus(s)
//
// The a.Perm[...] == UnknownPerm sentinel ("label not yet known", used by
// scrambles with a bare "?" permutation entry) propagates unchanged; its
// orientation entry is left at 0.
//
// This is the sole arithmetic primitive of the algebra and runs in
// O(size) per set, O(1) per piece — constant-time per piece, as every
// caller on the search hot path requires.
func Compose(sets []Set, a Position, mv Move) Position {
	out := NewPosition(len(sets))
	for s := range sets {
		modulus := sets[s].Modulus
		src := a.Sets[s]
		act := mv.Action.Sets[s]
		n := len(act.Perm)
		dst := NewSubstate(n)
		for i := 0; i < n; i++ {
			from := act.Perm[i] - 1
			if act.Perm[i] == UnknownPerm || from < 0 || from >= len(src.Perm) {
				dst.Perm[i] = UnknownPerm
				continue
			}
			dst.Perm[i] = src.Perm[from]
			if dst.Perm[i] == UnknownPerm {
				continue
			}
			if modulus > 0 {
				dst.Ori[i] = mod(src.Ori[from]+act.Ori[i], modulus)
			}
		}
		out.Sets[s] = dst
	}

	return out
}

// mod returns the non-negative remainder of a/m (m > 0), matching the
// source's "always reduce to [0,m)" orientation convention.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// EqualModuloIgnore reports whether p equals solved at every coordinate
// not masked by ignore: for every set s and index i, either
// ignore.Sets[s].Perm[i] != 0 or p.Sets[s].Perm[i] == solved.Sets[s].Perm[i],
// and likewise for orientation via ignore.Sets[s].Ori[i].
//
// A nil ignore mask (len(ignore.Sets) == 0) is treated as "ignore
// nothing": every coordinate must match exactly.
func EqualModuloIgnore(p, solved, ignore Position) bool {
	for s := range p.Sets {
		pSub := p.Sets[s]
		solvedSub := solved.Sets[s]
		var ignoreSub Substate
		if s < len(ignore.Sets) {
			ignoreSub = ignore.Sets[s]
		}
		for i := range pSub.Perm {
			if !maskedTrue(ignoreSub.Perm, i) && pSub.Perm[i] != solvedSub.Perm[i] {
				return false
			}
		}
		for i := range pSub.Ori {
			if !maskedTrue(ignoreSub.Ori, i) && pSub.Ori[i] != solvedSub.Ori[i] {
				return false
			}
		}
	}

	return true
}

// maskedTrue reports whether mask[i] is a set (non-zero) flag, treating a
// nil or short mask as "not set" at every such index.
func maskedTrue(mask []int, i int) bool {
	if i >= len(mask) {
		return false
	}

	return mask[i] != 0
}

// Inverse returns the Position-shaped action that undoes mv's Action (mv
// composed with Inverse(mv, order) is the identity), computed as power
// (order-1) of mv under self-composition, where order is mv's compiled
// cyclic order. Only the action is returned, with no Name/ID/ParentID/QTM
// — callers that need the inverse's own compiled identity should look it
// up among mv's sibling powers instead; this helper exists for algebraic
// checks that only need the action, not the move metadata.
func Inverse(sets []Set, mv Move, order int) Position {
	pos := Identity(sets)
	for i := 0; i < order-1; i++ {
		pos = Compose(sets, pos, mv)
	}

	return pos
}
