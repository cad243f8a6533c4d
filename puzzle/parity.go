package puzzle

// AdjustOParity narrows sets[i].OParity to false for any set whose move
// substate changes the sum of orientations modulo that set's modulus.
// Called once per compiled move (generator or power), exactly mirroring
// readdef.h's adjustOParity: OParity starts true and only ever narrows.
func AdjustOParity(sets []Set, move Position) {
	for i := range sets {
		if sets[i].Modulus <= 0 {
			continue
		}
		sub := move.Sets[i]
		sum := 0
		for _, o := range sub.Ori {
			sum += o
		}
		if mod(sum, sets[i].Modulus) != 0 {
			sets[i].OParity = false
		}
	}
}

// AdjustPParity narrows sets[i].PParity to false for any set whose move
// substate is an odd permutation, mirroring readdef.h's adjustPParity
// (cycle-counting parity over move.Perm, O(n)).
func AdjustPParity(sets []Set, move Position) {
	for i := range sets {
		if !sets[i].PParity {
			continue
		}
		if !isEvenPermutation(move.Sets[i].Perm) {
			sets[i].PParity = false
		}
	}
}

// isEvenPermutation reports whether perm (1-based labels, UnknownPerm
// disallowed) is an even permutation, computed by cycle decomposition:
// a permutation is even iff the number of even-length cycles is even.
func isEvenPermutation(perm []int) bool {
	n := len(perm)
	done := make([]bool, n)
	even := true
	for i := 0; i < n; i++ {
		if done[i] {
			continue
		}
		cnt := 0
		for j := i; !done[j]; j = perm[j] - 1 {
			done[j] = true
			cnt++
		}
		if cnt%2 == 0 {
			even = !even
		}
	}

	return even
}

// CeilLog2 returns the smallest r such that 2^r >= v (v >= 1), matching
// readdef.h's ceillog2 used to derive PermBits/OriBits.
func CeilLog2(v int) int {
	r := 0
	for (1 << uint(r)) < v {
		r++
	}

	return r
}

// DeriveFromSolved fills MaxLabel, PermBits, OriBits, and UniquePerm on
// set from the solved permutation for that set, mirroring readdef.h's
// calcOtherValues (called once, when the Solved block is read).
func (s *Set) DeriveFromSolved(solvedPerm []int) error {
	max := 1
	for _, label := range solvedPerm {
		if label <= 0 {
			return ErrInvalidPermutation
		}
		if label > max {
			max = label
		}
	}
	s.MaxLabel = max
	s.PermBits = CeilLog2(max)
	s.OriBits = CeilLog2(s.Modulus)
	s.UniquePerm = (Substate{Perm: solvedPerm}).IsUniquePermutation()

	return nil
}
