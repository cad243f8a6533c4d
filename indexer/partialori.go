package indexer

// PartialOriDomain returns the size of the partial-orientation index range
// for a position subset of size k under the given modulus: modulus^k (no
// parity reduction — the sum-to-zero constraint is a property of the full
// set, not of an arbitrary subset P).
func PartialOriDomain(modulus, k int) int64 {
	if modulus <= 1 {
		return 1
	}
	d := int64(1)
	for i := 0; i < k; i++ {
		d *= int64(modulus)
	}

	return d
}

// RankPartialOri ranks oris (the orientation values observed at a position
// subset P, in P's sorted order) as a base-modulus tuple.
func RankPartialOri(oris []int, modulus int) int64 {
	if modulus <= 1 {
		return 0
	}
	idx := int64(0)
	for _, o := range oris {
		idx = idx*int64(modulus) + int64(o)
	}

	return idx
}

// UnrankPartialOri is the inverse of RankPartialOri: given index in
// [0, PartialOriDomain(modulus, k)), reconstructs the k-length orientation
// tuple.
func UnrankPartialOri(index int64, modulus, k int) []int {
	oris := make([]int, k)
	if modulus <= 1 {
		return oris
	}
	r := index
	for i := k - 1; i >= 0; i-- {
		oris[i] = int(r % int64(modulus))
		r /= int64(modulus)
	}

	return oris
}
