package indexer

// PartialPermDomain returns the size of the partial-permutation index range
// for a position subset of size k drawn from a label universe of size
// maxLabel: the k-permutation count maxLabel!/(maxLabel-k)! when unique
// holds, or the plain multiset-tuple count maxLabel^k otherwise, falling
// back to a stable enumeration over multiset positions.
func PartialPermDomain(maxLabel, k int, unique bool) int64 {
	if unique {
		return falling(maxLabel, k)
	}
	d := int64(1)
	for i := 0; i < k; i++ {
		d *= int64(maxLabel)
	}

	return d
}

// RankPartialPerm ranks labels (the values observed at a position subset P,
// in P's sorted order — see PositionSet.Select) against the partial-
// permutation index for a label universe of size maxLabel. When unique
// holds, labels must be pairwise distinct and are ranked as an ordered
// k-permutation of {1, ..., maxLabel}; otherwise each entry is ranked
// independently as a base-maxLabel digit (1-based labels shifted to 0-based
// digits).
func RankPartialPerm(labels []int, maxLabel int, unique bool) int64 {
	if unique {
		return rankKPermutation(labels, maxLabel)
	}
	idx := int64(0)
	for _, label := range labels {
		idx = idx*int64(maxLabel) + int64(label-1)
	}

	return idx
}

// UnrankPartialPerm is the inverse of RankPartialPerm: given index in
// [0, PartialPermDomain(maxLabel, k, unique)), reconstructs the k-length
// label tuple.
func UnrankPartialPerm(index int64, maxLabel, k int, unique bool) []int {
	if unique {
		return unrankKPermutation(index, maxLabel, k)
	}
	digits := make([]int, k)
	r := index
	for i := k - 1; i >= 0; i-- {
		digits[i] = int(r%int64(maxLabel)) + 1
		r /= int64(maxLabel)
	}

	return digits
}
