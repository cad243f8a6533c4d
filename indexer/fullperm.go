package indexer

// FullPermDomain returns the size of the full-permutation index range for n
// labels: n! normally, or n!/2 when evenOnly holds (PParity).
func FullPermDomain(n int, evenOnly bool) int64 {
	d := factorial(n)
	if evenOnly {
		d /= 2
	}

	return d
}

// RankFullPerm ranks perm (a permutation of {1, ..., n}, 1-based labels)
// against the full-permutation index for n labels. When evenOnly holds,
// perm must already be even (callers only ever rank reachable positions,
// and PParity guarantees every reachable permutation of this set is even);
// the returned index lies in [0, n!/2).
//
// evenOnly halving works by pairing every permutation with its "swap the
// last two slots" partner: that swap changes the lexicographic Lehmer rank
// by exactly ±1 (every other digit's weight is even) and always flips
// parity, so each consecutive pair {2k, 2k+1} contains exactly one even
// permutation. floor(rank/2) is therefore a bijection from the even
// permutations onto [0, n!/2).
func RankFullPerm(perm []int, evenOnly bool) int64 {
	n := len(perm)
	used := make([]bool, n+1)
	rank := int64(0)
	for i := 0; i < n; i++ {
		less := 0
		for l := 1; l < perm[i]; l++ {
			if !used[l] {
				less++
			}
		}
		rank = rank*int64(n-i) + int64(less)
		used[perm[i]] = true
	}
	if evenOnly {
		rank /= 2
	}

	return rank
}

// UnrankFullPerm is the inverse of RankFullPerm: given index in
// [0, FullPermDomain(n, evenOnly)), reconstructs a permutation of
// {1, ..., n}. When evenOnly holds, the reconstructed permutation is
// always the even member of its {2*index, 2*index+1} rank pair.
func UnrankFullPerm(index int64, n int, evenOnly bool) []int {
	rank := index
	if evenOnly {
		rank *= 2
	}
	perm := unrankLehmer(rank, n)
	if evenOnly && !isEvenPermutation(perm) {
		perm[n-2], perm[n-1] = perm[n-1], perm[n-2]
	}

	return perm
}

// unrankLehmer reconstructs the permutation of {1,...,n} with the given
// full (non-halved) Lehmer rank.
func unrankLehmer(rank int64, n int) []int {
	digits := make([]int, n)
	r := rank
	for i := n - 1; i >= 0; i-- {
		radix := int64(n - i)
		digits[i] = int(r % radix)
		r /= radix
	}

	used := make([]bool, n+1)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		less := digits[i]
		count := -1
		for l := 1; l <= n; l++ {
			if !used[l] {
				count++
				if count == less {
					perm[i] = l
					used[l] = true

					break
				}
			}
		}
	}

	return perm
}

// isEvenPermutation reports whether perm (1-based labels) is an even
// permutation via cycle decomposition: a permutation is even iff the
// number of even-length cycles is even.
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
