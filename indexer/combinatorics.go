package indexer

// factorial returns n! for n >= 0. Puzzle piece counts are small (well
// under 20 per set in practice), so this never approaches int64 overflow;
// callers needing the domain size of a full-permutation index call this
// directly rather than maintaining a cached table.
func factorial(n int) int64 {
	r := int64(1)
	for i := 2; i <= n; i++ {
		r *= int64(i)
	}

	return r
}

// falling returns the falling factorial n*(n-1)*...*(n-k+1), i.e. the
// number of ordered k-permutations of n distinct labels (0 when k > n).
func falling(n, k int) int64 {
	if k > n {
		return 0
	}
	r := int64(1)
	for i := 0; i < k; i++ {
		r *= int64(n - i)
	}

	return r
}

// rankKPermutation ranks seq, a sequence of k distinct labels drawn from
// {1, ..., n}, among all ordered k-permutations of that label universe
// (lexicographic by the sequence of "how many unused labels are smaller"
// at each step). This is the same incremental digit-by-digit construction
// as the full Lehmer code, truncated to k steps instead of n.
func rankKPermutation(seq []int, n int) int64 {
	used := make([]bool, n+1)
	rank := int64(0)
	k := len(seq)
	for j := 0; j < k; j++ {
		less := 0
		for l := 1; l < seq[j]; l++ {
			if !used[l] {
				less++
			}
		}
		remaining := int64(n - j)
		rank = rank*remaining + int64(less)
		used[seq[j]] = true
	}

	return rank
}

// unrankKPermutation is the inverse of rankKPermutation: given rank in
// [0, falling(n,k)), reconstructs the k-length sequence of distinct labels
// from {1, ..., n}.
func unrankKPermutation(rank int64, n, k int) []int {
	digits := make([]int, k)
	r := rank
	for j := k - 1; j >= 0; j-- {
		remaining := int64(n - j)
		digits[j] = int(r % remaining)
		r /= remaining
	}

	used := make([]bool, n+1)
	seq := make([]int, k)
	for j := 0; j < k; j++ {
		less := digits[j]
		count := -1
		for l := 1; l <= n; l++ {
			if !used[l] {
				count++
				if count == less {
					seq[j] = l
					used[l] = true

					break
				}
			}
		}
	}

	return seq
}
