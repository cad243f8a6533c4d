package indexer

// FullOriDomain returns the size of the full-orientation index range for n
// positions under the given modulus: modulus^n normally, or modulus^(n-1)
// when sumZero holds (the orientation sum is fixed modulo modulus, so the
// last coordinate is redundant).
func FullOriDomain(n, modulus int, sumZero bool) int64 {
	if modulus <= 1 {
		return 1
	}
	limit := n
	if sumZero {
		limit = n - 1
	}
	d := int64(1)
	for i := 0; i < limit; i++ {
		d *= int64(modulus)
	}

	return d
}

// RankFullOri ranks ori (length n, each entry in [0, modulus)) against the
// full-orientation index. When sumZero holds, ori[n-1] is not encoded (it
// is recoverable as -(sum of the rest) mod modulus) and callers must pass a
// position whose total already satisfies that constraint.
func RankFullOri(ori []int, modulus int, sumZero bool) int64 {
	if modulus <= 1 {
		return 0
	}
	limit := len(ori)
	if sumZero {
		limit--
	}
	idx := int64(0)
	for i := 0; i < limit; i++ {
		idx = idx*int64(modulus) + int64(ori[i])
	}

	return idx
}

// UnrankFullOri is the inverse of RankFullOri: given index in
// [0, FullOriDomain(n, modulus, sumZero)), reconstructs an orientation
// array of length n.
func UnrankFullOri(index int64, n, modulus int, sumZero bool) []int {
	ori := make([]int, n)
	if modulus <= 1 {
		return ori
	}
	limit := n
	if sumZero {
		limit = n - 1
	}
	idx := index
	for i := limit - 1; i >= 0; i-- {
		ori[i] = int(idx % int64(modulus))
		idx /= int64(modulus)
	}
	if sumZero {
		sum := 0
		for i := 0; i < n-1; i++ {
			sum += ori[i]
		}
		last := (-sum) % modulus
		if last < 0 {
			last += modulus
		}
		ori[n-1] = last
	}

	return ori
}
