package indexer_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ksolve-go/indexer"
)

func TestFullPerm_BijectionNoParity(t *testing.T) {
	const n = 5
	domain := indexer.FullPermDomain(n, false)
	if domain != 120 {
		t.Fatalf("FullPermDomain(5,false) = %d, want 120", domain)
	}
	seen := make(map[int64]bool, domain)
	for i := int64(0); i < domain; i++ {
		perm := indexer.UnrankFullPerm(i, n, false)
		got := indexer.RankFullPerm(perm, false)
		if got != i {
			t.Fatalf("RankFullPerm(UnrankFullPerm(%d)) = %d", i, got)
		}
		if seen[i] {
			t.Fatalf("duplicate rank %d", i)
		}
		seen[i] = true
	}
	if len(seen) != int(domain) {
		t.Fatalf("covered %d of %d indices", len(seen), domain)
	}
}

func TestFullPerm_BijectionWithParity(t *testing.T) {
	const n = 5
	domain := indexer.FullPermDomain(n, true)
	if domain != 60 {
		t.Fatalf("FullPermDomain(5,true) = %d, want 60", domain)
	}
	seen := make(map[string]bool, domain)
	for i := int64(0); i < domain; i++ {
		perm := indexer.UnrankFullPerm(i, n, true)
		if !isEven(perm) {
			t.Fatalf("UnrankFullPerm(%d, evenOnly) produced an odd permutation %v", i, perm)
		}
		got := indexer.RankFullPerm(perm, true)
		if got != i {
			t.Fatalf("RankFullPerm(UnrankFullPerm(%d)) = %d", i, got)
		}
		key := fmt.Sprint(perm)
		if seen[key] {
			t.Fatalf("duplicate permutation produced for distinct indices: %v", perm)
		}
		seen[key] = true
	}
}

func isEven(perm []int) bool {
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

func TestFullPerm_IdentityRanksZero(t *testing.T) {
	id := []int{1, 2, 3, 4}
	if got := indexer.RankFullPerm(id, false); got != 0 {
		t.Errorf("RankFullPerm(identity) = %d, want 0", got)
	}
}
