package indexer_test

import (
	"testing"

	"github.com/katalvlaran/ksolve-go/indexer"
)

func TestPartialPerm_BijectionUnique(t *testing.T) {
	const maxLabel, k = 6, 3
	domain := indexer.PartialPermDomain(maxLabel, k, true)
	if domain != 120 { // 6*5*4
		t.Fatalf("PartialPermDomain(6,3,true) = %d, want 120", domain)
	}
	for i := int64(0); i < domain; i++ {
		labels := indexer.UnrankPartialPerm(i, maxLabel, k, true)
		seen := make(map[int]bool)
		for _, l := range labels {
			if seen[l] {
				t.Fatalf("UnrankPartialPerm(%d) produced a repeated label %v", i, labels)
			}
			seen[l] = true
		}
		if got := indexer.RankPartialPerm(labels, maxLabel, true); got != i {
			t.Fatalf("RankPartialPerm(UnrankPartialPerm(%d)) = %d", i, got)
		}
	}
}

func TestPartialPerm_BijectionMultiset(t *testing.T) {
	const maxLabel, k = 3, 2
	domain := indexer.PartialPermDomain(maxLabel, k, false)
	if domain != 9 {
		t.Fatalf("PartialPermDomain(3,2,false) = %d, want 9", domain)
	}
	for i := int64(0); i < domain; i++ {
		labels := indexer.UnrankPartialPerm(i, maxLabel, k, false)
		if got := indexer.RankPartialPerm(labels, maxLabel, false); got != i {
			t.Fatalf("RankPartialPerm(UnrankPartialPerm(%d)) = %d", i, got)
		}
	}
}

func TestPartialOri_Bijection(t *testing.T) {
	const modulus, k = 3, 3
	domain := indexer.PartialOriDomain(modulus, k)
	if domain != 27 {
		t.Fatalf("PartialOriDomain(3,3) = %d, want 27", domain)
	}
	for i := int64(0); i < domain; i++ {
		oris := indexer.UnrankPartialOri(i, modulus, k)
		if got := indexer.RankPartialOri(oris, modulus); got != i {
			t.Fatalf("RankPartialOri(UnrankPartialOri(%d)) = %d", i, got)
		}
	}
}

func TestPositionSet_SortsAndDedups(t *testing.T) {
	p, err := indexer.NewPositionSet([]int{3, 1, 1, 2}, 5)
	if err != nil {
		t.Fatalf("NewPositionSet: %v", err)
	}
	want := indexer.PositionSet{1, 2, 3}
	if p.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("p = %v, want %v", p, want)
		}
	}

	if _, err := indexer.NewPositionSet([]int{7}, 5); err != indexer.ErrPositionOutOfRange {
		t.Errorf("out-of-range index: want ErrPositionOutOfRange, got %v", err)
	}
	if _, err := indexer.NewPositionSet(nil, 5); err != indexer.ErrEmptyPositionSet {
		t.Errorf("empty indices: want ErrEmptyPositionSet, got %v", err)
	}
}
