package puzzle

// ForbiddenPairs is the "applying move a immediately followed by move b is
// disallowed" relation, stored as a sparse directed adjacency
// set keyed by move-id, so search's per-node lookup (Forbids(last, next))
// is O(1) rather than a scan.
type ForbiddenPairs struct {
	adj map[int]map[int]struct{}
}

// NewForbiddenPairs returns an empty ForbiddenPairs relation.
func NewForbiddenPairs() *ForbiddenPairs {
	return &ForbiddenPairs{adj: make(map[int]map[int]struct{})}
}

// Add records that move b may not directly follow move a.
func (f *ForbiddenPairs) Add(a, b int) {
	if f.adj[a] == nil {
		f.adj[a] = make(map[int]struct{})
	}
	f.adj[a][b] = struct{}{}
}

// Forbids reports whether b is forbidden to directly follow a.
func (f *ForbiddenPairs) Forbids(a, b int) bool {
	next, ok := f.adj[a]
	if !ok {
		return false
	}
	_, ok = next[b]

	return ok
}

// Len returns the number of ordered pairs recorded.
func (f *ForbiddenPairs) Len() int {
	n := 0
	for _, next := range f.adj {
		n += len(next)
	}

	return n
}

// Pairs returns every recorded (a, b) pair, for iteration (tests, printing).
func (f *ForbiddenPairs) Pairs() [][2]int {
	out := make([][2]int, 0, f.Len())
	for a, next := range f.adj {
		for b := range next {
			out = append(out, [2]int{a, b})
		}
	}

	return out
}
