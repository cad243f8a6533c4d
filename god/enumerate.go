package god

import "github.com/katalvlaran/ksolve-go/puzzle"

// entry is one bucket-queue node: a full position and the id of the move
// that produced it (kept only to let the next expansion's forbidden-pair
// check see what immediately preceded it; -1 at the solved root).
type entry struct {
	pos      puzzle.Position
	lastMove int
}

// walker owns one enumeration's mutable BFS state, mirroring bfs.go's
// walker (queue + visited map) with a per-depth bucket queue standing in
// for the single FIFO: under QTM a move's weight can exceed 1, so a
// position discovered this round may belong several rounds ahead rather
// than strictly the next one, and a bucket queue still visits every depth
// in non-decreasing order as long as every edge weight is a positive
// integer, which QTM (>= 1) and HTM (== 1) both are.
type walker struct {
	sets    []puzzle.Set
	moves   []puzzle.Move
	opts    Options
	visited map[string]bool
	buckets [][]entry
}

// Enumerate runs forward BFS from solved over the full reachable state
// space and returns one LevelCount per depth reached, in increasing depth
// order. sets must carry UniquePerm-independent full indexing for every
// set (the caller is responsible for having declared a puzzle small
// enough to enumerate); Enumerate itself only ever composes positions and
// tracks which have been seen, so it places no direct requirement on
// indexability.
func Enumerate(sets []puzzle.Set, moves []puzzle.Move, solved puzzle.Position, opts Options) ([]LevelCount, error) {
	if len(solved.Sets) != len(sets) {
		return nil, ErrShapeMismatch
	}

	w := &walker{
		sets:    sets,
		moves:   moves,
		opts:    opts,
		visited: make(map[string]bool),
	}
	w.push(0, entry{pos: solved, lastMove: -1})

	var levels []LevelCount
	for d := 0; d < len(w.buckets); d++ {
		bucket := w.buckets[d]
		if len(bucket) == 0 {
			continue
		}
		if opts.MaxDepth > 0 && d > opts.MaxDepth {
			break
		}
		levels = append(levels, LevelCount{Depth: d, Count: int64(len(bucket))})
		for _, e := range bucket {
			w.expand(d, e)
		}
	}

	return levels, nil
}

// push records e's position as visited and enqueues it at depth, growing
// the bucket slice as needed. A position already seen at an earlier or
// equal depth is left untouched — BFS order guarantees the first visit is
// always the shallowest.
func (w *walker) push(depth int, e entry) {
	key := positionKey(e.pos)
	if w.visited[key] {
		return
	}
	w.visited[key] = true
	for len(w.buckets) <= depth {
		w.buckets = append(w.buckets, nil)
	}
	w.buckets[depth] = append(w.buckets[depth], e)
}

// expand applies every move to e's position, skipping one whose
// immediate-follow is forbidden after e.lastMove, and pushes each
// successor at depth + that move's cost.
func (w *walker) expand(depth int, e entry) {
	for _, mv := range w.moves {
		if e.lastMove >= 0 && w.opts.Forbidden != nil && w.opts.Forbidden.Forbids(e.lastMove, mv.ID) {
			continue
		}
		next := puzzle.Compose(w.sets, e.pos, mv)
		w.push(depth+moveCost(mv, w.opts.Metric), entry{pos: next, lastMove: mv.ID})
	}
}

// positionKey serializes a Position's permutation and orientation arrays,
// across every set, into a deterministic map key — the same fixed-width
// big-endian int encoding pruning's partial-table builder uses for its
// trackedState dedup key.
func positionKey(p puzzle.Position) string {
	buf := make([]byte, 0, 8*len(p.Sets))
	for _, sub := range p.Sets {
		for _, v := range sub.Perm {
			buf = appendInt(buf, v)
		}
		for _, v := range sub.Ori {
			buf = appendInt(buf, v)
		}
	}

	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
