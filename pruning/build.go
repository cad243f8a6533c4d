package pruning

import (
	"context"

	"github.com/katalvlaran/ksolve-go/indexer"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// queueItem is one frontier entry: a rank plus the depth it was reached
// at, mirroring bfs.go's queueItem shape (id/depth) with an integer rank
// standing in for a graph vertex id.
type queueItem struct {
	rank  int64
	depth byte
}

// engine owns the mutable state of one table's reverse-BFS construction,
// kept as a dedicated struct rather than a closure for the same reason
// tsp's bbEngine gives: explicit dependencies, a predictable hot path, and
// a type that is simple to unit test in isolation.
type engine struct {
	sets  []puzzle.Set
	setID int
	moves []puzzle.Move
	table *Table
	queue []queueItem
}

// BuildFull runs reverse BFS for a full-permutation or full-orientation
// table. sets/setID identify the owning set among
// the full declared set list, since mv.Action carries one Substate per
// declared set; the BFS itself composes only setID's substate. ctx
// is checked once per dequeue, mirroring bfs.go's walker.loop(); on
// cancellation BuildFull returns the table as built so far alongside
// ctx.Err(), the same graceful-truncation treatment a byte-budget cutoff
// gets, rather than discarding the partial result.
func BuildFull(ctx context.Context, kind Kind, sets []puzzle.Set, setID int, moves []puzzle.Move) (*Table, error) {
	set := sets[setID]
	var domain int64
	switch kind {
	case KindFullPerm:
		domain = indexer.FullPermDomain(set.Size, set.PParity)
	case KindFullOri:
		domain = indexer.FullOriDomain(set.Size, set.Modulus, set.OParity)
	default:
		return nil, ErrTableKindMismatch
	}

	e := &engine{
		sets:  []puzzle.Set{set},
		setID: setID,
		moves: moves,
		table: newTable(kind, set, nil, domain),
	}
	e.seedFull(kind, set)
	if err := e.runFull(ctx, kind, set); err != nil {
		return e.table, err
	}

	return e.table, nil
}

// seedFull marks the solved coset (rank 0 — the identity substate) at
// depth 0 and enqueues it.
func (e *engine) seedFull(kind Kind, set puzzle.Set) {
	solved := puzzle.NewSubstate(set.Size)
	for i := range solved.Perm {
		solved.Perm[i] = i + 1
	}
	rank, _ := e.table.rank(solved)
	e.mark(rank, 0)
}

// runFull drains the frontier, applying every compiled move to each
// dequeued rank's unranked substate to discover depth+1 successors.
func (e *engine) runFull(ctx context.Context, kind Kind, set puzzle.Set) error {
	for len(e.queue) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := e.queue[0]
		e.queue = e.queue[1:]
		if item.depth == unreached-1 {
			continue // never expand past the byte range a depth can record
		}

		var sub puzzle.Substate
		switch kind {
		case KindFullPerm:
			sub, _ = indexer.NewFullPermIndex(set).Unrank(item.rank)
		case KindFullOri:
			sub, _ = indexer.NewFullOriIndex(set).Unrank(item.rank)
		}
		pos := puzzle.Position{Sets: []puzzle.Substate{sub}}

		for _, mv := range e.moves {
			single := puzzle.Move{Action: puzzle.Position{Sets: []puzzle.Substate{mv.Action.Sets[e.setID]}}}
			next := puzzle.Compose(e.sets, pos, single)
			nextRank, err := e.table.rank(next.Sets[0])
			if err != nil {
				continue
			}
			e.mark(nextRank, item.depth+1)
		}
	}

	return nil
}

// mark records depth at rank if unreached and enqueues it; a non-
// unreached entry was already recorded at an earlier (shallower or equal)
// BFS round and is left untouched.
func (e *engine) mark(rank int64, depth byte) {
	if e.table.Depth[rank] != unreached {
		return
	}
	e.table.Depth[rank] = depth
	e.queue = append(e.queue, queueItem{rank: rank, depth: depth})
}

// trackedState is one internal BFS node for a label-tracked partial
// table: the tracked labels' current positions and orientations. Partial-
// orientation tables must carry position alongside orientation even
// though only orientation is ranked, because the per-move orientation
// delta for a tracked label depends on which position it currently
// occupies (see indexer's LabelSet doc and the Open Question decision in
// DESIGN.md).
type trackedState struct {
	positions    []int
	orientations []int
}

// partialEngine owns one label-tracked table's reverse-BFS construction.
// Its internal frontier is deduplicated over the full (positions,
// orientations) tuple, which is finer-grained than the table's own rank
// space whenever the table is partial-orientation (many position
// configurations share one orientation rank); visited guards against
// reprocessing an internal state already seen, independent of whether its
// projected rank was already marked.
type partialEngine struct {
	sets    []puzzle.Set
	setID   int
	moves   []puzzle.Move
	labels  indexer.LabelSet
	table   *Table
	visited map[string]bool
	queue   []trackedState
	depths  map[string]byte
}

// BuildPartial runs reverse BFS for a partial-permutation or partial-
// orientation table over labels. setID identifies set's index among the
// full declared set list, since mv.Action carries one Substate per
// declared set even though only setID's changes here. ctx is checked
// once per dequeue, same as BuildFull; cancellation returns the table as
// built so far alongside ctx.Err().
func BuildPartial(ctx context.Context, kind Kind, set puzzle.Set, setID int, labels indexer.LabelSet, moves []puzzle.Move) (*Table, error) {
	var domain int64
	switch kind {
	case KindPartialPerm:
		domain = indexer.PartialPermDomain(set.Size, len(labels), true)
	case KindPartialOri:
		domain = indexer.PartialOriDomain(set.Modulus, len(labels))
	default:
		return nil, ErrTableKindMismatch
	}

	pe := &partialEngine{
		sets:    []puzzle.Set{set},
		setID:   setID,
		labels:  labels,
		moves:   moves,
		table:   newTable(kind, set, labels, domain),
		visited: make(map[string]bool),
		depths:  make(map[string]byte),
	}

	start := trackedState{
		positions:    append([]int(nil), labels...), // solved: label L sits at position L
		orientations: make([]int, len(labels)),
	}
	pe.enqueue(kind, set, start, 0)
	if err := pe.run(ctx, kind, set); err != nil {
		return pe.table, err
	}

	return pe.table, nil
}

func stateKey(st trackedState) string {
	buf := make([]byte, 0, 4*(len(st.positions)+len(st.orientations)))
	for _, v := range st.positions {
		buf = appendInt(buf, v)
	}
	for _, v := range st.orientations {
		buf = appendInt(buf, v)
	}

	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))

	return buf
}

func (pe *partialEngine) enqueue(kind Kind, set puzzle.Set, st trackedState, depth byte) {
	key := stateKey(st)
	if pe.visited[key] {
		return
	}
	pe.visited[key] = true
	pe.depths[key] = depth

	rank, err := pe.projectRank(kind, st)
	if err == nil && pe.table.Depth[rank] == unreached {
		pe.table.Depth[rank] = depth
	}
	pe.queue = append(pe.queue, st)
}

func (pe *partialEngine) projectRank(kind Kind, st trackedState) (int64, error) {
	switch kind {
	case KindPartialPerm:
		return indexer.NewPartialPermIndex(pe.table.Set.Size, pe.labels, true).Rank(st.positions)
	case KindPartialOri:
		return indexer.NewPartialOriIndex(pe.table.Set.Modulus, pe.labels).Rank(st.orientations)
	default:
		return 0, ErrTableKindMismatch
	}
}

func (pe *partialEngine) run(ctx context.Context, kind Kind, set puzzle.Set) error {
	for head := 0; head < len(pe.queue); head++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		st := pe.queue[head]
		key := stateKey(st)
		depth := pe.depths[key]
		if depth == unreached-1 {
			continue
		}

		for _, mv := range pe.moves {
			movePerm := mv.Action.Sets[pe.setID].Perm
			moveOri := mv.Action.Sets[pe.setID].Ori
			inv := invertPerm(movePerm)

			next := trackedState{
				positions:    make([]int, len(st.positions)),
				orientations: make([]int, len(st.orientations)),
			}
			for i, pos := range st.positions {
				dest := inv[pos-1]
				next.positions[i] = dest + 1
				if kind == KindPartialOri && set.Modulus > 1 {
					next.orientations[i] = mod(st.orientations[i]+moveOri[dest], set.Modulus)
				}
			}
			pe.enqueue(kind, set, next, depth+1)
		}
	}

	return nil
}

// invertPerm returns the functional inverse of a move's 1-based
// permutation array: inv[v-1] is the 0-based destination index i such
// that perm[i] == v. A move's Compose formula reads
// new.Perm[i] = old.Perm[perm[i]-1], i.e. perm maps "destination -> 1-
// based source"; inv therefore maps "0-based source -> 0-based
// destination", which is exactly the update a tracked label's own
// position needs: its new position is inv[its old position].
func invertPerm(perm []int) []int {
	inv := make([]int, len(perm))
	for i, v := range perm {
		inv[v-1] = i
	}

	return inv
}

// mod returns the non-negative remainder of a/m (m > 0).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
