package search

import (
	"time"

	"github.com/katalvlaran/ksolve-go/pruning"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// idaEngine owns one Run's mutable search state, kept as a dedicated
// struct rather than closures over Run's locals: the dependencies search
// needs at every node (heuristic, forbidden pairs, move-limit counters,
// block legality) are explicit fields, the hot path (dfs) is a plain
// method, and the whole thing is simple to construct and poke at in
// isolation from a test.
type idaEngine struct {
	sets      []puzzle.Set
	moves     []puzzle.Move
	forbidden *puzzle.ForbiddenPairs
	heuristic pruning.Heuristic
	solved    puzzle.Position
	ignore    puzzle.Position
	htm       bool

	maxDepth   int
	slack      int
	maxResults int

	blocked    []bool // per move id, from Options.Blocks
	limitFor   []int  // per move id, index into limits/remaining, or -1
	limitOwns  []int  // per limit index, the set id its Owned block restricts (-1 if none)
	remaining  []int  // mutable per-limit counters, backtracked in dfs

	depthBound int
	path       []puzzle.Move
	solutions  []Solution
	stopped    bool
	reporter   Reporter
}

func newEngine(sets []puzzle.Set, moves []puzzle.Move, forbidden *puzzle.ForbiddenPairs, heuristic pruning.Heuristic, solved puzzle.Position, opts Options, reporter Reporter) *idaEngine {
	e := &idaEngine{
		sets:       sets,
		moves:      moves,
		forbidden:  forbidden,
		heuristic:  heuristic,
		solved:     solved,
		ignore:     opts.Ignore,
		htm:        opts.HTM,
		maxDepth:   opts.MaxDepth,
		slack:      opts.Slack,
		maxResults: opts.MaxResults,
		blocked:    blockedMoves(moves, opts.Blocks),
		reporter:   reporter,
	}

	e.limitFor = make([]int, len(moves))
	for i := range e.limitFor {
		e.limitFor[i] = -1
	}
	e.limitOwns = make([]int, len(opts.Limits))
	e.remaining = make([]int, len(opts.Limits))
	for li, lim := range opts.Limits {
		e.remaining[li] = lim.Remaining
		e.limitOwns[li] = ownedSet(lim.Owned)
		for mi, mv := range moves {
			if lim.IsGroup && mv.ParentID == lim.MoveOrGroupID {
				e.limitFor[mi] = li
			} else if !lim.IsGroup && mv.ID == lim.MoveOrGroupID {
				e.limitFor[mi] = li
			}
		}
	}

	return e
}

// ownedSet returns the single set id b restricts, or -1 when b is empty
// or spans more than one set (exhaustion gating is skipped in that case,
// the conservative choice: Full/Partial tables remain in play either way).
func ownedSet(b puzzle.Block) int {
	id := -1
	for setID := range b {
		if id != -1 {
			return -1
		}
		id = setID
	}

	return id
}

// moveCost returns mv's weight in the active metric.
func moveCost(mv puzzle.Move, htm bool) int {
	if htm {
		return 1
	}

	return mv.QTM
}

// exhaustedSets returns, indexed by set id, whether every limit owning
// that set currently has zero remaining uses.
func (e *idaEngine) exhaustedSets() []bool {
	if len(e.sets) == 0 {
		return nil
	}
	ex := make([]bool, len(e.sets))
	// A set is exhausted iff it is owned by at least one limit and every
	// limit owning it currently has zero remaining uses.
	anyOwned := make([]bool, len(e.sets))
	allZero := make([]bool, len(e.sets))
	for s := range allZero {
		allZero[s] = true
	}
	for li, setID := range e.limitOwns {
		if setID < 0 {
			continue
		}
		anyOwned[setID] = true
		if e.remaining[li] > 0 {
			allZero[setID] = false
		}
	}
	for s := range ex {
		ex[s] = anyOwned[s] && allZero[s]
	}

	return ex
}

// emit records the current path as a solution and reports it.
func (e *idaEngine) emit(depth int) {
	moves := append([]puzzle.Move(nil), e.path...)
	sol := Solution{Moves: moves, Depth: depth}
	e.solutions = append(e.solutions, sol)
	if e.reporter != nil {
		e.reporter.Solution(sol)
	}
	if len(e.solutions) >= e.maxResults {
		e.stopped = true
	}
}

// dfs explores every move sequence from pos at cost g, under the current
// depth bound, recording every solution found along the way.
func (e *idaEngine) dfs(pos puzzle.Position, g int, lastMoveID int) {
	if e.stopped {
		return
	}
	if puzzle.EqualModuloIgnore(pos, e.solved, e.ignore) {
		e.emit(g)

		return
	}

	h := e.heuristic.Evaluate(pos, e.exhaustedSets())
	if g+h > e.depthBound {
		return
	}

	for _, mv := range e.moves {
		if e.stopped {
			return
		}
		if lastMoveID >= 0 && e.forbidden.Forbids(lastMoveID, mv.ID) {
			continue
		}
		li := e.limitFor[mv.ID]
		if li >= 0 && e.remaining[li] <= 0 {
			continue
		}
		if e.blocked[mv.ID] {
			continue
		}

		cost := moveCost(mv, e.htm)
		if g+cost > e.depthBound {
			continue
		}

		next := puzzle.Compose(e.sets, pos, mv)
		if li >= 0 {
			e.remaining[li]--
		}
		e.path = append(e.path, mv)

		e.dfs(next, g+cost, mv.ID)

		e.path = e.path[:len(e.path)-1]
		if li >= 0 {
			e.remaining[li]++
		}
	}
}

// Run executes IDA* from scramble against solved, per opts, reporting
// progress through reporter (nil is a valid, silent reporter).
func Run(sets []puzzle.Set, moves []puzzle.Move, forbidden *puzzle.ForbiddenPairs, heuristic pruning.Heuristic, solved, scramble puzzle.Position, opts Options, reporter Reporter) ([]Solution, error) {
	if len(scramble.Sets) != len(sets) || len(solved.Sets) != len(sets) {
		return nil, ErrShapeMismatch
	}

	e := newEngine(sets, moves, forbidden, heuristic, solved, opts, reporter)

	foundDepth := -1
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	for d := e.heuristic.Evaluate(scramble, e.exhaustedSets()); d <= maxDepth; d++ {
		e.depthBound = d
		e.path = e.path[:0]

		if e.reporter != nil {
			e.reporter.DepthStart(d)
		}
		start := time.Now()
		e.dfs(scramble, 0, -1)
		if e.reporter != nil {
			e.reporter.DepthDone(d, time.Since(start))
		}

		if len(e.solutions) > 0 && foundDepth < 0 {
			foundDepth = d
		}
		if e.stopped {
			break
		}
		if foundDepth >= 0 && d >= foundDepth+opts.Slack {
			break
		}
	}

	return e.solutions, nil
}

// defaultMaxDepth matches the CLI's documented -d default when Options
// leaves MaxDepth unset.
const defaultMaxDepth = 999
