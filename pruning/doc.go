// Package pruning builds and evaluates pattern-database heuristic tables
// for one puzzle.Set at a time.
//
// For each set the builder selects, independently, a permutation-domain
// table and an orientation-domain table: full permutation falling back to
// partial permutation, and (separately) full orientation falling back to
// partial orientation. The two domains are not alternatives — a set can
// carry one table from each, and Heuristic.Evaluate takes their max — they
// only share a byte budget, spent permutation-domain first. Full tables
// are attempted only when the set's permutation is unique (for the
// permutation domain) and the relevant full-index domain fits under
// DefaultMaxFullTable; partial tables fall back to a greedily-grown LabelSet
// capped by a byte budget (puzzle.Budget's PartialPermCap/PartialOriCap).
//
// Every table is built by reverse breadth-first search from the solved
// coset(s): entries start at depth 255 ("unreached"), the solved index is
// seeded at 0, and each BFS round ranks the successors of every depth-d
// entry reached by inverting a compiled move. Partial tables track a fixed
// LabelSet (see indexer.LabelSet) rather than a fixed position subset,
// since only a piece's own identity survives composition with moves that
// may bring untracked content into a tracked position. Construction
// accepts a context.Context, checked once per BFS dequeue, mirroring the
// teacher's bfs package; cancellation truncates a table's construction
// rather than discarding it.
package pruning
