// Package god enumerates the full reachable state space forward from
// solved, reporting the number of positions found at each depth under
// either the half-turn or quarter-turn metric.
//
// It shares the BFS shape of the pruning builder's reverse walk, run in the
// opposite direction and over the composite position (every set at once)
// rather than one set's coset, with a per-depth bucket queue in place of
// the builder's single FIFO queue.
package god
