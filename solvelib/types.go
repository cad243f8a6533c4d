package solvelib

import (
	"github.com/katalvlaran/ksolve-go/puzzle"
	"github.com/katalvlaran/ksolve-go/search"
)

// Options configures one Solve call. The zero value is the CLI's own
// documented defaults: unseeded (fixed stream) random scrambles, up to
// 999 results per scramble, pruning tables built against an 8 GiB
// budget, and no progress reporting.
type Options struct {
	// Seed feeds scrfile.Read's RandomScramble RNG; 0 selects the fixed
	// default stream, matching a deterministic test run.
	Seed int64

	// MaxDepth seeds the depth cap every scramble starts with, before
	// any MaxDepth command in the scramble text overrides it; 0 selects
	// 999, mirroring the CLI's -d default.
	MaxDepth int

	// MaxResults caps solutions reported per scramble when positive;
	// otherwise defaults to 999, mirroring the CLI's -r default.
	MaxResults int

	// Budget bounds aggregate pruning-table memory and carries the -p
	// skip-prune flag (Budget.SkipPrune); a zero MemoryBytes selects
	// puzzle.DefaultBudget()'s caps while preserving SkipPrune.
	Budget puzzle.Budget

	// Reporter observes per-depth and per-solution search progress
	// across every scramble Solve processes; nil is silent.
	Reporter search.Reporter
}

// Result is one scramble block's outcome: its name (as snapshotted by
// scrfile, already carrying any "(skipped some moves)" annotation), the
// position it started from, and every solution search.Run emitted
// within the scramble's own depth/slack/maxResults budget.
type Result struct {
	Name      string
	Scrambled puzzle.Position
	Solutions []search.Solution
}
