package solvelib

import (
	"context"
	"strings"

	"github.com/katalvlaran/ksolve-go/deffile"
	"github.com/katalvlaran/ksolve-go/pruning"
	"github.com/katalvlaran/ksolve-go/puzzle"
	"github.com/katalvlaran/ksolve-go/scrfile"
	"github.com/katalvlaran/ksolve-go/search"
)

// defaultMaxResults mirrors the CLI's own -r default.
const defaultMaxResults = 999

// Solve reads defText as a definition file and scrambleText as a
// scramble file against the compiled ruleset, then runs IDA* search on
// every scramble block in turn, returning one Result each in the order
// the scramble file declares them. It performs no file or console I/O:
// the caller owns both inputs and everything Solve reports. ctx is
// threaded into pruning-table construction, the only stage with a loop
// worth checking for cancellation; if ctx is cancelled by the time that
// construction returns, Solve returns nil and ctx.Err() without
// searching any scramble.
func Solve(ctx context.Context, defText, scrambleText string, opts Options) ([]Result, error) {
	rs, err := deffile.Read(strings.NewReader(defText))
	if err != nil {
		return nil, err
	}

	defs, err := scrfile.Read(strings.NewReader(scrambleText), rs, opts.Seed, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, ErrNoScrambles
	}

	machine := search.NewMachine()
	if _, err := machine.Fire(search.EventRulesLoaded); err != nil {
		return nil, err
	}

	budget := opts.Budget
	if budget.MemoryBytes == 0 {
		skip := budget.SkipPrune
		budget = puzzle.DefaultBudget()
		budget.SkipPrune = skip
	}

	var permTables, oriTables []*pruning.Table
	if !budget.SkipPrune {
		permTables, oriTables = pruning.BuildAll(ctx, rs.Sets, rs.Moves, budget)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := machine.Fire(search.EventTablesBuilt); err != nil {
			return nil, err
		}
	} else {
		if _, err := machine.Fire(search.EventTablesSkipped); err != nil {
			return nil, err
		}
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	results := make([]Result, 0, len(defs))
	for i, d := range defs {
		if i == 0 && !budget.SkipPrune {
			if _, err := machine.Fire(search.EventScrambleLoaded); err != nil {
				return nil, err
			}
		} else if i > 0 {
			if _, err := machine.Fire(search.EventNextScramble); err != nil {
				return nil, err
			}
		}

		heuristic := pruning.Heuristic{Perm: permTables, Ori: oriTables}
		if !budget.SkipPrune && len(d.Limits) > 0 {
			heuristic.LimitedPerm, heuristic.LimitedOri = pruning.BuildLimited(ctx, rs.Sets, rs.Moves, d.Limits, budget)
		}

		searchOpts := search.Options{
			MaxDepth:   d.MaxDepth,
			Slack:      d.Slack,
			MaxResults: maxResults,
			HTM:        d.HTM,
			Ignore:     d.Ignore,
			Limits:     d.Limits,
			Blocks:     rs.Blocks,
		}

		if _, err := machine.Fire(search.EventSearchStarted); err != nil {
			return nil, err
		}

		solutions, err := search.Run(rs.Sets, rs.Moves, rs.Forbidden, heuristic, rs.Solved, d.State, searchOpts, opts.Reporter)
		if err != nil {
			return nil, err
		}

		outcome := search.EventAbortedDepth
		if len(solutions) > 0 {
			outcome = search.EventSolved
		}
		if _, err := machine.Fire(outcome); err != nil {
			return nil, err
		}

		results = append(results, Result{
			Name:      d.Name,
			Scrambled: d.State,
			Solutions: solutions,
		})
	}
	if _, err := machine.Fire(search.EventNoMoreScrambles); err != nil {
		return nil, err
	}

	return results, nil
}
