// Command solver is the twisty-puzzle solver CLI: it reads a definition
// file and a scramble file, builds pruning tables, and runs IDA* search
// on every scramble the scramble file declares, reporting progress and
// solutions to standard output as it goes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/ksolve-go/deffile"
	"github.com/katalvlaran/ksolve-go/god"
	"github.com/katalvlaran/ksolve-go/pruning"
	"github.com/katalvlaran/ksolve-go/puzzle"
	"github.com/katalvlaran/ksolve-go/scrfile"
	"github.com/katalvlaran/ksolve-go/search"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// verboseCounter implements flag.Value (plus the unexported IsBoolFlag
// hook the flag package looks for) so "-v" may be repeated without an
// argument, each occurrence incrementing the count.
type verboseCounter int

func (v *verboseCounter) String() string   { return strconv.Itoa(int(*v)) }
func (v *verboseCounter) Set(string) error { *v++; return nil }
func (v *verboseCounter) IsBoolFlag() bool { return true }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: solver [flags] <defFile> <scrambleFile>")
		fs.PrintDefaults()
	}

	var (
		maxDepth   int
		maxResults int
		memoryMiB  int64
		partialMiB int64
		skipPrune  bool
		verbose    verboseCounter
	)
	fs.IntVar(&maxDepth, "d", 999, "maximum search depth")
	fs.IntVar(&maxResults, "r", 999, "maximum results per scramble")
	fs.Int64Var(&memoryMiB, "M", 8192, "aggregate pruning-table memory budget, in MiB")
	fs.Int64Var(&partialMiB, "P", 0, "partial-table size cap, in MiB (0 keeps the package default)")
	fs.BoolVar(&skipPrune, "p", false, "skip building pruning tables")
	fs.Var(&verbose, "v", "increase verbosity (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()

		return 2
	}
	defPath, scramblePath := fs.Arg(0), fs.Arg(1)

	defFile, err := os.Open(defPath)
	if err != nil {
		fmt.Fprintln(stderr, "Can't open definition file!")

		return 1
	}
	defer defFile.Close()

	rs, err := deffile.Read(defFile)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}
	fmt.Fprintln(stdout, "Ruleset loaded.")
	for _, cmd := range rs.Deprecated {
		fmt.Fprintf(stderr, "Warning: %q is deprecated and was ignored.\n", cmd)
	}
	fmt.Fprintf(stdout, "Generated moves: %s.\n", strings.Join(derivedMoveNames(rs.Moves), ", "))

	machine := search.NewMachine()
	if _, err := machine.Fire(search.EventRulesLoaded); err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	budget := puzzle.DefaultBudget()
	budget.MemoryBytes = memoryMiB * 1024 * 1024
	if partialMiB > 0 {
		budget.PartialPermBytes = partialMiB * 1024 * 1024
		budget.PartialOriBytes = partialMiB * 1024 * 1024
	}
	budget.SkipPrune = skipPrune
	budget.Verbose = int(verbose)

	var permTables, oriTables []*pruning.Table
	if !skipPrune {
		permTables, oriTables = pruning.BuildAll(ctx, rs.Sets, rs.Moves, budget)
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}
		fmt.Fprintln(stdout, "Pruning tables loaded.")
		if _, err := machine.Fire(search.EventTablesBuilt); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}
	} else {
		fmt.Fprintln(stdout, "Pruning tables skipped!")
		if _, err := machine.Fire(search.EventTablesSkipped); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}
	}

	if scramblePath == "!" || scramblePath == "!q" {
		return runGod(stdout, stderr, rs, scramblePath)
	}

	scrambleFile, err := os.Open(scramblePath)
	if err != nil {
		fmt.Fprintln(stderr, "Can't open scramble file!")

		return 1
	}
	defer scrambleFile.Close()

	defs, err := scrfile.Read(scrambleFile, rs, 0, maxDepth)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	start := time.Now()
	reporter := &cliReporter{w: stdout}
	for i, d := range defs {
		fmt.Fprintf(stdout, "\nSolving %s\n", d.Name)

		// EventTablesBuilt lands on TABLES_BUILT (not LOADED_SCRAMBLE), so the
		// first scramble needs an explicit load; the skip-prune path already
		// transitioned straight to LOADED_SCRAMBLE via EventTablesSkipped.
		if i == 0 && !skipPrune {
			if _, err := machine.Fire(search.EventScrambleLoaded); err != nil {
				fmt.Fprintln(stderr, err)

				return 1
			}
		} else if i > 0 {
			if _, err := machine.Fire(search.EventNextScramble); err != nil {
				fmt.Fprintln(stderr, err)

				return 1
			}
		}

		heuristic := pruning.Heuristic{Perm: permTables, Ori: oriTables}
		if !skipPrune && len(d.Limits) > 0 {
			heuristic.LimitedPerm, heuristic.LimitedOri = pruning.BuildLimited(ctx, rs.Sets, rs.Moves, d.Limits, budget)
		}

		opts := search.Options{
			MaxDepth:   d.MaxDepth,
			Slack:      d.Slack,
			MaxResults: maxResults,
			HTM:        d.HTM,
			Ignore:     d.Ignore,
			Limits:     d.Limits,
			Blocks:     rs.Blocks,
		}

		if _, err := machine.Fire(search.EventSearchStarted); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}

		solutions, err := search.Run(rs.Sets, rs.Moves, rs.Forbidden, heuristic, rs.Solved, d.State, opts, reporter)
		if err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}

		outcome := search.EventAbortedDepth
		if len(solutions) > 0 {
			outcome = search.EventSolved
		}
		if _, err := machine.Fire(outcome); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}
	}
	if len(defs) > 0 {
		if _, err := machine.Fire(search.EventNoMoreScrambles); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}
	}
	fmt.Fprintf(stdout, "Total time: %ss\n", formatSeconds(time.Since(start)))

	return 0
}

// runGod handles the "!"/"!q" special scramble-file tokens: full-space
// BFS depth-count enumeration instead of any scramble solving.
func runGod(stdout, stderr io.Writer, rs *deffile.Ruleset, scramblePath string) int {
	metric, label := god.HTM, "HTM"
	if scramblePath == "!q" {
		metric, label = god.QTM, "QTM"
	}
	fmt.Fprintf(stdout, "Computing God's Algorithm tables (%s)\n", label)

	start := time.Now()
	levels, err := god.Enumerate(rs.Sets, rs.Moves, rs.Solved, god.Options{Metric: metric, Forbidden: rs.Forbidden})
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}
	for _, lvl := range levels {
		fmt.Fprintf(stdout, "%d: %d\n", lvl.Depth, lvl.Count)
	}
	fmt.Fprintf(stdout, "Time: %ss\n", formatSeconds(time.Since(start)))

	return 0
}

// derivedMoveNames returns every compiled move's name except the base
// generator entries (id == parentID), matching the source's own
// "Generated moves" listing (it skips each generator's own table slot,
// printing only the powers derived from it).
func derivedMoveNames(moves []puzzle.Move) []string {
	names := make([]string, 0, len(moves))
	for _, mv := range moves {
		if mv.ID == mv.ParentID {
			continue
		}
		names = append(names, mv.Name)
	}

	return names
}

// cliReporter writes search progress to stdout per the CLI's stdout
// contract: one depth-timing line per completed depth bound, one line
// per emitted solution.
type cliReporter struct {
	w io.Writer
}

func (r *cliReporter) DepthStart(d int) {}

func (r *cliReporter) DepthDone(d int, elapsed time.Duration) {
	fmt.Fprintf(r.w, "Depth %d, time %ss\n", d, formatSeconds(elapsed))
}

func (r *cliReporter) Solution(sol search.Solution) {
	names := make([]string, len(sol.Moves))
	for i, mv := range sol.Moves {
		names[i] = mv.Name
	}
	fmt.Fprintln(r.w, strings.Join(names, " "))
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', -1, 64)
}
