// Package search implements iterative-deepening search for one scramble
// against a compiled Ruleset: threshold f = g + h = D, forbidden-pair
// skip, move-limit skip, block-legality skip, HTM/QTM move weight, slack
// enumeration past the first solution, and a bounded result count.
//
// The solver-per-scramble lifecycle (State, Event, Machine) is a separate,
// explicit value type rather than implicit control flow threaded through
// Run, so its legal transitions can be asserted on directly in tests.
package search
