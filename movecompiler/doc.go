// Package movecompiler expands each user-declared generator move into its
// full cyclic power closure: a move of cyclic order k yields
// k-1 distinct non-identity powers, canonically named g, g{p} (2 <= p <=
// k/2), g', g{k-p}' (k/2 < p <= k-2), each carrying its quarter-turn-metric
// weight (qtm = min(p, k-p)).
//
// Every pair of powers sharing a parent generator is mutually forbidden —
// applying two such powers back to back is always redundant, since their
// composition is itself some other power of the same generator (or the
// identity). Compiler.DetectParallel additionally forbids one direction of
// every pair of commuting generators' powers, using the canonical tie-break
// from the original ksolve reader: forbid (a, b) only when (b, a) is not
// already forbidden.
package movecompiler
