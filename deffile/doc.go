// Package deffile reads the definition-file token grammar: Name, Set,
// Move, Solved, ForbiddenPairs, ForbiddenGroups, Ignore, Block, and
// `#`-introduced line comments. ParallelMoves, Multiplicators, and
// MoveLimits are recognized and discarded (the first two predate
// movecompiler's own commuting-generator detection; the third moved to
// the scramble file).
//
// Read produces a Ruleset: the fully compiled move set (generators, every
// derived power, and the accumulated forbidden-pair relation), the solved
// position, and the ancillary Ignore mask and Block list a scrfile reader
// needs to interpret scrambles against the same puzzle.
package deffile
