// Package scrfile reads the scramble-file token grammar against an
// already-compiled deffile.Ruleset: Scramble, ScrambleAlg, RandomScramble,
// and the meta-commands MaxDepth, Slack, HTM, QTM, and MoveLimits that
// persist across scrambles until overwritten.
//
// Read produces one ScrambleDef per Scramble/ScrambleAlg/RandomScramble
// block, each carrying its own snapshot of the meta-command values active
// at the point it was read.
package scrfile
