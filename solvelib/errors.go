package solvelib

import "errors"

// ErrNoScrambles reports a scramble file that yielded zero Scramble,
// ScrambleAlg, or RandomScramble blocks.
var ErrNoScrambles = errors.New("solvelib: scramble text contains no scrambles")
