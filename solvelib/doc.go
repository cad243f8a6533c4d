// Package solvelib wires the reader, pruning, and search packages into a
// single embeddable entrypoint: definition text and scramble text in,
// one Result per scramble block out, with no file I/O and no stdout
// output of its own. cmd/solver is the CLI that prints progress; this
// package is the thing it (and any other host) calls into.
package solvelib
