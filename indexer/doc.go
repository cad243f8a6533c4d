// Package indexer implements the four bijections between a puzzle.Set's
// permutation/orientation and a compact integer index: full
// permutation, full orientation, partial permutation, and partial
// orientation, each with a Rank and an Unrank half.
//
// Full-permutation ranking uses the factorial number system (Lehmer code);
// when a set's PParity holds, only even permutations ever occur and the
// index range is halved by pairing each permutation with its "swap the
// last two slots" partner — exactly one member of every such pair is even,
// so floor(rank/2) is a bijection onto [0, n!/2).
//
// Full-orientation ranking is a base-modulus mixed-radix encoding; when a
// set's OParity holds, the orientation sum is fixed modulo the modulus, so
// the last coordinate is redundant and dropped.
//
// Partial indexes restrict attention to a distinguished LabelSet of piece
// identities, not a fixed set of board positions; see setindex.go's
// LabelSet doc for why the identity reading, rather than a position
// reading, is the one that survives reverse-BFS table construction.
// Partial permutation ranks the tracked labels'
// current positions as a k-permutation of the set's n slots (falling back
// to a plain mixed-radix tuple encoding when positions can repeat, since a
// ranked k-permutation assumes distinct values); partial orientation is
// always a plain mixed-radix encoding of the tracked labels' current
// orientations.
package indexer
