// Package puzzle defines the central Set, Substate, Position, and Move types
// for the twisty-puzzle solver, and provides the algebra (composition,
// solved-test modulo an ignore mask, parity computation) built on them.
//
// A Position is a dense vector of Substates indexed by set-id; a Move is a
// Position-shaped action composed with a Position to produce the position
// after applying the move. Sets are registered in a Registry in first-
// mention order, mirroring the definition file's declaration order.
//
// All types use value semantics: Compose returns a fresh Position rather
// than mutating its argument, so callers may freely share a Position across
// branches of a search without aliasing bugs.
package puzzle
