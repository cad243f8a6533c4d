package puzzle

import "errors"

// Sentinel errors for the puzzle package.
//
// Following the project-wide error policy: every sentinel is package-
// prefixed, never wrapped with fmt.Errorf at the definition site, and
// callers branch on semantics with errors.Is.
var (
	// ErrUnknownSet indicates a set-id with no corresponding registry entry.
	ErrUnknownSet = errors.New("puzzle: unknown set")

	// ErrSetRedeclared indicates a set name was registered more than once
	// where the caller required a fresh declaration.
	ErrSetRedeclared = errors.New("puzzle: set declared more than once")

	// ErrBadSetSize indicates a Set size less than 1.
	ErrBadSetSize = errors.New("puzzle: set size must be positive")

	// ErrBadModulus indicates a negative orientation modulus.
	ErrBadModulus = errors.New("puzzle: orientation modulus must be non-negative")

	// ErrShapeMismatch indicates two Positions (or a Position and a Move)
	// do not have the same number of sets, or a substate's size disagrees
	// with its Set's declared size.
	ErrShapeMismatch = errors.New("puzzle: position/move shape mismatch")

	// ErrInvalidPermutation indicates a permutation substate that must be
	// unique (a Solved declaration, or any position checked at parse time)
	// contains a repeated label, or, from Set.DeriveFromSolved, a solved
	// permutation holding a label that is not positive.
	ErrInvalidPermutation = errors.New("puzzle: permutation has repeated labels")
)
