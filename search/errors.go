package search

import "errors"

// Sentinel errors for the search package.
var (
	// ErrShapeMismatch indicates scramble, solved, or ignore does not
	// carry one Substate per declared set.
	ErrShapeMismatch = errors.New("search: position shape mismatch")
)
