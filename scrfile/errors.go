package scrfile

import "errors"

// Sentinel errors for the scrfile package. Every one is wrapped with
// fmt.Errorf at its return site to attach the offending token or command.
var (
	ErrUnknownCommand = errors.New("scrfile: unknown command")
	ErrUnexpectedEnd  = errors.New("scrfile: unexpected end of file")
	ErrUnknownSet     = errors.New("scrfile: set not declared in the ruleset")
	ErrUnknownMove    = errors.New("scrfile: move not declared in the ruleset")
	ErrBadInt         = errors.New("scrfile: expected an integer")
	ErrSetInScrambleTwice = errors.New("scrfile: set given more than once in the same scramble block")
)
