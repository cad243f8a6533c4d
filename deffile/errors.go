package deffile

import "errors"

// Sentinel errors for the deffile package. Every one is wrapped with
// fmt.Errorf at its return site to attach the token or command that
// triggered it; callers branch on the kind with errors.Is.
var (
	ErrUnknownCommand    = errors.New("deffile: unknown command")
	ErrUnexpectedEnd     = errors.New("deffile: unexpected end of file")
	ErrSetsMustComeFirst = errors.New("deffile: all sets must be declared before Move, Solved, or Ignore")
	ErrSetRedeclared     = errors.New("deffile: set declared more than once")
	ErrMoveRedeclared    = errors.New("deffile: move declared more than once")
	ErrUnknownSet        = errors.New("deffile: set not previously declared")
	ErrUnknownMove       = errors.New("deffile: move not previously declared")
	ErrBadInt            = errors.New("deffile: expected an integer")
	ErrSetInPositionTwice = errors.New("deffile: set given more than once in the same position block")
	ErrPieceOutOfRange   = errors.New("deffile: piece index out of range for its set")
)
