package god

import "errors"

// ErrShapeMismatch is returned when solved does not have one Substate per
// declared set.
var ErrShapeMismatch = errors.New("god: solved position shape mismatch")
