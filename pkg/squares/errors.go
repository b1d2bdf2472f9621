package squares

import "errors"

// Grid and classification errors.
var (
	// ErrInvalidDimension indicates a source grid smaller than 2x2 or with ragged rows.
	ErrInvalidDimension = errors.New("squares: grid must be rectangular and at least 2x2")
	// ErrIndexOutOfRange indicates a square lookup outside the grid.
	ErrIndexOutOfRange = errors.New("squares: square index out of range")
	// ErrInvalidConfiguration indicates a corner value outside {0, 1}.
	ErrInvalidConfiguration = errors.New("squares: corner value out of range")
	// ErrUnknownSaddlePolicy indicates a saddle policy name or value that is
	// not defined.
	ErrUnknownSaddlePolicy = errors.New("squares: unknown saddle policy")
)
