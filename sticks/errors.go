package sticks

import "errors"

// Errors
var (
	ErrOutOfRange         = errors.New("connection point index out of range")
	ErrCellOccupied       = errors.New("cell is occupied")
	ErrSignConflict       = errors.New("sign must match existing bound")
	ErrInvalidSign        = errors.New("sign must be '+' or '-'")
	ErrInvalidMemberCount = errors.New("number of sticks must be in [4, 1024]")
	ErrBadScript          = errors.New("bad move script")
	ErrBadEncoding        = errors.New("bad grid encoding")
)
