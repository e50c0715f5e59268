package grid

import "errors"

var (
	// ErrUnknownGrid is returned when a grid name is not in the registry.
	ErrUnknownGrid = errors.New("unknown grid")

	// ErrInvalidCellNumber is returned for a cell number outside 1..rows*cols.
	ErrInvalidCellNumber = errors.New("invalid grid number")

	// ErrInvalidSpec is returned for malformed grid specs such as "SF1" or "SFO1-x".
	ErrInvalidSpec = errors.New("invalid grid spec")
)
