package config

import "errors"

var (
	// ErrOutOfBounds indicates a start or end cell outside the grid.
	ErrOutOfBounds = errors.New("config: coordinate out of bounds")
	// ErrInvalidValue indicates a numeric setting outside its allowed range.
	ErrInvalidValue = errors.New("config: invalid value")
)
