package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a grid with fewer than one row or column.
	ErrInvalidDimensions = errors.New("maze: grid must have at least one row and one column")
	// ErrInvalidWallProbability indicates a wall probability outside [0,1].
	ErrInvalidWallProbability = errors.New("maze: wall probability must be within [0,1]")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidCell indicates an unknown character in a parsed grid.
	ErrInvalidCell = errors.New("maze: invalid cell character")
	// ErrUnknownSolver indicates a solver name that is not registered.
	ErrUnknownSolver = errors.New("maze: unknown solver")
	// ErrUnsolvable indicates no path connects start and end.
	ErrUnsolvable = errors.New("maze: no path between start and end")
)
