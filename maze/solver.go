package maze

import (
	"fmt"
	"strings"
)

// Solver names the search used to compute a reference path.
type Solver string

const (
	// SolverDFS is the stack-based depth-first search. Its path is a valid
	// route but may be longer than the shortest one.
	SolverDFS Solver = "dfs"
	// SolverBFS is breadth-first search and yields a shortest path.
	SolverBFS Solver = "bfs"
	// SolverAStar is A* with a Manhattan heuristic and yields a shortest path.
	SolverAStar Solver = "astar"
)

// Solvers lists every registered solver in a stable order.
var Solvers = []Solver{SolverDFS, SolverBFS, SolverAStar}

// ParseSolver maps a case-insensitive name to a Solver. The empty string
// selects SolverDFS.
func ParseSolver(name string) (Solver, error) {
	s := Solver(strings.ToLower(strings.TrimSpace(name)))
	if s == "" {
		return SolverDFS, nil
	}
	for _, known := range Solvers {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}

// Shortest reports whether the solver guarantees a shortest path.
func (s Solver) Shortest() bool {
	return s == SolverBFS || s == SolverAStar
}

// Solve runs the named solver. An unknown solver returns ErrUnknownSolver;
// an unreachable end returns a nil path and no error.
func Solve(s Solver, g *Grid, start, end Coord) ([]Coord, error) {
	switch s {
	case SolverDFS, "":
		return FindPath(g, start, end), nil
	case SolverBFS:
		return ShortestPath(g, start, end), nil
	case SolverAStar:
		return AStar(g, start, end, 0), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, string(s))
	}
}
