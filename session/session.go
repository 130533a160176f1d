// Package session owns the state of one game: the generated grid, its
// reference path, and the player's progress through it.
package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/mazerun/config"
	"github.com/milk9111/mazerun/maze"
	"github.com/milk9111/mazerun/score"
)

// Session is a single maze being played. It is not safe for concurrent use;
// the presentation layer reads it through Snapshot.
type Session struct {
	grid     *maze.Grid
	start    maze.Coord
	end      maze.Coord
	solver   maze.Solver
	path     []maze.Coord
	attempts int

	player  maze.Coord
	steps   int
	reached bool
	score   float64
	scorer  *score.Scorer
}

// Snapshot is a copy of the mutable session state.
type Snapshot struct {
	Player   maze.Coord
	Steps    int
	Optimal  int
	Reached  bool
	Score    float64
	Attempts int
}

// New generates grids from cfg until the configured solver finds a path
// between the endpoints, giving up with maze.ErrUnsolvable after
// cfg.MaxAttempts tries. A nil scorer uses score.Default.
func New(cfg config.Config, rng *rand.Rand, scorer *score.Scorer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	solver, err := cfg.SolverKind()
	if err != nil {
		return nil, err
	}
	if scorer == nil {
		scorer = score.Default()
	}

	start, end := cfg.StartCoord(), cfg.EndCoord()
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		g, err := maze.Generate(rng, cfg.Rows, cfg.Cols, cfg.WallProbability)
		if err != nil {
			return nil, err
		}
		g.ForceOpen(start, end)

		s, err := FromGrid(g, start, end, solver, scorer)
		if err != nil {
			return nil, err
		}
		if s.path == nil {
			continue
		}
		s.attempts = attempt
		return s, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", maze.ErrUnsolvable, cfg.MaxAttempts)
}

// FromGrid starts a session on an existing grid. The endpoints are forced
// open. An unreachable end yields a session with an empty path; callers can
// check Solvable.
func FromGrid(g *maze.Grid, start, end maze.Coord, solver maze.Solver, scorer *score.Scorer) (*Session, error) {
	if !g.In(start) || !g.In(end) {
		return nil, fmt.Errorf("session: endpoints %v, %v outside %dx%d grid", start, end, g.Rows, g.Cols)
	}
	if scorer == nil {
		scorer = score.Default()
	}
	g.ForceOpen(start, end)

	path, err := maze.Solve(solver, g, start, end)
	if err != nil {
		return nil, err
	}
	return &Session{
		grid:     g,
		start:    start,
		end:      end,
		solver:   solver,
		path:     path,
		attempts: 1,
		player:   start,
		// a start on the end cell arrives with zero steps and scores 0
		reached: start == end,
		scorer:  scorer,
	}, nil
}

func (s *Session) Grid() *maze.Grid    { return s.grid }
func (s *Session) Start() maze.Coord   { return s.start }
func (s *Session) End() maze.Coord     { return s.end }
func (s *Session) Solver() maze.Solver { return s.solver }

// Path returns the reference path. Callers must not modify it.
func (s *Session) Path() []maze.Coord { return s.path }

// Solvable reports whether the reference solver found a path.
func (s *Session) Solvable() bool { return len(s.path) > 0 }

// OptimalSteps is the number of moves along the reference path, or -1 when
// the maze is unsolvable.
func (s *Session) OptimalSteps() int { return maze.Steps(s.path) }

// Move steps the player one cell in dir when the target is open. Bumping a
// wall or the edge does not count as a step, and moves after arrival are
// ignored. It reports whether the player moved.
func (s *Session) Move(dir Direction) (bool, error) {
	if s.reached || dir == None {
		return false, nil
	}
	dr, dc := dir.Delta()
	next := s.player.Add(dr, dc)
	if !s.grid.IsOpen(next) {
		return false, nil
	}

	s.player = next
	s.steps++
	if s.player == s.end {
		s.reached = true
		v, err := s.scorer.Compute(s.OptimalSteps(), s.steps)
		if err != nil {
			return true, err
		}
		s.score = v
	}
	return true, nil
}

// Snapshot returns a copy of the player state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Player:   s.player,
		Steps:    s.steps,
		Optimal:  s.OptimalSteps(),
		Reached:  s.reached,
		Score:    s.score,
		Attempts: s.attempts,
	}
}

// Sketch renders the grid with the reference path as text.
func (s *Session) Sketch() string {
	return s.grid.Sketch(s.path, s.start, s.end)
}
