package maze

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultWallProbability is the chance that a generated cell is a wall.
const DefaultWallProbability = 0.3

const (
	openRune  = '.'
	wallRune  = '#'
	pathRune  = '*'
	startRune = 'S'
	endRune   = 'E'
)

// Grid is a dense row-major matrix of cells. Apart from ForceOpen it is not
// mutated once built.
type Grid struct {
	Rows  int
	Cols  int
	cells []Cell
}

// NewGrid returns a rows x cols grid with every cell open.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Generate builds a rows x cols grid where each cell is independently a wall
// with probability wallProb. Connectivity is not guaranteed; callers force
// their endpoints open with ForceOpen and check solvability themselves.
// A nil rng draws from the process-wide source.
func Generate(rng *rand.Rand, rows, cols int, wallProb float64) (*Grid, error) {
	if wallProb < 0 || wallProb > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWallProbability, wallProb)
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	roll := rand.Float64
	if rng != nil {
		roll = rng.Float64
	}
	for i := range g.cells {
		if roll() < wallProb {
			g.cells[i] = Wall
		}
	}
	return g, nil
}

// Parse builds a grid from text rows where '#' is a wall and '.' is open.
// 'S', 'E' and '*' are read as open so sketches round-trip.
func Parse(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	g, err := NewGrid(len(lines), len(lines[0]))
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		if len(line) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), g.Cols)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case wallRune:
				g.cells[r*g.Cols+c] = Wall
			case openRune, startRune, endRune, pathRune:
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidCell, line[c], r, c)
			}
		}
	}
	return g, nil
}

// In reports whether c lies within the grid bounds.
func (g *Grid) In(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the cell at c. Out-of-bounds coordinates read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.In(c) {
		return Wall
	}
	return g.cells[c.Row*g.Cols+c.Col]
}

// IsOpen reports whether c is in bounds and traversable.
func (g *Grid) IsOpen(c Coord) bool {
	return g.At(c) == Open
}

// ForceOpen marks the given in-bounds cells open. It is meant for the start
// and end cells right after generation. Out-of-bounds coordinates are ignored.
func (g *Grid) ForceOpen(cs ...Coord) {
	for _, c := range cs {
		if g.In(c) {
			g.cells[c.Row*g.Cols+c.Col] = Open
		}
	}
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell == Open {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	return g.Sketch(nil, Coord{Row: -1, Col: -1}, Coord{Row: -1, Col: -1})
}

// Sketch renders the grid like String, marking path cells with '*' and the
// start and end cells with 'S' and 'E'.
func (g *Grid) Sketch(path []Coord, start, end Coord) string {
	onPath := make(map[Coord]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			pos := Coord{Row: r, Col: c}
			_, marked := onPath[pos]
			switch {
			case pos == start:
				b.WriteByte(startRune)
			case pos == end:
				b.WriteByte(endRune)
			case g.At(pos) == Wall:
				b.WriteByte(wallRune)
			case marked:
				b.WriteByte(pathRune)
			default:
				b.WriteByte(openRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
