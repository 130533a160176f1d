package maze

//go:generate stringer -type=Cell

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Open cells may be traversed.
	Open Cell = iota
	// Wall cells block traversal.
	Wall
)

// Coord addresses a cell by 0-indexed row and column.
type Coord struct {
	Row int
	Col int
}

// Add returns c shifted by the given row and column deltas.
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Coord) Adjacent(o Coord) bool {
	dr := c.Row - o.Row
	dc := c.Col - o.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}
