package maze

// neighborOffsets is the fixed exploration order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the in-bounds open cells orthogonally adjacent to c, in
// the order up, down, left, right.
func Neighbors(g *Grid, c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}
