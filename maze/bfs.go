package maze

// ShortestPath is the breadth-first counterpart of FindPath. It explores
// neighbors in the same order and returns a shortest path from start to end,
// or nil when end is unreachable.
func ShortestPath(g *Grid, start, end Coord) []Coord {
	if start == end {
		return []Coord{start}
	}

	queue := []Coord{start}
	visited := map[Coord]struct{}{start: {}}
	parent := make(map[Coord]Coord)

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if current == end {
			break
		}
		for _, n := range Neighbors(g, current) {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			parent[n] = current
			queue = append(queue, n)
		}
	}

	return reconstructPath(parent, start, end)
}

// Reachable reports whether any sequence of open orthogonal moves joins start
// and end. Both endpoints must be open.
func Reachable(g *Grid, start, end Coord) bool {
	if !g.IsOpen(start) || !g.IsOpen(end) {
		return false
	}
	return ShortestPath(g, start, end) != nil
}
