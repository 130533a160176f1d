package maze

// FindPath searches g from start to end with an explicit-stack depth-first
// traversal and returns the path start..end inclusive, or nil when end is
// unreachable. The traversal halts as soon as end is popped.
//
// The result is a path, not necessarily a shortest one; see ShortestPath.
func FindPath(g *Grid, start, end Coord) []Coord {
	if start == end {
		return []Coord{start}
	}

	stack := []Coord{start}
	visited := make(map[Coord]struct{})
	parent := make(map[Coord]Coord)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == end {
			break
		}
		for _, n := range Neighbors(g, current) {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			parent[n] = current
			stack = append(stack, n)
		}
	}

	return reconstructPath(parent, start, end)
}

// reconstructPath follows parent links back from end to start and returns
// the reversed chain. A break in the chain yields nil.
func reconstructPath(parent map[Coord]Coord, start, end Coord) []Coord {
	path := make([]Coord, 0, 32)
	node := end
	for node != start {
		prev, ok := parent[node]
		if !ok {
			return nil
		}
		path = append(path, node)
		node = prev
	}
	path = append(path, start)

	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Steps returns the number of moves along path, or -1 for an empty path.
func Steps(path []Coord) int {
	return len(path) - 1
}
