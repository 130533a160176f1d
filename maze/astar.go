package maze

import "container/heap"

// DefaultAStarMaxNodes bounds the number of nodes AStar expands.
const DefaultAStarMaxNodes = 1 << 16

// AStar finds a shortest path from start to end using A* with a Manhattan
// heuristic. At most maxNodes nodes are expanded; a non-positive maxNodes
// uses DefaultAStarMaxNodes. It returns nil when end is unreachable or the
// node budget runs out.
func AStar(g *Grid, start, end Coord, maxNodes int) []Coord {
	if start == end {
		return []Coord{start}
	}
	if !g.IsOpen(start) || !g.IsOpen(end) {
		return nil
	}
	if maxNodes <= 0 {
		maxNodes = DefaultAStarMaxNodes
	}

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{pos: start, f: manhattan(start, end)})

	parent := make(map[Coord]Coord, 128)
	gScore := map[Coord]int{start: 0}

	expanded := 0
	for open.Len() > 0 && expanded < maxNodes {
		current := heap.Pop(open).(*openItem)
		if best, ok := gScore[current.pos]; ok && current.g > best {
			// stale entry
			continue
		}
		expanded++
		if current.pos == end {
			return reconstructPath(parent, start, end)
		}

		for _, n := range Neighbors(g, current.pos) {
			tentative := current.g + 1
			if prev, seen := gScore[n]; seen && tentative >= prev {
				continue
			}
			parent[n] = current.pos
			gScore[n] = tentative
			heap.Push(open, &openItem{pos: n, g: tentative, f: tentative + manhattan(n, end)})
		}
	}

	return nil
}

func manhattan(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

type openItem struct {
	pos   Coord
	f     int
	g     int
	index int
}

type openSet []*openItem

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f == o[j].f {
		return o[i].g > o[j].g
	}
	return o[i].f < o[j].f
}
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
