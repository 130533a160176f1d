// Package maze models a rectangular grid maze of open and wall cells and
// searches it for paths between two cells.
//
// The grid itself is the graph: cells are vertices and orthogonally adjacent
// open cells are joined by an implicit edge. No adjacency lists are built.
//
// FindPath is the reference solver. It is a stack-based depth-first search,
// so the path it returns is a valid path but not necessarily a shortest one.
// ShortestPath (breadth-first) and AStar return shortest paths and can be
// selected through Solver when a strict optimum is wanted.
package maze
