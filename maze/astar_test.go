package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mazerun/maze"
)

func TestAStar_MatchesBFSLength(t *testing.T) {
	start := maze.Coord{Row: 0, Col: 0}
	end := maze.Coord{Row: 24, Col: 24}
	for seed := uint64(0); seed < 100; seed++ {
		g, err := maze.Generate(seeded(seed), 25, 25, 0.3)
		require.NoError(t, err)
		g.ForceOpen(start, end)

		bfs := maze.ShortestPath(g, start, end)
		astar := maze.AStar(g, start, end, 0)
		require.Equal(t, len(bfs), len(astar), "seed %d", seed)
		if len(astar) > 0 {
			assertValidPath(t, g, astar, start, end)
		}
	}
}

func TestAStar_EdgeCases(t *testing.T) {
	g, err := maze.Parse(
		"..#",
		".#.",
	)
	require.NoError(t, err)

	at := maze.Coord{Row: 0, Col: 0}
	assert.Equal(t, []maze.Coord{at}, maze.AStar(g, at, at, 0))
	assert.Nil(t, maze.AStar(g, at, maze.Coord{Row: 1, Col: 2}, 0), "unreachable")
	assert.Nil(t, maze.AStar(g, at, maze.Coord{Row: 0, Col: 2}, 0), "wall goal")
}

func TestAStar_NodeBudget(t *testing.T) {
	g, err := maze.NewGrid(10, 10)
	require.NoError(t, err)
	start := maze.Coord{Row: 0, Col: 0}
	end := maze.Coord{Row: 9, Col: 9}

	assert.Nil(t, maze.AStar(g, start, end, 3))
	assert.Len(t, maze.AStar(g, start, end, 0), 19)
}
