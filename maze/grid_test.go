package maze_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mazerun/maze"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		p          float64
		err        error
	}{
		{"zero_rows", 0, 5, 0.3, maze.ErrInvalidDimensions},
		{"negative_cols", 5, -1, 0.3, maze.ErrInvalidDimensions},
		{"p_below_zero", 5, 5, -0.1, maze.ErrInvalidWallProbability},
		{"p_above_one", 5, 5, 1.5, maze.ErrInvalidWallProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Generate(seeded(1), tc.rows, tc.cols, tc.p)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGenerate_CellsAndForcedEndpoints(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		g, err := maze.Generate(seeded(seed), 30, 30, maze.DefaultWallProbability)
		require.NoError(t, err)
		require.Equal(t, 30, g.Rows)
		require.Equal(t, 30, g.Cols)

		start := maze.Coord{Row: 0, Col: 0}
		end := maze.Coord{Row: 29, Col: 29}
		g.ForceOpen(start, end)

		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				cell := g.At(maze.Coord{Row: r, Col: c})
				if cell != maze.Open && cell != maze.Wall {
					t.Fatalf("seed %d: cell (%d,%d) = %v", seed, r, c, cell)
				}
			}
		}
		assert.True(t, g.IsOpen(start), "seed %d: start must be open", seed)
		assert.True(t, g.IsOpen(end), "seed %d: end must be open", seed)
	}
}

func TestGenerate_ProbabilityExtremes(t *testing.T) {
	g, err := maze.Generate(seeded(7), 10, 12, 0)
	require.NoError(t, err)
	assert.Equal(t, 120, g.OpenCount())

	g, err = maze.Generate(seeded(7), 10, 12, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.OpenCount())
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a, err := maze.Generate(seeded(42), 20, 20, 0.3)
	require.NoError(t, err)
	b, err := maze.Generate(seeded(42), 20, 20, 0.3)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestParse(t *testing.T) {
	g, err := maze.Parse(
		"S.#",
		"#*.",
		"..E",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, maze.Wall, g.At(maze.Coord{Row: 0, Col: 2}))
	assert.Equal(t, maze.Open, g.At(maze.Coord{Row: 1, Col: 1}))
	assert.Equal(t, "..#\n#..\n...\n", g.String())

	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"empty", nil, maze.ErrInvalidDimensions},
		{"empty_row", []string{""}, maze.ErrInvalidDimensions},
		{"ragged", []string{"..", "."}, maze.ErrNonRectangular},
		{"bad_rune", []string{".x"}, maze.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.lines...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGrid_BoundsReadAsWall(t *testing.T) {
	g, err := maze.NewGrid(2, 2)
	require.NoError(t, err)
	for _, c := range []maze.Coord{{Row: -1, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 1}} {
		assert.False(t, g.In(c))
		assert.Equal(t, maze.Wall, g.At(c))
	}
	// out-of-bounds ForceOpen is a no-op
	g.ForceOpen(maze.Coord{Row: 5, Col: 5})
	assert.Equal(t, 4, g.OpenCount())
}

func TestGrid_Sketch(t *testing.T) {
	g, err := maze.Parse(
		"...",
		".#.",
		"...",
	)
	require.NoError(t, err)
	path := []maze.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	want := "S**\n.#*\n..E\n"
	assert.Equal(t, want, g.Sketch(path, path[0], path[len(path)-1]))
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "Open", maze.Open.String())
	assert.Equal(t, "Wall", maze.Wall.String())
	assert.Equal(t, "Cell(9)", maze.Cell(9).String())
}
