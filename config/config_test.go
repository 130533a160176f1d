package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mazerun/config"
	"github.com/milk9111/mazerun/maze"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Rows)
	assert.Equal(t, 30, cfg.Cols)
	assert.InDelta(t, 0.3, cfg.WallProbability, 1e-12)
	assert.Equal(t, maze.Coord{Row: 0, Col: 0}, cfg.StartCoord())
	assert.Equal(t, maze.Coord{Row: 29, Col: 29}, cfg.EndCoord())
	assert.Equal(t, 100*time.Millisecond, cfg.MoveDelay())

	solver, err := cfg.SolverKind()
	require.NoError(t, err)
	assert.Equal(t, maze.SolverDFS, solver)

	w, h := cfg.ScreenSize()
	assert.Equal(t, 600, w)
	assert.Equal(t, 640, h)
}

func TestLoad_Override(t *testing.T) {
	path := writeFile(t, t.TempDir(), "maze.yaml", `
rows: 10
cols: 12
solver: bfs
start: {row: 2, col: 3}
show_path: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, 12, cfg.Cols)
	assert.Equal(t, "bfs", cfg.Solver)
	assert.True(t, cfg.ShowPath)
	assert.Equal(t, maze.Coord{Row: 2, Col: 3}, cfg.StartCoord())
	assert.Equal(t, maze.Coord{Row: 9, Col: 11}, cfg.EndCoord())
	// untouched keys keep their defaults
	assert.Equal(t, 20, cfg.CellSize)
	assert.Equal(t, 100, cfg.MaxAttempts)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"zero_rows", "rows: 0", maze.ErrInvalidDimensions},
		{"probability", "wall_probability: 2", maze.ErrInvalidWallProbability},
		{"start_outside", "start: {row: 30, col: 0}", config.ErrOutOfBounds},
		{"end_outside", "rows: 5\ncols: 5\nend: {row: 4, col: 5}", config.ErrOutOfBounds},
		{"solver", "solver: greedy", maze.ErrUnknownSolver},
		{"attempts", "max_attempts: 0", config.ErrInvalidValue},
		{"cell_size", "cell_size: 0", config.ErrInvalidValue},
		{"delay", "move_delay_ms: -1", config.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".yaml", tc.body)
			_, err := config.Load(path)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, dir, "broken.yaml", "rows: [")
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "maze.yaml", "rows: 5\n")
	other := writeFile(t, dir, "other.yaml", "rows: 6\n")

	w, err := config.NewWatcher(path, "")
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("rows: 7\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("rows: 8\n"), 0o644))

	want, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case got := <-w.Events:
		assert.Equal(t, want, got)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
