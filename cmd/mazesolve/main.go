// Command mazesolve generates a maze without opening a window and prints it
// with the path found by one or all solvers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/milk9111/mazerun/config"
	"github.com/milk9111/mazerun/maze"
)

type options struct {
	rows, cols int
	wallProb   float64
	seed       uint64
	solver     string
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file overriding the built-in defaults")
	rows := flag.Int("rows", 0, "maze rows (0 = from config)")
	cols := flag.Int("cols", 0, "maze columns (0 = from config)")
	wallProb := flag.Float64("p", -1, "wall probability (negative = from config)")
	seed := flag.Uint64("seed", 0, "random seed (0 = from config, then random)")
	solver := flag.String("solver", "", "dfs, bfs, astar or all (empty = from config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	opts := options{rows: cfg.Rows, cols: cfg.Cols, wallProb: cfg.WallProbability, seed: cfg.Seed, solver: cfg.Solver}
	if *rows > 0 {
		opts.rows = *rows
	}
	if *cols > 0 {
		opts.cols = *cols
	}
	if *wallProb >= 0 {
		opts.wallProb = *wallProb
	}
	if *seed != 0 {
		opts.seed = *seed
	}
	if *solver != "" {
		opts.solver = *solver
	}

	if err := run(os.Stdout, opts); err != nil {
		if errors.Is(err, maze.ErrUnsolvable) {
			fmt.Fprintln(os.Stderr, "maze cannot be solved, run again")
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run generates one maze from opts and writes a sketch per solver. It
// returns maze.ErrUnsolvable when the end cannot be reached.
func run(w io.Writer, opts options) error {
	solvers := maze.Solvers
	if opts.solver != "all" {
		s, err := maze.ParseSolver(opts.solver)
		if err != nil {
			return err
		}
		solvers = []maze.Solver{s}
	}

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	g, err := maze.Generate(rng, opts.rows, opts.cols, opts.wallProb)
	if err != nil {
		return err
	}
	start := maze.Coord{}
	end := maze.Coord{Row: opts.rows - 1, Col: opts.cols - 1}
	g.ForceOpen(start, end)

	for _, s := range solvers {
		path, err := maze.Solve(s, g, start, end)
		if err != nil {
			return err
		}
		if path == nil {
			fmt.Fprint(w, g.Sketch(nil, start, end))
			return maze.ErrUnsolvable
		}
		fmt.Fprintf(w, "%s: %d steps\n", s, maze.Steps(path))
		fmt.Fprint(w, g.Sketch(path, start, end))
		fmt.Fprintln(w)
	}
	return nil
}
