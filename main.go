package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mazerun/config"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file overriding the built-in defaults")
	rows := flag.Int("rows", 0, "maze rows")
	cols := flag.Int("cols", 0, "maze columns")
	wallProb := flag.Float64("p", 0, "probability that a cell is a wall")
	seed := flag.Uint64("seed", 0, "random seed (0 = random)")
	solver := flag.String("solver", "", "reference solver: dfs, bfs or astar")
	showPath := flag.Bool("path", false, "highlight the reference path")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// flags only override the config when given explicitly
	overrides := func(cfg *config.Config) {
		if set["rows"] {
			cfg.Rows = *rows
		}
		if set["cols"] {
			cfg.Cols = *cols
		}
		if set["p"] {
			cfg.WallProbability = *wallProb
		}
		if set["seed"] {
			cfg.Seed = *seed
		}
		if set["solver"] {
			cfg.Solver = *solver
		}
		if set["path"] {
			cfg.ShowPath = *showPath
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowTitle("Maze DFS Game with Score")

	game, err := NewGame(*cfgPath, overrides)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
