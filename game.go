package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mazerun/common"
	"github.com/milk9111/mazerun/config"
	"github.com/milk9111/mazerun/score"
	"github.com/milk9111/mazerun/session"
)

type Game struct {
	frames int

	cfgPath   string
	overrides func(*config.Config)
	cfg       config.Config
	rng       *rand.Rand
	scorer    *score.Scorer
	watcher   *config.Watcher

	session  *session.Session
	input    *Input
	player   *Player
	renderer *renderer
	copier   sketchCopier

	pauseUI  *menuUI
	resultUI *menuUI

	showPath bool
	paused   bool
	restart  bool
	quit     bool
}

// NewGame loads the configuration at cfgPath (empty for the built-in
// defaults), applies overrides on top and generates the first maze.
func NewGame(cfgPath string, overrides func(*config.Config)) (*Game, error) {
	g := &Game{cfgPath: cfgPath, overrides: overrides}
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := g.apply(cfg); err != nil {
		return nil, err
	}

	if cfgPath != "" && cfg.Watch {
		w, err := config.NewWatcher(cfgPath, cfg.ScoreScript)
		if err != nil {
			log.Printf("config: watch %s: %v", cfgPath, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) loadConfig() (config.Config, error) {
	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if g.overrides != nil {
		g.overrides(&cfg)
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("config: flags: %w", err)
		}
	}
	return cfg, nil
}

// apply swaps in cfg and everything derived from it, then starts a new maze.
// The game is left untouched if cfg cannot produce a session.
func (g *Game) apply(cfg config.Config) error {
	scorer, err := score.Load(cfg.ScoreScript)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	s, err := session.New(cfg, rng, scorer)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.rng = rng
	g.scorer = scorer
	g.showPath = cfg.ShowPath

	repeat := common.Ticks(cfg.MoveDelay(), ebiten.TPS())
	g.input = NewInput(repeat)
	g.renderer = newRenderer(cfg.CellSize)
	g.player = NewPlayer(s.Start(), cfg.CellSize, repeat)
	g.pauseUI = NewPauseUI(g)
	g.resultUI = NewResultUI(g)

	ebiten.SetWindowSize(cfg.ScreenSize())
	g.start(s)
	return nil
}

func (g *Game) start(s *session.Session) {
	g.session = s
	g.player.Reset(s.Start())
	g.paused = false
	snap := s.Snapshot()
	g.resultUI.SetTitle(resultTitle(snap))
	log.Printf("maze: %dx%d ready after %d attempt(s), %s reference path %d steps",
		s.Grid().Rows, s.Grid().Cols, snap.Attempts, s.Solver(), snap.Optimal)
}

// newMaze replaces the current session with a freshly generated one.
func (g *Game) newMaze() {
	s, err := session.New(g.cfg, g.rng, g.scorer)
	if err != nil {
		log.Printf("maze: %v", err)
		return
	}
	g.start(s)
}

// reload re-reads the configuration after the watcher reports a change. A
// bad file keeps the running game as is.
func (g *Game) reload(name string) {
	cfg, err := g.loadConfig()
	if err != nil {
		log.Printf("config: reload after change to %s: %v", name, err)
		return
	}
	if err := g.apply(cfg); err != nil {
		log.Printf("config: apply %s: %v", name, err)
		return
	}
	log.Printf("config: reloaded %s", name)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if ok {
			g.reload(name)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("config: watch: %v", err)
		}
	default:
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()
	g.input.Update()

	if g.input.Quit || g.quit {
		return ebiten.Termination
	}
	if g.input.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return g.afterMenus()
	}

	snap := g.session.Snapshot()
	if snap.Reached {
		g.resultUI.Update()
	}
	if g.input.Restart {
		g.restart = true
	}
	if g.input.TogglePath {
		g.showPath = !g.showPath
	}
	if g.input.Copy {
		if err := g.copier.Copy(g.session.Sketch()); err != nil {
			log.Printf("copy: %v", err)
		} else {
			log.Printf("copy: maze sketch on clipboard")
		}
	}

	if moved, err := g.session.Move(g.input.Move); err != nil {
		log.Printf("score: %v", err)
	} else if moved {
		g.player.MoveTo(g.session.Snapshot().Player)
		if after := g.session.Snapshot(); after.Reached {
			g.resultUI.SetTitle(resultTitle(after))
			log.Printf("maze: reached end in %d steps (reference %d), score %.2f", after.Steps, after.Optimal, after.Score)
		}
	}
	g.player.Update()

	return g.afterMenus()
}

// afterMenus applies requests made from menu buttons during this tick.
func (g *Game) afterMenus() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.restart {
		g.restart = false
		g.newMaze()
	}
	return nil
}

func resultTitle(snap session.Snapshot) string {
	return fmt.Sprintf("Score: %.2f\nYour steps: %d  Optimal: %d", snap.Score, snap.Steps, snap.Optimal)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(wallColor)
	g.renderer.drawMaze(screen, g.session, g.showPath)
	g.player.Draw(screen, g.renderer)

	snap := g.session.Snapshot()
	g.renderer.drawHUD(screen, g.session, snap, g.showPath)

	switch {
	case g.paused:
		g.pauseUI.Draw(screen)
	case snap.Reached:
		g.resultUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenSize()
}

// Close stops the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
