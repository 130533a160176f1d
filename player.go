package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/mazerun/common"
	"github.com/milk9111/mazerun/maze"
)

// Player is the on-screen marker for the session's player cell. The cell
// itself lives in the session; Player only animates between cells.
type Player struct {
	cellSize int
	tween    *common.Tween
}

func NewPlayer(at maze.Coord, cellSize, slideTicks int) *Player {
	p := &Player{cellSize: cellSize}
	p.tween = common.NewTween(p.pixel(at), slideTicks)
	return p
}

func (p *Player) pixel(at maze.Coord) cp.Vector {
	return cp.Vector{X: float64(at.Col * p.cellSize), Y: float64(at.Row * p.cellSize)}
}

// Reset places the marker on at without animating.
func (p *Player) Reset(at maze.Coord) {
	p.tween.Snap(p.pixel(at))
}

// MoveTo slides the marker towards at.
func (p *Player) MoveTo(at maze.Coord) {
	p.tween.MoveTo(p.pixel(at))
}

func (p *Player) Update() {
	p.tween.Update()
}

func (p *Player) Draw(screen *ebiten.Image, r *renderer) {
	pos := p.tween.Position()
	r.drawPlayer(screen, pos.X, pos.Y)
}
