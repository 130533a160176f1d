package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/mazerun/maze"
	"github.com/milk9111/mazerun/session"
)

var (
	wallColor     = colornames.Black
	openColor     = colornames.White
	pathColor     = colornames.Blue
	startColor    = colornames.Lime
	endColor      = colornames.Red
	playerColor   = colornames.Orange
	gridLineColor = colornames.Gainsboro
)

// renderer owns the cell images and draws a session onto the screen. It is
// built once per cell size and reused every frame.
type renderer struct {
	cellSize int

	wallImg   *ebiten.Image
	openImg   *ebiten.Image
	pathImg   *ebiten.Image
	startImg  *ebiten.Image
	endImg    *ebiten.Image
	playerImg *ebiten.Image
	lineImg   *ebiten.Image
}

func newRenderer(cellSize int) *renderer {
	line := ebiten.NewImage(1, 1)
	line.Fill(gridLineColor)
	return &renderer{
		cellSize:  cellSize,
		wallImg:   cellImage(cellSize, wallColor),
		openImg:   cellImage(cellSize, openColor),
		pathImg:   cellImage(cellSize, pathColor),
		startImg:  cellImage(cellSize, startColor),
		endImg:    cellImage(cellSize, endColor),
		playerImg: cellImage(cellSize, playerColor),
		lineImg:   line,
	}
}

// cellImage creates a square image filled with c.
func cellImage(size int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

// drawMaze renders walls, open cells, the optional reference path and the
// two endpoints.
func (r *renderer) drawMaze(screen *ebiten.Image, s *session.Session, showPath bool) {
	g := s.Grid()
	onPath := make(map[maze.Coord]struct{})
	if showPath {
		for _, c := range s.Path() {
			onPath[c] = struct{}{}
		}
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			pos := maze.Coord{Row: row, Col: col}
			img := r.openImg
			if g.At(pos) == maze.Wall {
				img = r.wallImg
			} else if _, ok := onPath[pos]; ok {
				img = r.pathImg
			}
			switch pos {
			case s.Start():
				img = r.startImg
			case s.End():
				img = r.endImg
			}
			r.drawCell(screen, img, float64(col*r.cellSize), float64(row*r.cellSize))
		}
	}
	r.drawGridLines(screen, g.Rows, g.Cols)
}

// drawPlayer draws the player square at pixel position (x, y).
func (r *renderer) drawPlayer(screen *ebiten.Image, x, y float64) {
	r.drawCell(screen, r.playerImg, x, y)
}

func (r *renderer) drawCell(screen, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (r *renderer) drawGridLines(screen *ebiten.Image, rows, cols int) {
	w := float64(cols * r.cellSize)
	h := float64(rows * r.cellSize)
	for x := 0; x <= cols; x++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, h)
		op.GeoM.Translate(float64(x*r.cellSize), 0)
		screen.DrawImage(r.lineImg, op)
	}
	for y := 0; y <= rows; y++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, 1)
		op.GeoM.Translate(0, float64(y*r.cellSize))
		screen.DrawImage(r.lineImg, op)
	}
}

// drawHUD prints the step counters under the maze, and the score once the
// player has arrived.
func (r *renderer) drawHUD(screen *ebiten.Image, s *session.Session, snap session.Snapshot, showPath bool) {
	top := s.Grid().Rows*r.cellSize + 4
	line := fmt.Sprintf("Steps: %d  Optimal: %d (%s)", snap.Steps, snap.Optimal, s.Solver())
	if snap.Reached {
		line = fmt.Sprintf("Score: %.2f  Steps: %d  Optimal: %d (%s)", snap.Score, snap.Steps, snap.Optimal, s.Solver())
	}
	ebitenutil.DebugPrintAt(screen, line, 10, top)

	help := "arrows move  R new  P path  C copy  Esc pause"
	if showPath {
		help = "arrows move  R new  P hide path  C copy  Esc pause"
	}
	ebitenutil.DebugPrintAt(screen, help, 10, top+16)
}
