package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/mazerun/common"
	"github.com/milk9111/mazerun/session"
)

// moveKeys is checked in order; the first held key wins.
var moveKeys = []struct {
	key ebiten.Key
	dir session.Direction
}{
	{ebiten.KeyLeft, session.Left},
	{ebiten.KeyRight, session.Right},
	{ebiten.KeyUp, session.Up},
	{ebiten.KeyDown, session.Down},
}

// Input holds the actions requested on the current tick.
type Input struct {
	// Move is the direction to step this tick, or session.None.
	Move session.Direction
	// Restart asks for a fresh maze (R).
	Restart bool
	// TogglePath flips the reference path highlight (P).
	TogglePath bool
	// Copy puts the maze sketch on the clipboard (C).
	Copy bool
	// Pause toggles the pause menu (Escape).
	Pause bool
	// Quit ends the game (F12).
	Quit bool

	// repeatTicks is how often a held arrow key repeats.
	repeatTicks int
}

func NewInput(repeatTicks int) *Input {
	return &Input{repeatTicks: repeatTicks}
}

// Update polls the keyboard. A fresh press moves at once; holding the key
// repeats the move every repeatTicks ticks.
func (i *Input) Update() {
	i.Move = session.None
	for _, mk := range moveKeys {
		held := inpututil.KeyPressDuration(mk.key)
		if held == 0 {
			continue
		}
		if common.Repeat(held, i.repeatTicks) {
			i.Move = mk.dir
		}
		break
	}

	i.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.TogglePath = inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.Copy = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
