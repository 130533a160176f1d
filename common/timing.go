// Package common holds small frame-timing helpers shared by the game loop.
// Nothing here touches ebiten, so it can be tested headless.
package common

import (
	"time"

	"github.com/jakecoffman/cp"
)

// Ticks converts d to a whole number of game ticks at tps, never less than 1.
func Ticks(d time.Duration, tps int) int {
	n := int(d * time.Duration(tps) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

// Repeat reports whether a key held for held ticks should fire this tick:
// on the first tick and then every interval ticks.
func Repeat(held, interval int) bool {
	if held <= 0 {
		return false
	}
	if interval < 1 {
		interval = 1
	}
	return (held-1)%interval == 0
}

// Tween slides a point from one position to another over a fixed number of
// ticks.
type Tween struct {
	from     cp.Vector
	to       cp.Vector
	tick     int
	duration int
}

// NewTween returns a Tween resting at pos that takes duration ticks per move.
func NewTween(pos cp.Vector, duration int) *Tween {
	return &Tween{from: pos, to: pos, tick: duration, duration: duration}
}

// Snap jumps to pos with no animation.
func (t *Tween) Snap(pos cp.Vector) {
	t.from, t.to = pos, pos
	t.tick = t.duration
}

// MoveTo starts a slide from the current position to pos.
func (t *Tween) MoveTo(pos cp.Vector) {
	t.from = t.Position()
	t.to = pos
	t.tick = 0
}

// Update advances the slide by one tick.
func (t *Tween) Update() {
	if t.tick < t.duration {
		t.tick++
	}
}

// Done reports whether the slide has reached its target.
func (t *Tween) Done() bool {
	return t.tick >= t.duration
}

// Position is the interpolated point for the current tick.
func (t *Tween) Position() cp.Vector {
	if t.duration <= 0 || t.tick >= t.duration {
		return t.to
	}
	return t.from.Lerp(t.to, float64(t.tick)/float64(t.duration))
}
