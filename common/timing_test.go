package common

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestTicks(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		tps  int
		want int
	}{
		{"hundred_ms_at_60", 100 * time.Millisecond, 60, 6},
		{"one_second", time.Second, 60, 60},
		{"zero_clamps", 0, 60, 1},
		{"tiny_clamps", time.Millisecond, 60, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Ticks(c.d, c.tps))
		})
	}
}

func TestRepeat(t *testing.T) {
	var fired []int
	for held := 0; held <= 13; held++ {
		if Repeat(held, 6) {
			fired = append(fired, held)
		}
	}
	assert.Equal(t, []int{1, 7, 13}, fired)
	assert.True(t, Repeat(5, 0), "interval below one fires every tick")
}

func TestTween(t *testing.T) {
	tw := NewTween(cp.Vector{X: 0, Y: 0}, 4)
	assert.True(t, tw.Done())
	assert.Equal(t, cp.Vector{X: 0, Y: 0}, tw.Position())

	tw.MoveTo(cp.Vector{X: 8, Y: 4})
	assert.False(t, tw.Done())
	assert.Equal(t, cp.Vector{X: 0, Y: 0}, tw.Position())

	tw.Update()
	tw.Update()
	p := tw.Position()
	assert.InDelta(t, 4.0, p.X, 1e-9)
	assert.InDelta(t, 2.0, p.Y, 1e-9)

	tw.Update()
	tw.Update()
	tw.Update()
	assert.True(t, tw.Done())
	assert.Equal(t, cp.Vector{X: 8, Y: 4}, tw.Position())

	tw.Snap(cp.Vector{X: 1, Y: 1})
	assert.True(t, tw.Done())
	assert.Equal(t, cp.Vector{X: 1, Y: 1}, tw.Position())
}
