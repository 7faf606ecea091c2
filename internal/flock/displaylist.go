package flock

import "github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"

// Sprite is one recorded draw call.
type Sprite struct {
	Category   pointer.Category
	X, Y, W, H float64
}

// DisplayList is a Renderer that records draw calls so that a tick computed
// in the update phase can be replayed on the screen in the draw phase.
type DisplayList struct {
	sprites []Sprite
}

// Clear drops the recorded calls but keeps the capacity.
func (d *DisplayList) Clear() {
	d.sprites = d.sprites[:0]
}

func (d *DisplayList) DrawSprite(c pointer.Category, x, y, w, h float64) {
	d.sprites = append(d.sprites, Sprite{Category: c, X: x, Y: y, W: w, H: h})
}

// Sprites returns the calls recorded since the last Clear, in order.
// The slice is reused by the next tick.
func (d *DisplayList) Sprites() []Sprite {
	return d.sprites
}
