package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
)

// Widget is anything the Page can lay out, draw and hit-test.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// SetPosition is called by the page layout before every Update and Draw.
	SetPosition(x, y, width float64)
	Contains(x, y float64) bool
	Span() (top, bottom float64)
	Element() *pointer.Element
}

// box holds the geometry and element shared by every widget.
type box struct {
	X, Y          float64
	Width, Height float64
	el            *pointer.Element
}

func (b *box) SetPosition(x, y, width float64) {
	b.X, b.Y, b.Width = x, y, width
}

func (b *box) GetHeight() float64 {
	return b.Height
}

func (b *box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

func (b *box) Span() (top, bottom float64) {
	return b.Y, b.Y + b.Height
}

func (b *box) Element() *pointer.Element {
	return b.el
}

func (b *box) hovered() bool {
	mx, my := ebiten.CursorPosition()
	return b.Contains(float64(mx), float64(my))
}
