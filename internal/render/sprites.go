package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/assets"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/flock"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
)

// Sprites holds one GPU image per pointer category.
type Sprites struct {
	images [3]*ebiten.Image
}

// NewSprites uploads a loaded sprite set.
func NewSprites(set *assets.Set) *Sprites {
	s := &Sprites{}
	for _, c := range pointer.Categories {
		s.images[c] = ebiten.NewImageFromImage(set.Get(c).Image)
	}
	return s
}

// Replay draws recorded sprites onto screen, each image scaled into its rectangle.
func (s *Sprites) Replay(screen *ebiten.Image, calls []flock.Sprite) {
	for _, call := range calls {
		img := s.images[call.Category]
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(call.W/float64(w), call.H/float64(h))
		op.GeoM.Translate(call.X, call.Y)
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(img, op)
	}
}
