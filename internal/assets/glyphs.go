package assets

import (
	"image"
	"image/color"

	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
)

// Fallback glyphs, used when a sprite cannot be loaded.
// Legend:
// . = Transparent
// K = Black (outline)
// W = White (fill)
var (
	arrowDesign = []string{
		"K...........",
		"KK..........",
		"KWK.........",
		"KWWK........",
		"KWWWK.......",
		"KWWWWK......",
		"KWWWWWK.....",
		"KWWWWWWK....",
		"KWWWWWWWK...",
		"KWWWWWWWWK..",
		"KWWWWWKKKKK.",
		"KWWKWWK.....",
		"KWK.KWWK....",
		"KK..KWWK....",
		"K....KWWK...",
		".....KWWK...",
		"......KK....",
	}

	beamDesign = []string{
		"KKK.KKK",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"...K...",
		"KKK.KKK",
	}

	handDesign = []string{
		"....KK..........",
		"...KWWK.........",
		"...KWWK.........",
		"...KWWK.........",
		"...KWWKKK.......",
		"...KWWKWWKKK....",
		"...KWWKWWKWWKK..",
		"KK.KWWKWWKWWKWK.",
		"KWKKWWWWWWWWKWK.",
		"KWWKWWWWWWWWWWK.",
		".KWWWWWWWWWWWWK.",
		"..KWWWWWWWWWWWK.",
		"..KWWWWWWWWWWK..",
		"...KWWWWWWWWWK..",
		"....KWWWWWWWK...",
		"....KWWWWWWWK...",
		"....KKKKKKKKK...",
	}

	glyphPalette = map[rune]color.RGBA{
		'K': {R: 0, G: 0, B: 0, A: 255},
		'W': {R: 255, G: 255, B: 255, A: 255},
	}
)

// Fallback returns the built-in glyph for a category.
func Fallback(c pointer.Category) image.Image {
	switch c {
	case pointer.CategoryText:
		return generateSprite(beamDesign, glyphPalette)
	case pointer.CategoryClickable:
		return generateSprite(handDesign, glyphPalette)
	default:
		return generateSprite(arrowDesign, glyphPalette)
	}
}

// generateSprite converts an ASCII grid into an image. Rows may differ in
// length; the widest row sets the width.
func generateSprite(design []string, palette map[rune]color.RGBA) *image.RGBA {
	w := 0
	for _, row := range design {
		w = max(w, len(row))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, len(design)))

	for y, row := range design {
		for x, char := range row {
			if col, ok := palette[char]; ok {
				img.SetRGBA(x, y, col)
			}
		}
	}
	return img
}
