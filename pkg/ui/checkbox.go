package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
)

// Checkbox is a labelled <input type="checkbox">. Styled with cursor: pointer,
// otherwise its input tag would classify it as text.
type Checkbox struct {
	box
	Label   string
	Value   bool
	Size    float64
	clicked bool // Track if already clicked this frame
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(label string, value bool) *Checkbox {
	return &Checkbox{
		box: box{
			Height: 20,
			el:     &pointer.Element{Tag: "input", Cursor: "pointer"},
		},
		Label: label,
		Value: value,
		Size:  16,
	}
}

// Update toggles the value on click (with debouncing)
func (c *Checkbox) Update() {
	if c.hovered() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !c.clicked {
			c.Value = !c.Value
			c.clicked = true
		}
	} else {
		c.clicked = false
	}
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}
