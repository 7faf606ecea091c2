package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
)

// debug font metrics
const (
	charWidth  = 6
	lineHeight = 16
)

// Text is a block of text: a paragraph, a heading or a span, depending on tag.
type Text struct {
	box
	Lines []string
}

// NewText creates a text block. Lines are split on '\n'.
func NewText(tag, text string) *Text {
	lines := strings.Split(text, "\n")
	return &Text{
		box: box{
			Height: float64(len(lines)*lineHeight) + 4,
			el:     &pointer.Element{Tag: tag},
		},
		Lines: lines,
	}
}

func (t *Text) Update() {}

func (t *Text) Draw(screen *ebiten.Image) {
	for i, line := range t.Lines {
		ebitenutil.DebugPrintAt(screen, line, int(t.X), int(t.Y)+i*lineHeight)
	}
	// Headings get an underline rule to stand out from paragraphs.
	if strings.HasPrefix(t.el.Tag, "h") {
		y := float32(t.Y + t.Height - 2)
		vector.StrokeLine(screen, float32(t.X), y, float32(t.X+t.Width), y, 1, color.RGBA{R: 120, G: 120, B: 140, A: 255}, true)
	}
}

// Link is an <a> element drawn as underlined text.
type Link struct {
	box
	Label   string
	OnClick func()
	clicked bool
}

func NewLink(label string, onClick func()) *Link {
	return &Link{
		box: box{
			Height: lineHeight + 4,
			el:     &pointer.Element{Tag: "a"},
		},
		Label:   label,
		OnClick: onClick,
	}
}

func (l *Link) Update() {
	if l.hovered() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !l.clicked && l.OnClick != nil {
			l.OnClick()
			l.clicked = true
		}
	} else {
		l.clicked = false
	}
}

func (l *Link) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, l.Label, int(l.X), int(l.Y))
	y := float32(l.Y + lineHeight)
	w := float32(len(l.Label) * charWidth)
	vector.StrokeLine(screen, float32(l.X), y, float32(l.X)+w, y, 1, color.RGBA{R: 120, G: 170, B: 255, A: 255}, true)
}

// Input is a single line text field. It takes keyboard input while focused.
type Input struct {
	box
	Value       string
	Placeholder string
	focused     bool
}

func NewInput(placeholder string) *Input {
	return &Input{
		box: box{
			Height: 22,
			el:     &pointer.Element{Tag: "input"},
		},
		Placeholder: placeholder,
	}
}

func (in *Input) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.focused = in.hovered()
	}
	if !in.focused {
		return
	}
	in.Value = string(ebiten.AppendInputChars([]rune(in.Value)))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(in.Value) > 0 {
		r := []rune(in.Value)
		in.Value = string(r[:len(r)-1])
	}
}

func (in *Input) Draw(screen *ebiten.Image) {
	border := color.RGBA{R: 130, G: 130, B: 140, A: 255}
	if in.focused {
		border = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	}
	vector.FillRect(screen, float32(in.X), float32(in.Y), float32(in.Width), float32(in.Height), color.RGBA{R: 25, G: 25, B: 30, A: 255}, true)
	vector.StrokeRect(screen, float32(in.X), float32(in.Y), float32(in.Width), float32(in.Height), 1, border, true)

	text := in.Value
	if text == "" && !in.focused {
		text = in.Placeholder
	}
	ebitenutil.DebugPrintAt(screen, text, int(in.X+4), int(in.Y+3))
}

// Card is a generic <div>. Its element flags decide how it classifies:
// a role or a click handler makes it clickable, Editable makes it text.
type Card struct {
	box
	Label string
	Fill  color.RGBA
}

// NewCard creates a div with the given element attributes; Tag is forced to "div".
func NewCard(label string, el pointer.Element, height float64) *Card {
	el.Tag = "div"
	return &Card{
		box: box{
			Height: height,
			el:     &el,
		},
		Label: label,
		Fill:  color.RGBA{R: 55, G: 55, B: 65, A: 255},
	}
}

func (c *Card) Update() {}

func (c *Card) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), c.Fill, true)
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+6), int(c.Y+4))
}
