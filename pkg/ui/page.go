package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
)

const (
	headerHeight  = 20
	widgetSpacing = 8
	sectionGap    = 12
	titleHeight   = 30
)

// Section groups widgets under a heading. Its element is the parent of
// every widget element in it, so a section cursor style is inherited.
type Section struct {
	Title   string
	Widgets []Widget

	el     *pointer.Element
	header *pointer.Element
	y, h   float64 // laid out geometry
}

// Page is a scrollable column of sections drawn over the window.
// It stands in for a document: ElementAt answers "which element is under the pointer".
type Page struct {
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	ScrollOffset  float64 // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []*Section
	body     *pointer.Element // the whole window
	main     *pointer.Element // the panel
	viewW    float64
	viewH    float64
}

// NewPage creates a new page panel
func NewPage(x, y, width, height float64) *Page {
	body := &pointer.Element{Tag: "body"}
	return &Page{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		body:        body,
		main:        &pointer.Element{Tag: "main", Parent: body},
		viewW:       x + width,
		viewH:       y + height,
	}
}

// Resize records the window size. The panel keeps its width and
// stretches its height to the window.
func (p *Page) Resize(w, h float64) {
	p.viewW, p.viewH = w, h
	p.Height = max(h-2*p.Y, headerHeight)
}

// AddSection starts a new section; cursor is its CSS cursor style ("" for none).
func (p *Page) AddSection(title, cursor string) *Section {
	el := &pointer.Element{Tag: "section", Cursor: cursor, Parent: p.main}
	s := &Section{
		Title:  title,
		el:     el,
		header: &pointer.Element{Tag: "h2", Parent: el},
	}
	p.sections = append(p.sections, s)
	return s
}

// Add appends a widget to the last section, creating an untitled one if needed.
func (p *Page) Add(w Widget) {
	if len(p.sections) == 0 {
		p.AddSection("", "")
	}
	s := p.sections[len(p.sections)-1]
	w.Element().Parent = s.el
	s.Widgets = append(s.Widgets, w)
}

// Update handles scrolling, lays the page out and updates all widgets
func (p *Page) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.ScrollOffset -= dy * 20

		// Clamp scroll
		maxScroll := max(p.contentHeight()-p.Height+40, 0)
		p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
	}

	p.layout()

	for _, s := range p.sections {
		for _, w := range s.Widgets {
			if p.visible(w) {
				w.Update()
			}
		}
	}
}

// layout assigns every section and widget its on-screen position.
func (p *Page) layout() {
	x := p.X + 10
	width := p.Width - 20
	y := p.Y + titleHeight - p.ScrollOffset

	for _, s := range p.sections {
		s.y = y
		y += headerHeight + widgetSpacing
		for _, w := range s.Widgets {
			w.SetPosition(x, y, width)
			y += w.GetHeight() + widgetSpacing
		}
		s.h = y - s.y
		y += sectionGap
	}
}

func (p *Page) contentHeight() float64 {
	h := float64(titleHeight)
	for _, s := range p.sections {
		h += headerHeight + widgetSpacing + sectionGap
		for _, w := range s.Widgets {
			h += w.GetHeight() + widgetSpacing
		}
	}
	return h
}

// visible reports whether a widget lies fully inside the panel.
func (p *Page) visible(w Widget) bool {
	top, bottom := w.Span()
	return top >= p.Y+titleHeight && bottom <= p.Y+p.Height
}

func (p *Page) insidePanel(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// ElementAt returns the innermost element at (x, y): a visible widget, then
// its section, then the panel, then the window body. Outside the window it
// returns nil.
func (p *Page) ElementAt(x, y float64) *pointer.Element {
	if x < 0 || y < 0 || x > p.viewW || y > p.viewH {
		return nil
	}
	if !p.insidePanel(x, y) {
		return p.body
	}
	if y < p.Y+titleHeight {
		return p.main
	}
	for _, s := range p.sections {
		if y < s.y || y > s.y+s.h {
			continue
		}
		if y < s.y+headerHeight {
			return s.header
		}
		for _, w := range s.Widgets {
			if w.Contains(x, y) && p.visible(w) {
				return w.Element()
			}
		}
		return s.el
	}
	return p.main
}

// Draw renders the panel and all visible widgets
func (p *Page) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, "Cursor Flock", int(p.X+10), int(p.Y+5))

	for _, s := range p.sections {
		if s.y >= p.Y+titleHeight && s.y+headerHeight <= p.Y+p.Height {
			vector.FillRect(screen,
				float32(p.X+5), float32(s.y),
				float32(p.Width-10), headerHeight,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(s.y+2))
		}
		for _, w := range s.Widgets {
			if p.visible(w) {
				w.Draw(screen)
			}
		}
	}
}
