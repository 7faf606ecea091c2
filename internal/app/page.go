package app

import (
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
	"github.com/lao-tseu-is-alive/go-cursor-flock/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

// demoPage builds the page the flock flies over. Each section exercises a
// different rule of the pointer classifier.
func demoPage(height float64, overlay *ui.Checkbox, logger golog.Logger) *ui.Page {
	page := ui.NewPage(10, 10, 300, height-20)

	page.AddSection("Text", "")
	page.Add(ui.NewText("h1", "Move the mouse around"))
	page.Add(ui.NewText("p", "The flock follows the pointer and\nborrows the cursor of whatever\nsits under it."))
	page.Add(ui.NewText("span", "a span is text too"))
	page.Add(ui.NewInput("type here..."))
	page.Add(ui.NewCard("contenteditable div", pointer.Element{Editable: true}, 40))

	page.AddSection("Clickable", "")
	page.Add(ui.NewButton("Say hello", func() { logger.Info("hello from the button") }))
	page.Add(ui.NewLink("a plain link", func() { logger.Info("link followed") }))
	page.Add(ui.NewCard(`div role="button"`, pointer.Element{Role: "button"}, 30))
	page.Add(ui.NewCard("div with a click handler", pointer.Element{OnClick: true}, 30))
	page.Add(overlay)

	page.AddSection("Styled: cursor pointer", "pointer")
	page.Add(ui.NewText("h3", "a heading styled as a pointer"))
	page.Add(ui.NewCard("inherits cursor: pointer", pointer.Element{}, 30))

	page.AddSection("Styled: cursor text", "text")
	page.Add(ui.NewCard("inherits cursor: text", pointer.Element{}, 30))
	page.Add(ui.NewCard("own cursor: default", pointer.Element{Cursor: "default"}, 30))

	return page
}
