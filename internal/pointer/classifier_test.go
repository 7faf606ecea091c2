package pointer

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-cursor-flock/pkg/geometry"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want Category
	}{
		{"text cursor style", &Element{Tag: "div", Cursor: "text"}, CategoryText},
		{"pointer cursor style", &Element{Tag: "div", Cursor: "pointer"}, CategoryClickable},
		{"pointer style beats heading tag", &Element{Tag: "h1", Cursor: "pointer"}, CategoryClickable},
		{"text style beats button tag", &Element{Tag: "button", Cursor: "text"}, CategoryText},
		{"input", &Element{Tag: "input"}, CategoryText},
		{"textarea upper case", &Element{Tag: "TEXTAREA"}, CategoryText},
		{"heading", &Element{Tag: "h3"}, CategoryText},
		{"paragraph", &Element{Tag: "p"}, CategoryText},
		{"span", &Element{Tag: "span"}, CategoryText},
		{"editable div", &Element{Tag: "div", Editable: true}, CategoryText},
		{"textual tag beats click handler", &Element{Tag: "p", OnClick: true}, CategoryText},
		{"button", &Element{Tag: "button"}, CategoryClickable},
		{"link", &Element{Tag: "a"}, CategoryClickable},
		{"click handler", &Element{Tag: "div", OnClick: true}, CategoryClickable},
		{"button role", &Element{Tag: "div", Role: "button"}, CategoryClickable},
		{"plain div", &Element{Tag: "div"}, CategoryDefault},
		{"header is not a heading", &Element{Tag: "header"}, CategoryDefault},
		{"explicit default style", &Element{Tag: "div", Cursor: "default"}, CategoryDefault},
		{"crosshair falls through to tag", &Element{Tag: "a", Cursor: "crosshair"}, CategoryClickable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.el)
			if !ok {
				t.Fatalf("Classify(%+v) reported no category", tt.el)
			}
			if got != tt.want {
				t.Errorf("Classify(%+v) = %v; want %v", tt.el, got, tt.want)
			}
		})
	}
}

func TestClassify_NoElement(t *testing.T) {
	if _, ok := Classify(nil); ok {
		t.Error("Classify(nil) should not produce a category")
	}
}

func TestElement_ResolvedCursor(t *testing.T) {
	body := &Element{Tag: "body"}
	nav := &Element{Tag: "nav", Cursor: "pointer", Parent: body}
	item := &Element{Tag: "div", Parent: nav}
	field := &Element{Tag: "div", Cursor: "text", Parent: nav}
	reset := &Element{Tag: "div", Cursor: "auto", Parent: nav}

	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{"no style anywhere", body, CursorAuto},
		{"own style", nav, "pointer"},
		{"inherited from parent", item, "pointer"},
		{"own style overrides parent", field, "text"},
		{"auto inherits", reset, "pointer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.ResolvedCursor(); got != tt.want {
				t.Errorf("ResolvedCursor() = %q; want %q", got, tt.want)
			}
		})
	}

	if got, _ := Classify(item); got != CategoryClickable {
		t.Errorf("Classify(inherited pointer) = %v; want clickable", got)
	}
}

type locatorFunc func(x, y float64) *Element

func (f locatorFunc) ElementAt(x, y float64) *Element { return f(x, y) }

func TestTracker_Move(t *testing.T) {
	button := &Element{Tag: "button"}
	// Left half is a button, right half is outside the page.
	loc := locatorFunc(func(x, y float64) *Element {
		if x < 100 {
			return button
		}
		return nil
	})

	var tr Tracker
	if got := tr.Snapshot().Category; got != CategoryDefault {
		t.Fatalf("initial category = %v; want default", got)
	}

	tr.Move(geometry.Vector2D{X: 10, Y: 10}, loc)
	snap := tr.Snapshot()
	if snap.Category != CategoryClickable || snap.Element != button {
		t.Errorf("over button: snapshot = %+v; want clickable button", snap)
	}

	tr.Move(geometry.Vector2D{X: 150, Y: 20}, loc)
	snap = tr.Snapshot()
	if !snap.Pos.Eq(geometry.Vector2D{X: 150, Y: 20}) {
		t.Errorf("position = %v; want (150, 20)", snap.Pos)
	}
	if snap.Category != CategoryClickable {
		t.Errorf("no element: category = %v; want previous (clickable)", snap.Category)
	}

	tr.Move(geometry.Vector2D{X: 1, Y: 1}, nil)
	if got := tr.Snapshot(); !got.Pos.Eq(geometry.Vector2D{X: 1, Y: 1}) || got.Category != CategoryClickable {
		t.Errorf("nil locator: snapshot = %+v; want position updated, category kept", got)
	}
}

func TestCategory_String(t *testing.T) {
	want := map[Category]string{
		CategoryDefault:   "default",
		CategoryText:      "text",
		CategoryClickable: "clickable",
	}
	for c, s := range want {
		if got := c.String(); got != s {
			t.Errorf("%d.String() = %q; want %q", c, got, s)
		}
	}
}
