package pointer

import "strings"

// CursorAuto is the unset cursor style; the effective style comes from the parent.
const CursorAuto = "auto"

// Element describes the UI element found under the pointer.
// Widgets in pkg/ui each carry one; containers are linked through Parent.
type Element struct {
	Tag      string // "button", "a", "p", "h1", ...
	Cursor   string // own cursor style, "" or "auto" when unset
	Role     string // accessibility role, e.g. "button"
	Editable bool
	OnClick  bool // a click handler is attached
	Parent   *Element
}

// ResolvedCursor is the effective cursor style, inherited from the nearest
// ancestor that sets one. It is "auto" when nobody does.
func (e *Element) ResolvedCursor() string {
	for el := e; el != nil; el = el.Parent {
		if c := strings.ToLower(strings.TrimSpace(el.Cursor)); c != "" && c != CursorAuto {
			return c
		}
	}
	return CursorAuto
}

func (e *Element) tag() string {
	return strings.ToLower(e.Tag)
}

func (e *Element) isTextual() bool {
	switch tag := e.tag(); tag {
	case "input", "textarea", "p", "span":
		return true
	default:
		return isHeading(tag)
	}
}

func (e *Element) isClickable() bool {
	switch e.tag() {
	case "button", "a":
		return true
	}
	return e.OnClick || strings.EqualFold(e.Role, "button")
}

// isHeading matches h1..h6.
func isHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}
