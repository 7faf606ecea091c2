package pointer

import "github.com/lao-tseu-is-alive/go-cursor-flock/pkg/geometry"

// Classify maps the element under the pointer to a Category.
// The first matching rule wins: an explicit cursor style beats any tag heuristic.
// ok is false when there is no element, in which case the caller keeps its previous category.
func Classify(el *Element) (c Category, ok bool) {
	if el == nil {
		return CategoryDefault, false
	}
	switch el.ResolvedCursor() {
	case "text":
		return CategoryText, true
	case "pointer":
		return CategoryClickable, true
	}
	if el.Editable || el.isTextual() {
		return CategoryText, true
	}
	if el.isClickable() {
		return CategoryClickable, true
	}
	return CategoryDefault, true
}

// Locator resolves the element at a screen position, nil when there is none.
type Locator interface {
	ElementAt(x, y float64) *Element
}

// Snapshot is the latest known pointer state.
type Snapshot struct {
	Pos      geometry.Vector2D
	Category Category
	Element  *Element
}

// Tracker keeps the latest pointer snapshot.
// It is written on pointer movement and read once per tick; events are never queued.
type Tracker struct {
	snap Snapshot
}

// Move records a pointer movement and reclassifies the element under it.
func (t *Tracker) Move(pos geometry.Vector2D, loc Locator) {
	t.snap.Pos = pos
	if loc == nil {
		return
	}
	el := loc.ElementAt(pos.X, pos.Y)
	if c, ok := Classify(el); ok {
		t.snap.Category = c
		t.snap.Element = el
	}
}

// Snapshot returns the current pointer state by value.
func (t *Tracker) Snapshot() Snapshot {
	return t.snap
}
