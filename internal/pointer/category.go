package pointer

// Category is the coarse kind of UI element under the pointer.
// It selects which glyph the flock is drawn with.
type Category int

const (
	CategoryDefault Category = iota
	CategoryText
	CategoryClickable
)

// Categories lists every category, in sprite-loading order.
var Categories = []Category{CategoryDefault, CategoryText, CategoryClickable}

func (c Category) String() string {
	switch c {
	case CategoryText:
		return "text"
	case CategoryClickable:
		return "clickable"
	default:
		return "default"
	}
}
