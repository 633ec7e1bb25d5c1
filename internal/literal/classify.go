package literal

// Kind is the classified geometric category of a literal.
type Kind int

const (
	KindUnknown Kind = iota
	KindLine
	KindRectangle
	KindCuboid
)

// String returns the kind's canonical name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindCuboid:
		return "cuboid"
	}
	return "unknown"
}

// Classify decides which of the three shapes a grid is attempting to
// represent, using cheap structural cues only: terminator glyphs on a single
// row, corner-bounded first and last rows, and the presence of a leading
// diagonal glyph. Classification deliberately does no deep consistency
// checking; a malformed edge inside an otherwise recognizable shape is left
// for the validator, which has better positional context for the specific
// rule violated. First match wins.
func Classify(g Grid) Kind {
	if len(g.Rows) == 0 {
		return KindUnknown
	}

	if len(g.Rows) == 1 {
		lead, ok := leadCell(g.Rows[0])
		if ok && (lead.Glyph == '+' || lead.Glyph == 'I') {
			return KindLine
		}
		return KindUnknown
	}

	// Multi-row shapes are bounded above and below by corner rows.
	first, ok := leadCell(g.Rows[0])
	if !ok || first.Glyph != '+' {
		return KindUnknown
	}
	last, ok := leadCell(g.Rows[len(g.Rows)-1])
	if !ok || last.Glyph != '+' {
		return KindUnknown
	}

	// A diagonal run is what separates a cuboid from a rectangle.
	for _, row := range g.Rows[1:] {
		if lead, ok := leadCell(row); ok && lead.Glyph == '/' {
			return KindCuboid
		}
	}
	return KindRectangle
}
