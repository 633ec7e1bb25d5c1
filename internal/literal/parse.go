package literal

import "fmt"

// Parse runs the full pipeline over one literal body: load the glyph grid,
// classify the shape, validate its structure, extract its dimensions. It
// returns either a typed Value or a single positioned Error; never both,
// never a partial value.
func Parse(body string) (Value, *Error) {
	g := LoadGrid(body)

	kind := Classify(g)
	if kind == KindUnknown {
		row, col, detail := unclassifiableAt(g)
		return nil, errAt(Unclassifiable, row, col, "%s", detail)
	}

	f, err := validate(g, kind)
	if err != nil {
		return nil, err
	}
	return extract(f), nil
}

// unclassifiableAt locates an unclassifiable grid's first non-whitespace
// glyph, which anchors the diagnostic.
func unclassifiableAt(g Grid) (row, col int, detail string) {
	for i, r := range g.Rows {
		if lead, ok := leadCell(r); ok {
			return i, lead.Col, fmt.Sprintf("the literal matches none of the shape grammars (first glyph %q)", string(lead.Glyph))
		}
	}
	return 0, 0, "the literal body is empty"
}
