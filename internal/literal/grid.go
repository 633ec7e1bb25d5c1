package literal

// Cell is a single glyph in a loaded grid, tagged with the rune column it
// occupies and its byte offset within the original literal body. Offsets are
// recorded at load time and never adjusted, so diagnostics can point back
// into the exact source text.
type Cell struct {
	Glyph  rune
	Col    int
	Offset int
}

// Grid is the loaded, position-tagged character matrix of one literal body.
// Rows may have different lengths (the grid is ragged until validated). A
// Grid is immutable once loaded and must not outlive the parse that created
// it.
type Grid struct {
	Rows [][]Cell
}

// LoadGrid splits a literal body into a Grid. It splits on line boundaries
// only; no trimming or reflowing is performed, so column positions in the
// grid match column positions in the original text. Loading cannot fail: an
// empty body yields a Grid with zero rows, which later stages classify as
// unknown.
func LoadGrid(body string) Grid {
	var g Grid

	row := []Cell{}
	col := 0
	for off, r := range body {
		switch r {
		case '\n':
			g.Rows = append(g.Rows, row)
			row = []Cell{}
			col = 0
		case '\r':
			// Tolerated as part of a CRLF line break; a bare \r inside a
			// row would desync columns, but no sane editor produces one.
		default:
			row = append(row, Cell{Glyph: r, Col: col, Offset: off})
			col++
		}
	}
	// The final row is dropped only when it is the empty artifact of a
	// trailing newline; a body without one still contributes its last row.
	if len(row) > 0 {
		g.Rows = append(g.Rows, row)
	} else if len(body) > 0 && !endsWithNewline(body) {
		g.Rows = append(g.Rows, row)
	}

	return g
}

func endsWithNewline(s string) bool {
	return s[len(s)-1] == '\n'
}

// leadCell returns the first non-whitespace cell of a row, or ok=false for a
// blank row.
func leadCell(row []Cell) (Cell, bool) {
	for _, c := range row {
		if c.Glyph != ' ' && c.Glyph != '\t' {
			return c, true
		}
	}
	return Cell{}, false
}

// cellAt returns the cell occupying the given column, or ok=false when the
// row ends before it. Columns and slice indexes coincide because the loader
// never reflows.
func cellAt(row []Cell, col int) (Cell, bool) {
	if col < 0 || col >= len(row) {
		return Cell{}, false
	}
	return row[col], true
}
