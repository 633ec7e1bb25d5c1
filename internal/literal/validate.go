package literal

// frame holds the measurements taken while validating a grid. Extraction
// reads the final dimensions off the frame instead of re-walking the grid.
type frame struct {
	kind Kind

	fill int // line: fill run length

	width  int // rectangle: border fill run length
	height int // rectangle: total rows; cuboid: diagonal step count
	left   int // column of the shape's left edge

	topWidth   int // cuboid: top border fill run length
	frontWidth int // cuboid: front border fill run length
}

// validate runs the shape-specific consistency rules over a classified grid.
// Checks scan top to bottom, left to right, and stop at the first rule
// violated; a returned frame means every structural rule for the kind holds.
func validate(g Grid, kind Kind) (*frame, *Error) {
	switch kind {
	case KindLine:
		return validateLine(g.Rows[0])
	case KindRectangle:
		return validateRectangle(g.Rows, 0, false)
	case KindCuboid:
		return validateCuboid(g)
	}
	panic("literal: validate called with an unclassified grid")
}

// validateLine checks a single-row literal: a fill run of at least one dash
// bounded by identical terminators, with nothing else on the row.
func validateLine(row []Cell) (*frame, *Error) {
	lead, _ := leadCell(row) // classification guarantees a terminator glyph
	term := lead.Glyph

	i := lead.Col + 1
	fill := 0
	for ; i < len(row) && row[i].Glyph == '-'; i++ {
		fill++
	}
	if i >= len(row) {
		return nil, errAt(MalformedLine, 0, colAfter(row), "the closing %q terminator is missing", string(term))
	}
	c := row[i]
	if c.Glyph != term {
		if c.Glyph == '+' || c.Glyph == 'I' {
			return nil, errAt(MalformedLine, 0, c.Col, "closing terminator %q does not match opening terminator %q", string(c.Glyph), string(term))
		}
		return nil, errAt(MalformedLine, 0, c.Col, "unexpected %q in the fill run", string(c.Glyph))
	}
	if fill == 0 {
		return nil, errAt(MalformedLine, 0, c.Col, "a line needs at least one fill glyph between its terminators")
	}
	for _, t := range row[i+1:] {
		if t.Glyph != ' ' && t.Glyph != '\t' {
			return nil, errAt(MalformedLine, 0, t.Col, "stray %q after the closing terminator", string(t.Glyph))
		}
	}
	return &frame{kind: KindLine, fill: fill, left: lead.Col}, nil
}

// border describes one measured horizontal edge.
type border struct {
	left  int // column of the opening corner
	right int // column of the closing corner
	fill  int
}

// parseBorder scans a `+--…--+` edge. When decorated is set (cuboid faces),
// glyphs belonging to the side and back edges may follow the closing corner;
// otherwise anything after it is an error.
func parseBorder(row []Cell, rowIdx int, decorated bool) (border, *Error) {
	lead, ok := leadCell(row)
	if !ok || lead.Glyph != '+' {
		return border{}, errAt(MismatchedWidth, rowIdx, lead.Col, "expected the border to open with a %q corner", "+")
	}
	i := lead.Col + 1
	fill := 0
	for ; i < len(row) && row[i].Glyph == '-'; i++ {
		fill++
	}
	if i >= len(row) {
		return border{}, errAt(MismatchedWidth, rowIdx, colAfter(row), "the border is missing its closing %q corner", "+")
	}
	c := row[i]
	if c.Glyph != '+' {
		return border{}, errAt(MismatchedWidth, rowIdx, c.Col, "unexpected %q in the border's fill run", string(c.Glyph))
	}
	if fill == 0 {
		return border{}, errAt(MismatchedWidth, rowIdx, c.Col, "a border needs at least one fill glyph between its corners")
	}
	for _, t := range row[i+1:] {
		if t.Glyph == ' ' || t.Glyph == '\t' {
			continue
		}
		if decorated && (t.Glyph == '|' || t.Glyph == '+' || t.Glyph == '/') {
			continue
		}
		return border{}, errAt(MismatchedWidth, rowIdx, t.Col, "stray %q after the border corner", string(t.Glyph))
	}
	return border{left: lead.Col, right: c.Col, fill: fill}, nil
}

// validateRectangle checks the rectangle rules over a run of rows. base is
// the absolute row index of rows[0], so errors reported for a cuboid's front
// face point at the right place in the whole literal.
func validateRectangle(rows [][]Cell, base int, decorated bool) (*frame, *Error) {
	top, err := parseBorder(rows[0], base, decorated)
	if err != nil {
		return nil, err
	}
	n := len(rows)
	for i := 1; i < n-1; i++ {
		if err := checkWall(rows[i], base+i, top.left, top.right, decorated); err != nil {
			return nil, err
		}
	}
	bottom, err := parseBorder(rows[n-1], base+n-1, decorated)
	if err != nil {
		return nil, err
	}
	if bottom.left != top.left {
		return nil, errAt(MismatchedWidth, base+n-1, bottom.left,
			"the bottom border's corner is not aligned under the top border's (column %d vs %d)", bottom.left+1, top.left+1)
	}
	if bottom.fill != top.fill {
		return nil, errAt(MismatchedWidth, base+n-1, bottom.right,
			"the top and bottom borders differ in length (%d vs %d fill glyphs)", top.fill, bottom.fill)
	}
	return &frame{kind: KindRectangle, width: top.fill, height: n, left: top.left}, nil
}

// checkWall verifies one interior row: a vertical border glyph at each corner
// column, free-form annotation between them, nothing outside.
func checkWall(row []Cell, rowIdx, left, right int, decorated bool) *Error {
	lead, ok := leadCell(row)
	if !ok {
		return errAt(MismatchedHeight, rowIdx, left, "blank row inside the shape: expected a %q border glyph at column %d", "|", left+1)
	}
	if lead.Col != left || lead.Glyph != '|' {
		return errAt(MismatchedHeight, rowIdx, lead.Col, "expected the row to open with %q at column %d", "|", left+1)
	}
	c, ok := cellAt(row, right)
	if !ok {
		return errAt(MismatchedHeight, rowIdx, colAfter(row), "the row ends before the right border at column %d", right+1)
	}
	if c.Glyph != '|' {
		return errAt(MismatchedHeight, rowIdx, right, "expected %q at column %d, found %q", "|", right+1, string(c.Glyph))
	}
	for _, t := range row[right+1:] {
		if t.Glyph == ' ' || t.Glyph == '\t' {
			continue
		}
		if decorated && (t.Glyph == '|' || t.Glyph == '+' || t.Glyph == '/') {
			continue
		}
		return errAt(MismatchedHeight, rowIdx, t.Col, "stray %q beyond the right border", string(t.Glyph))
	}
	return nil
}

// validateCuboid checks the 3-D rules: a top border, two parallel diagonal
// runs stepping one column left per row, and a front face whose opening
// corner sits one diagonal step past the band, satisfies the rectangle
// rules, and whose vertical extent agrees with the diagonal step count. A
// front face consisting of a single border row reduces the height to 1.
func validateCuboid(g Grid) (*frame, *Error) {
	rows := g.Rows

	top, err := parseBorder(rows[0], 0, false)
	if err != nil {
		return nil, err
	}

	// The diagonal band descends from the two top corners in lockstep.
	i := 1
	for ; i < len(rows); i++ {
		lead, ok := leadCell(rows[i])
		if !ok || lead.Glyph != '/' {
			break
		}
		wantL := top.left - i
		wantR := top.right - i
		if wantL < 0 {
			return nil, errAt(MismatchedDepth, i, lead.Col, "the diagonal run extends past the left margin")
		}
		if lead.Col != wantL {
			return nil, errAt(MismatchedDepth, i, lead.Col, "left diagonal out of step: expected %q at column %d", "/", wantL+1)
		}
		c, ok := cellAt(rows[i], wantR)
		if !ok || c.Glyph != '/' {
			return nil, errAt(MismatchedDepth, i, wantR, "right diagonal out of step: expected %q at column %d", "/", wantR+1)
		}
		for _, t := range rows[i][wantR+1:] {
			switch t.Glyph {
			case ' ', '\t', '|', '+', '/':
			default:
				return nil, errAt(MismatchedDepth, i, t.Col, "stray %q on the back edge", string(t.Glyph))
			}
		}
	}
	depth := i - 1
	if depth == 0 {
		lead, _ := leadCell(rows[1])
		return nil, errAt(MismatchedDepth, 1, lead.Col, "expected a diagonal edge row below the top border")
	}
	if i >= len(rows) {
		return nil, errAt(MismatchedDepth, len(rows)-1, 0, "the front face is missing below the diagonal runs")
	}

	front := rows[i:]
	frontBase := i
	// The front face's corner continues the diagonal: one more step down and
	// to the left of the band's last "/".
	wantLeft := top.left - depth - 1

	if len(front) == 1 {
		b, err := parseBorder(front[0], frontBase, true)
		if err != nil {
			return nil, err
		}
		if b.left != wantLeft {
			return nil, errAt(MismatchedDepth, frontBase, b.left,
				"the front face's corner does not continue the diagonal run (column %d vs %d)", b.left+1, wantLeft+1)
		}
		return &frame{kind: KindCuboid, topWidth: top.fill, frontWidth: b.fill, height: 1, left: wantLeft}, nil
	}

	f, err := validateRectangle(front, frontBase, true)
	if err != nil {
		return nil, err
	}
	if f.left != wantLeft {
		return nil, errAt(MismatchedDepth, frontBase, f.left,
			"the front face's corner does not continue the diagonal run (column %d vs %d)", f.left+1, wantLeft+1)
	}
	if f.height != depth {
		return nil, errAt(MismatchedDepth, frontBase, f.left,
			"the front face is %d rows tall but the diagonal runs take %d steps", f.height, depth)
	}
	return &frame{kind: KindCuboid, topWidth: top.fill, frontWidth: f.width, height: depth, left: wantLeft}, nil
}

func colAfter(row []Cell) int {
	if len(row) == 0 {
		return 0
	}
	return row[len(row)-1].Col + 1
}
