package literal

import "fmt"

// ErrorKind categorizes the single fatal diagnostic a malformed literal
// produces.
type ErrorKind int

const (
	// Unclassifiable: the input matches none of the three shape grammars.
	Unclassifiable ErrorKind = iota
	// MalformedLine: bad or mismatched line terminators, or an empty fill.
	MalformedLine
	// MismatchedWidth: unequal or malformed horizontal edges.
	MismatchedWidth
	// MismatchedHeight: inconsistent vertical extent or missing border glyphs.
	MismatchedHeight
	// MismatchedDepth: cuboid diagonal or front-face inconsistency.
	MismatchedDepth
)

// String returns the kind's canonical name.
func (k ErrorKind) String() string {
	switch k {
	case Unclassifiable:
		return "unclassifiable"
	case MalformedLine:
		return "malformed line"
	case MismatchedWidth:
		return "mismatched width"
	case MismatchedHeight:
		return "mismatched height"
	case MismatchedDepth:
		return "mismatched depth"
	}
	return fmt.Sprintf("unknown error kind (%d)", int(k))
}

// Error is the validation failure for one literal. Row and Col are 0-based
// positions within the literal body; they locate the first rule violated in
// top-to-bottom, left-to-right scan order. An Error is terminal: the engine
// never repairs it, merges it with another, or continues past it.
type Error struct {
	Kind   ErrorKind
	Row    int
	Col    int
	Detail string
}

// Error implements the error interface. Positions are rendered 1-based for
// humans.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Row+1, e.Col+1, e.Detail)
}

func errAt(kind ErrorKind, row, col int, format string, args ...any) *Error {
	return &Error{Kind: kind, Row: row, Col: col, Detail: fmt.Sprintf(format, args...)}
}
