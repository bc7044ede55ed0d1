package token

import "strconv"

// Position is a point in a source file. Line and Column are 1-based.
type Position struct {
	Source string
	Offset int
	Line   int
	Column int
}

// String renders the position as source:line:column.
func (p Position) String() string {
	s := p.Source
	if s == "" {
		s = "<input>"
	}
	return s + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Range is the span of source text a token or node was scanned from.
type Range struct {
	Start, End Position
}

// String renders the start of the range. A nil range renders as "".
func (r *Range) String() string {
	if r == nil {
		return ""
	}
	return r.Start.String()
}
