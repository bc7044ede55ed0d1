package generator

import (
	"strings"

	"github.com/t14raptor/go-lower/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	indent int
	unit   string
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		indent: s.indent,
		unit:   s.unit,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat(s.unit, s.indent))
}

func (s *state) write(str string) {
	s.out.WriteString(str)
}
