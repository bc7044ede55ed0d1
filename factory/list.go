package factory

import "github.com/t14raptor/go-lower/ast"

// sequence copies elems into a new list. It backs both the variadic and
// the slice form of every list builder, so empty input yields an empty,
// non-nil list either way.
func sequence[T any](elems []T) []T {
	s := make([]T, len(elems))
	copy(s, elems)
	return s
}

// StatementList returns a new list holding head followed by rest.
func StatementList(head []ast.Statement, rest ...ast.Statement) []ast.Statement {
	s := make([]ast.Statement, 0, len(head)+len(rest))
	s = append(s, head...)
	return append(s, rest...)
}
