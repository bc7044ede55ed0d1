package factory

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

type (
	// IdentSource is anything that names an identifier.
	IdentSource interface {
		string | *token.Token | *ast.BindingIdentifier | *ast.IdentifierExpression
	}

	// LValueSource is a declaration target: an identifier or a pattern.
	LValueSource interface {
		IdentSource | *ast.ArrayPattern | *ast.ObjectPattern
	}

	// NameSource is a raw lexical name: a member, property or label name.
	NameSource interface {
		string | *token.Token
	}
)

// BindingIdentifier converts src to declaration position. A binding
// identifier is returned unchanged. A reference reuses its token and its
// location.
//
// Only the token survives IdentifierExpression(BindingIdentifier(ref).Token),
// so for a located reference the result names the same identifier but has
// no node location.
func BindingIdentifier[T IdentSource](src T) *ast.BindingIdentifier {
	switch v := any(src).(type) {
	case string:
		return &ast.BindingIdentifier{Token: IdentifierToken(v)}
	case *token.Token:
		return &ast.BindingIdentifier{Token: v}
	case *ast.IdentifierExpression:
		return &ast.BindingIdentifier{Loc: v.Loc, Token: v.Token}
	}
	return any(src).(*ast.BindingIdentifier)
}

// IdentifierExpression converts src to reference position. A reference is
// returned unchanged. A binding identifier reuses its token and its
// location.
func IdentifierExpression[T IdentSource](src T) *ast.IdentifierExpression {
	switch v := any(src).(type) {
	case string:
		return &ast.IdentifierExpression{Token: IdentifierToken(v)}
	case *token.Token:
		return &ast.IdentifierExpression{Token: v}
	case *ast.BindingIdentifier:
		return &ast.IdentifierExpression{Loc: v.Loc, Token: v.Token}
	}
	return any(src).(*ast.IdentifierExpression)
}

func lvalue[T LValueSource](src T) ast.Binding {
	switch v := any(src).(type) {
	case *ast.ArrayPattern:
		return v
	case *ast.ObjectPattern:
		return v
	case string:
		return BindingIdentifier(v)
	case *token.Token:
		return BindingIdentifier(v)
	case *ast.IdentifierExpression:
		return BindingIdentifier(v)
	}
	return any(src).(*ast.BindingIdentifier)
}

func nameToken[T NameSource](src T) *token.Token {
	if name, ok := any(src).(string); ok {
		return IdentifierToken(name)
	}
	return any(src).(*token.Token)
}

func propertyName[T NameSource](src T) *token.Token {
	if name, ok := any(src).(string); ok {
		return PropertyNameToken(name)
	}
	return any(src).(*token.Token)
}
