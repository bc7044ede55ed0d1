package factory

import (
	"github.com/t14raptor/go-lower/token"
)

// OperatorToken returns a token for an operator or keyword.
func OperatorToken(t token.Type) *token.Token {
	return &token.Token{Type: t, Value: t.String()}
}

func IdentifierToken(name string) *token.Token {
	return &token.Token{Type: token.Identifier, Value: name}
}

// PropertyNameToken returns the token naming an object literal or class
// member. Identifier names, reserved words included, become identifier
// tokens. A key that is the canonical text of a number becomes a number
// token, so "0" and "1.5" print unquoted. Any other key becomes a string
// literal token.
func PropertyNameToken(name string) *token.Token {
	switch {
	case token.IsIdentifierName(name):
		return IdentifierToken(name)
	case token.IsCanonicalNumber(name):
		return &token.Token{Type: token.Number, Value: name}
	}
	return StringLiteralToken(name)
}

// StringLiteralToken returns a string literal token whose text, read back
// as JavaScript, is exactly v.
func StringLiteralToken(v string) *token.Token {
	return &token.Token{Type: token.String, Value: token.Quote(v)}
}

func BooleanLiteralToken(v bool) *token.Token {
	if v {
		return OperatorToken(token.True)
	}
	return OperatorToken(token.False)
}

func NullLiteralToken() *token.Token {
	return OperatorToken(token.Null)
}

// NumberLiteralToken formats v the way JavaScript converts numbers to
// strings. Negative values keep their sign in the token text.
func NumberLiteralToken(v float64) *token.Token {
	return &token.Token{Type: token.Number, Value: token.FormatNumber(v)}
}
