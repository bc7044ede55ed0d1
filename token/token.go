package token

import (
	"strconv"
)

// Type is the set of lexical token kinds in JavaScript.
type Type int

// String returns the source text of operators and keywords, and the name
// of every other token type.
func (t Type) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Type(len(type2string)) {
		return type2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsOperator reports whether t is a punctuator.
func (t Type) IsOperator() bool {
	return t >= Plus && t < operatorEnd
}

// IsKeyword reports whether t is a reserved or contextual word.
func (t Type) IsKeyword() bool {
	return t > operatorEnd
}

// IsLiteral reports whether t is one of the literal subkinds.
func (t Type) IsLiteral() bool {
	switch t {
	case String, Number, True, False, Null:
		return true
	}
	return false
}

// Token is a single lexical unit. Tokens are never mutated after creation.
//
// Location is nil for synthetic tokens.
type Token struct {
	Type     Type
	Value    string
	Location *Range
}

// String returns the source text of the token.
func (t *Token) String() string {
	return t.Value
}

// IsSynthetic reports whether the token was built rather than scanned.
func (t *Token) IsSynthetic() bool {
	return t.Location == nil
}
