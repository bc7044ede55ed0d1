package ast

import "github.com/t14raptor/go-lower/token"

type (
	// BindingIdentifier is a name in declaration position.
	BindingIdentifier struct {
		Loc
		Token *token.Token
	}

	// BindingElement is a binding target with an optional default value.
	BindingElement struct {
		Loc
		Binding     Binding
		Initializer Expression // optional
	}

	RestParameter struct {
		Loc
		Identifier *BindingIdentifier
	}

	// ArrayPattern elements are BindingElements, SpreadPatternElements or,
	// in assignment position, plain expressions. A nil element is an elision.
	ArrayPattern struct {
		Loc
		Elements []Node
	}

	// ObjectPattern fields are ObjectPatternFields or shorthand BindingElements.
	ObjectPattern struct {
		Loc
		Fields []Node
	}

	ObjectPatternField struct {
		Loc
		Name    *token.Token
		Element Node
	}

	SpreadPatternElement struct {
		Loc
		LValue Node
	}
)

func (*BindingIdentifier) _binding() {}
func (*ArrayPattern) _binding()      {}
func (*ObjectPattern) _binding()     {}

func (*BindingElement) _parameter() {}
func (*RestParameter) _parameter()  {}
