package ast

import "github.com/t14raptor/go-lower/token"

type (
	ClassDeclaration struct {
		Loc
		Name       *BindingIdentifier
		SuperClass Expression // optional
		Elements   []ClassElement
	}

	ClassExpression struct {
		Loc
		Name       *BindingIdentifier // optional
		SuperClass Expression         // optional
		Elements   []ClassElement
	}

	PropertyNameAssignment struct {
		Loc
		Name  *token.Token
		Value Expression
	}

	PropertyMethodAssignment struct {
		Loc
		Name        *token.Token
		IsStatic    bool
		IsGenerator bool
		Parameters  *FormalParameterList
		Body        *Block
	}

	GetAccessor struct {
		Loc
		Name     *token.Token
		IsStatic bool
		Body     *Block
	}

	SetAccessor struct {
		Loc
		Name      *token.Token
		IsStatic  bool
		Parameter *BindingIdentifier
		Body      *Block
	}
)

func (*PropertyNameAssignment) _property()   {}
func (*PropertyMethodAssignment) _property() {}
func (*GetAccessor) _property()              {}
func (*SetAccessor) _property()              {}

func (*PropertyMethodAssignment) _classElement() {}
func (*GetAccessor) _classElement()              {}
func (*SetAccessor) _classElement()              {}
