package ast

type (
	FormalParameterList struct {
		Loc
		// Only the last parameter may be a RestParameter.
		Parameters []Parameter
	}

	ArgumentList struct {
		Loc
		Args []Expression
	}

	FunctionExpression struct {
		Loc
		Name        *BindingIdentifier // optional
		IsGenerator bool
		Parameters  *FormalParameterList
		Body        *Block
	}

	FunctionDeclaration struct {
		Loc
		Name        *BindingIdentifier
		IsGenerator bool
		Parameters  *FormalParameterList
		Body        *Block
	}

	ArrowFunctionExpression struct {
		Loc
		Parameters *FormalParameterList
		// Body is a *Block or an Expression.
		Body Node
	}
)
