package ast

import "github.com/t14raptor/go-lower/token"

type (
	ArrayLiteralExpression struct {
		Loc
		// A nil element is an elision.
		Elements []Expression
	}

	BinaryOperator struct {
		Loc
		Left     Expression
		Operator *token.Token
		Right    Expression
	}

	CallExpression struct {
		Loc
		Operand Expression
		Args    *ArgumentList
	}

	// CascadeExpression evaluates Expressions against Operand and yields Operand.
	CascadeExpression struct {
		Loc
		Operand     Expression
		Expressions []Expression
	}

	CommaExpression struct {
		Loc
		Expressions []Expression
	}

	ConditionalExpression struct {
		Loc
		Condition Expression
		Left      Expression
		Right     Expression
	}

	// IdentifierExpression is a name in reference position.
	IdentifierExpression struct {
		Loc
		Token *token.Token
	}

	LiteralExpression struct {
		Loc
		Token *token.Token
	}

	MemberExpression struct {
		Loc
		Operand    Expression
		MemberName *token.Token
	}

	MemberLookupExpression struct {
		Loc
		Operand          Expression
		MemberExpression Expression
	}

	NewExpression struct {
		Loc
		Operand Expression
		Args    *ArgumentList // optional
	}

	ObjectLiteralExpression struct {
		Loc
		Properties []Property
	}

	ParenExpression struct {
		Loc
		Expression Expression
	}

	PostfixExpression struct {
		Loc
		Operand  Expression
		Operator *token.Token
	}

	SpreadExpression struct {
		Loc
		Expression Expression
	}

	ThisExpression struct {
		Loc
	}

	UnaryExpression struct {
		Loc
		Operator *token.Token
		Operand  Expression
	}

	YieldExpression struct {
		Loc
		Expression Expression // optional
		IsYieldFor bool
	}
)

func (*ArrayLiteralExpression) _expr()  {}
func (*ArrayPattern) _expr()            {}
func (*ArrowFunctionExpression) _expr() {}
func (*BinaryOperator) _expr()          {}
func (*CallExpression) _expr()          {}
func (*CascadeExpression) _expr()       {}
func (*ClassExpression) _expr()         {}
func (*CommaExpression) _expr()         {}
func (*ConditionalExpression) _expr()   {}
func (*FunctionExpression) _expr()      {}
func (*IdentifierExpression) _expr()    {}
func (*LiteralExpression) _expr()       {}
func (*MemberExpression) _expr()        {}
func (*MemberLookupExpression) _expr()  {}
func (*NewExpression) _expr()           {}
func (*ObjectLiteralExpression) _expr() {}
func (*ObjectPattern) _expr()           {}
func (*ParenExpression) _expr()         {}
func (*PostfixExpression) _expr()       {}
func (*SpreadExpression) _expr()        {}
func (*ThisExpression) _expr()          {}
func (*UnaryExpression) _expr()         {}
func (*YieldExpression) _expr()         {}
