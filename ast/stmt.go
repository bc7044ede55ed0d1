package ast

import "github.com/t14raptor/go-lower/token"

type (
	Program struct {
		Loc
		Elements []Statement
	}

	Block struct {
		Loc
		Statements []Statement
	}

	BreakStatement struct {
		Loc
		Name *token.Token // optional
	}

	ContinueStatement struct {
		Loc
		Name *token.Token // optional
	}

	CaseClause struct {
		Loc
		Expression Expression
		Statements []Statement
	}

	DefaultClause struct {
		Loc
		Statements []Statement
	}

	Catch struct {
		Loc
		Binding   Binding
		CatchBody *Block
	}

	Finally struct {
		Loc
		Block *Block
	}

	DebuggerStatement struct {
		Loc
	}

	DoWhileStatement struct {
		Loc
		Body      Statement
		Condition Expression
	}

	EmptyStatement struct {
		Loc
	}

	ExpressionStatement struct {
		Loc
		Expression Expression
	}

	// ForStatement.Initializer is a *VariableDeclarationList or an Expression.
	ForStatement struct {
		Loc
		Initializer Node       // optional
		Condition   Expression // optional
		Increment   Expression // optional
		Body        Statement
	}

	// ForInStatement.Initializer is a *VariableDeclarationList or an Expression.
	ForInStatement struct {
		Loc
		Initializer Node
		Collection  Expression
		Body        Statement
	}

	// ForOfStatement.Initializer is a *VariableDeclarationList or an Expression.
	ForOfStatement struct {
		Loc
		Initializer Node
		Collection  Expression
		Body        Statement
	}

	IfStatement struct {
		Loc
		Condition  Expression
		IfClause   Statement
		ElseClause Statement // optional
	}

	LabelledStatement struct {
		Loc
		Name      *token.Token
		Statement Statement
	}

	ReturnStatement struct {
		Loc
		Expression Expression // optional
	}

	SwitchStatement struct {
		Loc
		Expression  Expression
		CaseClauses []Clause
	}

	ThrowStatement struct {
		Loc
		Value Expression
	}

	// TryStatement has at least one of CatchBlock and FinallyBlock.
	TryStatement struct {
		Loc
		Body         *Block
		CatchBlock   *Catch   // optional
		FinallyBlock *Finally // optional
	}

	WhileStatement struct {
		Loc
		Condition Expression
		Body      Statement
	}

	WithStatement struct {
		Loc
		Expression Expression
		Body       Statement
	}

	VariableStatement struct {
		Loc
		Declarations *VariableDeclarationList
	}

	// VariableDeclarationList.DeclarationType is token.Var, token.Let or token.Const.
	VariableDeclarationList struct {
		Loc
		DeclarationType token.Type
		Declarations    []*VariableDeclaration
	}

	VariableDeclaration struct {
		Loc
		LValue      Binding
		Initializer Expression // optional
	}
)

func (*Block) _stmt()               {}
func (*BreakStatement) _stmt()      {}
func (*ClassDeclaration) _stmt()    {}
func (*ContinueStatement) _stmt()   {}
func (*DebuggerStatement) _stmt()   {}
func (*DoWhileStatement) _stmt()    {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*ForInStatement) _stmt()      {}
func (*ForOfStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*FunctionDeclaration) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*LabelledStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*VariableStatement) _stmt()   {}
func (*WhileStatement) _stmt()      {}
func (*WithStatement) _stmt()       {}

func (*CaseClause) _clause()    {}
func (*DefaultClause) _clause() {}
