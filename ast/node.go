package ast

import "github.com/t14raptor/go-lower/token"

// Node is implemented by every tree node. Fields commented optional are
// nil when the construct is absent.
type Node interface {
	// Kind returns the grammar production the node represents.
	Kind() Kind
	// Range returns the source range the node was parsed from, or nil for
	// synthetic nodes.
	Range() *token.Range
}

// Loc is embedded in every node.
type Loc struct {
	Location *token.Range
}

func (l *Loc) Range() *token.Range { return l.Location }

type (
	// Expression is implemented by nodes that may appear in expression position.
	Expression interface {
		Node
		_expr()
	}

	// Statement is implemented by nodes that may appear in a statement list.
	Statement interface {
		Node
		_stmt()
	}

	// Binding is a declaration-position target: a BindingIdentifier or a
	// destructuring pattern.
	Binding interface {
		Node
		_binding()
	}

	// Parameter is an element of a FormalParameterList.
	Parameter interface {
		Node
		_parameter()
	}

	// Property is a member of an ObjectLiteralExpression.
	Property interface {
		Node
		_property()
	}

	// ClassElement is a member of a class body.
	ClassElement interface {
		Node
		_classElement()
	}

	// Clause is a case or default clause of a SwitchStatement.
	Clause interface {
		Node
		_clause()
	}
)

// Kind identifies the grammar production of a Node.
type Kind int

const (
	KindInvalid Kind = iota

	ArgumentListKind
	ArrayLiteralExpressionKind
	ArrayPatternKind
	ArrowFunctionExpressionKind
	BinaryOperatorKind
	BindingElementKind
	BindingIdentifierKind
	BlockKind
	BreakStatementKind
	CallExpressionKind
	CascadeExpressionKind
	CaseClauseKind
	CatchKind
	ClassDeclarationKind
	ClassExpressionKind
	CommaExpressionKind
	ConditionalExpressionKind
	ContinueStatementKind
	DebuggerStatementKind
	DefaultClauseKind
	DoWhileStatementKind
	EmptyStatementKind
	ExpressionStatementKind
	FinallyKind
	ForInStatementKind
	ForOfStatementKind
	ForStatementKind
	FormalParameterListKind
	FunctionDeclarationKind
	FunctionExpressionKind
	GetAccessorKind
	IdentifierExpressionKind
	IfStatementKind
	LabelledStatementKind
	LiteralExpressionKind
	MemberExpressionKind
	MemberLookupExpressionKind
	NewExpressionKind
	ObjectLiteralExpressionKind
	ObjectPatternKind
	ObjectPatternFieldKind
	ParenExpressionKind
	PostfixExpressionKind
	ProgramKind
	PropertyMethodAssignmentKind
	PropertyNameAssignmentKind
	RestParameterKind
	ReturnStatementKind
	SetAccessorKind
	SpreadExpressionKind
	SpreadPatternElementKind
	SwitchStatementKind
	ThisExpressionKind
	ThrowStatementKind
	TryStatementKind
	UnaryExpressionKind
	VariableDeclarationKind
	VariableDeclarationListKind
	VariableStatementKind
	WhileStatementKind
	WithStatementKind
	YieldExpressionKind
)

var kind2string = [...]string{
	KindInvalid:                  "Invalid",
	ArgumentListKind:             "ArgumentList",
	ArrayLiteralExpressionKind:   "ArrayLiteralExpression",
	ArrayPatternKind:             "ArrayPattern",
	ArrowFunctionExpressionKind:  "ArrowFunctionExpression",
	BinaryOperatorKind:           "BinaryOperator",
	BindingElementKind:           "BindingElement",
	BindingIdentifierKind:        "BindingIdentifier",
	BlockKind:                    "Block",
	BreakStatementKind:           "BreakStatement",
	CallExpressionKind:           "CallExpression",
	CascadeExpressionKind:        "CascadeExpression",
	CaseClauseKind:               "CaseClause",
	CatchKind:                    "Catch",
	ClassDeclarationKind:         "ClassDeclaration",
	ClassExpressionKind:          "ClassExpression",
	CommaExpressionKind:          "CommaExpression",
	ConditionalExpressionKind:    "ConditionalExpression",
	ContinueStatementKind:        "ContinueStatement",
	DebuggerStatementKind:        "DebuggerStatement",
	DefaultClauseKind:            "DefaultClause",
	DoWhileStatementKind:         "DoWhileStatement",
	EmptyStatementKind:           "EmptyStatement",
	ExpressionStatementKind:      "ExpressionStatement",
	FinallyKind:                  "Finally",
	ForInStatementKind:           "ForInStatement",
	ForOfStatementKind:           "ForOfStatement",
	ForStatementKind:             "ForStatement",
	FormalParameterListKind:      "FormalParameterList",
	FunctionDeclarationKind:      "FunctionDeclaration",
	FunctionExpressionKind:       "FunctionExpression",
	GetAccessorKind:              "GetAccessor",
	IdentifierExpressionKind:     "IdentifierExpression",
	IfStatementKind:              "IfStatement",
	LabelledStatementKind:        "LabelledStatement",
	LiteralExpressionKind:        "LiteralExpression",
	MemberExpressionKind:         "MemberExpression",
	MemberLookupExpressionKind:   "MemberLookupExpression",
	NewExpressionKind:            "NewExpression",
	ObjectLiteralExpressionKind:  "ObjectLiteralExpression",
	ObjectPatternKind:            "ObjectPattern",
	ObjectPatternFieldKind:       "ObjectPatternField",
	ParenExpressionKind:          "ParenExpression",
	PostfixExpressionKind:        "PostfixExpression",
	ProgramKind:                  "Program",
	PropertyMethodAssignmentKind: "PropertyMethodAssignment",
	PropertyNameAssignmentKind:   "PropertyNameAssignment",
	RestParameterKind:            "RestParameter",
	ReturnStatementKind:          "ReturnStatement",
	SetAccessorKind:              "SetAccessor",
	SpreadExpressionKind:         "SpreadExpression",
	SpreadPatternElementKind:     "SpreadPatternElement",
	SwitchStatementKind:          "SwitchStatement",
	ThisExpressionKind:           "ThisExpression",
	ThrowStatementKind:           "ThrowStatement",
	TryStatementKind:             "TryStatement",
	UnaryExpressionKind:          "UnaryExpression",
	VariableDeclarationKind:      "VariableDeclaration",
	VariableDeclarationListKind:  "VariableDeclarationList",
	VariableStatementKind:        "VariableStatement",
	WhileStatementKind:           "WhileStatement",
	WithStatementKind:            "WithStatement",
	YieldExpressionKind:          "YieldExpression",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kind2string) {
		return kind2string[k]
	}
	return "Kind(?)"
}

func (*ArgumentList) Kind() Kind             { return ArgumentListKind }
func (*ArrayLiteralExpression) Kind() Kind   { return ArrayLiteralExpressionKind }
func (*ArrayPattern) Kind() Kind             { return ArrayPatternKind }
func (*ArrowFunctionExpression) Kind() Kind  { return ArrowFunctionExpressionKind }
func (*BinaryOperator) Kind() Kind           { return BinaryOperatorKind }
func (*BindingElement) Kind() Kind           { return BindingElementKind }
func (*BindingIdentifier) Kind() Kind        { return BindingIdentifierKind }
func (*Block) Kind() Kind                    { return BlockKind }
func (*BreakStatement) Kind() Kind           { return BreakStatementKind }
func (*CallExpression) Kind() Kind           { return CallExpressionKind }
func (*CascadeExpression) Kind() Kind        { return CascadeExpressionKind }
func (*CaseClause) Kind() Kind               { return CaseClauseKind }
func (*Catch) Kind() Kind                    { return CatchKind }
func (*ClassDeclaration) Kind() Kind         { return ClassDeclarationKind }
func (*ClassExpression) Kind() Kind          { return ClassExpressionKind }
func (*CommaExpression) Kind() Kind          { return CommaExpressionKind }
func (*ConditionalExpression) Kind() Kind    { return ConditionalExpressionKind }
func (*ContinueStatement) Kind() Kind        { return ContinueStatementKind }
func (*DebuggerStatement) Kind() Kind        { return DebuggerStatementKind }
func (*DefaultClause) Kind() Kind            { return DefaultClauseKind }
func (*DoWhileStatement) Kind() Kind         { return DoWhileStatementKind }
func (*EmptyStatement) Kind() Kind           { return EmptyStatementKind }
func (*ExpressionStatement) Kind() Kind      { return ExpressionStatementKind }
func (*Finally) Kind() Kind                  { return FinallyKind }
func (*ForInStatement) Kind() Kind           { return ForInStatementKind }
func (*ForOfStatement) Kind() Kind           { return ForOfStatementKind }
func (*ForStatement) Kind() Kind             { return ForStatementKind }
func (*FormalParameterList) Kind() Kind      { return FormalParameterListKind }
func (*FunctionDeclaration) Kind() Kind      { return FunctionDeclarationKind }
func (*FunctionExpression) Kind() Kind       { return FunctionExpressionKind }
func (*GetAccessor) Kind() Kind              { return GetAccessorKind }
func (*IdentifierExpression) Kind() Kind     { return IdentifierExpressionKind }
func (*IfStatement) Kind() Kind              { return IfStatementKind }
func (*LabelledStatement) Kind() Kind        { return LabelledStatementKind }
func (*LiteralExpression) Kind() Kind        { return LiteralExpressionKind }
func (*MemberExpression) Kind() Kind         { return MemberExpressionKind }
func (*MemberLookupExpression) Kind() Kind   { return MemberLookupExpressionKind }
func (*NewExpression) Kind() Kind            { return NewExpressionKind }
func (*ObjectLiteralExpression) Kind() Kind  { return ObjectLiteralExpressionKind }
func (*ObjectPattern) Kind() Kind            { return ObjectPatternKind }
func (*ObjectPatternField) Kind() Kind       { return ObjectPatternFieldKind }
func (*ParenExpression) Kind() Kind          { return ParenExpressionKind }
func (*PostfixExpression) Kind() Kind        { return PostfixExpressionKind }
func (*Program) Kind() Kind                  { return ProgramKind }
func (*PropertyMethodAssignment) Kind() Kind { return PropertyMethodAssignmentKind }
func (*PropertyNameAssignment) Kind() Kind   { return PropertyNameAssignmentKind }
func (*RestParameter) Kind() Kind            { return RestParameterKind }
func (*ReturnStatement) Kind() Kind          { return ReturnStatementKind }
func (*SetAccessor) Kind() Kind              { return SetAccessorKind }
func (*SpreadExpression) Kind() Kind         { return SpreadExpressionKind }
func (*SpreadPatternElement) Kind() Kind     { return SpreadPatternElementKind }
func (*SwitchStatement) Kind() Kind          { return SwitchStatementKind }
func (*ThisExpression) Kind() Kind           { return ThisExpressionKind }
func (*ThrowStatement) Kind() Kind           { return ThrowStatementKind }
func (*TryStatement) Kind() Kind             { return TryStatementKind }
func (*UnaryExpression) Kind() Kind          { return UnaryExpressionKind }
func (*VariableDeclaration) Kind() Kind      { return VariableDeclarationKind }
func (*VariableDeclarationList) Kind() Kind  { return VariableDeclarationListKind }
func (*VariableStatement) Kind() Kind        { return VariableStatementKind }
func (*WhileStatement) Kind() Kind           { return WhileStatementKind }
func (*WithStatement) Kind() Kind            { return WithStatementKind }
func (*YieldExpression) Kind() Kind          { return YieldExpressionKind }
