package factory

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/predefined"
	"github.com/t14raptor/go-lower/token"
)

func Block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Statements: sequence(stmts)}
}

func BlockFromList(stmts []ast.Statement) *ast.Block {
	return &ast.Block{Statements: sequence(stmts)}
}

func EmptyBlock() *ast.Block {
	return Block()
}

func Program(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{Elements: sequence(stmts)}
}

func ProgramFromList(stmts []ast.Statement) *ast.Program {
	return &ast.Program{Elements: sequence(stmts)}
}

// BreakStatement builds break, or break label when label is not nil.
func BreakStatement(label *token.Token) *ast.BreakStatement {
	return &ast.BreakStatement{Name: label}
}

// ContinueStatement builds continue, or continue label when label is not nil.
func ContinueStatement(label *token.Token) *ast.ContinueStatement {
	return &ast.ContinueStatement{Name: label}
}

func LabelledStatement[T NameSource](name T, stmt ast.Statement) *ast.LabelledStatement {
	return &ast.LabelledStatement{Name: nameToken(name), Statement: stmt}
}

func CaseClause(expr ast.Expression, stmts ...ast.Statement) *ast.CaseClause {
	return &ast.CaseClause{Expression: expr, Statements: sequence(stmts)}
}

func DefaultClause(stmts ...ast.Statement) *ast.DefaultClause {
	return &ast.DefaultClause{Statements: sequence(stmts)}
}

func SwitchStatement(expr ast.Expression, clauses ...ast.Clause) *ast.SwitchStatement {
	return &ast.SwitchStatement{Expression: expr, CaseClauses: sequence(clauses)}
}

// Catch builds catch (binding) body.
func Catch[T LValueSource](binding T, body *ast.Block) *ast.Catch {
	return &ast.Catch{Binding: lvalue(binding), CatchBody: body}
}

func Finally(block *ast.Block) *ast.Finally {
	return &ast.Finally{Block: block}
}

// TryStatement builds try body followed by the non-nil ones of catchBlock
// and finallyBlock. At least one of them must be set.
func TryStatement(body *ast.Block, catchBlock *ast.Catch, finallyBlock *ast.Finally) *ast.TryStatement {
	return &ast.TryStatement{Body: body, CatchBlock: catchBlock, FinallyBlock: finallyBlock}
}

func TryFinallyStatement(body *ast.Block, finallyBlock *ast.Finally) *ast.TryStatement {
	return TryStatement(body, nil, finallyBlock)
}

func DebuggerStatement() *ast.DebuggerStatement {
	return &ast.DebuggerStatement{}
}

func DoWhileStatement(body ast.Statement, condition ast.Expression) *ast.DoWhileStatement {
	return &ast.DoWhileStatement{Body: body, Condition: condition}
}

func WhileStatement(condition ast.Expression, body ast.Statement) *ast.WhileStatement {
	return &ast.WhileStatement{Condition: condition, Body: body}
}

func WithStatement(expr ast.Expression, body ast.Statement) *ast.WithStatement {
	return &ast.WithStatement{Expression: expr, Body: body}
}

func EmptyStatement() *ast.EmptyStatement {
	return &ast.EmptyStatement{}
}

func ExpressionStatement(expr ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: expr}
}

// AssignmentStatement builds lhs = rhs;.
func AssignmentStatement(lhs, rhs ast.Expression) *ast.ExpressionStatement {
	return ExpressionStatement(AssignmentExpression(lhs, rhs))
}

// CallStatement builds operand(args);. A nil args is an empty argument list.
func CallStatement(operand ast.Expression, args *ast.ArgumentList) *ast.ExpressionStatement {
	return ExpressionStatement(CallExpression(operand, args))
}

// CallCallStatement builds fn.call(this, args...);.
func CallCallStatement(fn, this ast.Expression, args ...ast.Expression) *ast.ExpressionStatement {
	return ExpressionStatement(CallCall(fn, this, args...))
}

// ForStatement builds a for loop. initializer is nil, a
// *ast.VariableDeclarationList or an ast.Expression; condition and
// increment may be nil.
func ForStatement(initializer ast.Node, condition, increment ast.Expression, body ast.Statement) *ast.ForStatement {
	return &ast.ForStatement{Initializer: initializer, Condition: condition, Increment: increment, Body: body}
}

func ForInStatement(initializer ast.Node, collection ast.Expression, body ast.Statement) *ast.ForInStatement {
	return &ast.ForInStatement{Initializer: initializer, Collection: collection, Body: body}
}

func ForOfStatement(initializer ast.Node, collection ast.Expression, body ast.Statement) *ast.ForOfStatement {
	return &ast.ForOfStatement{Initializer: initializer, Collection: collection, Body: body}
}

// IfStatement builds if (condition) ifClause, with an else branch when
// elseClause is not nil.
func IfStatement(condition ast.Expression, ifClause, elseClause ast.Statement) *ast.IfStatement {
	return &ast.IfStatement{Condition: condition, IfClause: ifClause, ElseClause: elseClause}
}

// ReturnStatement builds return expr;. expr may be nil.
func ReturnStatement(expr ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Expression: expr}
}

func ThrowStatement(value ast.Expression) *ast.ThrowStatement {
	return &ast.ThrowStatement{Value: value}
}

// UseStrictDirective builds "use strict";.
func UseStrictDirective() *ast.ExpressionStatement {
	return ExpressionStatement(StringLiteral(predefined.UseStrict))
}

// YieldStatement builds yield expr; or yield* expr;.
func YieldStatement(expr ast.Expression, isYieldFor bool) *ast.ExpressionStatement {
	return ExpressionStatement(YieldExpression(expr, isYieldFor))
}

// VariableDeclaration builds target = initializer. initializer may be nil.
func VariableDeclaration[T LValueSource](target T, initializer ast.Expression) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{LValue: lvalue(target), Initializer: initializer}
}

// VariableDeclarationList builds a list holding a single declaration.
// kind is token.Var, token.Let or token.Const.
func VariableDeclarationList[T LValueSource](kind token.Type, target T, initializer ast.Expression) *ast.VariableDeclarationList {
	return VariableDeclarationListOf(kind, VariableDeclaration(target, initializer))
}

func VariableDeclarationListOf(kind token.Type, decls ...*ast.VariableDeclaration) *ast.VariableDeclarationList {
	return &ast.VariableDeclarationList{DeclarationType: kind, Declarations: sequence(decls)}
}

// VariableStatement builds var target = initializer; and its let and
// const forms.
func VariableStatement[T LValueSource](kind token.Type, target T, initializer ast.Expression) *ast.VariableStatement {
	return VariableStatementOf(VariableDeclarationList(kind, target, initializer))
}

func VariableStatementOf(list *ast.VariableDeclarationList) *ast.VariableStatement {
	return &ast.VariableStatement{Declarations: list}
}
