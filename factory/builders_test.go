package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

func TestMemberExpression(t *testing.T) {
	m := MemberPath("a", "b", "c")
	assert.Equal(t, "c", m.MemberName.Value)
	inner := m.Operand.(*ast.MemberExpression)
	assert.Equal(t, "b", inner.MemberName.Value)
	assert.Equal(t, "a", inner.Operand.(*ast.IdentifierExpression).Token.Value)

	this := ThisMember("x")
	assert.IsType(t, &ast.ThisExpression{}, this.Operand)
	assert.Equal(t, "x", this.MemberName.Value)
}

func TestCallExpressionDefaults(t *testing.T) {
	call := CallExpression(IdentifierExpression("f"), nil)
	require.NotNil(t, call.Args)
	assert.Empty(t, call.Args.Args)

	stmt := CallStatement(IdentifierExpression("f"), ArgumentList(NumberLiteral(1)))
	assert.Len(t, stmt.Expression.(*ast.CallExpression).Args.Args, 1)
}

func TestObjectHelpers(t *testing.T) {
	proto := NullLiteral()
	create := ObjectCreate(proto, nil)
	require.Len(t, create.Args.Args, 1)
	assert.Equal(t, "create", create.Operand.(*ast.MemberExpression).MemberName.Value)

	props := ObjectLiteralExpression()
	assert.Len(t, ObjectCreate(proto, props).Args.Args, 2)

	assert.Equal(t, "freeze", ObjectFreeze(props).Operand.(*ast.MemberExpression).MemberName.Value)
	assert.Equal(t, "preventExtensions", ObjectPreventExtensions(props).Operand.(*ast.MemberExpression).MemberName.Value)
}

func TestTryStatements(t *testing.T) {
	body, fin := EmptyBlock(), Finally(EmptyBlock())
	tf := TryFinallyStatement(body, fin)
	assert.Nil(t, tf.CatchBlock)
	assert.Same(t, fin, tf.FinallyBlock)

	c := Catch("e", EmptyBlock())
	tc := TryStatement(body, c, nil)
	assert.Same(t, c, tc.CatchBlock)
	assert.Nil(t, tc.FinallyBlock)
}

func TestVariableDeclarations(t *testing.T) {
	stmt := VariableStatement(token.Const, "x", NumberLiteral(1))
	assert.Equal(t, token.Const, stmt.Declarations.DeclarationType)
	require.Len(t, stmt.Declarations.Declarations, 1)

	list := VariableDeclarationListOf(token.Var,
		VariableDeclaration("a", nil),
		VariableDeclaration("b", NumberLiteral(2)),
	)
	assert.Len(t, list.Declarations, 2)
	assert.Nil(t, list.Declarations[0].Initializer)
	assert.Same(t, list, VariableStatementOf(list).Declarations)
}

func TestAccessors(t *testing.T) {
	get := GetAccessor("size", EmptyBlock())
	assert.Equal(t, "size", get.Name.Value)

	set := SetAccessor("size", "v", EmptyBlock())
	assert.Equal(t, "v", set.Parameter.Token.Value)

	numeric := PropertyNameAssignment("0", TrueLiteral())
	assert.Equal(t, token.Number, numeric.Name.Type)

	method := PropertyMethodAssignment("run", ParameterList(1), EmptyBlock())
	assert.Len(t, method.Parameters.Parameters, 1)
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "true", TrueLiteral().Token.Value)
	assert.Equal(t, "false", FalseLiteral().Token.Value)
	assert.Equal(t, "null", NullLiteral().Token.Value)
	assert.Equal(t, `"use strict"`, UseStrictDirective().Expression.(*ast.LiteralExpression).Token.Value)
	assert.Equal(t, "undefined", UndefinedExpression().Token.Value)

	void := Void0().Expression.(*ast.UnaryExpression)
	assert.Equal(t, token.Void, void.Operator.Type)
	assert.Equal(t, "0", void.Operand.(*ast.LiteralExpression).Token.Value)
}

func TestYield(t *testing.T) {
	y := YieldStatement(nil, false).Expression.(*ast.YieldExpression)
	assert.Nil(t, y.Expression)
	assert.False(t, y.IsYieldFor)
	assert.True(t, YieldExpression(IdentifierExpression("it"), true).IsYieldFor)
}

func TestFunctions(t *testing.T) {
	decl := FunctionDeclaration("f", ParameterList(2), EmptyBlock())
	assert.Equal(t, "f", decl.Name.Token.Value)
	assert.False(t, decl.IsGenerator)
	assert.True(t, GeneratorDeclaration("g", EmptyParameterList(), EmptyBlock()).IsGenerator)
	assert.True(t, GeneratorExpression(EmptyParameterList(), EmptyBlock()).IsGenerator)

	arrow := ArrowFunctionExpression(ParameterList("x"), IdentifierExpression("x"))
	assert.IsType(t, &ast.IdentifierExpression{}, arrow.Body)

	class := ClassDeclaration("C", IdentifierExpression("Base"), PropertyMethodAssignment("m", EmptyParameterList(), EmptyBlock()))
	assert.Len(t, class.Elements, 1)
	assert.Nil(t, ClassExpression(nil).Name)
}
