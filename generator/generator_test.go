package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/factory"
	"github.com/t14raptor/go-lower/token"
)

func generateNoIndent(node ast.Node) string {
	output := Generate(node)
	return strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", "")
}

func ident(name string) *ast.IdentifierExpression {
	return factory.IdentifierExpression(name)
}

func TestGenerateIdioms(t *testing.T) {
	forwarding := factory.ParameterListWithRestParams(3)

	tests := []struct {
		name     string
		input    ast.Node
		expected string
	}{
		{
			name:     "scoped block",
			input:    factory.ScopedBlock(factory.Block(factory.VariableStatement(token.Let, "x", factory.NumberLiteral(1)))),
			expected: "(function() {let x = 1;}).call(this);",
		},
		{
			name:     "bound function expression is parenthesized",
			input:    factory.BoundCall(factory.FunctionExpression(factory.EmptyParameterList(), factory.EmptyBlock()), factory.ThisExpression()),
			expected: "(function() {}).bind(this)",
		},
		{
			name:     "bound identifier",
			input:    factory.BoundCall(ident("f"), factory.ThisExpression()),
			expected: "f.bind(this)",
		},
		{
			name:     "state assignment",
			input:    factory.AssignStateStatement(3),
			expected: "$state = 3;",
		},
		{
			name:     "void 0",
			input:    factory.Void0(),
			expected: "(void 0)",
		},
		{
			name: "forwarding wrapper",
			input: factory.FunctionExpression(forwarding, factory.Block(
				factory.ReturnStatement(factory.CallExpression(ident("f"), factory.ArgumentListFromParameterList(forwarding))),
			)),
			expected: "function($0, $1, ...$2) {return f($0, $1, ...$2);}",
		},
		{
			name: "try catch finally",
			input: factory.TryStatement(
				factory.Block(factory.CallStatement(ident("f"), nil)),
				factory.Catch("e", factory.EmptyBlock()),
				factory.Finally(factory.EmptyBlock()),
			),
			expected: "try {f();} catch (e) {} finally {}",
		},
		{
			name:     "use strict",
			input:    factory.UseStrictDirective(),
			expected: `"use strict";`,
		},
		{
			name: "array pattern declaration",
			input: factory.VariableStatement(token.Var,
				factory.ArrayPattern(factory.BindingElement("a"), factory.SpreadPatternElement(factory.BindingIdentifier("b"))),
				ident("xs")),
			expected: "var [a, ...b] = xs;",
		},
		{
			name:     "object freeze",
			input:    factory.ObjectFreeze(factory.ObjectLiteralExpression()),
			expected: "Object.freeze({})",
		},
		{
			name:     "new without arguments",
			input:    factory.NewExpression(ident("F"), nil),
			expected: "new F",
		},
		{
			name:     "new with arguments",
			input:    factory.NewExpression(ident("F"), factory.ArgumentList(factory.NumberLiteral(1))),
			expected: "new F(1)",
		},
		{
			name: "for loop",
			input: factory.ForStatement(
				factory.VariableDeclarationList(token.Let, "i", factory.NumberLiteral(0)),
				factory.BinaryOperator(ident("i"), factory.OperatorToken(token.Less), factory.NumberLiteral(3)),
				factory.PostfixExpression(ident("i"), factory.OperatorToken(token.Increment)),
				factory.EmptyStatement(),
			),
			expected: "for (let i = 0; i < 3; i++) ;",
		},
		{
			name:     "yield star",
			input:    factory.YieldStatement(ident("x"), true),
			expected: "yield* x;",
		},
		{
			name:     "escaped string",
			input:    factory.StringLiteral(`a"b`),
			expected: `"a\"b"`,
		},
		{
			name:     "call call",
			input:    factory.CallCallStatement(ident("f"), factory.ThisExpression(), ident("a"), ident("b")),
			expected: "f.call(this, a, b);",
		},
		{
			name:     "array with trailing elision",
			input:    factory.ArrayLiteralExpression(factory.NumberLiteral(1), nil),
			expected: "[1, ,]",
		},
		{
			name: "if else",
			input: factory.IfStatement(ident("a"),
				factory.Block(factory.BreakStatement(factory.IdentifierToken("outer"))),
				factory.ContinueStatement(nil)),
			expected: "if (a) {break outer;} else continue;",
		},
		{
			name:     "typeof",
			input:    factory.UnaryExpression(factory.OperatorToken(token.Typeof), ident("x")),
			expected: "typeof x",
		},
		{
			name:     "not",
			input:    factory.UnaryExpression(factory.OperatorToken(token.Not), ident("x")),
			expected: "!x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generateNoIndent(tt.input)
			if result != tt.expected {
				t.Errorf("\nExpected: %s\nGot:      %s", tt.expected, result)
			}
		})
	}
}

func TestGenerateLayout(t *testing.T) {
	tests := []struct {
		name     string
		input    ast.Node
		expected string
	}{
		{
			name: "define property",
			input: factory.DefineProperty(ident("o"), "x", factory.Descriptor{
				{Key: "enumerable", Value: factory.Flag(true)},
				{Key: "value", Value: factory.Tree(factory.NumberLiteral(1))},
			}),
			expected: "Object.defineProperty(o, \"x\", {\n    enumerable: true,\n    value: 1\n})",
		},
		{
			name: "switch",
			input: factory.SwitchStatement(ident("x"),
				factory.CaseClause(factory.NumberLiteral(1), factory.BreakStatement(nil)),
				factory.DefaultClause(factory.ReturnStatement(nil)),
			),
			expected: "switch (x) {\n    case 1:\n        break;\n    default:\n        return;\n}",
		},
		{
			name: "class accessors",
			input: factory.ClassDeclaration("C", nil,
				factory.GetAccessor("x", factory.Block(factory.ReturnStatement(factory.NumberLiteral(1)))),
				factory.SetAccessor("x", "v", factory.EmptyBlock()),
			),
			expected: "class C {\n    get x() {\n        return 1;\n    }\n    set x(v) {}\n}",
		},
		{
			name:     "program",
			input:    factory.Program(factory.UseStrictDirective(), factory.AssignStateStatement(0)),
			expected: "\"use strict\";\n$state = 0;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Generate(tt.input)
			if result != tt.expected {
				t.Errorf("\nExpected: %q\nGot:      %q", tt.expected, result)
			}
		})
	}
}

func TestGenerateWithIndent(t *testing.T) {
	block := factory.Block(factory.ExpressionStatement(ident("a")))
	if got, want := GenerateWith(block, Options{Indent: "\t"}), "{\n\ta;\n}"; got != want {
		t.Errorf("GenerateWith = %q, want %q", got, want)
	}
}
