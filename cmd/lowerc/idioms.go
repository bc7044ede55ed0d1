package main

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/factory"
	"github.com/t14raptor/go-lower/token"
)

type params struct {
	arity int
	state int
}

type idiom struct {
	description string
	build       func(p params) ast.Node
}

var idioms = map[string]idiom{
	"assign-state": {
		description: "generator state transition",
		build: func(p params) ast.Node {
			return factory.AssignStateStatement(p.state)
		},
	},
	"bound-call": {
		description: "function expression bound to the receiver",
		build: func(p params) ast.Node {
			fn := factory.FunctionExpression(factory.ParameterList(p.arity), factory.Block(
				factory.ReturnStatement(factory.ThisExpression()),
			))
			return factory.ExpressionStatement(factory.BoundCall(fn, factory.ThisExpression()))
		},
	},
	"call-call": {
		description: "call through Function.prototype.call forwarding positional arguments",
		build: func(p params) ast.Node {
			args := factory.ArgumentListOfArity(p.arity).Args
			return factory.CallCallStatement(factory.IdentifierExpression("fn"), factory.ThisExpression(), args...)
		},
	},
	"define-property": {
		description: "Object.defineProperty with a getter descriptor",
		build: func(p params) ast.Node {
			getter := factory.FunctionExpression(factory.EmptyParameterList(), factory.Block(
				factory.ReturnStatement(factory.ThisMember("_value")),
			))
			return factory.ExpressionStatement(factory.DefineProperty(
				factory.IdentifierExpression("target"),
				"value",
				factory.DescriptorFromMap(map[string]factory.DescriptorValue{
					"get":          factory.Tree(getter),
					"enumerable":   factory.Flag(true),
					"configurable": factory.Flag(true),
				}),
			))
		},
	},
	"freeze": {
		description: "frozen object literal",
		build: func(p params) ast.Node {
			return factory.VariableStatement(token.Const, "frozen", factory.ObjectFreeze(
				factory.ObjectLiteralExpression(factory.PropertyNameAssignment("a", factory.NumberLiteral(1))),
			))
		},
	},
	"object-create": {
		description: "object with a null prototype",
		build: func(p params) ast.Node {
			return factory.VariableStatement(token.Var, "dict", factory.ObjectCreate(factory.NullLiteral(), nil))
		},
	},
	"rest-params": {
		description: "wrapper forwarding a rest parameter list",
		build: func(p params) ast.Node {
			pl := factory.ParameterListWithRestParams(p.arity)
			return factory.FunctionDeclaration("wrapper", pl, factory.Block(
				factory.ReturnStatement(factory.CallCall(
					factory.IdentifierExpression("inner"),
					factory.ThisExpression(),
					factory.ArgumentListFromParameterList(pl).Args...,
				)),
			))
		},
	},
	"scoped-block": {
		description: "block scope emulated with an immediately invoked function",
		build: func(p params) ast.Node {
			return factory.ScopedStatements(
				factory.VariableStatement(token.Var, "x", factory.NumberLiteral(1)),
				factory.CallStatement(factory.IdentifierExpression("use"), factory.ArgumentList(factory.IdentifierExpression("x"))),
			)
		},
	},
	"use-strict": {
		description: "strict mode directive",
		build: func(p params) ast.Node {
			return factory.UseStrictDirective()
		},
	},
	"void0": {
		description: "undefined that cannot be shadowed",
		build: func(p params) ast.Node {
			return factory.ExpressionStatement(factory.Void0())
		},
	},
}

func idiomNames() []string {
	names := maps.Keys(idioms)
	slices.Sort(names)
	return names
}
