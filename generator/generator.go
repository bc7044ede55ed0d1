// Package generator prints trees as JavaScript source text.
//
// The output follows the tree exactly. No parentheses are inserted, so a
// tree that needs them for precedence must contain ParenExpression nodes.
package generator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/go-lower/ast"
)

// Options controls the layout of generated text.
type Options struct {
	// Indent is written once per nesting level. Defaults to four spaces.
	Indent string
}

func Generate(node ast.Node) string {
	return GenerateWith(node, Options{})
}

func GenerateWith(node ast.Node, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "    "
	}
	s := &state{
		out:  &strings.Builder{},
		node: node,
		unit: opts.Indent,
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.ArgumentList:
		s.write("(")
		genList(s, n.Args, ", ")
		s.write(")")
	case *ast.ArrayLiteralExpression:
		s.write("[")
		for i, e := range n.Elements {
			if i > 0 {
				s.write(", ")
			}
			if e != nil {
				gen(s.wrap(e))
			}
		}
		if len(n.Elements) > 0 && n.Elements[len(n.Elements)-1] == nil {
			s.write(",")
		}
		s.write("]")
	case *ast.ArrayPattern:
		s.write("[")
		for i, e := range n.Elements {
			if i > 0 {
				s.write(", ")
			}
			if e != nil {
				gen(s.wrap(e))
			}
		}
		if len(n.Elements) > 0 && n.Elements[len(n.Elements)-1] == nil {
			s.write(",")
		}
		s.write("]")
	case *ast.ArrowFunctionExpression:
		s.write("(")
		gen(s.wrap(n.Parameters))
		s.write(") => ")
		gen(s.wrap(n.Body))
	case *ast.BinaryOperator:
		gen(s.wrap(n.Left))
		s.write(" " + n.Operator.Value + " ")
		gen(s.wrap(n.Right))
	case *ast.BindingElement:
		gen(s.wrap(n.Binding))
		if n.Initializer != nil {
			s.write(" = ")
			gen(s.wrap(n.Initializer))
		}
	case *ast.BindingIdentifier:
		s.write(n.Token.Value)
	case *ast.Block:
		genBody(s, n.Statements)
	case *ast.BreakStatement:
		s.write("break")
		if n.Name != nil {
			s.write(" " + n.Name.Value)
		}
		s.write(";")
	case *ast.CallExpression:
		gen(s.wrap(n.Operand))
		gen(s.wrap(n.Args))
	case *ast.CascadeExpression:
		gen(s.wrap(n.Operand))
		s.write(".{")
		genList(s, n.Expressions, "; ")
		s.write("}")
	case *ast.CaseClause:
		s.write("case ")
		gen(s.wrap(n.Expression))
		s.write(":")
		genClauseBody(s, n.Statements)
	case *ast.Catch:
		s.write("catch (")
		gen(s.wrap(n.Binding))
		s.write(") ")
		gen(s.wrap(n.CatchBody))
	case *ast.ClassDeclaration:
		s.write("class ")
		gen(s.wrap(n.Name))
		genClassTail(s, n.SuperClass, n.Elements)
	case *ast.ClassExpression:
		s.write("class")
		if n.Name != nil {
			s.write(" ")
			gen(s.wrap(n.Name))
		}
		genClassTail(s, n.SuperClass, n.Elements)
	case *ast.CommaExpression:
		genList(s, n.Expressions, ", ")
	case *ast.ConditionalExpression:
		gen(s.wrap(n.Condition))
		s.write(" ? ")
		gen(s.wrap(n.Left))
		s.write(" : ")
		gen(s.wrap(n.Right))
	case *ast.ContinueStatement:
		s.write("continue")
		if n.Name != nil {
			s.write(" " + n.Name.Value)
		}
		s.write(";")
	case *ast.DebuggerStatement:
		s.write("debugger;")
	case *ast.DefaultClause:
		s.write("default:")
		genClauseBody(s, n.Statements)
	case *ast.DoWhileStatement:
		s.write("do ")
		gen(s.wrap(n.Body))
		s.write(" while (")
		gen(s.wrap(n.Condition))
		s.write(");")
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression))
		s.write(";")
	case *ast.Finally:
		s.write("finally ")
		gen(s.wrap(n.Block))
	case *ast.ForInStatement:
		s.write("for (")
		gen(s.wrap(n.Initializer))
		s.write(" in ")
		gen(s.wrap(n.Collection))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.ForOfStatement:
		s.write("for (")
		gen(s.wrap(n.Initializer))
		s.write(" of ")
		gen(s.wrap(n.Collection))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.ForStatement:
		s.write("for (")
		gen(s.wrap(n.Initializer))
		s.write(";")
		if n.Condition != nil {
			s.write(" ")
			gen(s.wrap(n.Condition))
		}
		s.write(";")
		if n.Increment != nil {
			s.write(" ")
			gen(s.wrap(n.Increment))
		}
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.FormalParameterList:
		genList(s, n.Parameters, ", ")
	case *ast.FunctionDeclaration:
		s.write("function")
		if n.IsGenerator {
			s.write("*")
		}
		s.write(" ")
		gen(s.wrap(n.Name))
		genFunctionTail(s, n.Parameters, n.Body)
	case *ast.FunctionExpression:
		s.write("function")
		if n.IsGenerator {
			s.write("*")
		}
		if n.Name != nil {
			s.write(" ")
			gen(s.wrap(n.Name))
		}
		genFunctionTail(s, n.Parameters, n.Body)
	case *ast.GetAccessor:
		if n.IsStatic {
			s.write("static ")
		}
		s.write("get " + n.Name.Value + "() ")
		gen(s.wrap(n.Body))
	case *ast.IdentifierExpression:
		s.write(n.Token.Value)
	case *ast.IfStatement:
		s.write("if (")
		gen(s.wrap(n.Condition))
		s.write(") ")
		gen(s.wrap(n.IfClause))
		if n.ElseClause != nil {
			s.write(" else ")
			gen(s.wrap(n.ElseClause))
		}
	case *ast.LabelledStatement:
		s.write(n.Name.Value + ": ")
		gen(s.wrap(n.Statement))
	case *ast.LiteralExpression:
		s.write(n.Token.Value)
	case *ast.MemberExpression:
		gen(s.wrap(n.Operand))
		s.write("." + n.MemberName.Value)
	case *ast.MemberLookupExpression:
		gen(s.wrap(n.Operand))
		s.write("[")
		gen(s.wrap(n.MemberExpression))
		s.write("]")
	case *ast.NewExpression:
		s.write("new ")
		gen(s.wrap(n.Operand))
		if n.Args != nil {
			gen(s.wrap(n.Args))
		}
	case *ast.ObjectLiteralExpression:
		if len(n.Properties) == 0 {
			s.write("{}")
			break
		}
		s.write("{")
		s.indent++
		for i, p := range n.Properties {
			s.lineAndPad()
			gen(s.wrap(p))
			if i < len(n.Properties)-1 {
				s.write(",")
			}
		}
		s.indent--
		s.lineAndPad()
		s.write("}")
	case *ast.ObjectPattern:
		s.write("{")
		genList(s, n.Fields, ", ")
		s.write("}")
	case *ast.ObjectPatternField:
		s.write(n.Name.Value + ": ")
		gen(s.wrap(n.Element))
	case *ast.ParenExpression:
		s.write("(")
		gen(s.wrap(n.Expression))
		s.write(")")
	case *ast.PostfixExpression:
		gen(s.wrap(n.Operand))
		s.write(n.Operator.Value)
	case *ast.Program:
		for _, st := range n.Elements {
			gen(s.wrap(st))
			s.line()
		}
	case *ast.PropertyMethodAssignment:
		if n.IsStatic {
			s.write("static ")
		}
		if n.IsGenerator {
			s.write("*")
		}
		s.write(n.Name.Value)
		genFunctionTail(s, n.Parameters, n.Body)
	case *ast.PropertyNameAssignment:
		s.write(n.Name.Value + ": ")
		gen(s.wrap(n.Value))
	case *ast.RestParameter:
		s.write("...")
		gen(s.wrap(n.Identifier))
	case *ast.ReturnStatement:
		s.write("return")
		if n.Expression != nil {
			s.write(" ")
			gen(s.wrap(n.Expression))
		}
		s.write(";")
	case *ast.SetAccessor:
		if n.IsStatic {
			s.write("static ")
		}
		s.write("set " + n.Name.Value + "(")
		gen(s.wrap(n.Parameter))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.SpreadExpression:
		s.write("...")
		gen(s.wrap(n.Expression))
	case *ast.SpreadPatternElement:
		s.write("...")
		gen(s.wrap(n.LValue))
	case *ast.SwitchStatement:
		s.write("switch (")
		gen(s.wrap(n.Expression))
		s.write(") {")
		s.indent++
		for _, c := range n.CaseClauses {
			s.lineAndPad()
			gen(s.wrap(c))
		}
		s.indent--
		if len(n.CaseClauses) > 0 {
			s.lineAndPad()
		}
		s.write("}")
	case *ast.ThisExpression:
		s.write("this")
	case *ast.ThrowStatement:
		s.write("throw ")
		gen(s.wrap(n.Value))
		s.write(";")
	case *ast.TryStatement:
		s.write("try ")
		gen(s.wrap(n.Body))
		if n.CatchBlock != nil {
			s.write(" ")
			gen(s.wrap(n.CatchBlock))
		}
		if n.FinallyBlock != nil {
			s.write(" ")
			gen(s.wrap(n.FinallyBlock))
		}
	case *ast.UnaryExpression:
		s.write(n.Operator.Value)
		if n.Operator.Type.IsKeyword() {
			s.write(" ")
		}
		gen(s.wrap(n.Operand))
	case *ast.VariableDeclaration:
		gen(s.wrap(n.LValue))
		if n.Initializer != nil {
			s.write(" = ")
			gen(s.wrap(n.Initializer))
		}
	case *ast.VariableDeclarationList:
		s.write(n.DeclarationType.String() + " ")
		genList(s, n.Declarations, ", ")
	case *ast.VariableStatement:
		gen(s.wrap(n.Declarations))
		s.write(";")
	case *ast.WhileStatement:
		s.write("while (")
		gen(s.wrap(n.Condition))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.WithStatement:
		s.write("with (")
		gen(s.wrap(n.Expression))
		s.write(") ")
		gen(s.wrap(n.Body))
	case *ast.YieldExpression:
		s.write("yield")
		if n.IsYieldFor {
			s.write("*")
		}
		if n.Expression != nil {
			s.write(" ")
			gen(s.wrap(n.Expression))
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genList[T ast.Node](s *state, list []T, sep string) {
	for i, n := range list {
		if i > 0 {
			s.write(sep)
		}
		gen(s.wrap(n))
	}
}

func genBody(s *state, stmts []ast.Statement) {
	if len(stmts) == 0 {
		s.write("{}")
		return
	}
	s.write("{")
	s.indent++
	for _, st := range stmts {
		s.lineAndPad()
		gen(s.wrap(st))
	}
	s.indent--
	s.lineAndPad()
	s.write("}")
}

func genClauseBody(s *state, stmts []ast.Statement) {
	s.indent++
	for _, st := range stmts {
		s.lineAndPad()
		gen(s.wrap(st))
	}
	s.indent--
}

func genFunctionTail(s *state, params *ast.FormalParameterList, body *ast.Block) {
	s.write("(")
	gen(s.wrap(params))
	s.write(") ")
	gen(s.wrap(body))
}

func genClassTail(s *state, superClass ast.Expression, elements []ast.ClassElement) {
	if superClass != nil {
		s.write(" extends ")
		gen(s.wrap(superClass))
	}
	s.write(" {")
	if len(elements) == 0 {
		s.write("}")
		return
	}
	s.indent++
	for _, e := range elements {
		s.lineAndPad()
		gen(s.wrap(e))
	}
	s.indent--
	s.lineAndPad()
	s.write("}")
}
