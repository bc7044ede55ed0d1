package ast

import "github.com/t14raptor/go-lower/token"

// Children returns the node's non-nil children in source order.
func Children(n Node) []Node {
	var c []Node
	switch n := n.(type) {
	case *ArgumentList:
		c = appendAll(c, n.Args)
	case *ArrayLiteralExpression:
		c = appendAll(c, n.Elements)
	case *ArrayPattern:
		c = appendAll(c, n.Elements)
	case *ArrowFunctionExpression:
		c = append(c, n.Parameters)
		c = appendOne(c, n.Body)
	case *BinaryOperator:
		c = append(c, n.Left, n.Right)
	case *BindingElement:
		c = append(c, n.Binding)
		c = appendOne(c, n.Initializer)
	case *BindingIdentifier:
	case *Block:
		c = appendAll(c, n.Statements)
	case *BreakStatement:
	case *CallExpression:
		c = append(c, n.Operand, n.Args)
	case *CascadeExpression:
		c = append(c, n.Operand)
		c = appendAll(c, n.Expressions)
	case *CaseClause:
		c = append(c, n.Expression)
		c = appendAll(c, n.Statements)
	case *Catch:
		c = append(c, n.Binding, n.CatchBody)
	case *ClassDeclaration:
		c = append(c, n.Name)
		c = appendOne(c, n.SuperClass)
		c = appendAll(c, n.Elements)
	case *ClassExpression:
		if n.Name != nil {
			c = append(c, n.Name)
		}
		c = appendOne(c, n.SuperClass)
		c = appendAll(c, n.Elements)
	case *CommaExpression:
		c = appendAll(c, n.Expressions)
	case *ConditionalExpression:
		c = append(c, n.Condition, n.Left, n.Right)
	case *ContinueStatement:
	case *DebuggerStatement:
	case *DefaultClause:
		c = appendAll(c, n.Statements)
	case *DoWhileStatement:
		c = append(c, n.Body, n.Condition)
	case *EmptyStatement:
	case *ExpressionStatement:
		c = append(c, n.Expression)
	case *Finally:
		c = append(c, n.Block)
	case *ForInStatement:
		c = append(c, n.Initializer, n.Collection, n.Body)
	case *ForOfStatement:
		c = append(c, n.Initializer, n.Collection, n.Body)
	case *ForStatement:
		c = appendOne(c, n.Initializer)
		c = appendOne(c, n.Condition)
		c = appendOne(c, n.Increment)
		c = append(c, n.Body)
	case *FormalParameterList:
		c = appendAll(c, n.Parameters)
	case *FunctionDeclaration:
		c = append(c, n.Name, n.Parameters, n.Body)
	case *FunctionExpression:
		if n.Name != nil {
			c = append(c, n.Name)
		}
		c = append(c, n.Parameters, n.Body)
	case *GetAccessor:
		c = append(c, n.Body)
	case *IdentifierExpression:
	case *IfStatement:
		c = append(c, n.Condition, n.IfClause)
		c = appendOne(c, n.ElseClause)
	case *LabelledStatement:
		c = append(c, n.Statement)
	case *LiteralExpression:
	case *MemberExpression:
		c = append(c, n.Operand)
	case *MemberLookupExpression:
		c = append(c, n.Operand, n.MemberExpression)
	case *NewExpression:
		c = append(c, n.Operand)
		if n.Args != nil {
			c = append(c, n.Args)
		}
	case *ObjectLiteralExpression:
		c = appendAll(c, n.Properties)
	case *ObjectPattern:
		c = appendAll(c, n.Fields)
	case *ObjectPatternField:
		c = append(c, n.Element)
	case *ParenExpression:
		c = append(c, n.Expression)
	case *PostfixExpression:
		c = append(c, n.Operand)
	case *Program:
		c = appendAll(c, n.Elements)
	case *PropertyMethodAssignment:
		c = append(c, n.Parameters, n.Body)
	case *PropertyNameAssignment:
		c = append(c, n.Value)
	case *RestParameter:
		c = append(c, n.Identifier)
	case *ReturnStatement:
		c = appendOne(c, n.Expression)
	case *SetAccessor:
		c = append(c, n.Parameter, n.Body)
	case *SpreadExpression:
		c = append(c, n.Expression)
	case *SpreadPatternElement:
		c = append(c, n.LValue)
	case *SwitchStatement:
		c = append(c, n.Expression)
		c = appendAll(c, n.CaseClauses)
	case *ThisExpression:
	case *ThrowStatement:
		c = append(c, n.Value)
	case *TryStatement:
		c = append(c, n.Body)
		if n.CatchBlock != nil {
			c = append(c, n.CatchBlock)
		}
		if n.FinallyBlock != nil {
			c = append(c, n.FinallyBlock)
		}
	case *UnaryExpression:
		c = append(c, n.Operand)
	case *VariableDeclaration:
		c = append(c, n.LValue)
		c = appendOne(c, n.Initializer)
	case *VariableDeclarationList:
		c = appendAll(c, n.Declarations)
	case *VariableStatement:
		c = append(c, n.Declarations)
	case *WhileStatement:
		c = append(c, n.Condition, n.Body)
	case *WithStatement:
		c = append(c, n.Expression, n.Body)
	case *YieldExpression:
		c = appendOne(c, n.Expression)
	}
	return c
}

// Tokens returns the tokens held directly by n, in source order.
func Tokens(n Node) []*token.Token {
	var t *token.Token
	switch n := n.(type) {
	case *BinaryOperator:
		t = n.Operator
	case *BindingIdentifier:
		t = n.Token
	case *BreakStatement:
		t = n.Name
	case *ContinueStatement:
		t = n.Name
	case *GetAccessor:
		t = n.Name
	case *IdentifierExpression:
		t = n.Token
	case *LabelledStatement:
		t = n.Name
	case *LiteralExpression:
		t = n.Token
	case *MemberExpression:
		t = n.MemberName
	case *ObjectPatternField:
		t = n.Name
	case *PostfixExpression:
		t = n.Operator
	case *PropertyMethodAssignment:
		t = n.Name
	case *PropertyNameAssignment:
		t = n.Name
	case *SetAccessor:
		t = n.Name
	case *UnaryExpression:
		t = n.Operator
	}
	if t == nil {
		return nil
	}
	return []*token.Token{t}
}

func appendOne(c []Node, n Node) []Node {
	if n == nil {
		return c
	}
	return append(c, n)
}

func appendAll[T Node](c []Node, list []T) []Node {
	for _, n := range list {
		c = appendOne(c, n)
	}
	return c
}
