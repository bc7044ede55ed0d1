package factory

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/predefined"
)

// ScopedExpression wraps block in (function() { block }).call(this), giving
// the block its own function scope while keeping the receiver.
//
// The wrapped block does not behave like the original when it contains a
// return, or a break or continue that targets a statement outside of it,
// or when it refers to arguments. Callers only apply it where that cannot
// happen.
func ScopedExpression(block *ast.Block) *ast.CallExpression {
	return CallCall(
		ParenExpression(FunctionExpression(EmptyParameterList(), block)),
		ThisExpression(),
	)
}

// ScopedBlock is ScopedExpression as a statement.
func ScopedBlock(block *ast.Block) *ast.ExpressionStatement {
	return ExpressionStatement(ScopedExpression(block))
}

func ScopedStatements(stmts ...ast.Statement) *ast.ExpressionStatement {
	return ScopedBlock(BlockFromList(stmts))
}

func ScopedStatementsFromList(stmts []ast.Statement) *ast.ExpressionStatement {
	return ScopedBlock(BlockFromList(stmts))
}

// BoundCall builds fn.bind(this). A function expression callee is
// parenthesized first.
func BoundCall(fn, this ast.Expression) *ast.CallExpression {
	if f, ok := fn.(*ast.FunctionExpression); ok {
		fn = ParenExpression(f)
	}
	return CallExpression(MemberExpression(fn, predefined.Bind), ArgumentList(this))
}

// AssignStateStatement builds $state = state;, the transition step of a
// lowered generator's dispatch loop.
func AssignStateStatement(state int) *ast.ExpressionStatement {
	return AssignmentStatement(IdentifierExpression(predefined.State), NumberLiteral(float64(state)))
}

type (
	// DescriptorValue is the value of one property descriptor attribute:
	// a Flag or a Tree.
	DescriptorValue interface {
		expression() ast.Expression
	}

	// Flag is a boolean attribute such as enumerable.
	Flag bool

	tree struct {
		expr ast.Expression
	}

	DescriptorEntry struct {
		Key   string
		Value DescriptorValue
	}

	// Descriptor is an ordered list of property descriptor attributes.
	Descriptor []DescriptorEntry
)

func (f Flag) expression() ast.Expression { return BooleanLiteral(bool(f)) }
func (t tree) expression() ast.Expression { return t.expr }

// Tree wraps an expression used as an attribute value, such as a getter.
func Tree(expr ast.Expression) DescriptorValue {
	return tree{expr: expr}
}

var descriptorOrder = []string{
	predefined.Value,
	predefined.Get,
	predefined.Set,
	predefined.Writable,
	predefined.Enumerable,
	predefined.Configurable,
}

// DescriptorFromMap orders the attributes of m: the standard attributes
// first in the order value, get, set, writable, enumerable, configurable,
// then any other keys sorted. Values must not be nil.
func DescriptorFromMap(m map[string]DescriptorValue) Descriptor {
	d := make(Descriptor, 0, len(m))
	for _, key := range descriptorOrder {
		if v, ok := m[key]; ok {
			d = append(d, DescriptorEntry{Key: key, Value: v})
		}
	}
	rest := maps.Keys(m)
	slices.Sort(rest)
	for _, key := range rest {
		if !slices.Contains(descriptorOrder, key) {
			d = append(d, DescriptorEntry{Key: key, Value: m[key]})
		}
	}
	return d
}

// PropertyDescriptor builds the object literal for d. Flags become boolean
// literals and trees are used unchanged. It panics if an entry's Value is
// nil.
func PropertyDescriptor(d Descriptor) *ast.ObjectLiteralExpression {
	props := make([]ast.Property, len(d))
	for i, e := range d {
		props[i] = PropertyNameAssignment(e.Key, e.Value.expression())
	}
	return ObjectLiteralExpressionFromList(props)
}

// DefineProperty builds Object.defineProperty(target, "name", descriptor).
func DefineProperty(target ast.Expression, name string, d Descriptor) *ast.CallExpression {
	return DefinePropertyKey(target, StringLiteral(name), d)
}

// DefinePropertyKey is DefineProperty with a computed key.
func DefinePropertyKey(target, key ast.Expression, d Descriptor) *ast.CallExpression {
	return CallExpression(
		MemberPath(predefined.Object, predefined.DefineProperty),
		ArgumentList(target, key, PropertyDescriptor(d)),
	)
}
