package factory

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/predefined"
	"github.com/t14raptor/go-lower/token"
)

func ArgumentList(args ...ast.Expression) *ast.ArgumentList {
	return &ast.ArgumentList{Args: sequence(args)}
}

func ArgumentListFromList(args []ast.Expression) *ast.ArgumentList {
	return &ast.ArgumentList{Args: sequence(args)}
}

func EmptyArgumentList() *ast.ArgumentList {
	return ArgumentList()
}

// ArrayLiteralExpression builds an array literal. A nil element is an elision.
func ArrayLiteralExpression(elems ...ast.Expression) *ast.ArrayLiteralExpression {
	return &ast.ArrayLiteralExpression{Elements: sequence(elems)}
}

func ArrayLiteralExpressionFromList(elems []ast.Expression) *ast.ArrayLiteralExpression {
	return &ast.ArrayLiteralExpression{Elements: sequence(elems)}
}

func EmptyArrayLiteralExpression() *ast.ArrayLiteralExpression {
	return ArrayLiteralExpression()
}

func ArrayPattern(elems ...ast.Node) *ast.ArrayPattern {
	return &ast.ArrayPattern{Elements: sequence(elems)}
}

// AssignmentExpression builds lhs = rhs.
func AssignmentExpression(lhs, rhs ast.Expression) *ast.BinaryOperator {
	return BinaryOperator(lhs, OperatorToken(token.Assign), rhs)
}

func BinaryOperator(left ast.Expression, operator *token.Token, right ast.Expression) *ast.BinaryOperator {
	return &ast.BinaryOperator{Left: left, Operator: operator, Right: right}
}

// CallExpression builds operand(args). A nil args is an empty argument list.
func CallExpression(operand ast.Expression, args *ast.ArgumentList) *ast.CallExpression {
	if args == nil {
		args = EmptyArgumentList()
	}
	return &ast.CallExpression{Operand: operand, Args: args}
}

// CallCall builds fn.call(this, args...).
func CallCall(fn, this ast.Expression, args ...ast.Expression) *ast.CallExpression {
	list := make([]ast.Expression, 0, len(args)+1)
	list = append(list, this)
	list = append(list, args...)
	return CallExpression(MemberExpression(fn, predefined.Call), ArgumentListFromList(list))
}

func CascadeExpression(operand ast.Expression, exprs ...ast.Expression) *ast.CascadeExpression {
	return &ast.CascadeExpression{Operand: operand, Expressions: sequence(exprs)}
}

func CommaExpression(exprs ...ast.Expression) *ast.CommaExpression {
	return &ast.CommaExpression{Expressions: sequence(exprs)}
}

func CommaExpressionFromList(exprs []ast.Expression) *ast.CommaExpression {
	return &ast.CommaExpression{Expressions: sequence(exprs)}
}

func ConditionalExpression(condition, left, right ast.Expression) *ast.ConditionalExpression {
	return &ast.ConditionalExpression{Condition: condition, Left: left, Right: right}
}

// FunctionExpression builds an anonymous, non-generator function expression.
func FunctionExpression(params *ast.FormalParameterList, body *ast.Block) *ast.FunctionExpression {
	return &ast.FunctionExpression{Parameters: params, Body: body}
}

func GeneratorExpression(params *ast.FormalParameterList, body *ast.Block) *ast.FunctionExpression {
	return &ast.FunctionExpression{IsGenerator: true, Parameters: params, Body: body}
}

// ArrowFunctionExpression builds (params) => body. body is a *ast.Block or
// an ast.Expression.
func ArrowFunctionExpression(params *ast.FormalParameterList, body ast.Node) *ast.ArrowFunctionExpression {
	return &ast.ArrowFunctionExpression{Parameters: params, Body: body}
}

// UndefinedExpression refers to the global undefined.
func UndefinedExpression() *ast.IdentifierExpression {
	return IdentifierExpression(predefined.Undefined)
}

// Void0 builds (void 0), which evaluates to undefined even where the name
// undefined is shadowed.
func Void0() *ast.ParenExpression {
	return ParenExpression(UnaryExpression(OperatorToken(token.Void), NumberLiteral(0)))
}

func LiteralExpression(tok *token.Token) *ast.LiteralExpression {
	return &ast.LiteralExpression{Token: tok}
}

func StringLiteral(v string) *ast.LiteralExpression {
	return LiteralExpression(StringLiteralToken(v))
}

func BooleanLiteral(v bool) *ast.LiteralExpression {
	return LiteralExpression(BooleanLiteralToken(v))
}

func TrueLiteral() *ast.LiteralExpression  { return BooleanLiteral(true) }
func FalseLiteral() *ast.LiteralExpression { return BooleanLiteral(false) }

func NullLiteral() *ast.LiteralExpression {
	return LiteralExpression(NullLiteralToken())
}

func NumberLiteral(v float64) *ast.LiteralExpression {
	return LiteralExpression(NumberLiteralToken(v))
}

// MemberExpression builds operand.name, followed by one further member
// access for each of names: MemberExpression(x, "a", "b") is x.a.b.
func MemberExpression(operand ast.Expression, name string, names ...string) *ast.MemberExpression {
	tree := MemberExpressionToken(operand, IdentifierToken(name))
	for _, n := range names {
		tree = MemberExpressionToken(tree, IdentifierToken(n))
	}
	return tree
}

func MemberExpressionToken(operand ast.Expression, name *token.Token) *ast.MemberExpression {
	return &ast.MemberExpression{Operand: operand, MemberName: name}
}

// MemberPath builds root.name.names... starting from the identifier root.
func MemberPath(root, name string, names ...string) *ast.MemberExpression {
	return MemberExpression(IdentifierExpression(root), name, names...)
}

func MemberLookupExpression(operand, member ast.Expression) *ast.MemberLookupExpression {
	return &ast.MemberLookupExpression{Operand: operand, MemberExpression: member}
}

// NewExpression builds new operand(args). A nil args omits the parentheses.
func NewExpression(operand ast.Expression, args *ast.ArgumentList) *ast.NewExpression {
	return &ast.NewExpression{Operand: operand, Args: args}
}

func ObjectLiteralExpression(props ...ast.Property) *ast.ObjectLiteralExpression {
	return &ast.ObjectLiteralExpression{Properties: sequence(props)}
}

func ObjectLiteralExpressionFromList(props []ast.Property) *ast.ObjectLiteralExpression {
	return &ast.ObjectLiteralExpression{Properties: sequence(props)}
}

func ObjectPattern(fields ...ast.Node) *ast.ObjectPattern {
	return &ast.ObjectPattern{Fields: sequence(fields)}
}

// ObjectPatternField builds name: element inside an object pattern.
func ObjectPatternField[T NameSource](name T, element ast.Node) *ast.ObjectPatternField {
	return &ast.ObjectPatternField{Name: propertyName(name), Element: element}
}

func ParenExpression(expr ast.Expression) *ast.ParenExpression {
	return &ast.ParenExpression{Expression: expr}
}

func PostfixExpression(operand ast.Expression, operator *token.Token) *ast.PostfixExpression {
	return &ast.PostfixExpression{Operand: operand, Operator: operator}
}

func SpreadExpression(expr ast.Expression) *ast.SpreadExpression {
	return &ast.SpreadExpression{Expression: expr}
}

func SpreadPatternElement(lvalue ast.Node) *ast.SpreadPatternElement {
	return &ast.SpreadPatternElement{LValue: lvalue}
}

func ThisExpression() *ast.ThisExpression {
	return &ast.ThisExpression{}
}

// ThisMember builds this.name.
func ThisMember(name string) *ast.MemberExpression {
	return MemberExpression(ThisExpression(), name)
}

func UnaryExpression(operator *token.Token, operand ast.Expression) *ast.UnaryExpression {
	return &ast.UnaryExpression{Operator: operator, Operand: operand}
}

// YieldExpression builds yield expr, or yield* expr when isYieldFor is set.
// expr may be nil.
func YieldExpression(expr ast.Expression, isYieldFor bool) *ast.YieldExpression {
	return &ast.YieldExpression{Expression: expr, IsYieldFor: isYieldFor}
}

// ObjectFreeze builds Object.freeze(value).
func ObjectFreeze(value ast.Expression) *ast.CallExpression {
	return CallExpression(MemberPath(predefined.Object, predefined.Freeze), ArgumentList(value))
}

// ObjectPreventExtensions builds Object.preventExtensions(value).
func ObjectPreventExtensions(value ast.Expression) *ast.CallExpression {
	return CallExpression(MemberPath(predefined.Object, predefined.PreventExtensions), ArgumentList(value))
}

// ObjectCreate builds Object.create(proto, descriptors). A nil descriptors
// is omitted.
func ObjectCreate(proto, descriptors ast.Expression) *ast.CallExpression {
	args := ArgumentList(proto)
	if descriptors != nil {
		args.Args = append(args.Args, descriptors)
	}
	return CallExpression(MemberPath(predefined.Object, predefined.Create), args)
}
