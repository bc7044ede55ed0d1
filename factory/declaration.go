package factory

import (
	"github.com/t14raptor/go-lower/ast"
)

func FunctionDeclaration[T IdentSource](name T, params *ast.FormalParameterList, body *ast.Block) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{Name: BindingIdentifier(name), Parameters: params, Body: body}
}

func GeneratorDeclaration[T IdentSource](name T, params *ast.FormalParameterList, body *ast.Block) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{Name: BindingIdentifier(name), IsGenerator: true, Parameters: params, Body: body}
}

// ClassDeclaration builds class name extends superClass { elements }.
// superClass may be nil.
func ClassDeclaration[T IdentSource](name T, superClass ast.Expression, elements ...ast.ClassElement) *ast.ClassDeclaration {
	return &ast.ClassDeclaration{Name: BindingIdentifier(name), SuperClass: superClass, Elements: sequence(elements)}
}

// ClassExpression builds an anonymous class expression.
func ClassExpression(superClass ast.Expression, elements ...ast.ClassElement) *ast.ClassExpression {
	return &ast.ClassExpression{SuperClass: superClass, Elements: sequence(elements)}
}

// PropertyNameAssignment builds name: value. String names follow
// PropertyNameToken.
func PropertyNameAssignment[T NameSource](name T, value ast.Expression) *ast.PropertyNameAssignment {
	return &ast.PropertyNameAssignment{Name: propertyName(name), Value: value}
}

func PropertyMethodAssignment[T NameSource](name T, params *ast.FormalParameterList, body *ast.Block) *ast.PropertyMethodAssignment {
	return &ast.PropertyMethodAssignment{Name: propertyName(name), Parameters: params, Body: body}
}

// GetAccessor builds get name() body.
func GetAccessor[T NameSource](name T, body *ast.Block) *ast.GetAccessor {
	return &ast.GetAccessor{Name: propertyName(name), Body: body}
}

// SetAccessor builds set name(param) body.
func SetAccessor[T NameSource, P IdentSource](name T, param P, body *ast.Block) *ast.SetAccessor {
	return &ast.SetAccessor{Name: propertyName(name), Parameter: BindingIdentifier(param), Body: body}
}
