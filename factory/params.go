package factory

import (
	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/predefined"
	"github.com/t14raptor/go-lower/token"
)

// ParamSource selects how ParameterList builds its parameters.
type ParamSource interface {
	int | string | *token.Token | []string
}

// ParameterList builds a parameter list from an arity, a single name, a
// single identifier token or a list of names. An arity n yields the
// positionally named parameters $0 through $n-1.
func ParameterList[T ParamSource](src T) *ast.FormalParameterList {
	switch v := any(src).(type) {
	case int:
		return positionalParameters(v, false)
	case string:
		return ParameterNames(v)
	case *token.Token:
		return FormalParameterList(BindingElement(v))
	}
	return ParameterNames(any(src).([]string)...)
}

// ParameterNames builds a parameter list with one plain parameter per name.
func ParameterNames(names ...string) *ast.FormalParameterList {
	params := make([]ast.Parameter, len(names))
	for i, name := range names {
		params[i] = BindingElement(name)
	}
	return &ast.FormalParameterList{Parameters: params}
}

// ParameterListWithRestParams builds n positionally named parameters, the
// last of which is a rest parameter.
func ParameterListWithRestParams(n int) *ast.FormalParameterList {
	return positionalParameters(n, true)
}

func positionalParameters(n int, rest bool) *ast.FormalParameterList {
	params := make([]ast.Parameter, 0, max(n, 0))
	for i := 0; i < n; i++ {
		name := predefined.ParameterName(i)
		if rest && i == n-1 {
			params = append(params, RestParameter(name))
		} else {
			params = append(params, BindingElement(name))
		}
	}
	return &ast.FormalParameterList{Parameters: params}
}

func EmptyParameterList() *ast.FormalParameterList {
	return &ast.FormalParameterList{Parameters: []ast.Parameter{}}
}

// ParameterReference refers to the index-th positional parameter by name.
func ParameterReference(index int) *ast.IdentifierExpression {
	return IdentifierExpression(predefined.ParameterName(index))
}

// ArgumentListFromParameterList builds the argument list that forwards
// every parameter of pl to another call. Plain parameters become
// references and a rest parameter becomes a spread of its reference.
//
// Destructuring parameters are forwarded as the pattern itself, not as the
// equivalent array or object literal, and default values are dropped.
func ArgumentListFromParameterList(pl *ast.FormalParameterList) *ast.ArgumentList {
	args := make([]ast.Expression, 0, len(pl.Parameters))
	for _, p := range pl.Parameters {
		switch p := p.(type) {
		case *ast.RestParameter:
			args = append(args, SpreadExpression(IdentifierExpression(p.Identifier)))
		case *ast.BindingElement:
			if id, ok := p.Binding.(*ast.BindingIdentifier); ok {
				args = append(args, IdentifierExpression(id))
			} else {
				args = append(args, p.Binding.(ast.Expression))
			}
		}
	}
	return &ast.ArgumentList{Args: args}
}

// ArgumentListOfArity forwards the n positional parameters $0 through $n-1.
func ArgumentListOfArity(n int) *ast.ArgumentList {
	return ArgumentListFromParameterList(ParameterList(n))
}

func FormalParameterList(params ...ast.Parameter) *ast.FormalParameterList {
	return &ast.FormalParameterList{Parameters: sequence(params)}
}

func FormalParameterListFromList(params []ast.Parameter) *ast.FormalParameterList {
	return &ast.FormalParameterList{Parameters: sequence(params)}
}

// BindingElement builds a parameter binding id with no default value.
func BindingElement[T IdentSource](id T) *ast.BindingElement {
	return &ast.BindingElement{Binding: BindingIdentifier(id)}
}

// BindingElementWithDefault builds a binding element for an identifier or
// pattern with an optional default value.
func BindingElementWithDefault[T LValueSource](target T, initializer ast.Expression) *ast.BindingElement {
	return &ast.BindingElement{Binding: lvalue(target), Initializer: initializer}
}

func RestParameter[T IdentSource](id T) *ast.RestParameter {
	return &ast.RestParameter{Identifier: BindingIdentifier(id)}
}
