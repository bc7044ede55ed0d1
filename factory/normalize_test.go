package factory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

func TestBindingIdentifierSources(t *testing.T) {
	tok := IdentifierToken("x")
	binding := &ast.BindingIdentifier{Token: tok}
	ref := &ast.IdentifierExpression{Token: tok}

	for name, got := range map[string]*ast.BindingIdentifier{
		"string":    BindingIdentifier("x"),
		"token":     BindingIdentifier(tok),
		"binding":   BindingIdentifier(binding),
		"reference": BindingIdentifier(ref),
	} {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, got.Token)
			assert.Equal(t, "x", got.Token.Value)
			assert.Equal(t, token.Identifier, got.Token.Type)
		})
	}

	assert.Same(t, binding, BindingIdentifier(binding))
	assert.Same(t, tok, BindingIdentifier(ref).Token)
	assert.Same(t, tok, BindingIdentifier(tok).Token)
}

func TestIdentifierExpressionSources(t *testing.T) {
	tok := IdentifierToken("y")
	binding := &ast.BindingIdentifier{Token: tok}
	ref := &ast.IdentifierExpression{Token: tok}

	assert.Equal(t, "y", IdentifierExpression("y").Token.Value)
	assert.Same(t, tok, IdentifierExpression(tok).Token)
	assert.Same(t, tok, IdentifierExpression(binding).Token)
	assert.Same(t, ref, IdentifierExpression(ref))
}

func roundTrip[T IdentSource](t *testing.T, src T) {
	t.Helper()
	direct := IdentifierExpression(src)
	via := IdentifierExpression(BindingIdentifier(src).Token)
	if diff := cmp.Diff(direct, via); diff != "" {
		t.Errorf("round trip mismatch (-direct +via):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	roundTrip(t, "name")
	roundTrip(t, IdentifierToken("name"))
	roundTrip(t, BindingIdentifier("name"))
	roundTrip(t, IdentifierExpression("name"))
}

func TestRoundTripLocated(t *testing.T) {
	loc := &token.Range{Start: token.Position{Line: 3, Column: 5}}
	tok := &token.Token{Type: token.Identifier, Value: "x", Location: loc}
	ref := &ast.IdentifierExpression{Loc: ast.Loc{Location: loc}, Token: tok}

	binding := BindingIdentifier(ref)
	assert.Same(t, loc, binding.Range())
	assert.Same(t, tok, binding.Token)

	via := IdentifierExpression(binding.Token)
	assert.Equal(t, ref.Token.Value, via.Token.Value)
	assert.Same(t, tok, via.Token)
	assert.Nil(t, via.Range())

	back := IdentifierExpression(binding)
	assert.Same(t, loc, back.Range())
}

func TestLValue(t *testing.T) {
	array := ArrayPattern(BindingElement("a"))
	object := ObjectPattern(ObjectPatternField("k", BindingElement("v")))

	assert.Same(t, array, VariableDeclaration(array, nil).LValue)
	assert.Same(t, object, VariableDeclaration(object, nil).LValue)
	assert.Same(t, object, Catch(object, EmptyBlock()).Binding)

	decl := VariableDeclaration(IdentifierExpression("z"), NumberLiteral(1))
	b, ok := decl.LValue.(*ast.BindingIdentifier)
	require.True(t, ok)
	assert.Equal(t, "z", b.Token.Value)
}

func TestNames(t *testing.T) {
	label := IdentifierToken("outer")
	assert.Same(t, label, LabelledStatement(label, EmptyStatement()).Name)
	assert.Equal(t, "outer", LabelledStatement("outer", EmptyStatement()).Name.Value)

	field := ObjectPatternField("my-key", BindingElement("v"))
	assert.Equal(t, token.String, field.Name.Type)
	assert.Equal(t, `"my-key"`, field.Name.Value)
}
