package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/factory"
	"github.com/t14raptor/go-lower/token"
)

func sample() ast.Node {
	return factory.Program(
		factory.UseStrictDirective(),
		factory.VariableStatement(token.Let, "xs", factory.ArrayLiteralExpression(factory.NumberLiteral(1), nil)),
		factory.ScopedStatements(factory.AssignStateStatement(2)),
		factory.ExpressionStatement(factory.GeneratorExpression(factory.ParameterListWithRestParams(2), factory.EmptyBlock())),
	)
}

func TestDump(t *testing.T) {
	e := Dump(factory.AssignStateStatement(4))
	want := &Entry{
		Kind: "ExpressionStatement",
		Fields: []Field{{Name: "Expression", Node: &Entry{
			Kind: "BinaryOperator",
			Fields: []Field{
				{Name: "Left", Node: &Entry{Kind: "IdentifierExpression", Fields: []Field{
					{Name: "Token", Token: &Token{Type: "Identifier", Value: "$state"}},
				}}},
				{Name: "Operator", Token: &Token{Type: "=", Value: "="}},
				{Name: "Right", Node: &Entry{Kind: "LiteralExpression", Fields: []Field{
					{Name: "Token", Token: &Token{Type: "Number", Value: "4"}},
				}}},
			},
		}}},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, Dump(nil))
}

func TestDumpFlagsAndElisions(t *testing.T) {
	e := Dump(factory.VariableDeclarationListOf(token.Const, factory.VariableDeclaration("x", nil)))
	require.Len(t, e.Fields, 2)
	assert.Equal(t, Field{Name: "DeclarationType", Value: "const"}, e.Fields[0])

	arr := Dump(factory.ArrayLiteralExpression(nil, factory.NullLiteral()))
	require.Len(t, arr.Fields[0].List, 2)
	assert.Nil(t, arr.Fields[0].List[0])

	gen := Dump(factory.GeneratorExpression(factory.EmptyParameterList(), factory.EmptyBlock()))
	assert.Equal(t, Field{Name: "IsGenerator", Value: "true"}, gen.Fields[1])
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(sample())
	require.NoError(t, err)
	b, err := Fingerprint(sample())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	clone, err := Fingerprint(ast.Clone(sample()))
	require.NoError(t, err)
	assert.Equal(t, a, clone)

	other, err := Fingerprint(factory.AssignStateStatement(3))
	require.NoError(t, err)
	state, err := Fingerprint(factory.AssignStateStatement(4))
	require.NoError(t, err)
	assert.NotEqual(t, other, state)
}

func TestFingerprintDistinguishesSlots(t *testing.T) {
	c := factory.IdentifierExpression("c")
	body := factory.EmptyStatement()
	a, err := FingerprintHex(factory.ForStatement(nil, c, nil, body))
	require.NoError(t, err)
	b, err := FingerprintHex(factory.ForStatement(nil, nil, c, body))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprintIgnoresLocations(t *testing.T) {
	loc := &token.Range{Start: token.Position{Line: 3, Column: 1}}
	parsed := factory.ThisExpression()
	parsed.Location = loc

	a, err := Fingerprint(parsed)
	require.NoError(t, err)
	b, err := Fingerprint(factory.ThisExpression())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCBORRoundTrip(t *testing.T) {
	data, err := MarshalCBOR(sample())
	require.NoError(t, err)
	again, err := MarshalCBOR(sample())
	require.NoError(t, err)
	assert.Equal(t, data, again)

	got, err := UnmarshalCBOR(data)
	require.NoError(t, err)
	if diff := cmp.Diff(Dump(sample()), got); diff != "" {
		t.Errorf("decoded snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestTextFormats(t *testing.T) {
	js, err := MarshalJSON(factory.ThisExpression())
	require.NoError(t, err)
	var fromJSON Entry
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	assert.Equal(t, "ThisExpression", fromJSON.Kind)

	y, err := MarshalYAML(factory.AssignStateStatement(1))
	require.NoError(t, err)
	assert.Contains(t, string(y), "kind: ExpressionStatement")
	var fromYAML Entry
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	if diff := cmp.Diff(*Dump(factory.AssignStateStatement(1)), fromYAML); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
}
