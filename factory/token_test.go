package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/token"
)

func TestStringLiteralTokenRoundTrip(t *testing.T) {
	for _, v := range []string{
		"",
		"plain",
		`double "quotes"`,
		`single 'quotes'`,
		`back\slash`,
		"\x00\x01\x1f\x7f",
		"\b\f\n\r\t\v",
		"line\u2028para\u2029",
		"café \U0001F600",
	} {
		tok := StringLiteralToken(v)
		require.Equal(t, token.String, tok.Type)
		got, err := token.Unquote(tok.Value)
		require.NoError(t, err, "Unquote(%s)", tok.Value)
		assert.Equal(t, v, got)
	}
}

func TestPropertyNameToken(t *testing.T) {
	tests := []struct {
		name  string
		typ   token.Type
		value string
	}{
		{"foo", token.Identifier, "foo"},
		{"$state", token.Identifier, "$state"},
		{"class", token.Identifier, "class"},
		{"0", token.Number, "0"},
		{"1.5", token.Number, "1.5"},
		{"01", token.String, `"01"`},
		{"1e21", token.String, `"1e21"`},
		{"-1", token.String, `"-1"`},
		{"a-b", token.String, `"a-b"`},
		{"", token.String, `""`},
		{"caf\u00e9", token.Identifier, "caf\u00e9"},
		{"\u2e2f", token.String, "\"\u2e2f\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := PropertyNameToken(tt.name)
			assert.Equal(t, tt.typ, tok.Type)
			assert.Equal(t, tt.value, tok.Value)
		})
	}
}

func TestLiteralTokens(t *testing.T) {
	assert.Equal(t, "true", BooleanLiteralToken(true).Value)
	assert.Equal(t, token.True, BooleanLiteralToken(true).Type)
	assert.Equal(t, "false", BooleanLiteralToken(false).Value)
	assert.Equal(t, token.False, BooleanLiteralToken(false).Type)
	assert.Equal(t, "null", NullLiteralToken().Value)

	for v, want := range map[float64]string{
		0:      "0",
		1:      "1",
		0.5:    "0.5",
		-2:     "-2",
		1e21:   "1e+21",
		123456: "123456",
	} {
		assert.Equal(t, want, NumberLiteralToken(v).Value)
	}

	op := OperatorToken(token.Assign)
	assert.Equal(t, "=", op.Value)
	assert.True(t, op.IsSynthetic())
}

func TestTokensAreFresh(t *testing.T) {
	a, b := IdentifierToken("x"), IdentifierToken("x")
	assert.NotSame(t, a, b)
	assert.Equal(t, a, b)
}
