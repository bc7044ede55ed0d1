package diag

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-lower/token"
)

type loc string

func (l loc) String() string { return string(l) }

func quietReporter(buf *bytes.Buffer) *Reporter {
	return NewReporter(WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		text string
		args []any
		want string
	}{
		{"placeholders", loc("<loc>"), "%s and %%", []any{"x"}, "<loc>: x and %"},
		{"no location", nil, "%s=%s", []any{"a", 1}, "a=1"},
		{"empty location", loc(""), "plain", nil, "plain"},
		{"excess placeholder", nil, "%s %s", []any{"only"}, "only %s"},
		{"unknown placeholder", nil, "%d%x %s", []any{"v"}, "%d%x v"},
		{"trailing percent", nil, "100%", nil, "100%"},
		{"unused args", nil, "none", []any{"x"}, "none"},
		{"nil range", (*token.Range)(nil), "m", nil, "m"},
		{"range", &token.Range{Start: token.Position{Source: "f.js", Line: 2, Column: 5}}, "bad %s", []any{"token"}, "f.js:2:5: bad token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.loc, tt.text, tt.args...))
		})
	}
}

func TestHadErrorLifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := quietReporter(&buf)

	assert.False(t, r.HadError())

	r.ReportWarning(nil, "just a %s", "warning")
	assert.False(t, r.HadError())

	r.ReportError(loc("a.js:1:1"), "broken")
	assert.True(t, r.HadError())

	r.ReportWarning(nil, "another")
	assert.True(t, r.HadError())

	r.ClearError()
	assert.False(t, r.HadError())
	assert.Len(t, r.Diagnostics(), 3)
}

func TestDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	r := quietReporter(&buf)

	r.ReportError(loc("a.js:1:2"), "unexpected %s", "token")
	r.ReportWarning(nil, "unused %s", "x")

	diags := r.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, Diagnostic{Severity: Error, Location: "a.js:1:2", Message: "unexpected token"}, diags[0])
	assert.Equal(t, "a.js:1:2: unexpected token", diags[0].Error())
	assert.Equal(t, Warning, diags[1].Severity)
	assert.Equal(t, "unused x", diags[1].Error())

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diags[0]))
	assert.Equal(t, "a.js:1:2: unexpected token", err.Error())

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `msg="unexpected token"`)
	assert.Contains(t, buf.String(), "location=a.js:1:2")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestErrWithoutErrors(t *testing.T) {
	var buf bytes.Buffer
	r := quietReporter(&buf)
	assert.NoError(t, r.Err())
	r.ReportWarning(nil, "w")
	assert.NoError(t, r.Err())
}

func TestReportersAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	a, b := quietReporter(&buf), quietReporter(&buf)
	a.ReportError(nil, "fail")
	assert.True(t, a.HadError())
	assert.False(t, b.HadError())
}
