package callsite_test

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/callsite"
)

type settings struct {
	Port int
}

func probe(name string, value any) string {
	_ = value
	if name != "" {
		return name
	}
	return callsite.Argument(1, "probe", 1)
}

func genericProbe[T any](name string, value T) string {
	_ = value
	return callsite.Argument(1, "genericProbe", 1)
}

func TestArgument(t *testing.T) {
	t.Parallel()

	t.Run("captures identifier", func(t *testing.T) {
		port := 8080
		assert.Equal(t, "port", probe("", port))
	})

	t.Run("captures selector expression", func(t *testing.T) {
		cfg := settings{Port: 80}
		assert.Equal(t, "cfg.Port", probe("", cfg.Port))
	})

	t.Run("captures call expression", func(t *testing.T) {
		items := []int{1, 2}
		assert.Equal(t, "len(items)", probe("", len(items)))
	})

	t.Run("strips parentheses", func(t *testing.T) {
		count := 3
		assert.Equal(t, "count", probe("", (count)))
	})

	t.Run("captures argument of multi-line call", func(t *testing.T) {
		cfg := settings{Port: 80}
		got := probe(
			"",
			cfg.Port,
		)
		assert.Equal(t, "cfg.Port", got)
	})

	t.Run("captures argument of generic instantiation", func(t *testing.T) {
		limit := int64(5)
		assert.Equal(t, "limit", genericProbe[int64]("", limit))
		assert.Equal(t, "limit", genericProbe("", limit))
	})

	t.Run("explicit name is untouched", func(t *testing.T) {
		assert.Equal(t, "custom", probe("custom", 1))
	})

	t.Run("unknown function yields empty string", func(t *testing.T) {
		assert.Empty(t, callsite.Argument(0, "doesNotExist", 0))
	})
}

const source = `package sample

func run() {
	a, b := 1, 2
	check("", a); check("", b)
	other("", a)
	pkg.Check[int]("", (b))
	nested(check("", a+b))
	check(
		"",
		a,
	)
	pair(
		a, pair(b,
			b),
	)
	pair(c,
		d)
}
`

func TestFromAST(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "sample.go", source, parser.SkipObjectResolution)
	require.NoError(t, err)

	tests := []struct {
		name     string
		line     int
		funcName string
		index    int
		want     string
	}{
		{name: "ambiguous calls on shared line", line: 5, funcName: "check", index: 1, want: ""},
		{name: "function name must match", line: 6, funcName: "check", index: 1, want: ""},
		{name: "other function on its line", line: 6, funcName: "other", index: 1, want: "a"},
		{name: "selector with type arguments", line: 7, funcName: "Check", index: 1, want: "b"},
		{name: "nested call", line: 8, funcName: "check", index: 1, want: "a + b"},
		{name: "multi-line call by opening line", line: 9, funcName: "check", index: 1, want: "a"},
		{name: "multi-line call by inner line", line: 11, funcName: "check", index: 1, want: "a"},
		{name: "ambiguous multi-line calls", line: 15, funcName: "pair", index: 0, want: ""},
		{name: "single multi-line call among others", line: 18, funcName: "pair", index: 0, want: "c"},
		{name: "argument index out of range", line: 5, funcName: "check", index: 4, want: ""},
		{name: "line without calls", line: 4, funcName: "check", index: 1, want: ""},
		{name: "negative index", line: 5, funcName: "check", index: -1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, callsite.FromAST(fset, f, tt.line, tt.funcName, tt.index))
		})
	}
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty string", func(t *testing.T) {
		assert.Empty(t, callsite.FromFile("/nonexistent/file.go", 1, "check", 0))
	})
}
