package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

func declsFromSource(t *testing.T, src string) []frontend.Decl {
	t.Helper()
	p := frontend.NewParser(t.TempDir(), nil)
	defer p.Close()
	tu, err := p.ParseSource(context.Background(), "a.cpp", []byte(src))
	require.NoError(t, err)
	defer tu.Close()
	return tu.Declarations()
}

func TestFunction_FreeFunctionIsIndexed(t *testing.T) {
	t.Parallel()

	idx := model.NewIndex()
	decls := declsFromSource(t, "int add(int a, int b);")

	var found bool
	for _, d := range decls {
		if fd, ok := d.(*frontend.FunctionDecl); ok {
			found = true
			Function(fd, idx, FilterConfig{})
		}
	}
	require.True(t, found, "expected to find a function declaration")
	require.Equal(t, 1, idx.Functions.Len())

	entries := idx.Functions.Entries()
	fs := entries[0].Value
	assert.Equal(t, "add", fs.Name)
	assert.Len(t, fs.Params, 2)
	assert.Equal(t, "a", fs.Params[0].Name)
	assert.Contains(t, fs.Proto, "add")
}

func TestFunction_DeduplicatesAcrossCalls(t *testing.T) {
	t.Parallel()

	idx := model.NewIndex()
	decls := declsFromSource(t, "void f();")

	var fd *frontend.FunctionDecl
	for _, d := range decls {
		if v, ok := d.(*frontend.FunctionDecl); ok {
			fd = v
		}
	}
	require.NotNil(t, fd)

	Function(fd, idx, FilterConfig{})
	Function(fd, idx, FilterConfig{})

	assert.Equal(t, 1, idx.Functions.Len())
	assert.Equal(t, uint64(2), idx.Functions.NumMatches())
}

func TestFunction_IgnorePrivateMembers(t *testing.T) {
	t.Parallel()

	idx := model.NewIndex()
	src := `
class C {
private:
	void secret();
};`
	decls := declsFromSource(t, src)

	for _, d := range decls {
		if v, ok := d.(*frontend.RecordDecl); ok {
			for _, m := range v.Methods {
				Function(m, idx, FilterConfig{IgnorePrivateMembers: true})
			}
		}
	}
	assert.Equal(t, 0, idx.Functions.Len())
}
