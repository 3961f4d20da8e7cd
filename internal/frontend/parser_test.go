package frontend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseSource_FreeFunction(t *testing.T) {
	t.Parallel()

	p := NewParser(t.TempDir(), nil)
	defer p.Close()

	tu, err := p.ParseSource(context.Background(), "a.cpp", []byte("int add(int a, int b);"))
	require.NoError(t, err)
	defer tu.Close()

	decls := tu.Declarations()
	require.NotEmpty(t, decls)

	fd, ok := decls[0].(*FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fd.Name())
	assert.Equal(t, "int", fd.ReturnTypeName)
	require.Len(t, fd.Params, 2)
	assert.Equal(t, "a", fd.Params[0].Name)
	assert.Equal(t, "b", fd.Params[1].Name)
}

func TestParser_ParseSource_NamespaceAndRecord(t *testing.T) {
	t.Parallel()

	p := NewParser(t.TempDir(), nil)
	defer p.Close()

	src := `
namespace app {
	struct Point {
		int x;
		int y;
	};
}`
	tu, err := p.ParseSource(context.Background(), "a.cpp", []byte(src))
	require.NoError(t, err)
	defer tu.Close()

	var sawNamespace, sawRecord bool
	for _, d := range tu.Declarations() {
		switch v := d.(type) {
		case *NamespaceDecl:
			sawNamespace = true
			assert.Equal(t, "app", v.Name())
		case *RecordDecl:
			sawRecord = true
			assert.Equal(t, "Point", v.Name())
			assert.Equal(t, []string{"app"}, v.EnclosingNamespaces())
		}
	}
	assert.True(t, sawNamespace)
	assert.True(t, sawRecord)
}

func TestParser_IsSystemPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	p := NewParser(root, []string{root + "/vendor"})

	assert.False(t, p.isSystemPath(root+"/src/a.cpp"))
	assert.True(t, p.isSystemPath(root+"/vendor/lib.h"))
	assert.True(t, p.isSystemPath("/outside/a.cpp"))
}
