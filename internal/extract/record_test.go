package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

func TestRecord_SimpleStructWithMembers(t *testing.T) {
	t.Parallel()

	idx := model.NewIndex()
	src := `
struct Point {
	int x;
	int y;
	int magnitude();
};`
	decls := declsFromSource(t, src)

	var found bool
	for _, d := range decls {
		if rd, ok := d.(*frontend.RecordDecl); ok {
			found = true
			Record(rd, idx, FilterConfig{})
		}
	}
	require.True(t, found)
	require.Equal(t, 1, idx.Records.Len())

	rs := idx.Records.Entries()[0].Value
	assert.Equal(t, "Point", rs.Name)
	assert.Len(t, rs.Vars, 2)
	assert.Len(t, rs.MethodIDs, 1)
	assert.Equal(t, 1, idx.Functions.Len())
}

func TestRecord_BaseClasses(t *testing.T) {
	t.Parallel()

	idx := model.NewIndex()
	src := `
class Base {};
class Derived : public Base {};`
	decls := declsFromSource(t, src)

	for _, d := range decls {
		if rd, ok := d.(*frontend.RecordDecl); ok {
			Record(rd, idx, FilterConfig{})
		}
	}

	var derived *model.RecordSymbol
	for _, e := range idx.Records.Entries() {
		if e.Value.Name == "Derived" {
			derived = e.Value
		}
	}
	require.NotNil(t, derived)
	require.Len(t, derived.BaseRecords, 1)
	assert.Equal(t, model.AccessPublic, derived.BaseRecords[0].Access)
	assert.Equal(t, "Base", derived.BaseRecords[0].Name)
}
