package postpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrause/docgraph/internal/model"
)

func TestRun_FullFixedOrder(t *testing.T) {
	idx := model.NewIndex()

	nsID := model.NewSymbolID("c:@N@app")
	idx.Namespaces.Reserve(nsID)
	idx.Namespaces.Update(nsID, &model.NamespaceSymbol{
		Symbol: model.Symbol{ID: nsID, Name: "app"},
	})

	recordID := model.NewSymbolID("c:@app::Box")
	methodID := model.NewSymbolID("c:@app::Box::get")
	missingBaseID := model.NewSymbolID("c:@app::Nonexistent")
	missingTypeID := model.NewSymbolID("c:@app::Undocumented")

	idx.Functions.Reserve(methodID)
	idx.Functions.Update(methodID, &model.FunctionSymbol{
		Symbol: model.Symbol{
			ID:                methodID,
			Name:              "get",
			ParentNamespaceID: recordID, // borrowed parent-record pointer
		},
		IsRecordMember: true,
		ReturnType:     model.TypeRef{Name: "type-parameter-0-0", ID: missingTypeID},
		Proto:          "type-parameter-0-0 get()",
		PostTemplate:   0,
		NameStart:      19,
	})

	orphanMethodID := model.NewSymbolID("c:@app::Ghost::run")
	idx.Functions.Reserve(orphanMethodID)
	idx.Functions.Update(orphanMethodID, &model.FunctionSymbol{
		Symbol: model.Symbol{
			ID:                orphanMethodID,
			Name:              "run",
			ParentNamespaceID: model.NewSymbolID("c:@app::Ghost"), // never indexed
		},
		IsRecordMember: true,
	})

	idx.Records.Reserve(recordID)
	idx.Records.Update(recordID, &model.RecordSymbol{
		Symbol: model.Symbol{
			ID:                recordID,
			Name:              "Box",
			ParentNamespaceID: nsID,
		},
		Type:           model.RecordClass,
		Proto:          "class Box",
		TemplateParams: []model.TemplateParam{{Kind: model.TemplateTypeParam, Name: "T", IsTypename: true}},
		BaseRecords: []model.BaseRecord{
			{ID: missingBaseID, Access: model.AccessPublic, Name: "Nonexistent"},
		},
		MethodIDs: []model.SymbolID{methodID},
		Vars: []model.MemberVariable{
			{Name: "value", Type: model.TypeRef{Name: "type-parameter-0-0", ID: missingTypeID}},
		},
	})

	Run(idx)

	t.Run("pruneMethods removes orphaned members", func(t *testing.T) {
		assert.False(t, idx.Functions.Contains(orphanMethodID))
		assert.True(t, idx.Functions.Contains(methodID))
	})

	t.Run("resolveNamespaces populates child lists", func(t *testing.T) {
		ns, ok := idx.Namespaces.Get(nsID)
		require.True(t, ok)
		assert.Contains(t, ns.Records, recordID)
	})

	t.Run("updateRecordNames appends inheritance clause", func(t *testing.T) {
		rs, ok := idx.Records.Get(recordID)
		require.True(t, ok)
		assert.Equal(t, "class Box : public Nonexistent", rs.Proto)
	})

	t.Run("updateMemberFunctions substitutes template parameter names", func(t *testing.T) {
		fs, ok := idx.Functions.Get(methodID)
		require.True(t, ok)
		assert.Equal(t, "T get()", fs.Proto)
		assert.Equal(t, 0, fs.PostTemplate)
		assert.Equal(t, 2, fs.NameStart)
	})

	t.Run("pruneTypeRefs nulls unresolved cross-links", func(t *testing.T) {
		fs, ok := idx.Functions.Get(methodID)
		require.True(t, ok)
		assert.True(t, fs.ReturnType.ID.IsNull())

		rs, ok := idx.Records.Get(recordID)
		require.True(t, ok)
		assert.True(t, rs.Vars[0].Type.ID.IsNull())
	})
}
