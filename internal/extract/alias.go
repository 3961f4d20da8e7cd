package extract

import (
	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

// Alias implements spec.md §4.7. The front-end has already resolved
// using-declaration shadows down to the one it wants kept (the last
// shadow, per tree-sitter-cpp emitting one using_declaration node per
// imported name — see internal/frontend/alias.go); this extractor only
// needs to carry that target through to the model.
func Alias(d *frontend.AliasDecl, idx *model.Index, cfg FilterConfig) {
	idx.Aliases.CountMatch()

	if Ignore(d, cfg) {
		return
	}
	if d.IsInsideFunction {
		return
	}
	if d.Name() == "" {
		return
	}

	id := model.NewSymbolID(d.USR())
	if id.IsNull() || !idx.Aliases.Reserve(id) {
		return
	}

	target := d.TargetName
	if len(d.Shadows) > 0 {
		target = d.Shadows[len(d.Shadows)-1].Name
	}
	targetUSR := d.TargetUSR
	if len(d.Shadows) > 0 {
		targetUSR = d.Shadows[len(d.Shadows)-1].USR
	}

	as := &model.AliasSymbol{
		Symbol: model.Symbol{
			ID:                 id,
			Name:               d.Name(),
			FullyQualifiedName: qualifiedName(d.EnclosingNamespaces(), d.Name()),
			DeclFile:           d.File(),
			DeclLine:           d.Line(),
			ParentNamespaceID:  parentNamespaceID(d.EnclosingNamespaces()),
			DocCommentBrief:    d.DocCommentBrief(),
			DocCommentLong:     d.DocCommentLong(),
			Access:             convertAccess(d.Access()),
		},
		Target:         ResolveTypeRef(target, targetUSR),
		IsRecordMember: d.IsRecordMember,
	}

	idx.Aliases.Update(id, as)
}
