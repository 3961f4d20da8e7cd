package extract

import (
	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

// Namespace implements spec.md §4.9's extractor half: reject unnamed or
// ignored namespaces, dedupe by SymbolID. Child lists are left empty —
// internal/postpass's resolveNamespaces fills them in after every worker
// has drained.
func Namespace(d *frontend.NamespaceDecl, idx *model.Index, cfg FilterConfig) {
	idx.Namespaces.CountMatch()

	if Ignore(d, cfg) {
		return
	}
	if d.Name() == "" {
		return
	}

	id := model.NewSymbolID(d.USR())
	if id.IsNull() || !idx.Namespaces.Reserve(id) {
		return
	}

	ns := &model.NamespaceSymbol{
		Symbol: model.Symbol{
			ID:                 id,
			Name:               d.Name(),
			FullyQualifiedName: qualifiedName(d.EnclosingNamespaces(), d.Name()),
			DeclFile:           d.File(),
			DeclLine:           d.Line(),
			ParentNamespaceID:  parentNamespaceID(d.EnclosingNamespaces()),
			DocCommentBrief:    d.DocCommentBrief(),
			DocCommentLong:     d.DocCommentLong(),
		},
	}

	idx.Namespaces.Update(id, ns)
}
