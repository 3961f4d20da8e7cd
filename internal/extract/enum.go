package extract

import (
	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

// Enum implements the enum half of §3/§4: filter, dedupe, populate
// members in declaration order.
func Enum(d *frontend.EnumDecl, idx *model.Index, cfg FilterConfig) {
	idx.Enums.CountMatch()

	if Ignore(d, cfg) {
		return
	}
	if d.Name() == "" {
		return // anonymous enum, §4.2
	}

	id := model.NewSymbolID(d.USR())
	if id.IsNull() || !idx.Enums.Reserve(id) {
		return
	}

	es := &model.EnumSymbol{
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
		Type: model.EnumType(d.EnumType),
	}
	for _, m := range d.Members {
		es.Members = append(es.Members, model.EnumMember{
			Name:       m.Name,
			Value:      m.Value,
			DocComment: m.DocComment,
		})
	}

	idx.Enums.Update(id, es)
}
