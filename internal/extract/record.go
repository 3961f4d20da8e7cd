package extract

import (
	"strings"

	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

var stdNames = map[string]bool{
	"string": true, "wstring": true, "vector": true, "map": true, "set": true,
	"unordered_map": true, "unordered_set": true, "pair": true, "tuple": true,
	"shared_ptr": true, "unique_ptr": true, "weak_ptr": true, "function": true,
	"optional": true, "variant": true, "array": true, "deque": true, "list": true,
	"exception": true, "runtime_error": true, "logic_error": true,
}

// Record implements spec.md §4.4.
func Record(d *frontend.RecordDecl, idx *model.Index, cfg FilterConfig) {
	idx.Records.CountMatch()

	if Ignore(d, cfg) {
		return
	}
	if d.IsNonDefining || d.IsSpecializationNoArgs {
		return
	}
	if d.Name() == "" {
		return // unnamed and no typedef-for-anonymous recovered a name
	}

	id := model.NewSymbolID(d.USR())
	if id.IsNull() || !idx.Records.Reserve(id) {
		return
	}

	idx.Records.Update(id, buildRecordSymbol(id, d, idx, cfg))
}

func buildRecordSymbol(id model.SymbolID, d *frontend.RecordDecl, idx *model.Index, cfg FilterConfig) *model.RecordSymbol {
	rs := &model.RecordSymbol{
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
		Type: model.RecordType(d.RecordType),
	}

	for _, tp := range d.TemplateParams {
		rs.TemplateParams = append(rs.TemplateParams, model.TemplateParam{
			Kind:            model.TemplateParamKind(tp.Kind),
			Name:            tp.Name,
			Type:            tp.Type,
			DefaultValue:    tp.DefaultValue,
			IsTypename:      tp.IsTypename,
			IsParameterPack: tp.IsParameterPack,
		})
	}

	for _, b := range d.BaseRecords {
		rs.BaseRecords = append(rs.BaseRecords, model.BaseRecord{
			ID:     model.NewSymbolID(collapseTemplateArgs(b.USR)),
			Access: convertAccess(b.Access),
			Name:   renderBaseName(b.Name),
		})
	}

	for _, v := range d.Vars {
		mv := model.MemberVariable{
			Name:         v.Name,
			DefaultValue: v.DefaultValue,
			Access:       convertAccess(v.Access),
			IsStatic:     v.IsStatic,
			DocComment:   v.DocComment,
		}
		if v.IsAnonymous {
			mv.Type = model.TypeRef{Name: "anonymous struct/union"}
		} else {
			mv.Type = ResolveTypeRef(v.TypeName, v.TypeUSR)
		}
		rs.Vars = append(rs.Vars, mv)
	}

	for _, m := range d.Methods {
		Function(m, idx, cfg)
		mid := model.NewSymbolID(m.USR())
		if !mid.IsNull() && idx.Functions.Contains(mid) {
			rs.MethodIDs = append(rs.MethodIDs, mid)
		}
	}
	for _, a := range d.Aliases {
		Alias(a, idx, cfg)
		aid := model.NewSymbolID(a.USR())
		if !aid.IsNull() && idx.Aliases.Contains(aid) {
			rs.AliasIDs = append(rs.AliasIDs, aid)
		}
	}

	rs.Proto = renderRecordProto(rs)
	return rs
}

func renderBaseName(name string) string {
	base := name
	if idx := strings.Index(base, "<"); idx >= 0 {
		base = base[:idx]
	}
	if !strings.Contains(name, "::") && stdNames[base] {
		return "std::" + name
	}
	return name
}

func renderRecordProto(rs *model.RecordSymbol) string {
	var b strings.Builder
	if len(rs.TemplateParams) > 0 {
		b.WriteString("template <")
		for i, tp := range rs.TemplateParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderTemplateParam(tp))
		}
		b.WriteString("> ")
	}
	b.WriteString(rs.Type.String())
	b.WriteString(" ")
	b.WriteString(rs.Name)
	return b.String()
}
