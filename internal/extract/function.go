package extract

import (
	"strings"

	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

// Function implements spec.md §4.3. It counts the candidate, applies
// IgnoreFilter plus the function-specific rejections, dedupes by
// SymbolID, and — only for the winner of that race — builds and stores
// the FunctionSymbol.
func Function(d *frontend.FunctionDecl, idx *model.Index, cfg FilterConfig) {
	idx.Functions.CountMatch()

	if Ignore(d, cfg) {
		return
	}
	if d.IsDeleted || d.IsDeductionGuide {
		return
	}
	if !d.IsRecordMember && d.IsStaticMember {
		return // non-member static function, §4.2
	}

	id := model.NewSymbolID(d.USR())
	if id.IsNull() || !idx.Functions.Reserve(id) {
		return
	}

	idx.Functions.Update(id, buildFunctionSymbol(id, d, cfg))
}

func buildFunctionSymbol(id model.SymbolID, d *frontend.FunctionDecl, cfg FilterConfig) *model.FunctionSymbol {
	var parentID model.SymbolID
	if d.IsRecordMember {
		parentID = model.NewSymbolID(d.ParentRecordUSR)
	} else {
		parentID = parentNamespaceID(d.EnclosingNamespaces())
	}

	fs := &model.FunctionSymbol{
		Symbol: model.Symbol{
			ID:                 id,
			Name:               d.Name(),
			FullyQualifiedName: qualifiedName(d.EnclosingNamespaces(), d.Name()),
			DeclFile:           d.File(),
			DeclLine:           d.Line(),
			ParentNamespaceID:  parentID,
			DocCommentBrief:    d.DocCommentBrief(),
			DocCommentLong:     d.DocCommentLong(),
			Access:             convertAccess(d.Access()),
		},
		ReturnType:        ResolveTypeRef(d.ReturnTypeName, d.ReturnTypeUSR),
		IsVariadic:        d.IsVariadic,
		IsVirtual:         d.IsVirtual,
		IsConstexpr:       d.IsConstexpr,
		IsConsteval:       d.IsConsteval,
		IsInline:          d.IsInline,
		IsNoDiscard:       d.IsNoDiscard,
		IsNoExcept:        d.IsNoExcept || (d.IsNoExceptComputed && cfg.NoexceptComputedIsNoexcept),
		IsNoReturn:        d.IsNoReturn,
		IsConst:           d.IsConst,
		IsVolatile:        d.IsVolatile,
		IsRestrict:        d.IsRestrict,
		IsExplicit:        d.IsExplicit,
		IsCtorOrDtor:      d.IsCtorOrDtor,
		IsConversionOp:    d.IsConversionOp,
		IsRecordMember:    d.IsRecordMember,
		RefQualifier:      model.RefQualifier(d.RefQualifier),
		HasTrailingReturn: d.HasTrailingReturn,
	}

	if d.StorageClassExtern {
		fs.StorageClass = model.StorageClassExtern
	} else if d.IsStaticMember {
		fs.StorageClass = model.StorageClassStatic
	}

	for _, p := range d.Params {
		fs.Params = append(fs.Params, model.FunctionParam{
			Name:         p.Name,
			Type:         ResolveTypeRef(p.TypeName, p.TypeUSR),
			DefaultValue: p.DefaultValue,
		})
	}
	for _, tp := range d.TemplateParams {
		fs.TemplateParams = append(fs.TemplateParams, model.TemplateParam{
			Kind:            model.TemplateParamKind(tp.Kind),
			Name:            tp.Name,
			Type:            tp.Type,
			DefaultValue:    tp.DefaultValue,
			IsTypename:      tp.IsTypename,
			IsParameterPack: tp.IsParameterPack,
		})
	}

	fs.Proto, fs.PostTemplate, fs.NameStart = RenderFunctionProto(fs)
	return fs
}

// RenderFunctionProto composes the function prototype string and its two
// contractual byte offsets (spec.md §4.3, and relied on again by
// updateMemberFunctions in §4.6). It is exported so the post-pass can
// recompute it after substituting template-parameter names.
func RenderFunctionProto(fs *model.FunctionSymbol) (proto string, postTemplate int, nameStart int) {
	var b strings.Builder

	if len(fs.TemplateParams) > 0 {
		b.WriteString("template <")
		for i, tp := range fs.TemplateParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderTemplateParam(tp))
		}
		b.WriteString("> ")
	}
	postTemplate = b.Len()

	for _, kw := range qualifierPrefixes(fs) {
		b.WriteString(kw)
		b.WriteString(" ")
	}
	if !fs.IsCtorOrDtor && fs.ReturnType.Name != "" {
		b.WriteString(fs.ReturnType.Name)
		b.WriteString(" ")
	}

	nameStart = b.Len()
	b.WriteString(fs.Name)

	b.WriteString("(")
	for i, p := range fs.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type.Name)
		if p.Name != "" {
			b.WriteString(" ")
			b.WriteString(p.Name)
		}
		if p.DefaultValue != "" {
			b.WriteString(" = ")
			b.WriteString(p.DefaultValue)
		}
	}
	if fs.IsVariadic {
		if len(fs.Params) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteString(")")

	for _, kw := range trailingQualifiers(fs) {
		b.WriteString(" ")
		b.WriteString(kw)
	}

	return b.String(), postTemplate, nameStart
}

func qualifierPrefixes(fs *model.FunctionSymbol) []string {
	var kws []string
	if fs.IsExplicit {
		kws = append(kws, "explicit")
	}
	if fs.IsVirtual {
		kws = append(kws, "virtual")
	}
	if fs.StorageClass == model.StorageClassStatic {
		kws = append(kws, "static")
	}
	if fs.StorageClass == model.StorageClassExtern {
		kws = append(kws, "extern")
	}
	if fs.IsConsteval {
		kws = append(kws, "consteval")
	} else if fs.IsConstexpr {
		kws = append(kws, "constexpr")
	}
	if fs.IsInline {
		kws = append(kws, "inline")
	}
	return kws
}

func trailingQualifiers(fs *model.FunctionSymbol) []string {
	var kws []string
	if fs.IsConst {
		kws = append(kws, "const")
	}
	if fs.IsVolatile {
		kws = append(kws, "volatile")
	}
	switch fs.RefQualifier {
	case model.RefQualifierLValue:
		kws = append(kws, "&")
	case model.RefQualifierRValue:
		kws = append(kws, "&&")
	}
	if fs.IsNoExcept {
		kws = append(kws, "noexcept")
	}
	return kws
}

func renderTemplateParam(tp model.TemplateParam) string {
	var b strings.Builder
	switch tp.Kind {
	case model.TemplateTypeParam:
		if tp.IsTypename {
			b.WriteString("typename ")
		} else {
			b.WriteString("class ")
		}
		if tp.IsParameterPack {
			b.WriteString("...")
		}
		b.WriteString(tp.Name)
	case model.TemplateNonTypeParam:
		b.WriteString(tp.Type)
		b.WriteString(" ")
		if tp.IsParameterPack {
			b.WriteString("...")
		}
		b.WriteString(tp.Name)
	case model.TemplateTemplateParam:
		b.WriteString("template<...> typename ")
		b.WriteString(tp.Name)
	}
	if tp.DefaultValue != "" {
		b.WriteString(" = ")
		b.WriteString(tp.DefaultValue)
	}
	return b.String()
}

func qualifiedName(nsPath []string, name string) string {
	if len(nsPath) == 0 {
		return name
	}
	return strings.Join(nsPath, "::") + "::" + name
}
