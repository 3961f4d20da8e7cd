package extract

import (
	"strings"

	"github.com/mkrause/docgraph/internal/model"
)

// ResolveTypeRef implements getTypeSymbolID (spec.md §4.8): given a
// rendered type name and the tag USR the front-end attached to it (if
// any — pointer/reference decoration is already stripped by the
// front-end before it builds typeUSR), produce the TypeRef docgraph
// stores. The primary-template reduction of §4.1 is applied here by
// dropping a trailing `<...>` from the USR before hashing, so a
// specialization's TypeRef lands on the same SymbolID as its primary
// template.
//
// The returned ID may point at a symbol that never makes it into the
// Index (the tag was filtered, or never declared in any indexed TU).
// pruneTypeRefs (internal/postpass) is what actually severs those links;
// this resolver only computes what the ID *would* be.
func ResolveTypeRef(typeName, typeUSR string) model.TypeRef {
	ref := model.TypeRef{Name: typeName}
	if typeUSR == "" {
		return ref
	}
	ref.ID = model.NewSymbolID(collapseTemplateArgs(typeUSR))
	return ref
}

func collapseTemplateArgs(usr string) string {
	if idx := strings.Index(usr, "<"); idx >= 0 {
		return usr[:idx]
	}
	return usr
}
