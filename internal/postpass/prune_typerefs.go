package postpass

import "github.com/mkrause/docgraph/internal/model"

// pruneTypeRefs implements spec.md §4.10's second half: null the ID of
// every TypeRef that does not resolve to a record, enum, or alias
// actually present in the Index. Names are left untouched — only
// cross-links are severed. This runs last because every pass before it
// may have resolved IDs (record base lists, substituted member-function
// parameter types) that did not exist when extraction produced them.
func pruneTypeRefs(idx *model.Index) {
	resolves := func(id model.SymbolID) bool {
		if id.IsNull() {
			return false
		}
		return idx.Records.Contains(id) || idx.Enums.Contains(id) || idx.Aliases.Contains(id)
	}

	prune := func(ref *model.TypeRef) {
		if !ref.ID.IsNull() && !resolves(ref.ID) {
			ref.ID = model.NullSymbolID
		}
	}

	for _, e := range idx.Functions.Entries() {
		fs := e.Value
		prune(&fs.ReturnType)
		for i := range fs.Params {
			prune(&fs.Params[i].Type)
		}
		idx.Functions.Update(e.ID, fs)
	}

	for _, e := range idx.Records.Entries() {
		rs := e.Value
		for i := range rs.Vars {
			prune(&rs.Vars[i].Type)
		}
		idx.Records.Update(e.ID, rs)
	}

	for _, e := range idx.Aliases.Entries() {
		as := e.Value
		prune(&as.Target)
		idx.Aliases.Update(e.ID, as)
	}
}
