package postpass

import "github.com/mkrause/docgraph/internal/model"

// resolveNamespaces builds every namespace's four child-ID lists in one
// sweep: each Database is bucketed by ParentNamespaceID, then each
// namespace's lists are filled from its bucket. Child ordering is not
// guaranteed, matching spec.md §4.9's determinism note (only the set of
// SymbolIDs must be stable across runs).
func resolveNamespaces(idx *model.Index) {
	records := bucket(idx.Records.Entries(), func(r *model.RecordSymbol) model.SymbolID { return r.ParentNamespaceID })
	enums := bucket(idx.Enums.Entries(), func(e *model.EnumSymbol) model.SymbolID { return e.ParentNamespaceID })
	namespaces := bucket(idx.Namespaces.Entries(), func(n *model.NamespaceSymbol) model.SymbolID { return n.ParentNamespaceID })
	aliases := bucket(idx.Aliases.Entries(), func(a *model.AliasSymbol) model.SymbolID { return a.ParentNamespaceID })

	for _, e := range idx.Namespaces.Entries() {
		ns := e.Value
		ns.Records = records[ns.ID]
		ns.Enums = enums[ns.ID]
		ns.Namespaces = namespaces[ns.ID]
		ns.Usings = aliases[ns.ID]
		idx.Namespaces.Update(e.ID, ns)
	}
}

func bucket[T any](entries []model.Entry[T], parentOf func(T) model.SymbolID) map[model.SymbolID][]model.SymbolID {
	out := make(map[model.SymbolID][]model.SymbolID)
	for _, e := range entries {
		parent := parentOf(e.Value)
		out[parent] = append(out[parent], e.ID)
	}
	return out
}
