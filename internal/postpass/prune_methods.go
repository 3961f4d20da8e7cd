package postpass

import "github.com/mkrause/docgraph/internal/model"

// pruneMethods deletes every record-member function whose parent record
// (borrowed in FunctionSymbol.ParentNamespaceID — see internal/extract's
// buildFunctionSymbol) did not survive extraction. This cleans up methods
// belonging to records that were themselves filtered out.
func pruneMethods(idx *model.Index) {
	for _, e := range idx.Functions.Entries() {
		f := e.Value
		if !f.IsRecordMember {
			continue
		}
		if idx.Records.Contains(f.ParentNamespaceID) {
			continue
		}
		idx.Functions.Delete(e.ID)
	}
}
