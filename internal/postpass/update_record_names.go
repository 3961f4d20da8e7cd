package postpass

import (
	"strings"

	"github.com/mkrause/docgraph/internal/model"
)

// updateRecordNames implements spec.md §4.5: for every record with a
// non-empty base list, append the inheritance clause to Proto. This runs
// after extraction (and after resolveNamespaces) so every base is
// resolvable, though only the written Name is rendered here.
func updateRecordNames(idx *model.Index) {
	for _, e := range idx.Records.Entries() {
		rs := e.Value
		if len(rs.BaseRecords) == 0 {
			continue
		}

		var b strings.Builder
		b.WriteString(rs.Proto)
		b.WriteString(" : ")
		for i, base := range rs.BaseRecords {
			if i > 0 {
				b.WriteString(", ")
			}
			if base.Access != model.AccessNone {
				b.WriteString(base.Access.String())
				b.WriteString(" ")
			}
			b.WriteString(base.Name)
		}
		rs.Proto = b.String()
		idx.Records.Update(e.ID, rs)
	}
}
