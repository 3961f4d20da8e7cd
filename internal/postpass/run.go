// Package postpass runs the fixed sequence of single-threaded passes that
// turn a freshly-extracted Index into a self-consistent one: dangling
// methods are pruned, namespace child lists are built, record prototypes
// gain their inheritance clauses, member functions of class templates
// get their template parameter names substituted, and finally every
// remaining dangling type reference is severed.
package postpass

import "github.com/mkrause/docgraph/internal/model"

// Run executes pruneMethods, resolveNamespaces, updateRecordNames,
// updateMemberFunctions, and pruneTypeRefs in that order (spec.md §4.10).
// The order matters: namespace child-lists must exist before prototypes
// consume them, and type-ref pruning must run last because every
// upstream pass may resolve IDs that did not exist going in.
func Run(idx *model.Index) {
	pruneMethods(idx)
	resolveNamespaces(idx)
	updateRecordNames(idx)
	updateMemberFunctions(idx)
	pruneTypeRefs(idx)
}
