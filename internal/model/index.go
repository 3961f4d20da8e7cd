package model

import (
	"fmt"
	"io"
	"unsafe"
)

// Index is the finished, self-consistent symbol graph: five Databases, one
// per documentable kind. Extractors populate it concurrently during the
// extract phase; internal/postpass rewrites it in place afterward. Once
// Engine.Run returns, callers treat it as read-only.
type Index struct {
	Functions  *Database[*FunctionSymbol]
	Records    *Database[*RecordSymbol]
	Enums      *Database[*EnumSymbol]
	Namespaces *Database[*NamespaceSymbol]
	Aliases    *Database[*AliasSymbol]
}

// NewIndex creates an empty Index with all five Databases initialized.
func NewIndex() *Index {
	return &Index{
		Functions:  NewDatabase[*FunctionSymbol](),
		Records:    NewDatabase[*RecordSymbol](),
		Enums:      NewDatabase[*EnumSymbol](),
		Namespaces: NewDatabase[*NamespaceSymbol](),
		Aliases:    NewDatabase[*AliasSymbol](),
	}
}

// statLine is one row of the spec's printStats diagnostic.
type statLine struct {
	name       string
	numMatches uint64
	numEntries int
	kib        float64
}

// PrintStats writes one line per Database in the form
// "<Name>: <numMatches> matches, <len(entries)> indexed, <kib> KiB total size",
// matching spec.md §6.
func (idx *Index) PrintStats(w io.Writer) {
	lines := []statLine{
		{"Functions", idx.Functions.NumMatches(), idx.Functions.Len(), approxSizeKiB(idx.Functions)},
		{"Records", idx.Records.NumMatches(), idx.Records.Len(), approxSizeKiB(idx.Records)},
		{"Enums", idx.Enums.NumMatches(), idx.Enums.Len(), approxSizeKiB(idx.Enums)},
		{"Namespaces", idx.Namespaces.NumMatches(), idx.Namespaces.Len(), approxSizeKiB(idx.Namespaces)},
		{"Aliases", idx.Aliases.NumMatches(), idx.Aliases.Len(), approxSizeKiB(idx.Aliases)},
	}
	for _, l := range lines {
		fmt.Fprintf(w, "%s: %d matches, %d indexed, %.1f KiB total size\n", l.name, l.numMatches, l.numEntries, l.kib)
	}
}

// approxSizeKiB is a rough in-memory size estimate for the diagnostic line.
// It is intentionally approximate — spec.md does not define an exact byte
// accounting, only that the line be emitted.
func approxSizeKiB[T any](d *Database[T]) float64 {
	var zero T
	perEntry := unsafe.Sizeof(zero)
	return float64(d.Len()) * float64(perEntry) / 1024.0
}
