// Package docgraph builds a deduplicated, cross-referenced symbol index
// from the translation units of a C++-shaped codebase. It is the indexing
// core of a documentation generator: it does not parse compiler output
// into prose, render HTML or Markdown, or own a CLI — those are left to
// collaborators. What it owns is turning many overlapping ASTs into one
// consistent [Index] of functions, records, enums, namespaces, and aliases
// with stable identities and resolved cross-links.
//
// # Pipeline
//
// Indexing runs in two phases:
//
//  1. Extract: each translation unit in the compile database is parsed
//     with an embedded tree-sitter front-end and walked by the
//     extractors in internal/extract, which populate a shared [Index]
//     concurrently across a worker pool ([ParallelExecutor]).
//  2. Post-process: once every translation unit has drained, a fixed
//     sequence of single-threaded passes (internal/postpass) resolves
//     namespace containment, appends inheritance lists to record
//     prototypes, restores template parameter names on out-of-line
//     methods, and prunes dangling methods and type references.
//
// # Usage
//
//	cdb, err := frontend.LoadCompilationDatabase("compile_commands.json")
//	if err != nil { ... }
//
//	e, err := docgraph.NewEngine(docgraph.Config{RootDir: "/path/to/project"}, cdb)
//	if err != nil { ... }
//	if err := e.Run(context.Background()); err != nil { ... }
//
//	e.PrintStats(os.Stdout)
//	idx := e.Index()
//
// # Determinism
//
// Running the same translation units twice produces the same set of
// SymbolIDs in every Database, but child-list and parameter ordering
// within a symbol are not guaranteed — they follow per-TU AST walk
// order, which varies run to run. Callers must compare sets, not
// sequences.
package docgraph
