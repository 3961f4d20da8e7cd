package docgraph

import (
	"context"
	"io"

	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/postpass"
)

// Engine is the indexing core's entry point: one Config, one compilation
// database, one Index built from running them through the pipeline
// described in this package's doc comment.
type Engine struct {
	cfg resolvedConfig
	cdb *frontend.CompilationDatabase
	idx *Index
	log Logger
}

// EngineOption customizes an Engine at construction time.
type EngineOption func(*Engine)

// WithLogger overrides the default production logger.
func WithLogger(log Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// NewEngine validates cfg and wires up an Engine ready to Run. cdb must
// already be loaded — spec.md §7's "setup failures are fatal" applies to
// loading the compile database itself, which is the caller's job via
// frontend.LoadCompilationDatabase, not the Engine's.
func NewEngine(cfg Config, cdb *frontend.CompilationDatabase, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		cdb: cdb,
		idx: NewIndex(),
		log: NewProductionLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cfg = cfg.resolve(e.log)
	return e, nil
}

// Run drives the full pipeline: parallel extraction across every
// translation unit in the compilation database, then the fixed sequence
// of post-processing passes. It returns nil: per-TU and per-declaration
// failures are absorbed into the log, never returned (spec.md §7). If
// ctx is cancelled, translation units not yet handed to a worker are not
// indexed, and the post-passes still run over what was.
func (e *Engine) Run(ctx context.Context) error {
	executor := NewParallelExecutor(e.cfg, e.idx, e.log)
	if err := executor.Run(ctx, e.cdb.Commands()); err != nil {
		return err
	}
	postpass.Run(e.idx)
	return nil
}

// Index returns the finished symbol graph. Valid any time after Run
// returns; callers must not mutate it.
func (e *Engine) Index() *Index {
	return e.idx
}

// PrintStats writes the per-Database diagnostic line documented in
// spec.md §6.
func (e *Engine) PrintStats(w io.Writer) {
	e.idx.PrintStats(w)
}
