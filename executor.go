package docgraph

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkrause/docgraph/internal/extract"
	"github.com/mkrause/docgraph/internal/frontend"
)

// ParallelExecutor runs the extract phase of the pipeline across a fixed
// worker pool, mirroring spec.md §5: each translation unit is a unit of
// work, workers share nothing but the Index's Databases, and a per-TU
// parse failure is logged and skipped rather than aborting the run. Each
// worker owns its own *frontend.Parser — "no work inside a TU is
// parallelized" means the unit of concurrency is the TU, not anything a
// Parser does internally.
type ParallelExecutor struct {
	cfg resolvedConfig
	idx *Index
	log Logger
}

// NewParallelExecutor builds an executor over the given (already
// validated) config and Index.
func NewParallelExecutor(cfg resolvedConfig, idx *Index, log Logger) *ParallelExecutor {
	if log == nil {
		log = NewNopLogger()
	}
	return &ParallelExecutor{cfg: cfg, idx: idx, log: log}
}

// Run feeds every compile command in cmds to the worker pool and blocks
// until every translation unit has been parsed and walked. Its workers
// never fail, so it returns nil: per-TU failures are absorbed into the
// log per spec.md §7's error-handling design. Cancelling ctx stops the
// hand-out of further translation units.
func (pe *ParallelExecutor) Run(ctx context.Context, cmds []frontend.Command) error {
	if limit := pe.cfg.DebugLimitNumIndexedFiles; limit != nil && *limit < len(cmds) {
		cmds = cmds[:*limit]
	}

	workers := pe.cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(cmds) {
		workers = len(cmds)
	}
	if workers < 1 {
		workers = 1
	}

	filterCfg := extract.FilterConfig{
		IgnorePaths:                pe.cfg.IgnorePaths,
		IgnoreNamespaces:           pe.cfg.IgnoreNamespaces,
		IgnorePrivateMembers:       pe.cfg.IgnorePrivateMembers,
		NoexceptComputedIsNoexcept: pe.cfg.NoexceptComputedIsNoexcept,
	}

	jobs := make(chan frontend.Command)
	go func() {
		defer close(jobs)
		for _, c := range cmds {
			select {
			case jobs <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	var mu sync.Mutex
	var failures *multierror.Error

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			parser := frontend.NewParser(pe.cfg.RootDir, pe.systemIncludeDirs())
			defer parser.Close()

			for {
				select {
				case cmd, ok := <-jobs:
					if !ok {
						return nil
					}
					if err := pe.indexOne(gctx, parser, cmd, filterCfg); err != nil {
						mu.Lock()
						failures = multierror.Append(failures, err)
						mu.Unlock()
					}
				case <-gctx.Done():
					return nil
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if failures != nil {
		pe.log.Warn("some translation units failed to parse", zap.Int("count", len(failures.Errors)), zap.Error(failures))
	}
	return nil
}

func (pe *ParallelExecutor) systemIncludeDirs() []string {
	return append(append([]string{}, pe.cfg.existingIncludePaths...), pe.cfg.SystemIncludePaths...)
}

func (pe *ParallelExecutor) indexOne(ctx context.Context, parser *frontend.Parser, cmd frontend.Command, filterCfg extract.FilterConfig) error {
	file := cmd.File
	if file == "" {
		return nil
	}
	if !filepath.IsAbs(file) && cmd.Directory != "" {
		file = filepath.Join(cmd.Directory, file)
	}

	tu, err := parser.ParseFile(ctx, file)
	if err != nil {
		return err
	}
	defer tu.Close()

	for _, d := range tu.Declarations() {
		switch v := d.(type) {
		case *frontend.FunctionDecl:
			extract.Function(v, pe.idx, filterCfg)
		case *frontend.RecordDecl:
			extract.Record(v, pe.idx, filterCfg)
		case *frontend.EnumDecl:
			extract.Enum(v, pe.idx, filterCfg)
		case *frontend.NamespaceDecl:
			extract.Namespace(v, pe.idx, filterCfg)
		case *frontend.AliasDecl:
			extract.Alias(v, pe.idx, filterCfg)
		}
	}
	return nil
}
