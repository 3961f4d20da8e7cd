package frontend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Parser owns one tree-sitter C++ grammar instance and parses translation
// units into declaration lists. A Parser is not safe for concurrent use;
// ParallelExecutor gives each worker its own Parser, matching spec.md §5's
// "no work inside a TU is parallelized" — the unit of concurrency is the
// TU, not anything inside the parser.
type Parser struct {
	rootDir string
	systemIncludeDirs []string
	sitterParser *sitter.Parser
	lang         *sitter.Language
}

// NewParser creates a Parser anchored at rootDir, treating any file under
// one of systemIncludeDirs (or outside rootDir entirely) as a system
// header for IgnoreFilter purposes (spec.md §4.2, SPEC_FULL.md §4.11).
func NewParser(rootDir string, systemIncludeDirs []string) *Parser {
	lang := cppLanguage()
	sp := sitter.NewParser()
	sp.SetLanguage(lang)
	return &Parser{
		rootDir:           rootDir,
		systemIncludeDirs: systemIncludeDirs,
		sitterParser:      sp,
		lang:              lang,
	}
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	p.sitterParser.Close()
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*TranslationUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frontend: read %s: %w", path, err)
	}
	return p.ParseSource(ctx, path, src)
}

// ParseSource parses src as if it were the contents of path. Exposed
// separately so tests can exercise extraction on inline snippets without
// touching the filesystem, the same affordance the teacher's parse_src
// host function gives Risor scripts.
func (p *Parser) ParseSource(ctx context.Context, path string, src []byte) (*TranslationUnit, error) {
	tree, err := p.sitterParser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("frontend: parse %s: %w", path, err)
	}
	return &TranslationUnit{
		path:   path,
		src:    src,
		tree:   tree,
		parser: p,
	}, nil
}

// TranslationUnit is one parsed source file plus the declarations walked
// out of it.
type TranslationUnit struct {
	path   string
	src    []byte
	tree   *sitter.Tree
	parser *Parser
}

// Close releases the underlying tree-sitter tree.
func (tu *TranslationUnit) Close() {
	tu.tree.Close()
}

// Declarations walks the parsed tree and returns every declaration it
// finds, in AST order (spec.md §5's "within one TU, declarations are
// visited in AST-provided order").
func (tu *TranslationUnit) Declarations() []Decl {
	w := &walker{tu: tu}
	w.walkChildren(tu.tree.RootNode(), nil, AccessNone)
	return w.decls
}

// relPath renders path relative to the parser's root dir, the repo-relative
// form spec.md's DeclFile field and IgnoreFilter's path matching need.
func (p *Parser) relPath(path string) string {
	rel, err := filepath.Rel(p.rootDir, path)
	if err != nil {
		return path
	}
	return rel
}

// isSystemPath reports whether path should be treated as a system header:
// outside rootDir, or under a configured system-include directory.
func (p *Parser) isSystemPath(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	rootAbs, err := filepath.Abs(p.rootDir)
	if err == nil {
		rel, err := filepath.Rel(rootAbs, abs)
		if err != nil || strings.HasPrefix(rel, "..") {
			return true
		}
	}
	for _, dir := range p.systemIncludeDirs {
		dirAbs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if strings.HasPrefix(abs, dirAbs+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
