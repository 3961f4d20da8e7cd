// Package extract holds the five SymbolExtractors that turn frontend.Decl
// values into docgraph's symbol model: one per documentable kind, plus the
// shared IgnoreFilter and TypeRef resolver they all call through.
package extract

import (
	"strings"

	"github.com/mkrause/docgraph/internal/frontend"
	"github.com/mkrause/docgraph/internal/model"
)

// FilterConfig is the subset of docgraph.Config an extractor needs,
// duplicated here so internal/extract does not import the root package
// (which imports internal/extract to run the extractors it defines).
type FilterConfig struct {
	IgnorePaths          []string
	IgnoreNamespaces     []string
	IgnorePrivateMembers bool

	// NoexceptComputedIsNoexcept resolves spec.md §9's open question:
	// the front-end always records a computed noexcept(expr) with
	// IsNoExceptComputed=true and IsNoExcept=false (it cannot evaluate
	// the expression); FunctionExtractor flips IsNoExcept to true for
	// those functions when this is set.
	NoexceptComputedIsNoexcept bool
}

// Ignore implements spec.md §4.2: a declaration is dropped if any of the
// universal conditions hold. Extractor-specific conditions (deleted
// functions, deduction guides, non-member statics, anonymous
// enums/namespaces, non-defining records, unnamed specializations) are
// checked by each extractor separately, since they depend on kind-specific
// fields IgnoreFilter has no business knowing about.
func Ignore(d frontend.Decl, cfg FilterConfig) bool {
	if d.IsInvalidRange() || d.IsInSystemHeader() {
		return true
	}
	if d.IsImplicit() || d.IsTemplateInstantiation() {
		return true
	}
	for _, ns := range d.EnclosingNamespaces() {
		if ns == "" {
			return true // anonymous namespace, at any depth
		}
	}
	file := d.File()
	for _, substr := range cfg.IgnorePaths {
		if substr != "" && strings.Contains(file, substr) {
			return true
		}
	}
	for _, ns := range d.EnclosingNamespaces() {
		for _, substr := range cfg.IgnoreNamespaces {
			if substr != "" && strings.Contains(ns, substr) {
				return true
			}
		}
	}
	if cfg.IgnorePrivateMembers && d.Access() == frontend.AccessPrivate {
		return true
	}
	return false
}

// parentNamespaceID walks a Decl's enclosing-namespace path to the
// SymbolID of its immediate parent namespace, null at translation-unit
// scope. Shared by every extractor so NamespaceSymbol resolution stays
// consistent with NamespaceExtractor's own IDs.
func parentNamespaceID(nsPath []string) model.SymbolID {
	if len(nsPath) == 0 {
		return model.NullSymbolID
	}
	return model.NewSymbolID(frontend.NamespaceUSR(nsPath))
}

func convertAccess(a frontend.Access) model.Access {
	switch a {
	case frontend.AccessPublic:
		return model.AccessPublic
	case frontend.AccessProtected:
		return model.AccessProtected
	case frontend.AccessPrivate:
		return model.AccessPrivate
	default:
		return model.AccessNone
	}
}
