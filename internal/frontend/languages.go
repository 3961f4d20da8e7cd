package frontend

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

// cppLanguage is the single tree-sitter grammar docgraph embeds. Unlike
// the teacher project, which registers one grammar per supported source
// language for its multi-language script runtime, docgraph indexes a
// single systems language ("L" in spec.md), so there is exactly one
// grammar to wire up.
func cppLanguage() *sitter.Language {
	return cpp.GetLanguage()
}
