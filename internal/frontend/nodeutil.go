package frontend

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// nodeText returns the verbatim source text spanned by n.
func nodeText(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(src)
}

// nameText returns the verbatim text of a name node, qualifiers and
// template arguments included, used for namespace and record names.
func nameText(n *sitter.Node, src []byte) string {
	return nodeText(n, src)
}

func accessFromText(s string) Access {
	switch strings.TrimSpace(s) {
	case "public":
		return AccessPublic
	case "protected":
		return AccessProtected
	case "private":
		return AccessPrivate
	default:
		return AccessNone
	}
}

// hasKeywordChild reports whether n has any child (named or anonymous)
// whose text equals keyword. Modifiers like virtual/inline/constexpr
// surface as anonymous token children in tree-sitter-cpp's grammar.
func hasKeywordChild(n *sitter.Node, src []byte, keyword string) bool {
	if n == nil {
		return false
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		c := n.Child(i)
		if c.Type() == keyword {
			return true
		}
	}
	return false
}

// hasTrailingKeyword reports whether keyword appears among a function
// declarator's trailing qualifier tokens (the text after the parameter
// list), used for "const" and ref-qualifiers which tree-sitter-cpp
// attaches as sibling tokens of the declarator rather than as a field.
func hasTrailingKeyword(declarator *sitter.Node, src []byte, keyword string) bool {
	if declarator == nil {
		return false
	}
	count := int(declarator.ChildCount())
	for i := 0; i < count; i++ {
		c := declarator.Child(i)
		if c.Type() == keyword {
			return true
		}
	}
	return false
}

// declaratorIsFunction reports whether declarator is, or wraps
// (via pointer/reference/parenthesized declarators), a
// function_declarator node.
func declaratorIsFunction(declarator *sitter.Node) bool {
	return innermostFunctionDeclarator(declarator) != nil
}

// innermostFunctionDeclarator unwraps pointer_declarator,
// reference_declarator, and parenthesized_declarator layers to find the
// function_declarator node underneath, if any.
func innermostFunctionDeclarator(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Type() {
		case "function_declarator":
			return n
		case "pointer_declarator", "reference_declarator", "parenthesized_declarator", "abstract_function_declarator":
			n = n.ChildByFieldName("declarator")
		default:
			return nil
		}
	}
	return nil
}

// findNoexceptSpecifier reports "" if no noexcept specifier is present,
// "bare" for a plain noexcept, or "computed" for noexcept(expr).
func findNoexceptSpecifier(fnDeclarator *sitter.Node, src []byte) string {
	if fnDeclarator == nil {
		return ""
	}
	count := int(fnDeclarator.NamedChildCount())
	for i := 0; i < count; i++ {
		c := fnDeclarator.NamedChild(i)
		if c.Type() == "noexcept" {
			if c.NamedChildCount() > 0 {
				return "computed"
			}
			return "bare"
		}
	}
	return ""
}

// stripPointerRef trims trailing pointer/reference/cv-qualifier
// decoration off a rendered type name, leaving a bare qualified-name
// suitable for USR lookup.
func stripPointerRef(typeName string) string {
	s := strings.TrimSpace(typeName)
	s = strings.TrimRight(s, "*&")
	s = strings.TrimSpace(s)
	for _, kw := range []string{"const ", "volatile "} {
		for strings.HasPrefix(s, kw) {
			s = strings.TrimSpace(strings.TrimPrefix(s, kw))
		}
	}
	s = strings.TrimSuffix(s, " const")
	s = strings.TrimSuffix(s, " volatile")
	return strings.TrimSpace(s)
}

// stripAngleSpecialization drops a trailing <...> from a constructor or
// destructor name recovered from a class-template's injected-class-name.
func stripAngleSpecialization(name string) string {
	if idx := strings.Index(name, "<"); idx >= 0 {
		return name[:idx]
	}
	return name
}

// qualifyStdBase leaves a base-class name as written (trimmed); the
// std:: prefix for standard-library bases is added later by
// internal/extract's renderBaseName.
func qualifyStdBase(name string) string {
	return strings.TrimSpace(name)
}

// specializationHasNoWrittenArgs reports whether a template_type name
// node's argument list is empty — the §4.2 "class-template specialization
// without a written type" case, e.g. an explicit specialization of a
// variadic template with an empty <> argument list. n must already be
// known to be a template_type node.
func specializationHasNoWrittenArgs(n *sitter.Node) bool {
	args := n.ChildByFieldName("arguments")
	if args == nil {
		return true
	}
	return args.NamedChildCount() == 0
}
