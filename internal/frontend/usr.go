package frontend

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// USR synthesis. tree-sitter gives us no linker-level identity, so the
// frontend builds its own deterministic stand-in out of the fully
// qualified name plus, for functions, the parameter types — enough to
// tell overloads apart and to let a template specialization collapse
// onto its primary template's USR once docgraph.NewSymbolID hashes it.

func usrForQualifiedName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return "c:@" + name
}

func usrForNamespace(path []string) string {
	return "c:@N@" + strings.Join(path, "@")
}

// NamespaceUSR exposes usrForNamespace to internal/extract, which needs
// to recompute a namespace's USR from a Decl's EnclosingNamespaces()
// path to populate ParentNamespaceID.
func NamespaceUSR(path []string) string {
	return usrForNamespace(path)
}

func usrForRecord(nsPath []string, name string) string {
	qualified := strings.Join(append(append([]string{}, nsPath...), name), "::")
	return usrForQualifiedName(qualified)
}

func usrForFunction(nsPath []string, enclosingRecord, name string, params []FunctionParamDecl) string {
	var qualifiedParts []string
	qualifiedParts = append(qualifiedParts, nsPath...)
	if enclosingRecord != "" {
		qualifiedParts = append(qualifiedParts, enclosingRecord)
	}
	qualifiedParts = append(qualifiedParts, name)
	qualified := strings.Join(qualifiedParts, "::")

	var sig strings.Builder
	sig.WriteString("c:@F@")
	sig.WriteString(qualified)
	sig.WriteByte('#')
	for i, p := range params {
		if i > 0 {
			sig.WriteByte(',')
		}
		sig.WriteString(stripPointerRef(p.TypeName))
	}
	return sig.String()
}

// templateParams reads a template_declaration's template_parameter_list
// into TemplateParamDecl values.
func (w *walker) templateParams(templateDecl *sitter.Node) []TemplateParamDecl {
	var list *sitter.Node
	count := int(templateDecl.NamedChildCount())
	for i := 0; i < count; i++ {
		c := templateDecl.NamedChild(i)
		if c.Type() == "template_parameter_list" {
			list = c
			break
		}
	}
	if list == nil {
		return nil
	}

	var out []TemplateParamDecl
	n := int(list.NamedChildCount())
	for i := 0; i < n; i++ {
		c := list.NamedChild(i)
		switch c.Type() {
		case "type_parameter_declaration":
			tp := TemplateParamDecl{Kind: 0, IsTypename: hasKeywordChild(c, w.src(), "typename")}
			if nameNode := c.ChildByFieldName("name"); nameNode != nil {
				tp.Name = nodeText(nameNode, w.src())
			}
			if defNode := c.ChildByFieldName("default_type"); defNode != nil {
				tp.DefaultValue = nodeText(defNode, w.src())
			}
			out = append(out, tp)
		case "variadic_type_parameter_declaration":
			tp := TemplateParamDecl{Kind: 0, IsTypename: hasKeywordChild(c, w.src(), "typename"), IsParameterPack: true}
			if nameNode := c.ChildByFieldName("name"); nameNode != nil {
				tp.Name = nodeText(nameNode, w.src())
			}
			out = append(out, tp)
		case "parameter_declaration":
			tp := TemplateParamDecl{Kind: 1}
			if typeNode := c.ChildByFieldName("type"); typeNode != nil {
				tp.Type = nodeText(typeNode, w.src())
			}
			if declNode := c.ChildByFieldName("declarator"); declNode != nil {
				tp.Name = nodeText(declNode, w.src())
			}
			if defNode := c.ChildByFieldName("default_value"); defNode != nil {
				tp.DefaultValue = nodeText(defNode, w.src())
			}
			out = append(out, tp)
		case "optional_parameter_declaration":
			tp := TemplateParamDecl{Kind: 1}
			if typeNode := c.ChildByFieldName("type"); typeNode != nil {
				tp.Type = nodeText(typeNode, w.src())
			}
			if declNode := c.ChildByFieldName("declarator"); declNode != nil {
				tp.Name = nodeText(declNode, w.src())
			}
			if defNode := c.ChildByFieldName("default_value"); defNode != nil {
				tp.DefaultValue = nodeText(defNode, w.src())
			}
			out = append(out, tp)
		case "variadic_parameter_declaration":
			tp := TemplateParamDecl{Kind: 1, IsParameterPack: true}
			if typeNode := c.ChildByFieldName("type"); typeNode != nil {
				tp.Type = nodeText(typeNode, w.src())
			}
			out = append(out, tp)
		case "template_template_parameter_declaration":
			tp := TemplateParamDecl{Kind: 2}
			if nameNode := c.ChildByFieldName("name"); nameNode != nil {
				tp.Name = nodeText(nameNode, w.src())
			}
			out = append(out, tp)
		}
	}
	return out
}

// functionParams reads a function_declarator's parameter_list into
// FunctionParamDecl values.
func (w *walker) functionParams(fnDeclarator *sitter.Node) []FunctionParamDecl {
	pl := fnDeclarator.ChildByFieldName("parameters")
	if pl == nil {
		return nil
	}
	var out []FunctionParamDecl
	count := int(pl.NamedChildCount())
	for i := 0; i < count; i++ {
		c := pl.NamedChild(i)
		if c.Type() != "parameter_declaration" && c.Type() != "optional_parameter_declaration" {
			continue
		}
		p := FunctionParamDecl{}
		if typeNode := c.ChildByFieldName("type"); typeNode != nil {
			p.TypeName = nodeText(typeNode, w.src())
		}
		if declNode := c.ChildByFieldName("declarator"); declNode != nil {
			p.TypeName = p.TypeName + declaratorSuffix(declNode, w.src())
			p.Name = innermostParamName(declNode, w.src())
		}
		if defNode := c.ChildByFieldName("default_value"); defNode != nil {
			p.DefaultValue = nodeText(defNode, w.src())
		}
		p.TypeUSR = usrForQualifiedName(stripPointerRef(p.TypeName))
		out = append(out, p)
	}
	return out
}

// declaratorSuffix renders the pointer/reference decoration of a
// parameter declarator (e.g. "*", "&", "**") so it can be appended to
// the parameter's base type name.
func declaratorSuffix(n *sitter.Node, src []byte) string {
	var b strings.Builder
	for n != nil {
		switch n.Type() {
		case "pointer_declarator":
			b.WriteString("*")
			n = n.ChildByFieldName("declarator")
		case "reference_declarator":
			b.WriteString("&")
			n = n.ChildByFieldName("declarator")
		default:
			return b.String()
		}
	}
	return b.String()
}

func innermostParamName(n *sitter.Node, src []byte) string {
	for n != nil {
		switch n.Type() {
		case "pointer_declarator", "reference_declarator":
			n = n.ChildByFieldName("declarator")
		case "identifier":
			return nodeText(n, src)
		default:
			return ""
		}
	}
	return ""
}
