package frontend

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// walkAliasDeclaration handles `using Name = Type;` (C++11 alias
// declarations), the common case AliasExtractor expects.
func (w *walker) walkAliasDeclaration(n *sitter.Node, nsPath []string, access Access, enclosingRecord string) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := nodeText(nameNode, w.src())

	typeNode := n.ChildByFieldName("type")
	targetName := ""
	if typeNode != nil {
		targetName = nodeText(typeNode, w.src())
	}

	qualified := name
	if enclosingRecord != "" {
		qualified = enclosingRecord + "::" + name
	}

	ad := &AliasDecl{
		declBase: declBase{
			usr:                 usrForRecord(nsPath, qualified),
			kind:                DeclAlias,
			name:                name,
			file:                w.tu.parser.relPath(w.tu.path),
			line:                int(n.StartPoint().Row) + 1,
			enclosingNamespaces: nsPath,
			access:              access,
			isInSystemHeader:    w.tu.parser.isSystemPath(w.tu.path),
		},
		TargetName: targetName,
		TargetUSR:  usrForQualifiedName(stripPointerRef(targetName)),
	}
	w.add(ad)
}

// walkUsingDeclaration handles `using ns::name;` and
// `using Base::method;`, which import an existing declaration into the
// current scope rather than defining a new type. docgraph models both
// the same way as an alias declaration whose target is the imported
// entity, with Shadows recording every name it has imported so far if
// the same using-declaration covers an overload set — in practice
// tree-sitter-cpp gives one using_declaration node per imported name, so
// Shadows here always has exactly the one entry AliasExtractor keeps.
func (w *walker) walkUsingDeclaration(n *sitter.Node, nsPath []string, access Access, enclosingRecord string) {
	argNode := n.ChildByFieldName("argument")
	if argNode == nil {
		count := int(n.NamedChildCount())
		for i := 0; i < count; i++ {
			c := n.NamedChild(i)
			if c.Type() == "qualified_identifier" || c.Type() == "identifier" {
				argNode = c
				break
			}
		}
	}
	if argNode == nil {
		return
	}

	full := nodeText(argNode, w.src())
	name := full
	if idx := lastScopeSep(full); idx >= 0 {
		name = full[idx+2:]
	}

	qualified := name
	if enclosingRecord != "" {
		qualified = enclosingRecord + "::" + name
	}

	ad := &AliasDecl{
		declBase: declBase{
			usr:                 usrForRecord(nsPath, qualified),
			kind:                DeclAlias,
			name:                name,
			file:                w.tu.parser.relPath(w.tu.path),
			line:                int(n.StartPoint().Row) + 1,
			enclosingNamespaces: nsPath,
			access:              access,
			isInSystemHeader:    w.tu.parser.isSystemPath(w.tu.path),
		},
		TargetName: full,
		TargetUSR:  usrForQualifiedName(full),
		Shadows: []AliasShadow{
			{Name: full, USR: usrForQualifiedName(full)},
		},
	}
	w.add(ad)
}

func lastScopeSep(s string) int {
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == ':' && s[i+1] == ':' {
			return i
		}
	}
	return -1
}
