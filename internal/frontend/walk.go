package frontend

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// walker accumulates declarations while descending a translation unit's
// syntax tree. It tracks the enclosing namespace path and, while inside a
// record body, the current access region and enclosing record name —
// state a real compiler AST carries on each Decl directly, but which
// tree-sitter's concrete syntax tree leaves for the walker to thread
// through.
type walker struct {
	tu    *TranslationUnit
	decls []Decl
}

func (w *walker) src() []byte { return w.tu.src }

func (w *walker) add(d Decl) { w.decls = append(w.decls, d) }

// walkChildren visits every named child of n as a namespace-scope or
// record-scope declaration.
func (w *walker) walkChildren(n *sitter.Node, nsPath []string, access Access) {
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		w.walkTopLevel(n.NamedChild(i), nsPath, access, "")
	}
}

// walkTopLevel dispatches one declaration node, possibly unwrapping a
// template_declaration wrapper first. enclosingRecord is "" outside any
// record body.
func (w *walker) walkTopLevel(n *sitter.Node, nsPath []string, access Access, enclosingRecord string) {
	if n == nil {
		return
	}

	var templateParams []TemplateParamDecl
	if n.Type() == "template_declaration" {
		templateParams = w.templateParams(n)
		inner := n.ChildByFieldName("declaration")
		if inner == nil {
			// Fall back to scanning named children for the templated decl.
			for i := 0; i < int(n.NamedChildCount()); i++ {
				c := n.NamedChild(i)
				if c.Type() != "template_parameter_list" {
					inner = c
					break
				}
			}
		}
		if inner == nil {
			return
		}
		n = inner
	}

	switch n.Type() {
	case "namespace_definition":
		w.walkNamespace(n, nsPath)
	case "class_specifier":
		w.walkRecord(n, nsPath, access, 0, templateParams, enclosingRecord)
	case "struct_specifier":
		w.walkRecord(n, nsPath, access, 1, templateParams, enclosingRecord)
	case "union_specifier":
		w.walkRecord(n, nsPath, access, 2, templateParams, enclosingRecord)
	case "enum_specifier":
		w.walkEnum(n, nsPath, access)
	case "function_definition":
		w.walkFunction(n, nsPath, access, templateParams, enclosingRecord, true)
	case "declaration", "type_definition":
		w.walkFreeDeclaration(n, nsPath, access, templateParams, enclosingRecord)
	case "field_declaration":
		// A member function prototype is a field_declaration whose
		// declarator is a function_declarator.
		if d := n.ChildByFieldName("declarator"); d != nil && declaratorIsFunction(d) {
			w.walkFunction(n, nsPath, access, templateParams, enclosingRecord, false)
		} else {
			w.walkFieldDeclaration(n, nsPath, access, enclosingRecord)
		}
	case "alias_declaration":
		w.walkAliasDeclaration(n, nsPath, access, enclosingRecord)
	case "using_declaration":
		w.walkUsingDeclaration(n, nsPath, access, enclosingRecord)
	case "access_specifier":
		// Handled by the field_declaration_list loop directly; nothing to do
		// when reached standalone (shouldn't normally happen).
	case "linkage_specification":
		// extern "C" { ... } — descend without changing namespace scope.
		body := n.ChildByFieldName("body")
		if body != nil {
			w.walkChildren(body, nsPath, access)
		}
	case "declaration_list":
		w.walkChildren(n, nsPath, access)
	default:
		// Unrecognized node kinds (static_assert, empty_declaration,
		// preproc directives that survived parsing, etc.) are simply not
		// documentable and are skipped.
	}
}

// ---- namespaces ----

func (w *walker) walkNamespace(n *sitter.Node, nsPath []string) {
	nameNode := n.ChildByFieldName("name")
	anonymous := nameNode == nil
	name := ""
	if nameNode != nil {
		name = nameText(nameNode, w.src())
	}

	childPath := nsPath
	if anonymous {
		childPath = append(append([]string{}, nsPath...), "")
	} else {
		childPath = append(append([]string{}, nsPath...), name)
	}

	if !anonymous {
		usr := usrForNamespace(childPath)
		d := &NamespaceDecl{
			declBase: declBase{
				usr:                 usr,
				kind:                DeclNamespace,
				name:                name,
				file:                w.tu.parser.relPath(w.tu.path),
				line:                int(n.StartPoint().Row) + 1,
				enclosingNamespaces: nsPath,
				access:              AccessNone,
				isInSystemHeader:    w.tu.parser.isSystemPath(w.tu.path),
			},
			IsAnonymous: false,
		}
		w.add(d)
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		// Some grammar versions expose the body as the trailing
		// declaration_list named child instead of a field.
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			if c.Type() == "declaration_list" {
				body = c
				break
			}
		}
	}
	if body != nil {
		w.walkChildren(body, childPath, AccessNone)
	}
}

// ---- records ----

func (w *walker) walkRecord(n *sitter.Node, nsPath []string, declAccess Access, recordType int, templateParams []TemplateParamDecl, enclosingRecord string) {
	nameNode := n.ChildByFieldName("name")
	hasName := nameNode != nil
	name := ""
	if hasName {
		// A primary template's name field is a bare type_identifier
		// ("Vec"); an explicit or partial specialization's name field is
		// a template_type ("Vec<int>") whose verbatim text already
		// carries the §4.4 "<...>" suffix, so no separate rendering step
		// is needed to distinguish the two cases.
		name = nameText(nameNode, w.src())
	}

	if !hasName {
		// Case 1 of §4.4: an associated typedef-for-anonymous supplies the
		// name. Tree-sitter surfaces this as the sibling declarator of a
		// type_definition wrapping this specifier; walkFreeDeclaration
		// handles that pattern and builds the record itself via
		// walkNamedAnonymousRecord, so a bare anonymous record reached
		// here with no name is dropped (case 2).
		return
	}

	if enclosingRecord != "" {
		name = enclosingRecord + "::" + name
	}

	body := n.ChildByFieldName("body")
	isNonDefining := body == nil

	rd := &RecordDecl{
		declBase: declBase{
			kind:                DeclRecord,
			name:                name,
			file:                w.tu.parser.relPath(w.tu.path),
			line:                int(n.StartPoint().Row) + 1,
			enclosingNamespaces: nsPath,
			access:              declAccess,
			isInSystemHeader:    w.tu.parser.isSystemPath(w.tu.path),
		},
		RecordType:             recordType,
		TemplateParams:         templateParams,
		IsNonDefining:          isNonDefining,
		IsSpecializationNoArgs: nameNode.Type() == "template_type" && specializationHasNoWrittenArgs(nameNode),
		HasWrittenName:         true,
		NestedInRecordName:     enclosingRecord,
	}

	// A specialization's USR drops its template argument list so that it
	// matches the primary template's USR.
	usrName := name
	if nameNode.Type() == "template_type" {
		if tn := nameNode.ChildByFieldName("name"); tn != nil {
			usrName = nodeText(tn, w.src())
			if enclosingRecord != "" {
				usrName = enclosingRecord + "::" + usrName
			}
		}
	}
	baseUSR := usrForRecord(nsPath, usrName)
	rd.usr = baseUSR

	bases := n.ChildByFieldName("bases")
	if bases == nil {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			if c.Type() == "base_class_clause" {
				bases = c
				break
			}
		}
	}
	if bases != nil {
		rd.BaseRecords = w.baseRecordList(bases)
	}

	if body != nil {
		w.walkFieldDeclarationList(body, nsPath, rd)
	}

	w.add(rd)
}

func (w *walker) baseRecordList(n *sitter.Node) []BaseRecordDecl {
	var out []BaseRecordDecl
	access := AccessNone
	written := false
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "access_specifier":
			access = accessFromText(nodeText(c, w.src()))
			written = true
		case "type_identifier", "qualified_identifier", "template_type":
			name := nodeText(c, w.src())
			out = append(out, BaseRecordDecl{
				Name:    qualifyStdBase(name),
				USR:     usrForQualifiedName(name),
				Access:  access,
				Written: written,
			})
			access = AccessNone
			written = false
		}
	}
	return out
}

// walkFieldDeclarationList walks a record body, tracking the current
// access region across access_specifier tokens (private by default for
// class, public for struct/union — chosen here from rd.RecordType and
// used until the first explicit specifier).
func (w *walker) walkFieldDeclarationList(n *sitter.Node, nsPath []string, rd *RecordDecl) {
	access := AccessPrivate
	if rd.RecordType != 0 { // struct/union default to public
		access = AccessPublic
	}

	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c.Type() == "access_specifier" {
			access = accessFromText(nodeText(c, w.src()))
			continue
		}

		before := len(w.decls)
		w.walkTopLevel(c, nsPath, access, rd.Name())
		added := w.decls[before:]
		w.decls = w.decls[:before]

		for _, d := range added {
			switch v := d.(type) {
			case *FunctionDecl:
				v.IsRecordMember = true
				v.ParentRecordUSR = rd.usr
				rd.Methods = append(rd.Methods, v)
			case *AliasDecl:
				v.IsRecordMember = true
				rd.Aliases = append(rd.Aliases, v)
			case *memberVarDecl:
				rd.Vars = append(rd.Vars, v.mv)
			case *RecordDecl:
				w.add(v) // nested records are independently documentable
			case *EnumDecl:
				w.add(v)
			default:
				w.add(d)
			}
		}
	}
}

// walkFieldDeclaration handles member-variable declarations (field_declaration
// nodes that are not function declarators).
func (w *walker) walkFieldDeclaration(n *sitter.Node, nsPath []string, access Access, enclosingRecord string) {
	typeNode := n.ChildByFieldName("type")
	typeName := ""
	if typeNode != nil {
		typeName = nodeText(typeNode, w.src())
	}

	isStatic := hasKeywordChild(n, w.src(), "static")
	isAnonymous := typeNode != nil && strings.Contains(typeName, "anonymous ")

	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c.Type() != "field_identifier" && c.Type() != "identifier" {
			continue
		}
		name := nodeText(c, w.src())
		mv := MemberVariableDecl{
			Name:     name,
			TypeName: typeName,
			Access:   access,
			IsStatic: isStatic,
		}
		if isAnonymous {
			mv.TypeName = "anonymous struct/union"
			mv.IsAnonymous = true
		} else {
			mv.TypeUSR = usrForQualifiedName(stripPointerRef(typeName))
		}
		w.pendingMemberVar(enclosingRecord, mv)
	}
}

// pendingMemberVar stashes a member variable on the walker for the
// enclosing walkFieldDeclarationList call to collect. Since Go has no
// direct parent-callback here, we encode it as a synthetic Decl kind
// recognized only by that loop.
type memberVarDecl struct {
	declBase
	mv MemberVariableDecl
}

func (w *walker) pendingMemberVar(enclosingRecord string, mv MemberVariableDecl) {
	w.add(&memberVarDecl{mv: mv})
}

// ---- enums ----

func (w *walker) walkEnum(n *sitter.Node, nsPath []string, access Access) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return // anonymous enum, §4.2 rejects it
	}
	name := nameText(nameNode, w.src())

	enumType := 0
	if hasKeywordChild(n, w.src(), "class") {
		enumType = 1
	} else if hasKeywordChild(n, w.src(), "struct") {
		enumType = 2
	}

	ed := &EnumDecl{
		declBase: declBase{
			usr:                 usrForQualifiedName(strings.Join(append(append([]string{}, nsPath...), name), "::")),
			kind:                DeclEnum,
			name:                name,
			file:                w.tu.parser.relPath(w.tu.path),
			line:                int(n.StartPoint().Row) + 1,
			enclosingNamespaces: nsPath,
			access:              access,
			isInSystemHeader:    w.tu.parser.isSystemPath(w.tu.path),
		},
		EnumType: enumType,
	}

	body := n.ChildByFieldName("body")
	if body != nil {
		var next int64
		count := int(body.NamedChildCount())
		for i := 0; i < count; i++ {
			c := body.NamedChild(i)
			if c.Type() != "enumerator" {
				continue
			}
			enameNode := c.ChildByFieldName("name")
			if enameNode == nil {
				continue
			}
			ename := nodeText(enameNode, w.src())
			val := next
			if vnode := c.ChildByFieldName("value"); vnode != nil {
				if parsed, err := strconv.ParseInt(strings.TrimSpace(nodeText(vnode, w.src())), 0, 64); err == nil {
					val = parsed
				}
			}
			ed.Members = append(ed.Members, EnumMemberDecl{Name: ename, Value: val})
			next = val + 1
		}
	}

	w.add(ed)
}

// ---- functions ----

func (w *walker) walkFreeDeclaration(n *sitter.Node, nsPath []string, access Access, templateParams []TemplateParamDecl, enclosingRecord string) {
	// Called for `declaration` nodes (function prototypes, variable
	// declarations) and for `type_definition` nodes (typedef struct {...}
	// Name;). Dispatch on the declarator.
	declarator := n.ChildByFieldName("declarator")
	if n.Type() == "declaration" && declarator != nil && declaratorIsFunction(declarator) {
		w.walkFunction(n, nsPath, access, templateParams, enclosingRecord, false)
		return
	}
	// typedef-for-anonymous recovery (§4.4 case 1): a typedef whose type
	// is an anonymous class/struct/union specifier.
	if hasKeywordChild(n, w.src(), "typedef") {
		typeNode := n.ChildByFieldName("type")
		if typeNode != nil && isRecordSpecifier(typeNode.Type()) && typeNode.ChildByFieldName("name") == nil {
			if declarator != nil {
				recoveredName := nodeText(declarator, w.src())
				w.walkNamedAnonymousRecord(typeNode, nsPath, access, recoveredName, enclosingRecord)
			}
		}
	}
}

func isRecordSpecifier(t string) bool {
	return t == "class_specifier" || t == "struct_specifier" || t == "union_specifier"
}

// walkNamedAnonymousRecord re-enters walkRecord with a synthesized name
// for an otherwise-anonymous record recovered from its typedef.
func (w *walker) walkNamedAnonymousRecord(n *sitter.Node, nsPath []string, access Access, recoveredName string, enclosingRecord string) {
	recordType := 0
	switch n.Type() {
	case "struct_specifier":
		recordType = 1
	case "union_specifier":
		recordType = 2
	}

	name := recoveredName
	if enclosingRecord != "" {
		name = enclosingRecord + "::" + name
	}

	body := n.ChildByFieldName("body")
	rd := &RecordDecl{
		declBase: declBase{
			usr:                 usrForRecord(nsPath, name),
			kind:                DeclRecord,
			name:                name,
			file:                w.tu.parser.relPath(w.tu.path),
			line:                int(n.StartPoint().Row) + 1,
			enclosingNamespaces: nsPath,
			access:              access,
			isInSystemHeader:    w.tu.parser.isSystemPath(w.tu.path),
		},
		RecordType:         recordType,
		HasWrittenName:     true,
		NestedInRecordName: enclosingRecord,
		AnonymousTypedefName: recoveredName,
	}
	if body != nil {
		w.walkFieldDeclarationList(body, nsPath, rd)
	}
	w.add(rd)
}

func (w *walker) walkFunction(n *sitter.Node, nsPath []string, access Access, templateParams []TemplateParamDecl, enclosingRecord string, hasBody bool) {
	declarator := n.ChildByFieldName("declarator")
	if declarator == nil {
		return
	}
	fnDeclarator := innermostFunctionDeclarator(declarator)
	if fnDeclarator == nil {
		return
	}

	nameNode := fnDeclarator.ChildByFieldName("declarator")
	if nameNode == nil {
		return
	}
	rawName := nodeText(nameNode, w.src())

	if hasKeywordChild(n, w.src(), "delete") {
		return // deleted functions are a non-goal (§1)
	}

	isCtorOrDtor := false
	isDestructor := strings.HasPrefix(rawName, "~")
	name := rawName
	if enclosingRecord != "" {
		simple := enclosingRecord
		if idx := strings.LastIndex(simple, "::"); idx >= 0 {
			simple = simple[idx+2:]
		}
		simpleNoArgs := simple
		if idx := strings.Index(simpleNoArgs, "<"); idx >= 0 {
			simpleNoArgs = simpleNoArgs[:idx]
		}
		if rawName == simple || rawName == simpleNoArgs || isDestructor && strings.TrimPrefix(rawName, "~") == simpleNoArgs {
			isCtorOrDtor = true
			name = stripAngleSpecialization(rawName)
		}
	}

	isConversionOp := strings.HasPrefix(rawName, "operator ") && !strings.HasPrefix(rawName, "operator\"")

	returnTypeNode := n.ChildByFieldName("type")
	returnTypeName := ""
	if returnTypeNode != nil {
		returnTypeName = nodeText(returnTypeNode, w.src())
	}
	if isCtorOrDtor {
		returnTypeName = ""
	}

	params := w.functionParams(fnDeclarator)

	isVariadic := false
	if pl := fnDeclarator.ChildByFieldName("parameters"); pl != nil {
		for i := 0; i < int(pl.NamedChildCount()); i++ {
			if pl.NamedChild(i).Type() == "variadic_parameter" {
				isVariadic = true
			}
		}
	}

	fd := &FunctionDecl{
		declBase: declBase{
			kind:                DeclFunction,
			name:                name,
			file:                w.tu.parser.relPath(w.tu.path),
			line:                int(n.StartPoint().Row) + 1,
			enclosingNamespaces: nsPath,
			access:              access,
			isInSystemHeader:    w.tu.parser.isSystemPath(w.tu.path),
		},
		ReturnTypeName: returnTypeName,
		ReturnTypeUSR:  usrForQualifiedName(stripPointerRef(returnTypeName)),
		Params:         params,
		TemplateParams: templateParams,
		IsVariadic:     isVariadic,
		IsVirtual:      hasKeywordChild(n, w.src(), "virtual"),
		IsConstexpr:    hasKeywordChild(n, w.src(), "constexpr"),
		IsConsteval:    hasKeywordChild(n, w.src(), "consteval"),
		IsInline:       hasKeywordChild(n, w.src(), "inline"),
		IsNoDiscard:    strings.Contains(nodeText(n, w.src()), "[[nodiscard]]"),
		IsNoReturn:     hasKeywordChild(n, w.src(), "noreturn") || strings.Contains(nodeText(n, w.src()), "[[noreturn]]"),
		IsConst:        hasTrailingKeyword(fnDeclarator, w.src(), "const"),
		IsExplicit:     hasKeywordChild(n, w.src(), "explicit"),
		IsCtorOrDtor:   isCtorOrDtor,
		IsConversionOp: isConversionOp,
		StorageClassExtern: hasKeywordChild(n, w.src(), "extern"),
	}

	if enclosingRecord == "" && hasKeywordChild(n, w.src(), "static") {
		fd.IsStaticMember = true // non-member static: FunctionExtractor drops it
	}

	if noexceptNode := findNoexceptSpecifier(fnDeclarator, w.src()); noexceptNode != "" {
		fd.IsNoExcept = true
		if noexceptNode == "computed" {
			fd.IsNoExceptComputed = true
			fd.IsNoExcept = false // §4.3 caveat: computed noexcept(expr) recorded non-noexcept by default
		}
	}

	fd.usr = usrForFunction(nsPath, enclosingRecord, name, params)

	w.add(fd)
}
