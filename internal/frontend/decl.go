package frontend

// DeclKind identifies which concrete Decl type a Decl value holds.
type DeclKind int

const (
	DeclFunction DeclKind = iota
	DeclRecord
	DeclEnum
	DeclNamespace
	DeclAlias
)

// Access mirrors docgraph.Access without importing the root package
// (internal/frontend must not depend on docgraph, which depends on it).
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

// Decl is the common surface every declaration shape exposes. It is
// docgraph's stand-in for a compiler AST node handed to an extractor:
// identity, location, and filtering predicates live here; kind-specific
// data lives on the concrete *FunctionDecl / *RecordDecl / etc. types.
type Decl interface {
	// USR is a deterministic, cross-TU-stable identifier string. Two
	// declarations of the same entity — including a template
	// specialization and its primary template — produce the same USR.
	USR() string
	Kind() DeclKind
	Name() string
	File() string
	Line() int
	EnclosingNamespaces() []string // innermost last; anonymous namespaces included
	Access() Access

	IsImplicit() bool
	IsTemplateInstantiation() bool
	IsInSystemHeader() bool
	IsInvalidRange() bool

	DocCommentBrief() string
	DocCommentLong() string
}

// declBase is embedded by every concrete decl type and implements the
// common Decl surface.
type declBase struct {
	usr                     string
	kind                    DeclKind
	name                    string
	file                    string
	line                    int
	enclosingNamespaces     []string
	access                  Access
	isImplicit              bool
	isTemplateInstantiation bool
	isInSystemHeader        bool
	isInvalidRange          bool
	docBrief                string
	docLong                 string
}

func (d *declBase) USR() string                     { return d.usr }
func (d *declBase) Kind() DeclKind                  { return d.kind }
func (d *declBase) Name() string                    { return d.name }
func (d *declBase) File() string                    { return d.file }
func (d *declBase) Line() int                       { return d.line }
func (d *declBase) EnclosingNamespaces() []string   { return d.enclosingNamespaces }
func (d *declBase) Access() Access                  { return d.access }
func (d *declBase) IsImplicit() bool                { return d.isImplicit }
func (d *declBase) IsTemplateInstantiation() bool   { return d.isTemplateInstantiation }
func (d *declBase) IsInSystemHeader() bool          { return d.isInSystemHeader }
func (d *declBase) IsInvalidRange() bool            { return d.isInvalidRange }
func (d *declBase) DocCommentBrief() string         { return d.docBrief }
func (d *declBase) DocCommentLong() string          { return d.docLong }

// FunctionParamDecl is one parameter in a FunctionDecl's parameter list.
type FunctionParamDecl struct {
	Name         string
	TypeName     string
	TypeUSR      string // resolved tag USR, or "" if unresolved
	DefaultValue string
}

// TemplateParamDecl mirrors docgraph.TemplateParam at the frontend layer.
type TemplateParamDecl struct {
	Kind            int // 0=type, 1=non-type, 2=template-template
	Name            string
	Type            string
	DefaultValue    string
	IsTypename      bool
	IsParameterPack bool
}

// FunctionDecl is a free function, member function, constructor, or
// destructor declaration.
type FunctionDecl struct {
	declBase

	ReturnTypeName string
	ReturnTypeUSR  string
	Params         []FunctionParamDecl
	TemplateParams []TemplateParamDecl

	IsVariadic       bool
	IsVirtual        bool
	IsConstexpr      bool
	IsConsteval      bool
	IsInline         bool
	IsNoDiscard      bool
	IsNoExcept       bool
	IsNoExceptComputed bool // noexcept(expr) form, as opposed to bare noexcept
	IsNoReturn       bool
	IsConst          bool
	IsVolatile       bool
	IsRestrict       bool
	IsExplicit       bool
	IsCtorOrDtor     bool
	IsConversionOp   bool
	IsRecordMember   bool
	IsStaticMember   bool // static non-member function (dropped by FunctionExtractor)
	IsDeleted        bool
	IsDeductionGuide bool

	RefQualifier      int // 0=none,1=lvalue,2=rvalue
	StorageClassExtern bool
	HasTrailingReturn bool

	// ParentRecordUSR is set when IsRecordMember (methods declared inside a
	// record body); FunctionExtractor hashes it into the method's
	// parent pointer.
	ParentRecordUSR string
}

// BaseRecordDecl is one entry of a RecordDecl's base-class list.
type BaseRecordDecl struct {
	Name     string
	USR      string
	Access   Access
	Written  bool // true if the access-specifier token was written explicitly
}

// MemberVariableDecl mirrors docgraph.MemberVariable at the frontend layer.
type MemberVariableDecl struct {
	Name         string
	TypeName     string
	TypeUSR      string
	DefaultValue string
	Access       Access
	IsStatic     bool
	IsAnonymous  bool
	DocComment   string
}

// RecordDecl is a class, struct, or union declaration.
type RecordDecl struct {
	declBase

	RecordType     int // 0=class,1=struct,2=union
	TemplateParams []TemplateParamDecl
	BaseRecords    []BaseRecordDecl
	Vars           []MemberVariableDecl

	// Methods/Aliases are the methods/aliases declared directly inside the
	// record body; RecordExtractor runs each through its extractor (and so
	// through IgnoreFilter) before storing its ID.
	Methods []*FunctionDecl
	Aliases []*AliasDecl

	IsNonDefining            bool // forward declaration without a body
	IsSpecializationNoArgs   bool // class-template specialization w/o written type
	HasWrittenName           bool
	AnonymousTypedefName     string // name recovered via typedef-for-anonymous
	NestedInRecordName       string // non-empty if nested inside another record
}

// EnumMemberDecl is one enumerator.
type EnumMemberDecl struct {
	Name       string
	Value      int64
	DocComment string
}

// EnumDecl is an enum, enum class, or enum struct declaration.
type EnumDecl struct {
	declBase

	EnumType int // 0=plain,1=class,2=struct
	Members  []EnumMemberDecl
	IsAnonymous bool
}

// NamespaceDecl is a namespace declaration (possibly a reopening).
type NamespaceDecl struct {
	declBase

	IsAnonymous bool
}

// AliasDecl is a using-declaration, using-shadow-declaration, or
// type-alias declaration.
type AliasDecl struct {
	declBase

	TargetName      string
	TargetUSR       string
	IsRecordMember  bool
	IsInsideFunction bool

	// Shadows holds, for a UsingDecl importing overloads, every shadowed
	// declaration in source order; AliasExtractor keeps the last one.
	Shadows []AliasShadow
}

// AliasShadow is one shadowed declaration imported by a using-declaration.
type AliasShadow struct {
	Name string
	USR  string
}
