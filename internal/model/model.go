package model

// Access is the written visibility of a declaration. AccessNone means no
// access specifier applies (free functions, namespace-scope records).
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "none"
	}
}

// RefQualifier is a member function's ref-qualifier (trailing & or &&).
type RefQualifier int

const (
	RefQualifierNone RefQualifier = iota
	RefQualifierLValue
	RefQualifierRValue
)

// TypeRef is a rendered type name plus the SymbolID it resolves to, if any.
// Id is SymbolID{} (null) when the referent is not a documented entity.
type TypeRef struct {
	Name string
	ID   SymbolID
}

// Symbol is the data common to every documentable declaration kind.
type Symbol struct {
	ID                  SymbolID
	Name                string
	FullyQualifiedName  string
	DeclFile            string // repo-relative
	DeclLine            int
	ParentNamespaceID   SymbolID
	DocCommentBrief     string
	DocCommentLong      string
	Access              Access
}

// FunctionParam is one parameter of a FunctionSymbol.
type FunctionParam struct {
	Name         string
	Type         TypeRef
	DefaultValue string
}

// TemplateParamKind distinguishes the three kinds of template parameter.
type TemplateParamKind int

const (
	TemplateTypeParam TemplateParamKind = iota
	TemplateNonTypeParam
	TemplateTemplateParam
)

// TemplateParam is one entry of a template parameter list, on either a
// function template or a class template.
type TemplateParam struct {
	Kind            TemplateParamKind
	Name            string
	Type            string // rendered type, for NonType/TemplateTemplate
	DefaultValue    string
	IsTypename      bool
	IsParameterPack bool
}

// StorageClass is a function's storage-class specifier.
type StorageClass int

const (
	StorageClassNone StorageClass = iota
	StorageClassStatic
	StorageClassExtern
)

// FunctionSymbol documents a free function, member function, or
// constructor/destructor.
type FunctionSymbol struct {
	Symbol

	Proto        string // complete rendered signature
	PostTemplate int    // byte offset in Proto: end of template prelude
	NameStart    int    // byte offset in Proto: start of the function name

	ReturnType     TypeRef
	Params         []FunctionParam
	TemplateParams []TemplateParam

	IsVariadic     bool
	IsVirtual      bool
	IsConstexpr    bool
	IsConsteval    bool
	IsInline       bool
	IsNoDiscard    bool
	IsNoExcept     bool
	IsNoReturn     bool
	IsConst        bool
	IsVolatile     bool
	IsRestrict     bool
	IsExplicit     bool
	IsCtorOrDtor   bool
	IsConversionOp bool
	IsRecordMember bool

	RefQualifier      RefQualifier
	StorageClass      StorageClass
	HasTrailingReturn bool
}

// RecordType is the syntactic kind of a RecordSymbol.
type RecordType int

const (
	RecordClass RecordType = iota
	RecordStruct
	RecordUnion
)

func (r RecordType) String() string {
	switch r {
	case RecordStruct:
		return "struct"
	case RecordUnion:
		return "union"
	default:
		return "class"
	}
}

// BaseRecord is one entry of a RecordSymbol's base-class list.
type BaseRecord struct {
	ID     SymbolID
	Access Access
	Name   string
}

// MemberVariable is one field or static data member of a RecordSymbol.
type MemberVariable struct {
	Name         string
	Type         TypeRef
	DefaultValue string
	Access       Access
	IsStatic     bool
	DocComment   string
}

// RecordSymbol documents a class, struct, or union.
type RecordSymbol struct {
	Symbol

	Type RecordType
	Proto string // forward-declaration-shaped; updateRecordNames appends inheritance

	TemplateParams []TemplateParam
	BaseRecords    []BaseRecord
	MethodIDs      []SymbolID
	AliasIDs       []SymbolID
	Vars           []MemberVariable
}

// EnumType is the syntactic kind of an EnumSymbol.
type EnumType int

const (
	EnumPlain EnumType = iota
	EnumClass
	EnumStruct
)

func (e EnumType) String() string {
	switch e {
	case EnumClass:
		return "enum class"
	case EnumStruct:
		return "enum struct"
	default:
		return "enum"
	}
}

// EnumMember is one enumerator.
type EnumMember struct {
	Name       string
	Value      int64
	DocComment string
}

// EnumSymbol documents an enum, enum class, or enum struct.
type EnumSymbol struct {
	Symbol

	Type    EnumType
	Members []EnumMember
}

// NamespaceSymbol documents a (possibly reopened) namespace. The four
// child-ID lists are populated by internal/postpass's resolveNamespaces;
// extractors never write to them.
type NamespaceSymbol struct {
	Symbol

	Records    []SymbolID
	Enums      []SymbolID
	Namespaces []SymbolID
	Usings     []SymbolID
}

// AliasSymbol documents a using-declaration, using-shadow, or type alias.
type AliasSymbol struct {
	Symbol

	Target         TypeRef
	IsRecordMember bool
}
