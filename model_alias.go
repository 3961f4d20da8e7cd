package docgraph

import "github.com/mkrause/docgraph/internal/model"

// The symbol model lives in internal/model so that internal/extract and
// internal/postpass can build *FunctionSymbol, *RecordSymbol, etc.
// directly without importing this package (which itself imports them,
// to run the extractors). docgraph re-exports every model type as an
// alias, the same root-level aliasing the teacher project uses for its
// own store-package types.
type (
	SymbolID          = model.SymbolID
	Entry[T any]       = model.Entry[T]
	Database[T any]    = model.Database[T]
	Index              = model.Index

	Access            = model.Access
	RefQualifier      = model.RefQualifier
	TypeRef           = model.TypeRef
	Symbol            = model.Symbol
	FunctionParam     = model.FunctionParam
	TemplateParamKind = model.TemplateParamKind
	TemplateParam     = model.TemplateParam
	StorageClass      = model.StorageClass
	FunctionSymbol    = model.FunctionSymbol
	RecordType        = model.RecordType
	BaseRecord        = model.BaseRecord
	MemberVariable    = model.MemberVariable
	RecordSymbol      = model.RecordSymbol
	EnumType          = model.EnumType
	EnumMember        = model.EnumMember
	EnumSymbol        = model.EnumSymbol
	NamespaceSymbol   = model.NamespaceSymbol
	AliasSymbol       = model.AliasSymbol
)

const (
	AccessNone      = model.AccessNone
	AccessPublic    = model.AccessPublic
	AccessProtected = model.AccessProtected
	AccessPrivate   = model.AccessPrivate

	RefQualifierNone   = model.RefQualifierNone
	RefQualifierLValue = model.RefQualifierLValue
	RefQualifierRValue = model.RefQualifierRValue

	TemplateTypeParam      = model.TemplateTypeParam
	TemplateNonTypeParam   = model.TemplateNonTypeParam
	TemplateTemplateParam  = model.TemplateTemplateParam

	StorageClassNone   = model.StorageClassNone
	StorageClassStatic = model.StorageClassStatic
	StorageClassExtern = model.StorageClassExtern

	RecordClass  = model.RecordClass
	RecordStruct = model.RecordStruct
	RecordUnion  = model.RecordUnion

	EnumPlain  = model.EnumPlain
	EnumClass  = model.EnumClass
	EnumStruct = model.EnumStruct
)

var (
	NullSymbolID  = model.NullSymbolID
	NewSymbolID   = model.NewSymbolID
	NewIndex      = model.NewIndex
)

// NewDatabase is generic and cannot be aliased as a value (Go forbids
// generic function values with unresolved type parameters at package
// scope), so it is a thin wrapper instead of a var alias.
func NewDatabase[T any]() *Database[T] {
	return model.NewDatabase[T]()
}
