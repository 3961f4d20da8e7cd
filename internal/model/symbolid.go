package model

import "github.com/google/uuid"

// docgraphNamespace is the namespace UUID all SymbolIDs are derived under
// via uuid.NewSHA1. Using a fixed namespace (rather than uuid.NameSpaceOID
// or similar) keeps docgraph's ID space independent of any other SHA1-UUID
// producer that might hash the same USR string for an unrelated purpose.
var docgraphNamespace = uuid.MustParse("a1e45e4e-8f6a-4f0e-9d1c-6f5b6e6a9b10")

// SymbolID is a stable, content-addressed 128-bit identity for any
// documentable declaration. Two declarations that the front-end considers
// the same entity — including a template specialization and its primary
// template — hash to the same SymbolID. The zero value is "unresolved".
type SymbolID uuid.UUID

// NullSymbolID is the sentinel "unresolved" identity.
var NullSymbolID = SymbolID{}

// IsNull reports whether id is the unresolved sentinel.
func (id SymbolID) IsNull() bool {
	return id == NullSymbolID
}

func (id SymbolID) String() string {
	return uuid.UUID(id).String()
}

// NewSymbolID deterministically derives a SymbolID from a declaration's
// canonical USR (see internal/frontend's Decl.USR). Equal USRs — including
// a specialization's USR after template-primary reduction — always produce
// equal SymbolIDs, satisfying spec property 1 (stability across runs) and
// property 2 (template collapse).
func NewSymbolID(usr string) SymbolID {
	if usr == "" {
		return NullSymbolID
	}
	return SymbolID(uuid.NewSHA1(docgraphNamespace, []byte(usr)))
}
