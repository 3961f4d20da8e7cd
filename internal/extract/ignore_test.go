package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkrause/docgraph/internal/frontend"
)

// fakeDecl is a minimal frontend.Decl used to exercise Ignore without
// going through the tree-sitter front end.
type fakeDecl struct {
	name                string
	file                string
	ns                  []string
	access              frontend.Access
	invalidRange        bool
	systemHeader        bool
	implicit            bool
	templateInstantiated bool
}

func (f *fakeDecl) USR() string                     { return "c:@F@" + f.name }
func (f *fakeDecl) Kind() frontend.DeclKind         { return frontend.DeclFunction }
func (f *fakeDecl) Name() string                    { return f.name }
func (f *fakeDecl) File() string                    { return f.file }
func (f *fakeDecl) Line() int                       { return 1 }
func (f *fakeDecl) EnclosingNamespaces() []string   { return f.ns }
func (f *fakeDecl) Access() frontend.Access         { return f.access }
func (f *fakeDecl) IsImplicit() bool                { return f.implicit }
func (f *fakeDecl) IsTemplateInstantiation() bool   { return f.templateInstantiated }
func (f *fakeDecl) IsInSystemHeader() bool          { return f.systemHeader }
func (f *fakeDecl) IsInvalidRange() bool            { return f.invalidRange }
func (f *fakeDecl) DocCommentBrief() string         { return "" }
func (f *fakeDecl) DocCommentLong() string          { return "" }

func TestIgnore_SystemHeaderIsDropped(t *testing.T) {
	t.Parallel()
	d := &fakeDecl{name: "f", file: "a.cpp", systemHeader: true}
	assert.True(t, Ignore(d, FilterConfig{}))
}

func TestIgnore_InvalidRangeIsDropped(t *testing.T) {
	t.Parallel()
	d := &fakeDecl{name: "f", file: "a.cpp", invalidRange: true}
	assert.True(t, Ignore(d, FilterConfig{}))
}

func TestIgnore_ImplicitAndTemplateInstantiationAreDropped(t *testing.T) {
	t.Parallel()
	assert.True(t, Ignore(&fakeDecl{name: "f", file: "a.cpp", implicit: true}, FilterConfig{}))
	assert.True(t, Ignore(&fakeDecl{name: "f", file: "a.cpp", templateInstantiated: true}, FilterConfig{}))
}

func TestIgnore_AnonymousNamespaceIsDropped(t *testing.T) {
	t.Parallel()
	d := &fakeDecl{name: "f", file: "a.cpp", ns: []string{"outer", ""}}
	assert.True(t, Ignore(d, FilterConfig{}))
}

func TestIgnore_IgnorePathSubstringMatch(t *testing.T) {
	t.Parallel()
	d := &fakeDecl{name: "f", file: "vendor/lib/a.cpp"}
	assert.True(t, Ignore(d, FilterConfig{IgnorePaths: []string{"vendor/"}}))
	assert.False(t, Ignore(d, FilterConfig{IgnorePaths: []string{"other/"}}))
}

func TestIgnore_IgnoreNamespaceSubstringMatch(t *testing.T) {
	t.Parallel()
	d := &fakeDecl{name: "f", file: "a.cpp", ns: []string{"detail"}}
	assert.True(t, Ignore(d, FilterConfig{IgnoreNamespaces: []string{"detail"}}))
	assert.False(t, Ignore(d, FilterConfig{IgnoreNamespaces: []string{"other"}}))
}

func TestIgnore_PrivateMembersDroppedWhenConfigured(t *testing.T) {
	t.Parallel()
	d := &fakeDecl{name: "f", file: "a.cpp", access: frontend.AccessPrivate}
	assert.True(t, Ignore(d, FilterConfig{IgnorePrivateMembers: true}))
	assert.False(t, Ignore(d, FilterConfig{IgnorePrivateMembers: false}))
}

func TestIgnore_NoConditionsMet_IsKept(t *testing.T) {
	t.Parallel()
	d := &fakeDecl{name: "f", file: "a.cpp", access: frontend.AccessPublic}
	assert.False(t, Ignore(d, FilterConfig{}))
}
