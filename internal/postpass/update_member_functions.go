package postpass

import (
	"fmt"
	"strings"

	"github.com/mkrause/docgraph/internal/model"
)

// updateMemberFunctions implements spec.md §4.6. When a method is
// declared out of its class body, the front-end loses the enclosing
// record's template-parameter names and instead emits canonical
// placeholders ("type-parameter-0-i"); this pass substitutes the
// record's own parameter names back in, everywhere the placeholder can
// appear: the rendered Proto (split at the PostTemplate/NameStart
// offsets so each part is substituted and re-measured independently),
// the function's Name, and every parameter's Type.Name/DefaultValue.
func updateMemberFunctions(idx *model.Index) {
	for _, e := range idx.Records.Entries() {
		rs := e.Value
		if len(rs.TemplateParams) == 0 {
			continue
		}

		subst := placeholderSubstitution(rs.TemplateParams)
		if len(subst) == 0 {
			continue
		}

		for _, methodID := range rs.MethodIDs {
			fs, ok := idx.Functions.Get(methodID)
			if !ok {
				continue
			}
			applySubstitution(fs, subst)
			idx.Functions.Update(methodID, fs)
		}
	}
}

func placeholderSubstitution(params []model.TemplateParam) map[string]string {
	subst := make(map[string]string, len(params))
	for i, p := range params {
		if p.Name == "" {
			continue
		}
		subst[fmt.Sprintf("type-parameter-0-%d", i)] = p.Name
	}
	return subst
}

func substitute(s string, subst map[string]string) string {
	for placeholder, name := range subst {
		s = strings.ReplaceAll(s, placeholder, name)
	}
	return s
}

func applySubstitution(fs *model.FunctionSymbol, subst map[string]string) {
	templatePart := substitute(fs.Proto[:fs.PostTemplate], subst)
	preNamePart := substitute(fs.Proto[fs.PostTemplate:fs.NameStart], subst)
	restPart := substitute(fs.Proto[fs.NameStart:], subst)

	fs.Name = substitute(fs.Name, subst)
	for i := range fs.Params {
		fs.Params[i].Type.Name = substitute(fs.Params[i].Type.Name, subst)
		fs.Params[i].DefaultValue = substitute(fs.Params[i].DefaultValue, subst)
	}

	fs.Proto = templatePart + preNamePart + restPart
	fs.PostTemplate = len(templatePart)
	fs.NameStart = len(templatePart) + len(preNamePart)
}
