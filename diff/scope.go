package diff

import (
	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
	"github.com/schemasync/schemasync/normalize"
)

func diffScopes(desired, current *model.Schema) []model.Change {
	var creates, modifies, removes []model.Change
	for name, d := range desired.Scopes {
		c, ok := current.Scopes[name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindScope, Entity: name, Operation: model.OpCreate, Details: *d})
			continue
		}
		if !scopesEqual(*c, *d) {
			modifies = append(modifies, model.Change{Kind: model.KindScope, Entity: name, Operation: model.OpModify,
				Details: model.ScopeModifyDetails{Old: *c, New: *d}})
		}
	}
	for name, c := range current.Scopes {
		if _, ok := desired.Scopes[name]; !ok {
			removes = append(removes, model.Change{Kind: model.KindScope, Entity: name, Operation: model.OpRemove, Details: *c})
		}
	}
	out := append(creates, modifies...)
	return append(out, removes...)
}

func scopesEqual(a, b model.Scope) bool {
	return normalize.DurationEqual(a.Session, b.Session) &&
		normalize.AssertEqual(a.Signup, b.Signup) &&
		normalize.AssertEqual(a.Signin, b.Signin)
}

func scopeStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		s := c.Details.(model.Scope)
		return []string{generate.Scope(s, false)}, []string{generate.ScopeRemove(s.Name)}
	case model.OpRemove:
		s := c.Details.(model.Scope)
		return []string{generate.ScopeRemove(s.Name)}, []string{generate.Scope(s, false)}
	case model.OpModify:
		d := c.Details.(model.ScopeModifyDetails)
		return []string{generate.Scope(d.New, true)}, []string{generate.Scope(d.Old, true)}
	}
	return nil, nil
}
