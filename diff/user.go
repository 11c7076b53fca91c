package diff

import (
	"reflect"

	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
)

func diffUsers(desired, current *model.Schema) []model.Change {
	var creates, modifies, removes []model.Change
	for name, d := range desired.Users {
		c, ok := current.Users[name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindUser, Entity: name, Operation: model.OpCreate, Details: *d})
			continue
		}
		if !usersEqual(*c, *d) {
			modifies = append(modifies, model.Change{Kind: model.KindUser, Entity: name, Operation: model.OpModify,
				Details: model.UserModifyDetails{Old: *c, New: *d}})
		}
	}
	for name, c := range current.Users {
		if _, ok := desired.Users[name]; !ok {
			removes = append(removes, model.Change{Kind: model.KindUser, Entity: name, Operation: model.OpRemove, Details: *c})
		}
	}
	out := append(creates, modifies...)
	return append(out, removes...)
}

func usersEqual(a, b model.User) bool {
	return a.Level == b.Level && a.Password == b.Password && reflect.DeepEqual(a.Roles, b.Roles)
}

func userStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		u := c.Details.(model.User)
		return []string{generate.User(u, false)}, []string{generate.UserRemove(u.Name, u.Level)}
	case model.OpRemove:
		u := c.Details.(model.User)
		return []string{generate.UserRemove(u.Name, u.Level)}, []string{generate.User(u, false)}
	case model.OpModify:
		d := c.Details.(model.UserModifyDetails)
		return []string{generate.User(d.New, true)}, []string{generate.User(d.Old, true)}
	}
	return nil, nil
}
