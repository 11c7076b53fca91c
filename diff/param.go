package diff

import (
	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
	"github.com/schemasync/schemasync/normalize"
)

// diffParams compares params. Params are always altered granularly, never
// overwritten (§4.3 step 7).
func diffParams(desired, current *model.Schema) []model.Change {
	var creates, modifies, removes []model.Change
	for name, d := range desired.Params {
		c, ok := current.Params[name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindParam, Entity: name, Operation: model.OpCreate, Details: *d})
			continue
		}
		if !normalize.AssertEqual(c.Value, d.Value) {
			modifies = append(modifies, model.Change{Kind: model.KindParam, Entity: name, Operation: model.OpModify,
				Details: model.ParamModifyDetails{OldValue: c.Value, NewValue: d.Value}})
		}
	}
	for name, c := range current.Params {
		if _, ok := desired.Params[name]; !ok {
			removes = append(removes, model.Change{Kind: model.KindParam, Entity: name, Operation: model.OpRemove, Details: *c})
		}
	}
	out := append(creates, modifies...)
	return append(out, removes...)
}

func paramStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		p := c.Details.(model.Param)
		return []string{generate.Param(p)}, []string{generate.ParamRemove(p.Name)}
	case model.OpRemove:
		p := c.Details.(model.Param)
		return []string{generate.ParamRemove(p.Name)}, []string{generate.Param(p)}
	case model.OpModify:
		d := c.Details.(model.ParamModifyDetails)
		return []string{generate.ParamAlter(c.Entity, d.NewValue)}, []string{generate.ParamAlter(c.Entity, d.OldValue)}
	}
	return nil, nil
}
