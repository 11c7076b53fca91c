package diff

import (
	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
	"github.com/schemasync/schemasync/normalize"
)

func diffEvents(table string, cur, des []model.Event) []model.Change {
	curByName := map[string]model.Event{}
	for _, e := range cur {
		curByName[e.Name] = e
	}
	desByName := map[string]bool{}
	for _, e := range des {
		desByName[e.Name] = true
	}

	var creates, modifies, removes []model.Change
	for _, d := range des {
		c, ok := curByName[d.Name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindEvent, Table: table, Entity: d.Name, Operation: model.OpCreate, Details: d})
			continue
		}
		if !normalize.Equal(c.When, d.When) || !normalize.EventThenEqual(c.Then, d.Then) {
			modifies = append(modifies, model.Change{
				Kind: model.KindEvent, Table: table, Entity: d.Name, Operation: model.OpModify,
				Details: model.EventModifyDetails{Old: c, New: d},
			})
		}
	}
	for name, c := range curByName {
		if !desByName[name] {
			removes = append(removes, model.Change{Kind: model.KindEvent, Table: table, Entity: name, Operation: model.OpRemove, Details: c})
		}
	}

	out := append(creates, modifies...)
	return append(out, removes...)
}

func eventStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		e := c.Details.(model.Event)
		return []string{generate.Event(c.Table, e, false)}, []string{generate.EventRemove(c.Table, e.Name)}
	case model.OpRemove:
		e := c.Details.(model.Event)
		return []string{generate.EventRemove(c.Table, e.Name)}, []string{generate.Event(c.Table, e, false)}
	case model.OpModify:
		d := c.Details.(model.EventModifyDetails)
		return []string{generate.Event(c.Table, d.New, true)}, []string{generate.Event(c.Table, d.Old, true)}
	}
	return nil, nil
}
