package diff

import (
	"reflect"

	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
)

// diffIndexes compares two index lists. Indexes are never altered in place:
// any difference at all forces a drop-and-recreate (§4.3 step 4).
func diffIndexes(table string, cur, des []model.Index) []model.Change {
	curByName := map[string]model.Index{}
	for _, i := range cur {
		curByName[i.Name] = i
	}
	desByName := map[string]bool{}
	for _, i := range des {
		desByName[i.Name] = true
	}

	var creates, modifies, removes []model.Change
	for _, d := range des {
		c, ok := curByName[d.Name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindIndex, Table: table, Entity: d.Name, Operation: model.OpCreate, Details: d})
			continue
		}
		if !reflect.DeepEqual(c, d) {
			modifies = append(modifies, model.Change{
				Kind: model.KindIndex, Table: table, Entity: d.Name, Operation: model.OpModify,
				Details: model.IndexRecreateDetails{Old: c, New: d},
			})
		}
	}
	for name, c := range curByName {
		if !desByName[name] {
			removes = append(removes, model.Change{Kind: model.KindIndex, Table: table, Entity: name, Operation: model.OpRemove, Details: c})
		}
	}

	out := append(creates, modifies...)
	return append(out, removes...)
}

func indexStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		i := c.Details.(model.Index)
		return []string{generate.Index(c.Table, i)}, []string{generate.IndexRemove(c.Table, i.Name)}
	case model.OpRemove:
		i := c.Details.(model.Index)
		return []string{generate.IndexRemove(c.Table, i.Name)}, []string{generate.Index(c.Table, i)}
	case model.OpModify:
		d := c.Details.(model.IndexRecreateDetails)
		return []string{generate.IndexRemove(c.Table, d.Old.Name), generate.Index(c.Table, d.New)},
			[]string{generate.IndexRemove(c.Table, d.New.Name), generate.Index(c.Table, d.Old)}
	}
	return nil, nil
}
