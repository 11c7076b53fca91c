package diff

import (
	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
)

// diffTables diffs the table collection, restricted to relation tables when
// wantRelation is true and to plain tables otherwise — the forward script
// processes all plain tables before any relation table (§4.3 ordering).
// Table renames are never automatically detected: the data model carries no
// previousName hint for tables (only fields carry one), so a table that
// disappears and reappears under a new name is always a remove+create pair.
func diffTables(desired, current *model.Schema, wantRelation bool) []model.Change {
	var creates, modifies, removes []model.Change

	for name, d := range desired.Tables {
		if d.IsRelation() != wantRelation {
			continue
		}
		c, ok := current.Tables[name]
		if !ok {
			creates = append(creates, tableCreateChange(*d))
			continue
		}
		if m := diffTable(*c, *d); m != nil {
			modifies = append(modifies, *m)
		}
	}

	for name, c := range current.Tables {
		if c.IsRelation() != wantRelation {
			continue
		}
		if _, ok := desired.Tables[name]; !ok {
			removes = append(removes, tableRemoveChange(*c))
		}
	}

	out := append(creates, modifies...)
	return append(out, removes...)
}

func tableCreateChange(t model.Table) model.Change {
	return model.Change{Kind: model.KindTable, Entity: t.Name, Operation: model.OpCreate, Details: model.TableSnapshotDetails{Table: t}}
}

func tableRemoveChange(t model.Table) model.Change {
	return model.Change{Kind: model.KindTable, Entity: t.Name, Operation: model.OpRemove, Details: model.TableSnapshotDetails{Table: t}}
}

// diffTable compares one table's current and desired states. A changed
// relation endpoint forces a full recreate; otherwise the table header is
// overwritten in place (if its own properties changed) and its
// subcomponents are diffed independently.
func diffTable(cur, des model.Table) *model.Change {
	if cur.IsRelation() && des.IsRelation() && (cur.Relation.From != des.Relation.From || cur.Relation.To != des.Relation.To) {
		c := model.Change{Kind: model.KindTable, Entity: des.Name, Operation: model.OpRecreate,
			Details: model.TableRecreateDetails{Old: cur, New: des}}
		return &c
	}

	headerChanged := cur.Schemafull != des.Schemafull || cur.Comment != des.Comment
	subChanges := diffTableSubcomponents(cur, des)

	if !headerChanged && len(subChanges) == 0 {
		return nil
	}

	c := model.Change{Kind: model.KindTable, Entity: des.Name, Operation: model.OpModify,
		Details: tableModifyDetailsWithSub{TableRecreateDetails: model.TableRecreateDetails{Old: cur, New: des}, Sub: subChanges}}
	return &c
}

// tableModifyDetailsWithSub extends TableRecreateDetails with the
// subcomponent change list a table-contents modify carries. It's kept
// unexported since only this package's script assembly needs to see it;
// nothing outside diff inspects the shape of Details for a table modify.
type tableModifyDetailsWithSub struct {
	model.TableRecreateDetails
	Sub []model.Change
}

func diffTableSubcomponents(cur, des model.Table) []model.Change {
	var changes []model.Change
	changes = append(changes, diffFields(des.Name, cur.Fields, des.Fields)...)
	changes = append(changes, diffIndexes(des.Name, cur.Indexes, des.Indexes)...)
	changes = append(changes, diffEvents(des.Name, cur.Events, des.Events)...)
	return changes
}

func tableStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		d := c.Details.(model.TableSnapshotDetails)
		forward = append(forward, generate.Table(d.Table))
		forward = append(forward, generate.TableSubcomponents(d.Table)...)
		backward = append(backward, generate.TableRemove(d.Table.Name))
		return forward, backward

	case model.OpRemove:
		d := c.Details.(model.TableSnapshotDetails)
		forward = append(forward, generate.TableRemove(d.Table.Name))
		backward = append(backward, generate.Table(d.Table))
		backward = append(backward, generate.TableSubcomponents(d.Table)...)
		return forward, backward

	case model.OpRecreate:
		d := c.Details.(model.TableRecreateDetails)
		forward = append(forward, generate.TableRemove(d.Old.Name))
		forward = append(forward, generate.Table(d.New))
		forward = append(forward, generate.TableSubcomponents(d.New)...)
		backward = append(backward, generate.TableRemove(d.New.Name))
		backward = append(backward, generate.Table(d.Old))
		backward = append(backward, generate.TableSubcomponents(d.Old)...)
		return forward, backward

	case model.OpModify:
		d := c.Details.(tableModifyDetailsWithSub)
		if d.Old.Schemafull != d.New.Schemafull || d.Old.Comment != d.New.Comment {
			forward = append(forward, generate.TableOverwrite(d.New))
			backward = append(backward, generate.TableOverwrite(d.Old))
		}
		// Subcomponent removals precede creates within the modify.
		var subRemoveFwd, subCreateFwd, subRemoveBack, subCreateBack []string
		for _, sc := range d.Sub {
			f, b := statementsFor(sc)
			if sc.Operation == model.OpRemove {
				subRemoveFwd = append(subRemoveFwd, f...)
				subCreateBack = append(subCreateBack, b...)
			} else {
				subCreateFwd = append(subCreateFwd, f...)
				subRemoveBack = append(subRemoveBack, b...)
			}
		}
		forward = append(forward, subRemoveFwd...)
		forward = append(forward, subCreateFwd...)
		backward = append(backward, subRemoveBack...)
		backward = append(backward, subCreateBack...)
		return forward, backward
	}
	return nil, nil
}
