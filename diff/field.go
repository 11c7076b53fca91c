package diff

import (
	"strings"

	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
	"github.com/schemasync/schemasync/normalize"
	"github.com/schemasync/schemasync/rename"
)

// alterableFieldProperties is the subset of field properties eligible for a
// granular ALTER FIELD; anything outside it forces a full OVERWRITE no
// matter how few properties changed.
var alterableFieldProperties = map[string]bool{
	"type": true, "default": true, "value": true,
	"assert": true, "readonly": true, "comment": true,
}

// fieldPropertyOrder fixes the order granular ALTER statements (and the
// OVERWRITE property list) are considered in, matching the DEFINE FIELD
// clause order.
var fieldPropertyOrder = []string{"type", "value", "assert", "default", "readonly", "comment"}

func diffFields(table string, cur, des []model.Field) []model.Change {
	curByName := map[string]model.Field{}
	for _, f := range cur {
		if model.ReservedRelationFields[f.Name] {
			continue
		}
		curByName[f.Name] = f
	}
	disappeared := map[string]bool{}
	for name := range curByName {
		disappeared[name] = true
	}

	var creates, modifies, removes []model.Change
	consumed := map[string]bool{}

	for _, d := range des {
		if model.ReservedRelationFields[d.Name] {
			continue
		}
		if c, ok := curByName[d.Name]; ok {
			if m := diffField(table, c, d); m != nil {
				modifies = append(modifies, *m)
			}
			continue
		}
		if oldName, ok := rename.Match(d.PreviousName, disappeared); ok {
			modifies = append(modifies, model.Change{
				Kind: model.KindField, Table: table, Entity: d.Name, Operation: model.OpRename,
				Details: model.RenameDetails{OldName: oldName, NewName: d.Name},
			})
			consumed[oldName] = true
			if m := diffField(table, curByName[oldName], d); m != nil {
				modifies = append(modifies, *m)
			}
			continue
		}
		creates = append(creates, model.Change{Kind: model.KindField, Table: table, Entity: d.Name, Operation: model.OpCreate, Details: d})
	}

	desByName := map[string]bool{}
	for _, d := range des {
		desByName[d.Name] = true
	}
	for name, c := range curByName {
		if desByName[name] || consumed[name] {
			continue
		}
		removes = append(removes, model.Change{Kind: model.KindField, Table: table, Entity: name, Operation: model.OpRemove, Details: c})
	}

	out := append(creates, modifies...)
	return append(out, removes...)
}

func diffField(table string, old, new model.Field) *model.Change {
	var changed []string
	if !normalize.Equal(old.Type, new.Type) {
		changed = append(changed, "type")
	}
	if old.Optional != new.Optional {
		changed = append(changed, "optional")
	}
	if old.Readonly != new.Readonly {
		changed = append(changed, "readonly")
	}
	if old.Flexible != new.Flexible {
		changed = append(changed, "flexible")
	}
	if !fieldLiteralEqual(old.Default, new.Default) {
		changed = append(changed, "default")
	}
	if !normalize.AssertEqual(old.Value, new.Value) {
		changed = append(changed, "value")
	}
	if !normalize.AssertEqual(old.Assert, new.Assert) {
		changed = append(changed, "assert")
	}
	if !normalize.PermissionsEqual(old.Permissions, new.Permissions) {
		changed = append(changed, "permissions")
	}
	if !normalize.CommentEqual(old.Comment, new.Comment) {
		changed = append(changed, "comment")
	}
	if len(changed) == 0 {
		return nil
	}

	granular := len(changed) <= 3 && allAlterable(changed)
	return &model.Change{
		Kind: model.KindField, Table: table, Entity: new.Name, Operation: model.OpModify,
		Details: model.FieldModifyDetails{Granular: granular, Properties: orderProperties(changed), Old: old, New: new},
	}
}

func fieldLiteralEqual(a, b string) bool {
	return normalize.AssertEqual(normalize.StripOuterQuotes(a), normalize.StripOuterQuotes(b))
}

func allAlterable(props []string) bool {
	for _, p := range props {
		if !alterableFieldProperties[p] {
			return false
		}
	}
	return true
}

func orderProperties(props []string) []string {
	set := map[string]bool{}
	for _, p := range props {
		set[p] = true
	}
	var ordered []string
	for _, p := range fieldPropertyOrder {
		if set[p] {
			ordered = append(ordered, p)
		}
	}
	for _, p := range props {
		if !isFieldPropertyOrdered(p) {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

func isFieldPropertyOrdered(p string) bool {
	for _, o := range fieldPropertyOrder {
		if o == p {
			return true
		}
	}
	return false
}

func fieldPropertyValue(f model.Field, prop string) string {
	switch prop {
	case "type":
		return f.Type
	case "default":
		return f.Default
	case "value":
		return f.Value
	case "assert":
		return f.Assert
	case "readonly":
		if f.Readonly {
			return "true"
		}
		return "false"
	case "comment":
		return f.Comment
	}
	return ""
}

func fieldStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		f := c.Details.(model.Field)
		return []string{generate.Field(c.Table, f)}, []string{generate.FieldRemove(c.Table, f.Name)}

	case model.OpRemove:
		f := c.Details.(model.Field)
		return []string{generate.FieldRemove(c.Table, f.Name)}, []string{generate.Field(c.Table, f)}

	case model.OpRename:
		d := c.Details.(model.RenameDetails)
		return []string{generate.FieldRename(c.Table, d.OldName, d.NewName)},
			[]string{generate.FieldRename(c.Table, d.NewName, d.OldName)}

	case model.OpModify:
		d := c.Details.(model.FieldModifyDetails)
		if d.Granular {
			for _, prop := range d.Properties {
				forward = append(forward, generate.FieldAlter(c.Table, d.New.Name, generate.FieldProperty(strings.ToUpper(prop)), fieldPropertyValue(d.New, prop)))
			}
			for i := len(d.Properties) - 1; i >= 0; i-- {
				prop := d.Properties[i]
				backward = append(backward, generate.FieldAlter(c.Table, d.Old.Name, generate.FieldProperty(strings.ToUpper(prop)), fieldPropertyValue(d.Old, prop)))
			}
			return forward, backward
		}
		return []string{generate.FieldOverwrite(c.Table, d.New)}, []string{generate.FieldOverwrite(c.Table, d.Old)}
	}
	return nil, nil
}
