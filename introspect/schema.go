package introspect

import (
	"log"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

const historyTableName = "_migrations"

// ParseSchema assembles a model.Schema from one INFO FOR DB response and one
// INFO FOR TABLE response per table name it enumerated. Any single entity
// whose definition string fails to parse is logged and skipped rather than
// aborting the whole introspection; the caller still gets a usable schema
// for everything that did parse.
func ParseSchema(db model.InfoForDB, tables map[string]model.InfoForTable) (*model.Schema, error) {
	schema := model.NewSchema()

	for name, stmt := range db.Tables {
		if name == historyTableName {
			continue
		}
		table, err := ParseTableHeader(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable table %q: %v", name, err)
			continue
		}
		table.Name = name

		if info, ok := tables[name]; ok {
			table.Fields = parseFields(name, info.Fields)
			table.Indexes = parseIndexes(name, info.Indexes)
			table.Events = parseEvents(name, info.Events)
		}
		ClassifyRelation(&table)
		dropGeneratedArrayElementFields(&table)

		t := table
		schema.Tables[name] = &t
	}

	for name, stmt := range db.Functions {
		fn, err := ParseFunction(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable function %q: %v", name, err)
			continue
		}
		fn.Name = name
		f := fn
		schema.Functions[name] = &f
	}

	for name, stmt := range db.Accesses {
		scope, err := ParseScope(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable access %q: %v", name, err)
			continue
		}
		scope.Name = name
		s := scope
		schema.Scopes[name] = &s
	}

	for name, stmt := range db.Analyzers {
		a, err := ParseAnalyzer(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable analyzer %q: %v", name, err)
			continue
		}
		a.Name = name
		v := a
		schema.Analyzers[name] = &v
	}

	for name, stmt := range db.Params {
		p, err := ParseParam(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable param %q: %v", name, err)
			continue
		}
		p.Name = name
		v := p
		schema.Params[name] = &v
	}

	for name, stmt := range db.Sequences {
		seq, err := ParseSequence(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable sequence %q: %v", name, err)
			continue
		}
		seq.Name = name
		v := seq
		schema.Sequences[name] = &v
	}

	for name, stmt := range db.Users {
		u, err := ParseUser(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable user %q: %v", name, err)
			continue
		}
		u.Name = name
		v := u
		schema.Users[name] = &v
	}

	return schema, nil
}

func parseFields(table string, raw map[string]string) []model.Field {
	var fields []model.Field
	for name, stmt := range raw {
		_, field, err := ParseField(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable field %s.%s: %v", table, name, err)
			continue
		}
		field.Name = name
		fields = append(fields, field)
	}
	return fields
}

func parseIndexes(table string, raw map[string]string) []model.Index {
	var indexes []model.Index
	for name, stmt := range raw {
		_, idx, err := ParseIndex(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable index %s.%s: %v", table, name, err)
			continue
		}
		idx.Name = name
		indexes = append(indexes, idx)
	}
	return indexes
}

func parseEvents(table string, raw map[string]string) []model.Event {
	var events []model.Event
	for name, stmt := range raw {
		_, ev, err := ParseEvent(stmt)
		if err != nil {
			log.Printf("introspect: skipping unparsable event %s.%s: %v", table, name, err)
			continue
		}
		ev.Name = name
		events = append(events, ev)
	}
	return events
}

var arrayTypeRe = regexp.MustCompile(`(?i)^array(\s*<.*>)?$`)

// dropGeneratedArrayElementFields removes "<parent>.*" fields the database
// auto-generates to describe an array field's element type: those are not
// independently authored and must never appear as their own diffable field.
func dropGeneratedArrayElementFields(t *model.Table) {
	arrayParents := map[string]bool{}
	for _, f := range t.Fields {
		if arrayTypeRe.MatchString(strings.TrimSpace(f.Type)) {
			arrayParents[f.Name] = true
		}
	}
	if len(arrayParents) == 0 {
		return
	}
	kept := t.Fields[:0]
	for _, f := range t.Fields {
		if parent, elem, ok := strings.Cut(f.Name, ".*"); ok && elem == "" && arrayParents[parent] {
			continue
		}
		kept = append(kept, f)
	}
	t.Fields = kept
}
