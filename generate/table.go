package generate

import (
	"fmt"

	"github.com/schemasync/schemasync/model"
)

// Table emits the full forward DEFINE TABLE statement, including the
// TYPE RELATION clause for relations. It does not emit the table's
// subcomponents (fields/indexes/events) — callers append those separately
// per the diff engine's create ordering (§4.3).
func Table(t model.Table) string {
	schemaClause := "SCHEMALESS"
	if t.Schemafull {
		schemaClause = "SCHEMAFULL"
	}

	typeClause := ""
	if t.IsRelation() {
		enforced := ""
		if t.Relation.Enforced {
			enforced = "ENFORCED"
		}
		typeClause = join("TYPE RELATION IN", t.Relation.From, "OUT", t.Relation.To, enforced)
	}

	commentClause := ""
	if t.Comment != "" {
		commentClause = "COMMENT " + quote(t.Comment)
	}

	return statement(join("DEFINE TABLE", t.Name, typeClause, schemaClause, commentClause))
}

// TableOverwrite emits a full DEFINE TABLE OVERWRITE statement, used when a
// table's own header (schemafull flag or comment) changes in place. A
// relation whose endpoints changed is recreated with TableRemove and Table
// instead (§4.3 step 5).
func TableOverwrite(t model.Table) string {
	schemaClause := "SCHEMALESS"
	if t.Schemafull {
		schemaClause = "SCHEMAFULL"
	}
	typeClause := ""
	if t.IsRelation() {
		enforced := ""
		if t.Relation.Enforced {
			enforced = "ENFORCED"
		}
		typeClause = join("TYPE RELATION IN", t.Relation.From, "OUT", t.Relation.To, enforced)
	}
	commentClause := ""
	if t.Comment != "" {
		commentClause = "COMMENT " + quote(t.Comment)
	}
	return statement(join("DEFINE TABLE OVERWRITE", t.Name, typeClause, schemaClause, commentClause))
}

// TableRemove emits REMOVE TABLE <name>;
func TableRemove(name string) string {
	return statement(join("REMOVE TABLE", name))
}

// TableRename emits ALTER TABLE <old> RENAME TO <new>;
func TableRename(oldName, newName string) string {
	return statement(fmt.Sprintf("ALTER TABLE %s RENAME TO %s", oldName, newName))
}

// TableSubcomponents renders the full sequence of DEFINE statements for a
// table's fields, indexes and events, in that order — the order §4.3 step 2
// requires after a table's own DEFINE TABLE statement.
func TableSubcomponents(t model.Table) []string {
	var stmts []string
	for _, f := range t.Fields {
		if model.ReservedRelationFields[f.Name] {
			continue
		}
		stmts = append(stmts, Field(t.Name, f))
	}
	for _, idx := range t.Indexes {
		stmts = append(stmts, Index(t.Name, idx))
	}
	for _, ev := range t.Events {
		stmts = append(stmts, Event(t.Name, ev, false))
	}
	return stmts
}

// TableSubcomponentRemovals is the reverse of TableSubcomponents: REMOVE
// statements for every field, index and event, in reverse declaration
// order (events, then indexes, then fields). The diff engine does not call
// it: a table remove or relation recreate emits a single REMOVE TABLE.
func TableSubcomponentRemovals(t model.Table) []string {
	var stmts []string
	for i := len(t.Events) - 1; i >= 0; i-- {
		stmts = append(stmts, EventRemove(t.Name, t.Events[i].Name))
	}
	for i := len(t.Indexes) - 1; i >= 0; i-- {
		stmts = append(stmts, IndexRemove(t.Name, t.Indexes[i].Name))
	}
	for i := len(t.Fields) - 1; i >= 0; i-- {
		if model.ReservedRelationFields[t.Fields[i].Name] {
			continue
		}
		stmts = append(stmts, FieldRemove(t.Name, t.Fields[i].Name))
	}
	return stmts
}
