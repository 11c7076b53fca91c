package generate

import (
	"fmt"

	"github.com/schemasync/schemasync/model"
)

// fieldClauses renders the fixed-order clause list shared by DEFINE FIELD,
// DEFINE FIELD OVERWRITE and the reconstructed-from-snapshot forms:
// TYPE, VALUE, ASSERT, DEFAULT, OPTIONAL, READONLY, FLEXIBLE, PERMISSIONS,
// COMMENT — the exact order §6 fixes.
func fieldClauses(f model.Field) string {
	typeClause := ""
	if f.Type != "" {
		typeClause = "TYPE " + f.Type
	}
	valueClause := ""
	if f.Value != "" {
		valueClause = "VALUE " + f.Value
	}
	assertClause := ""
	if f.Assert != "" {
		assertClause = "ASSERT " + f.Assert
	}
	defaultClause := ""
	if f.Default != "" {
		defaultClause = "DEFAULT " + f.Default
	}
	optionalClause := ""
	if f.Optional {
		optionalClause = "OPTIONAL"
	}
	readonlyClause := ""
	if f.Readonly {
		readonlyClause = "READONLY"
	}
	flexibleClause := ""
	if f.Flexible {
		flexibleClause = "FLEXIBLE"
	}
	permissionsClause := ""
	if f.Permissions != "" {
		permissionsClause = "PERMISSIONS " + f.Permissions
	}
	commentClause := ""
	if f.Comment != "" {
		commentClause = "COMMENT " + quote(f.Comment)
	}
	return join(typeClause, valueClause, assertClause, defaultClause,
		optionalClause, readonlyClause, flexibleClause, permissionsClause, commentClause)
}

// Field emits the full forward DEFINE FIELD statement for one field of one
// table.
func Field(table string, f model.Field) string {
	head := join("DEFINE FIELD", f.Name, "ON TABLE", table)
	return statement(join(head, fieldClauses(f)))
}

// FieldOverwrite emits a full DEFINE FIELD OVERWRITE statement, used when
// more than three properties of a field change at once, or when a changed
// property has no granular ALTER form (§4.3 step 4).
func FieldOverwrite(table string, f model.Field) string {
	head := join("DEFINE FIELD OVERWRITE", f.Name, "ON TABLE", table)
	return statement(join(head, fieldClauses(f)))
}

// FieldRemove emits REMOVE FIELD <name> ON TABLE <table>;
func FieldRemove(table, name string) string {
	return statement(fmt.Sprintf("REMOVE FIELD %s ON TABLE %s", name, table))
}

// FieldRename emits ALTER FIELD <old> RENAME TO <new> ON TABLE <table>;
func FieldRename(table, oldName, newName string) string {
	return statement(fmt.Sprintf("ALTER FIELD %s RENAME TO %s ON TABLE %s", oldName, newName, table))
}

// FieldProperty names one of the narrow-alterable field properties.
type FieldProperty string

const (
	PropertyType     FieldProperty = "TYPE"
	PropertyDefault  FieldProperty = "DEFAULT"
	PropertyValue    FieldProperty = "VALUE"
	PropertyAssert   FieldProperty = "ASSERT"
	PropertyReadonly FieldProperty = "READONLY"
	PropertyComment  FieldProperty = "COMMENT"
)

// FieldAlter emits a single granular ALTER FIELD statement for one changed
// property, per §6's grammar:
// ALTER FIELD <name> (TYPE|DEFAULT|VALUE|ASSERT|READONLY|COMMENT) <value> ON TABLE <t>;
func FieldAlter(table, name string, property FieldProperty, value string) string {
	if property == PropertyComment {
		value = quote(value)
	}
	return statement(fmt.Sprintf("ALTER FIELD %s %s %s ON TABLE %s", name, property, value, table))
}
