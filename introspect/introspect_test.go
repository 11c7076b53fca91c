package introspect

import (
	"testing"

	"github.com/schemasync/schemasync/model"
)

func TestParseTableHeaderSchemafull(t *testing.T) {
	tbl, err := ParseTableHeader("DEFINE TABLE user SCHEMAFULL;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Name != "user" || !tbl.Schemafull {
		t.Errorf("got %+v", tbl)
	}
}

func TestParseTableHeaderRelation(t *testing.T) {
	tbl, err := ParseTableHeader("DEFINE TABLE follows TYPE RELATION IN user OUT user ENFORCED SCHEMAFULL;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tbl.IsRelation() {
		t.Fatal("expected a relation table")
	}
	if tbl.Relation.From != "user" || tbl.Relation.To != "user" || !tbl.Relation.Enforced {
		t.Errorf("got relation %+v", tbl.Relation)
	}
}

func TestParseField(t *testing.T) {
	table, field, err := ParseField("DEFINE FIELD email ON TABLE user TYPE string ASSERT $value != NONE;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table != "user" {
		t.Errorf("table = %q, want user", table)
	}
	if field.Type != "string" || field.Assert != "$value != NONE" {
		t.Errorf("got field %+v", field)
	}
}

// ClassifyRelation must use the in/out field discriminator, never a naming
// heuristic (a table named with an underscore is not, by itself, evidence
// of being a relation).
func TestClassifyRelationByFieldsNotName(t *testing.T) {
	plain := model.Table{Name: "user_profile", Fields: []model.Field{{Name: "bio", Type: "string"}}}
	ClassifyRelation(&plain)
	if plain.IsRelation() {
		t.Fatal("a table should never be classified as a relation by its name")
	}

	edge := model.Table{Name: "likes", Fields: []model.Field{
		{Name: "in", Type: "record<user>"},
		{Name: "out", Type: "record<post>"},
	}}
	ClassifyRelation(&edge)
	if !edge.IsRelation() {
		t.Fatal("a table with both in and out fields must be classified as a relation")
	}
	if edge.Relation.From != "user" || edge.Relation.To != "post" {
		t.Errorf("got relation endpoints %+v", edge.Relation)
	}
}

func TestClassifyRelationUnresolvedEndpointFallsBackToUnknown(t *testing.T) {
	edge := model.Table{Name: "likes", Fields: []model.Field{
		{Name: "in", Type: "record"},
		{Name: "out", Type: "record"},
	}}
	ClassifyRelation(&edge)
	if edge.Relation.From != model.UnknownEndpoint || edge.Relation.To != model.UnknownEndpoint {
		t.Errorf("expected unknown endpoints, got %+v", edge.Relation)
	}
}

func TestParseSchemaExcludesHistoryTable(t *testing.T) {
	db := model.InfoForDB{Tables: map[string]string{
		"_migrations": "DEFINE TABLE _migrations SCHEMAFULL;",
		"user":        "DEFINE TABLE user SCHEMAFULL;",
	}}
	schema, err := ParseSchema(db, map[string]model.InfoForTable{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := schema.Tables["_migrations"]; ok {
		t.Fatal("the history table must be excluded from introspection")
	}
	if _, ok := schema.Tables["user"]; !ok {
		t.Fatal("expected the user table to be introspected")
	}
}

func TestParseSchemaSkipsUnparsableEntityWithoutAborting(t *testing.T) {
	db := model.InfoForDB{Tables: map[string]string{
		"user":    "DEFINE TABLE user SCHEMAFULL;",
		"garbage": "not a definition statement at all {{{",
	}}
	schema, err := ParseSchema(db, map[string]model.InfoForTable{})
	if err != nil {
		t.Fatalf("a single unparsable entity must not abort introspection: %v", err)
	}
	if _, ok := schema.Tables["user"]; !ok {
		t.Fatal("well-formed entities must still be introspected")
	}
	if _, ok := schema.Tables["garbage"]; ok {
		t.Fatal("the unparsable entity should have been skipped, not half-populated")
	}
}

func TestDropGeneratedArrayElementFields(t *testing.T) {
	db := model.InfoForDB{Tables: map[string]string{
		"post": "DEFINE TABLE post SCHEMAFULL;",
	}}
	tables := map[string]model.InfoForTable{
		"post": {Fields: map[string]string{
			"tags":   "DEFINE FIELD tags ON TABLE post TYPE array<string>;",
			"tags.*": "DEFINE FIELD tags.* ON TABLE post TYPE string;",
		}},
	}
	schema, err := ParseSchema(db, tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	post := schema.Tables["post"]
	for _, f := range post.Fields {
		if f.Name == "tags.*" {
			t.Fatalf("auto-generated array-element field must be dropped, got fields: %+v", post.Fields)
		}
	}
}
